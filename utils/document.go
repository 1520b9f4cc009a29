package utils

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported MIME types
const (
	MIMEPlain    = "text/plain"
	MIMEMarkdown = "text/markdown"
	MIMEPDF      = "application/pdf"
	MIMEDocx     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEOctet    = "application/octet-stream"
	mimeZip      = "application/zip"
)

var (
	// ErrUnsupportedFormat is returned for documents that are not PDF, DOCX or plain text
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyDocument is returned when a document yields no text
	ErrEmptyDocument = errors.New("document contains no text")
)

var extensionTypes = map[string]string{
	".txt":      MIMEPlain,
	".text":     MIMEPlain,
	".md":       MIMEMarkdown,
	".markdown": MIMEMarkdown,
	".pdf":      MIMEPDF,
	".docx":     MIMEDocx,
}

var (
	docxBreaks = regexp.MustCompile(`</w:p>|<w:br[^>]*/>|<w:cr[^>]*/>`)
	docxTabs   = regexp.MustCompile(`<w:tab[^>]*/>`)
	xmlTags    = regexp.MustCompile(`<[^>]*>`)
)

// DocumentExtractor extracts text from résumé documents
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText extracts text from an uploaded file. The part's Content-Type
// header is preferred; the file name and the content itself are used when
// the header is missing or generic.
func (e *DocumentExtractor) ExtractText(file multipart.File, header *multipart.FileHeader) (string, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return e.Extract(header.Header.Get("Content-Type"), header.Filename, buf.Bytes())
}

// Extract returns the plain text of data, trimmed of surrounding whitespace
func (e *DocumentExtractor) Extract(mimeType, filename string, data []byte) (string, error) {
	kind := DetectMIME(mimeType, filename, data)

	var (
		text string
		err  error
	)
	switch kind {
	case MIMEPlain, MIMEMarkdown:
		text = decodeText(data)
	case MIMEPDF:
		text, err = extractPDF(data)
	case MIMEDocx:
		text, err = extractDocx(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// DetectMIME resolves the document type from the declared MIME type, falling
// back to the file extension and then to content sniffing.
func DetectMIME(mimeType, filename string, data []byte) string {
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil && mediaType != MIMEOctet {
		return mediaType
	}

	if kind, ok := extensionTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return kind
	}

	if len(data) == 0 {
		return MIMEPlain
	}

	sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	switch sniffed {
	case mimeZip:
		// DOCX is a zip container
		return MIMEDocx
	case "":
		return MIMEOctet
	}
	return sniffed
}

// MIMEFromFilename returns the document type implied by a file extension
func MIMEFromFilename(filename string) string {
	if kind, ok := extensionTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return kind
	}
	return ""
}

func decodeText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	return strings.ToValidUTF8(string(data), "�")
}

func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocx(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse docx: %v", r)
		}
	}()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return DocxXMLToText(doc.Editable().GetContent()), nil
}

// DocxXMLToText converts WordprocessingML into plain text. Paragraphs and
// breaks become newlines, tabs stay tabs, and entities are unescaped.
func DocxXMLToText(content string) string {
	content = docxBreaks.ReplaceAllString(content, "\n")
	content = docxTabs.ReplaceAllString(content, "\t")
	content = xmlTags.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
