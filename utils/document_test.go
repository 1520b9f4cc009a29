package utils

import (
	"archive/zip"
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/models"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
	`<w:p><w:r><w:t>Skills</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>Go, Docker &amp; Kubernetes</w:t></w:r><w:r><w:tab/><w:t>AWS</w:t></w:r></w:p>` +
	`</w:body></w:document>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for name, content := range map[string]string{
		"[Content_Types].xml":          contentTypesXML,
		"word/document.xml":            body,
		"word/_rels/document.xml.rels": relsXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractPlainText(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.Extract("text/plain; charset=utf-8", "resume.txt", []byte("  Go and Docker\n"))
	require.NoError(t, err)
	assert.Equal(t, "Go and Docker", text)

	text, err = e.Extract(MIMEMarkdown, "", []byte("# Skills\n- Terraform"))
	require.NoError(t, err)
	assert.Equal(t, "# Skills\n- Terraform", text)

	text, err = e.Extract("", "resume.txt", []byte("\xef\xbb\xbfBOM first"))
	require.NoError(t, err)
	assert.Equal(t, "BOM first", text)

	text, err = e.Extract(MIMEPlain, "", []byte("bad \xff byte"))
	require.NoError(t, err)
	assert.Equal(t, "bad � byte", text)
}

func TestExtractEmptyDocument(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract(MIMEPlain, "resume.txt", []byte(" \n\t "))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = e.Extract("", "", nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractUnsupported(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract("application/msword", "resume.doc", []byte{0xd0, 0xcf, 0x11, 0xe0})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = e.Extract("image/png", "photo.png", []byte("\x89PNG\r\n\x1a\n"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractDocx(t *testing.T) {
	e := NewDocumentExtractor()
	data := buildDocx(t, documentXML)

	text, err := e.Extract(MIMEDocx, "resume.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "Skills\nGo, Docker & Kubernetes\tAWS", text)

	// octet-stream upload falls back to the extension
	text, err = e.Extract(MIMEOctet, "resume.docx", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")

	// no hints at all: the zip container is sniffed
	text, err = e.Extract("", "", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")
}

// buildPDF writes a one-page PDF showing line in Helvetica.
func buildPDF(line string) []byte {
	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", line)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	buf := new(bytes.Buffer)
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtractPDF(t *testing.T) {
	e := NewDocumentExtractor()
	data := buildPDF("Kubernetes and Docker on AWS")

	text, err := e.Extract(MIMEPDF, "resume.pdf", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes and Docker on AWS")

	// sniffed from content when neither type nor extension helps
	sniffed, err := e.Extract("", "upload", data)
	require.NoError(t, err)
	assert.Equal(t, text, sniffed)

	role := models.Role{Name: "Cloud Engineer", Skills: []models.Skill{
		{Name: "AWS", Variants: []string{"aws"}},
		{Name: "Terraform", Variants: []string{"terraform"}},
		{Name: "Docker", Variants: []string{"docker"}},
		{Name: "Kubernetes", Variants: []string{"kubernetes", "k8s"}},
	}}
	result := analyzer.Analyze(text, role)
	assert.Equal(t, []string{"AWS", "Docker", "Kubernetes"}, result.Found)
	assert.Equal(t, []string{"Terraform"}, result.Missing)
}

func TestExtractCorruptDocuments(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract(MIMEPDF, "resume.pdf", []byte("%PDF-1.4 this is not really a pdf"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)

	_, err = e.Extract(MIMEDocx, "resume.docx", []byte("PK not a zip"))
	assert.Error(t, err)
}

func TestExtractTextFromMultipart(t *testing.T) {
	e := NewDocumentExtractor()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="resume_file"; filename="resume.txt"`)
	h.Set("Content-Type", "text/plain")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("Kubernetes operator"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(body, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	header := form.File["resume_file"][0]
	file, err := header.Open()
	require.NoError(t, err)
	defer file.Close()

	text, err := e.ExtractText(file, header)
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes operator", text)
}

func TestDetectMIME(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		filename string
		data     []byte
		want     string
	}{
		{"declared type wins", "application/pdf", "resume.txt", nil, MIMEPDF},
		{"parameters stripped", "text/plain; charset=utf-8", "", nil, MIMEPlain},
		{"octet-stream uses extension", MIMEOctet, "CV.PDF", nil, MIMEPDF},
		{"empty type uses extension", "", "notes.md", nil, MIMEMarkdown},
		{"sniffed pdf", "", "", []byte("%PDF-1.7\n"), MIMEPDF},
		{"sniffed text", "", "", []byte("hello world"), MIMEPlain},
		{"sniffed zip is docx", "", "upload", []byte("PK\x03\x04rest"), MIMEDocx},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMIME(tt.mimeType, tt.filename, tt.data))
		})
	}
}

func TestMIMEFromFilename(t *testing.T) {
	assert.Equal(t, MIMEDocx, MIMEFromFilename("/tmp/Resume.DOCX"))
	assert.Equal(t, MIMEPlain, MIMEFromFilename("cv.txt"))
	assert.Equal(t, "", MIMEFromFilename("cv"))
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:p><w:r><w:t>A &lt;b&gt;</w:t></w:r><w:br/><w:r><w:t>C</w:t></w:r></w:p><w:p><w:r><w:t>D</w:t></w:r></w:p>`
	assert.Equal(t, "A <b>\nC\nD\n", DocxXMLToText(xml))
}
