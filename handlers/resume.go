package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var errTooLarge = errors.New("request body too large")

// formOverhead covers multipart headers and text fields on top of the file cap
const formOverhead = 1 << 20

// Form input methods. Any other value lets a non-empty file win over text.
const (
	inputUpload = "upload"
	inputPaste  = "paste"
)

// extractionError reports an uploaded file whose text could not be read
type extractionError struct {
	Filename string
	Err      error
}

func (e *extractionError) Error() string {
	return fmt.Sprintf("failed to extract %s: %v", e.Filename, e.Err)
}

func (e *extractionError) Unwrap() error {
	return e.Err
}

// resumeInput is the role and résumé text of one request
type resumeInput struct {
	Role   string
	Text   string
	Source string
}

// bodyLimit caps a request body at the upload limit plus form overhead
func (h *AnalyzeHandler) bodyLimit() int64 {
	return h.maxUpload + formOverhead
}

// readForm reads role, resume_file and resume_text from a multipart or
// urlencoded form. With honorMethod the input_method field picks the source:
// "upload" reads only the file and "paste" only the text. Otherwise a
// non-empty uploaded file wins over pasted text.
func (h *AnalyzeHandler) readForm(c *gin.Context, honorMethod bool) (resumeInput, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.Request.ParseMultipartForm(h.maxUpload); err != nil {
			return resumeInput{}, formError(err)
		}
	} else if err := c.Request.ParseForm(); err != nil {
		return resumeInput{}, formError(err)
	}

	method := ""
	if honorMethod {
		method = c.PostForm("input_method")
	}

	input := resumeInput{Role: c.PostForm("role"), Source: "text"}
	if method != inputUpload {
		input.Text = c.PostForm("resume_text")
	}
	if method == inputPaste {
		return input, nil
	}

	file, header, err := c.Request.FormFile("resume_file")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return input, nil
	case err != nil:
		return resumeInput{}, formError(err)
	}
	defer file.Close()

	if header.Size == 0 {
		return input, nil
	}
	if header.Size > h.maxUpload {
		return resumeInput{}, errTooLarge
	}

	text, err := h.extractor.ExtractText(file, header)
	if err != nil {
		return resumeInput{}, &extractionError{Filename: header.Filename, Err: err}
	}

	log.Printf("[AnalyzeHandler] Received résumé file: %s (%d bytes)", header.Filename, header.Size)
	input.Text = text
	input.Source = "file"
	return input, nil
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errTooLarge
	}
	return err
}

func isForm(contentType string) bool {
	return strings.HasPrefix(contentType, "multipart/form-data") ||
		strings.HasPrefix(contentType, "application/x-www-form-urlencoded")
}
