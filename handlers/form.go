package handlers

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Notices shown on the form page
const (
	noticeNoInput   = "Please upload or paste resume content."
	noticeExtracted = "Resume uploaded and extracted."
)

// Templates parses the HTML templates served by FormHandler
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html"))
}

// FormHandler serves the browser form for résumé analysis
type FormHandler struct {
	analyze *AnalyzeHandler
}

// NewFormHandler creates a form handler sharing the analyze handler's taxonomy
func NewFormHandler(analyze *AnalyzeHandler) *FormHandler {
	return &FormHandler{analyze: analyze}
}

type formPage struct {
	Roles        []string
	SelectedRole string
	InputMethod  string
	ResumeText   string

	Notice     string
	NoticeKind string

	Result *models.AnalyzeResponse
	Links  []models.ResourceLink

	NoneFound     string
	AllCovered    string
	SkilledEnough string
}

// Show renders the empty form
func (h *FormHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page())
}

// Submit analyzes the submitted résumé and renders the result
func (h *FormHandler) Submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.analyze.bodyLimit())

	page := h.page()

	input, err := h.analyze.readForm(c, true)
	page.SelectedRole = c.PostForm("role")
	if method := c.PostForm("input_method"); method != "" {
		page.InputMethod = method
	}
	page.ResumeText = c.PostForm("resume_text")
	if err != nil {
		var extractErr *extractionError
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, errTooLarge):
			status = http.StatusRequestEntityTooLarge
			page.Notice = fmt.Sprintf("The file is too large. Uploads are limited to %d MB.", h.analyze.maxUpload>>20)
		case errors.As(err, &extractErr):
			status = http.StatusUnprocessableEntity
			log.Printf("[FormHandler] Failed to extract %s: %v", extractErr.Filename, extractErr.Err)
			page.Notice = fmt.Sprintf("Could not read %s. Try a PDF, DOCX or TXT file, or paste the text instead.", extractErr.Filename)
		default:
			page.Notice = "The form could not be read. Please try again."
		}
		page.NoticeKind = "error"
		c.HTML(status, "index.html", page)
		return
	}

	if strings.TrimSpace(input.Text) == "" {
		page.Notice = noticeNoInput
		page.NoticeKind = "warning"
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}

	report, err := h.analyze.analyzer.Report(input.Text, input.Role)
	if err != nil && errors.Is(err, analyzer.ErrUnknownRole) && h.analyze.strictRoles {
		page.Notice = fmt.Sprintf("Unknown role %q. Pick one of the listed roles.", input.Role)
		page.NoticeKind = "error"
		c.HTML(http.StatusNotFound, "index.html", page)
		return
	}

	log.Printf("[FormHandler] %s: role=%q input=%s found=%d missing=%d",
		report.AnalysisID, report.Role, input.Source, len(report.Found), len(report.Missing))

	if input.Source == "file" {
		page.Notice = noticeExtracted
		page.NoticeKind = "success"
	}
	page.Result = &report
	for _, link := range report.Recommendations {
		if link.Available {
			page.Links = append(page.Links, link)
		}
	}

	c.HTML(http.StatusOK, "index.html", page)
}

func (h *FormHandler) page() formPage {
	roles := h.analyze.taxonomy.RoleNames()
	selected := ""
	if len(roles) > 0 {
		selected = roles[0]
	}
	return formPage{
		Roles:         roles,
		SelectedRole:  selected,
		InputMethod:   "upload",
		NoneFound:     analyzer.MessageNoneFound,
		AllCovered:    analyzer.MessageAllCovered,
		SkilledEnough: analyzer.MessageSkilledEnough,
	}
}
