package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/config"
	"github.com/myjobmatch/skillgap/models"
	"github.com/myjobmatch/skillgap/taxonomy"
	"github.com/myjobmatch/skillgap/utils"
)

// AnalyzeHandler handles résumé analysis requests
type AnalyzeHandler struct {
	analyzer    *analyzer.Analyzer
	taxonomy    *taxonomy.Taxonomy
	extractor   *utils.DocumentExtractor
	strictRoles bool
	maxUpload   int64
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(tx *taxonomy.Taxonomy, cfg *config.Config) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer.New(tx),
		taxonomy:    tx,
		extractor:   utils.NewDocumentExtractor(),
		strictRoles: cfg.StrictRoles,
		maxUpload:   cfg.MaxUploadBytes(),
	}
}

// Analyze compares a résumé against a target role
// @Summary Analyze résumé
// @Description Detect which of a role's skills a résumé mentions and recommend resources for the rest. Accepts JSON or multipart/form-data; an uploaded file takes precedence over pasted text.
// @Tags Analysis
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.AnalyzeRequest false "Analysis request (JSON)"
// @Param role formData string false "Target role"
// @Param resume_file formData file false "Résumé file (PDF, DOCX, TXT)"
// @Param resume_text formData string false "Résumé text"
// @Success 200 {object} models.AnalyzeResponse "Found and missing skills"
// @Failure 400 {object} models.ErrorResponse "Invalid request or nothing to analyze"
// @Failure 404 {object} models.ErrorResponse "Unknown role"
// @Failure 413 {object} models.ErrorResponse "Upload too large"
// @Failure 422 {object} models.ErrorResponse "Résumé file could not be read"
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.bodyLimit())

	var input resumeInput
	if isForm(c.ContentType()) {
		var err error
		input, err = h.readForm(c, false)
		if err != nil {
			h.respondInputError(c, err)
			return
		}
	} else {
		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.respondInputError(c, errTooLarge)
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Invalid request body",
				Code:    http.StatusBadRequest,
				Details: err.Error(),
			})
			return
		}
		input = resumeInput{Role: req.Role, Text: req.ResumeText, Source: "json"}
	}

	if strings.TrimSpace(input.Role) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Role is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if strings.TrimSpace(input.Text) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Nothing to analyze",
			Code:    http.StatusBadRequest,
			Details: "résumé text is empty",
		})
		return
	}

	report, err := h.analyzer.Report(input.Text, input.Role)
	if err != nil {
		if errors.Is(err, analyzer.ErrUnknownRole) && !h.strictRoles {
			log.Printf("[AnalyzeHandler] %s: unknown role %q, returning empty result", report.AnalysisID, input.Role)
			c.JSON(http.StatusOK, report)
			return
		}
		log.Printf("[AnalyzeHandler] %s: unknown role %q", report.AnalysisID, input.Role)
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Unknown role",
			Code:    http.StatusNotFound,
			Details: fmt.Sprintf("role %q is not defined; see GET /api/roles", input.Role),
		})
		return
	}

	log.Printf("[AnalyzeHandler] %s: role=%q input=%s found=%d missing=%d",
		report.AnalysisID, report.Role, input.Source, len(report.Found), len(report.Missing))

	c.JSON(http.StatusOK, report)
}

// Resources resolves learning resources for arbitrary skills
// @Summary Resolve learning resources
// @Description Pair each skill with its learning resource URL, in request order. Skills without a resource are returned with available=false.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.ResourcesRequest true "Skills to resolve"
// @Success 200 {object} models.ResourcesResponse "Resolved resources"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /resources [post]
func (h *AnalyzeHandler) Resources(c *gin.Context) {
	var req models.ResourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ResourcesResponse{
		Resources: h.analyzer.Recommend(req.Skills),
	})
}

// ListRoles returns the available target roles
// @Summary List roles
// @Description List target roles in declared order with their skill counts
// @Tags Roles
// @Produce json
// @Success 200 {object} models.RolesResponse "Available roles"
// @Router /roles [get]
func (h *AnalyzeHandler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, models.RolesResponse{
		Roles: h.taxonomy.Summaries(),
	})
}

// GetRole returns one role with its skills and variants
// @Summary Get role
// @Description Return a role's skills and their variants in declared order. Role names may contain slashes (AI/ML Engineer).
// @Tags Roles
// @Produce json
// @Param role path string true "Role name"
// @Success 200 {object} models.Role "Role definition"
// @Failure 404 {object} models.ErrorResponse "Unknown role"
// @Router /roles/{role} [get]
func (h *AnalyzeHandler) GetRole(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("role"), "/")

	role, ok := h.taxonomy.Role(name)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Unknown role",
			Code:    http.StatusNotFound,
			Details: fmt.Sprintf("role %q is not defined", name),
		})
		return
	}

	c.JSON(http.StatusOK, role)
}

func (h *AnalyzeHandler) respondInputError(c *gin.Context, err error) {
	var extractErr *extractionError
	switch {
	case errors.Is(err, errTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error:   "Upload too large",
			Code:    http.StatusRequestEntityTooLarge,
			Details: fmt.Sprintf("uploads are limited to %d MB", h.maxUpload>>20),
		})
	case errors.As(err, &extractErr):
		log.Printf("[AnalyzeHandler] Failed to extract %s: %v", extractErr.Filename, extractErr.Err)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "Could not read résumé file",
			Code:    http.StatusUnprocessableEntity,
			Details: extractErr.Err.Error(),
		})
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid form data",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
	}
}
