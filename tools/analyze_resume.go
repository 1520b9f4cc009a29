package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/models"
)

// Reporter produces an analysis report for résumé text and a role
type Reporter interface {
	Report(text, roleName string) (models.AnalyzeResponse, error)
}

// AnalyzeResumeTool runs a skill gap analysis for an external agent
type AnalyzeResumeTool struct {
	analyzer Reporter
}

// NewAnalyzeResumeTool creates a new résumé analysis tool
func NewAnalyzeResumeTool(a Reporter) *AnalyzeResumeTool {
	return &AnalyzeResumeTool{
		analyzer: a,
	}
}

func (t *AnalyzeResumeTool) Name() string {
	return "analyze_resume"
}

func (t *AnalyzeResumeTool) Description() string {
	return `Compare résumé text against a target role.
Returns the role's skills found in the text, the missing ones in the role's order,
and a learning resource for each missing skill where one is known.
Use list_roles first to get valid role names.`
}

func (t *AnalyzeResumeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"role": map[string]interface{}{
				"type":        "string",
				"description": "Target role name, exactly as returned by list_roles",
			},
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "Plain résumé text",
			},
		},
		"required": []string{"role", "resume_text"},
	}
}

// AnalyzeResumeInput represents the input for résumé analysis
type AnalyzeResumeInput struct {
	Role       string `json:"role"`
	ResumeText string `json:"resume_text"`
}

func (t *AnalyzeResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in AnalyzeResumeInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if strings.TrimSpace(in.Role) == "" {
		return NewErrorResult("role is required")
	}
	if strings.TrimSpace(in.ResumeText) == "" {
		return NewErrorResult("nothing to analyze: resume_text is empty")
	}

	report, err := t.analyzer.Report(in.ResumeText, in.Role)
	if errors.Is(err, analyzer.ErrUnknownRole) {
		return NewErrorResult(fmt.Sprintf("unknown role %q", in.Role))
	}
	if err != nil {
		return NewErrorResult(err.Error())
	}

	return NewSuccessResult(report)
}
