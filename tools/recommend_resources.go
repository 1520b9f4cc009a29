package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/models"
)

// RecommendResourcesTool resolves learning resources for skill names
type RecommendResourcesTool struct {
	analyzer *analyzer.Analyzer
}

// NewRecommendResourcesTool creates a new resource recommendation tool
func NewRecommendResourcesTool(a *analyzer.Analyzer) *RecommendResourcesTool {
	return &RecommendResourcesTool{analyzer: a}
}

func (t *RecommendResourcesTool) Name() string {
	return "recommend_resources"
}

func (t *RecommendResourcesTool) Description() string {
	return `Look up learning resources for skills.
Returns one entry per skill in input order; available is false when no resource is known.`
}

func (t *RecommendResourcesTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"skills": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Skill names, e.g. the missing skills of an analysis",
			},
		},
		"required": []string{"skills"},
	}
}

// RecommendResourcesInput represents the input for resource lookup
type RecommendResourcesInput struct {
	Skills models.FlexibleStringSlice `json:"skills"`
}

func (t *RecommendResourcesTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in RecommendResourcesInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	return NewSuccessResult(models.ResourcesResponse{
		Resources: t.analyzer.Recommend(in.Skills),
	})
}
