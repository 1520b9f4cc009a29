package analyzer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/myjobmatch/skillgap/models"
)

// Messages shown alongside a result
const (
	MessageAllCovered    = "You're covering all key skills for this role!"
	MessageNoneFound     = "No relevant skills found."
	MessageSkilledEnough = "You're already skilled enough. Keep it up!"
)

// Report analyzes text against the named role and packages the result with
// learning recommendations for every missing skill and a fresh analysis id.
// An unknown role yields an empty report together with ErrUnknownRole.
func (a *Analyzer) Report(text, roleName string) (models.AnalyzeResponse, error) {
	result, err := a.AnalyzeRole(text, roleName)

	return models.AnalyzeResponse{
		AnalysisID:      uuid.New().String(),
		Role:            result.Role,
		Found:           result.Found,
		Missing:         result.Missing,
		Recommendations: a.Recommend(result.Missing),
		Message:         Summary(result),
	}, err
}

// Summary describes a result in one line
func Summary(result models.AnalysisResult) string {
	total := len(result.Found) + len(result.Missing)
	switch {
	case total == 0:
		return MessageNoneFound
	case len(result.Missing) == 0:
		return MessageAllCovered
	case len(result.Found) == 0:
		return MessageNoneFound
	default:
		return fmt.Sprintf("%d of %d skills found", len(result.Found), total)
	}
}
