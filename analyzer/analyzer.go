package analyzer

import (
	"errors"

	"github.com/myjobmatch/skillgap/models"
)

// ErrUnknownRole is returned when a role name is not declared in the taxonomy
var ErrUnknownRole = errors.New("unknown role")

// Catalog is the read-only view of a taxonomy the analyzer needs
type Catalog interface {
	Role(name string) (models.Role, bool)
	Resources() models.LearningResources
}

// Analyzer runs gap analysis against a loaded taxonomy.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	catalog Catalog
}

// New creates a new analyzer over the given catalog
func New(catalog Catalog) *Analyzer {
	return &Analyzer{catalog: catalog}
}

// AnalyzeRole analyzes text against the named role. An unknown role yields
// an empty result together with ErrUnknownRole so callers can decide whether
// to surface it.
func (a *Analyzer) AnalyzeRole(text, roleName string) (models.AnalysisResult, error) {
	role, ok := a.catalog.Role(roleName)
	if !ok {
		return emptyResult(roleName), ErrUnknownRole
	}
	return Analyze(text, role), nil
}

// Recommend resolves learning resources for the given skills
func (a *Analyzer) Recommend(skills []string) []models.ResourceLink {
	return ResolveResources(skills, a.catalog.Resources())
}

// Analyze detects which of the role's skills appear in text.
//
// A skill is found when any of its variants occurs as a whole word, ignoring
// case. Found and Missing partition the role's skills and both keep the
// role's declared order. The zero Role yields two empty lists.
func Analyze(text string, role models.Role) models.AnalysisResult {
	result := emptyResult(role.Name)
	normalized := NormalizeText(text)

	for _, skill := range role.Skills {
		if skillPresent(normalized, skill) {
			result.Found = append(result.Found, skill.Name)
		} else {
			result.Missing = append(result.Missing, skill.Name)
		}
	}
	return result
}

// ResolveResources pairs every skill with its learning resource URL, keeping
// input order. Skills without a resource are kept with Available set to false.
func ResolveResources(missing []string, resources models.LearningResources) []models.ResourceLink {
	links := make([]models.ResourceLink, 0, len(missing))
	for _, skill := range missing {
		link := models.ResourceLink{Skill: skill}
		if url, ok := resources.URL(skill); ok {
			link.URL = url
			link.Available = true
		}
		links = append(links, link)
	}
	return links
}

func skillPresent(normalizedText string, skill models.Skill) bool {
	for _, variant := range skill.Variants {
		if ContainsWord(normalizedText, NormalizeText(variant)) {
			return true
		}
	}
	return false
}

func emptyResult(role string) models.AnalysisResult {
	return models.AnalysisResult{
		Role:    role,
		Found:   []string{},
		Missing: []string{},
	}
}
