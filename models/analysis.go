package models

// AnalysisResult holds the found and missing skill names of one analysis,
// both in the role's declared order
type AnalysisResult struct {
	Role    string   `json:"role"`
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
}

// Covered reports whether no role skill is missing
func (r AnalysisResult) Covered() bool {
	return len(r.Missing) == 0
}

// ResourceLink pairs a missing skill with its learning resource.
// Available is false when no resource is configured for the skill.
// @Description Learning recommendation for a missing skill
type ResourceLink struct {
	Skill     string `json:"skill" yaml:"skill" example:"Kubernetes"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty" example:"https://kodekloud.com/courses/kubernetes-for-beginners/"`
	Available bool   `json:"available" yaml:"available" example:"true"`
}
