package models

// Skill is a canonical skill name and the variant strings searched for in résumé text
// @Description Canonical skill with its search variants
type Skill struct {
	Name     string   `json:"name" yaml:"name" example:"JavaScript"`
	Variants []string `json:"variants" yaml:"variants" example:"javascript,js"`
}

// Role is a career role with its skills in declared order
// @Description Target role and the skills it requires
type Role struct {
	Name   string  `json:"name" yaml:"name" example:"Web Developer"`
	Skills []Skill `json:"skills" yaml:"skills"`
}

// SkillNames returns the role's skill names in declared order
func (r Role) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}

// LearningResources maps a skill name to a learning resource URL.
// Skills without an entry simply have no recommendation link.
type LearningResources map[string]string

// URL returns the resource URL for a skill, if one is configured
func (l LearningResources) URL(skill string) (string, bool) {
	url, ok := l[skill]
	return url, ok && url != ""
}
