package taxonomy

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/models"
)

// Taxonomy is the validated role → skill → variants table together with the
// learning resource table. It is immutable once built; every accessor returns
// copies, so a single value can be shared by concurrent requests.
type Taxonomy struct {
	roles     []models.Role
	index     map[string]int
	resources models.LearningResources
}

// ValidationError describes a malformed taxonomy entry
type ValidationError struct {
	Path    string
	Line    int
	Message string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("taxonomy")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// New validates roles and resources and builds a Taxonomy.
//
// Names are trimmed and must be non-blank and unique (roles globally, skills
// within their role). Variants are normalized, de-duplicated in order and
// must leave at least one entry per skill. Resource URLs must be absolute
// http(s) URLs.
func New(roles []models.Role, resources map[string]string) (*Taxonomy, error) {
	if len(roles) == 0 {
		return nil, &ValidationError{Path: "roles", Message: "at least one role is required"}
	}

	t := &Taxonomy{
		roles:     make([]models.Role, 0, len(roles)),
		index:     make(map[string]int, len(roles)),
		resources: make(models.LearningResources, len(resources)),
	}

	for _, role := range roles {
		name := strings.TrimSpace(role.Name)
		if name == "" {
			return nil, &ValidationError{Path: "roles", Message: "role name must not be blank"}
		}
		if _, dup := t.index[name]; dup {
			return nil, &ValidationError{Path: "roles." + name, Message: "duplicate role"}
		}

		built, err := buildRole(name, role.Skills)
		if err != nil {
			return nil, err
		}

		t.index[name] = len(t.roles)
		t.roles = append(t.roles, built)
	}

	for skill, raw := range resources {
		name := strings.TrimSpace(skill)
		path := "resources." + name
		if name == "" {
			return nil, &ValidationError{Path: "resources", Message: "skill name must not be blank"}
		}
		link := strings.TrimSpace(raw)
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, &ValidationError{Path: path, Message: fmt.Sprintf("%q is not an absolute http(s) URL", raw)}
		}
		t.resources[name] = link
	}

	return t, nil
}

func buildRole(name string, skills []models.Skill) (models.Role, error) {
	if len(skills) == 0 {
		return models.Role{}, &ValidationError{Path: "roles." + name, Message: "role declares no skills"}
	}

	role := models.Role{Name: name, Skills: make([]models.Skill, 0, len(skills))}
	seen := make(map[string]bool, len(skills))

	for _, skill := range skills {
		skillName := strings.TrimSpace(skill.Name)
		path := "roles." + name + "." + skillName
		if skillName == "" {
			return models.Role{}, &ValidationError{Path: "roles." + name, Message: "skill name must not be blank"}
		}
		if seen[skillName] {
			return models.Role{}, &ValidationError{Path: path, Message: "duplicate skill"}
		}
		seen[skillName] = true

		variants := normalizeVariants(skill.Variants)
		if len(variants) == 0 {
			return models.Role{}, &ValidationError{Path: path, Message: "skill has no variants"}
		}
		role.Skills = append(role.Skills, models.Skill{Name: skillName, Variants: variants})
	}
	return role, nil
}

func normalizeVariants(raw []string) []string {
	variants := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, v := range raw {
		v = analyzer.NormalizeText(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants
}

// Role returns the named role. Lookup is exact after trimming surrounding space.
func (t *Taxonomy) Role(name string) (models.Role, bool) {
	i, ok := t.index[strings.TrimSpace(name)]
	if !ok {
		return models.Role{}, false
	}
	return copyRole(t.roles[i]), true
}

// Roles returns all roles in declared order
func (t *Taxonomy) Roles() []models.Role {
	roles := make([]models.Role, 0, len(t.roles))
	for _, r := range t.roles {
		roles = append(roles, copyRole(r))
	}
	return roles
}

// RoleNames returns role names in declared order
func (t *Taxonomy) RoleNames() []string {
	names := make([]string, 0, len(t.roles))
	for _, r := range t.roles {
		names = append(names, r.Name)
	}
	return names
}

// Summaries returns each role with its skill count, in declared order
func (t *Taxonomy) Summaries() []models.RoleSummary {
	summaries := make([]models.RoleSummary, 0, len(t.roles))
	for _, r := range t.roles {
		summaries = append(summaries, models.RoleSummary{Name: r.Name, SkillCount: len(r.Skills)})
	}
	return summaries
}

// Resources returns a copy of the learning resource table
func (t *Taxonomy) Resources() models.LearningResources {
	out := make(models.LearningResources, len(t.resources))
	for k, v := range t.resources {
		out[k] = v
	}
	return out
}

func copyRole(r models.Role) models.Role {
	skills := make([]models.Skill, len(r.Skills))
	for i, s := range r.Skills {
		skills[i] = models.Skill{Name: s.Name, Variants: append([]string(nil), s.Variants...)}
	}
	return models.Role{Name: r.Name, Skills: skills}
}
