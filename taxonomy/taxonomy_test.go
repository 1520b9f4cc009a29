package taxonomy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/models"
)

const sampleDocument = `
roles:
  Web Developer:
    HTML: [html]
    CSS: [CSS, " css ", css]
    JavaScript: [javascript, js]
  QA Engineer:
    Selenium: selenium
resources:
  JavaScript: https://www.freecodecamp.org/learn
`

func TestParsePreservesDeclaredOrder(t *testing.T) {
	tx, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, []string{"Web Developer", "QA Engineer"}, tx.RoleNames())

	role, ok := tx.Role("Web Developer")
	require.True(t, ok)
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript"}, role.SkillNames())
	assert.Equal(t, []string{"css"}, role.Skills[1].Variants)

	qa, ok := tx.Role("QA Engineer")
	require.True(t, ok)
	assert.Equal(t, []string{"selenium"}, qa.Skills[0].Variants)

	url, ok := tx.Resources().URL("JavaScript")
	assert.True(t, ok)
	assert.Equal(t, "https://www.freecodecamp.org/learn", url)

	assert.Equal(t, []models.RoleSummary{
		{Name: "Web Developer", SkillCount: 3},
		{Name: "QA Engineer", SkillCount: 1},
	}, tx.Summaries())
}

func TestParseJSON(t *testing.T) {
	doc := `{"roles": {"Data Analyst": {"SQL": ["sql"], "Python": ["python"]}}, "resources": {}}`
	tx, err := Parse([]byte(doc))
	require.NoError(t, err)

	role, ok := tx.Role("Data Analyst")
	require.True(t, ok)
	assert.Equal(t, []string{"SQL", "Python"}, role.SkillNames())
}

func TestParseAliases(t *testing.T) {
	doc := `
roles:
  A:
    Communication: &comm [communication, communications]
  B:
    Communication: *comm
`
	tx, err := Parse([]byte(doc))
	require.NoError(t, err)

	b, ok := tx.Role("B")
	require.True(t, ok)
	assert.Equal(t, []string{"communication", "communications"}, b.Skills[0].Variants)
}

func TestParseValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{"empty document", "", ""},
		{"missing roles", "resources: {}", "roles"},
		{"empty roles", "roles: {}", "roles"},
		{"null roles", "roles:", "roles"},
		{"unknown key", "roles:\n  A:\n    X: x\nextra: 1", "extra"},
		{"role without skills", "roles:\n  A:", "roles.A"},
		{"role with empty skills", "roles:\n  A: {}", "roles.A"},
		{"blank role name", "roles:\n  \" \":\n    X: x", "roles"},
		{"skill without variants", "roles:\n  A:\n    X: []", "roles.A.X"},
		{"skill with blank variants", "roles:\n  A:\n    X: [\" \", \"\"]", "roles.A.X"},
		{"null skill", "roles:\n  A:\n    X:", "roles.A.X"},
		{"nested variants", "roles:\n  A:\n    X: [[x]]", "roles.A.X"},
		{"bad resource url", "roles:\n  A:\n    X: x\nresources:\n  X: not-a-url", "resources.X"},
		{"ftp resource url", "roles:\n  A:\n    X: x\nresources:\n  X: ftp://example.com/x", "resources.X"},
		{"roles not a mapping", "roles: [a, b]", "roles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.path, verr.Path)
		})
	}
}

func TestParseDuplicateNames(t *testing.T) {
	_, err := New([]models.Role{
		{Name: "A", Skills: []models.Skill{{Name: "X", Variants: []string{"x"}}}},
		{Name: " A ", Skills: []models.Skill{{Name: "Y", Variants: []string{"y"}}}},
	}, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "roles.A", verr.Path)

	_, err = New([]models.Role{
		{Name: "A", Skills: []models.Skill{
			{Name: "X", Variants: []string{"x"}},
			{Name: "X", Variants: []string{"y"}},
		}},
	}, nil)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "roles.A.X", verr.Path)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("roles: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse taxonomy document")
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Path: "roles.A.X", Line: 4, Message: "skill has no variants"}
	assert.Equal(t, "taxonomy roles.A.X (line 4): skill has no variants", err.Error())
}

func TestAccessorsReturnCopies(t *testing.T) {
	tx, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	role, _ := tx.Role("Web Developer")
	role.Skills[0].Name = "mutated"
	role.Skills[0].Variants[0] = "mutated"

	again, _ := tx.Role("Web Developer")
	assert.Equal(t, "HTML", again.Skills[0].Name)
	assert.Equal(t, "html", again.Skills[0].Variants[0])

	res := tx.Resources()
	res["JavaScript"] = "mutated"
	url, _ := tx.Resources().URL("JavaScript")
	assert.Equal(t, "https://www.freecodecamp.org/learn", url)
}

func TestDefaultTaxonomy(t *testing.T) {
	tx, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Data Analyst",
		"Web Developer",
		"AI/ML Engineer",
		"Cloud Engineer",
		"UI/UX Designer",
		"Cybersecurity Analyst",
	}, tx.RoleNames())

	web, ok := tx.Role("Web Developer")
	require.True(t, ok)
	assert.Equal(t, []string{
		"HTML", "CSS", "JavaScript", "React", "Node.js", "MongoDB", "Git", "Responsive Design", "Communication",
	}, web.SkillNames())

	cloud, ok := tx.Role("Cloud Engineer")
	require.True(t, ok)
	assert.Len(t, cloud.Skills, 10)

	url, ok := tx.Resources().URL("Kubernetes")
	assert.True(t, ok)
	assert.Equal(t, "https://kodekloud.com/courses/kubernetes-for-beginners/", url)
}

func TestDefaultTaxonomyWithAnalyzer(t *testing.T) {
	tx, err := Default()
	require.NoError(t, err)

	a := analyzer.New(tx)

	result, err := a.AnalyzeRole("Built responsive UI with HTML5 and modern JavaScript.", "Web Developer")
	require.NoError(t, err)
	assert.Equal(t, []string{"HTML", "JavaScript"}, result.Found)
	assert.NotContains(t, result.Missing, "HTML")
	assert.Contains(t, result.Missing, "CSS")

	result, err = a.AnalyzeRole("Docker and Terraform on AWS with Linux", "Cloud Engineer")
	require.NoError(t, err)
	assert.Equal(t, []string{"AWS", "Linux", "Terraform", "Docker"}, result.Found)

	links := a.Recommend(result.Missing)
	require.Len(t, links, len(result.Missing))
	for _, link := range links {
		if link.Skill == "Kubernetes" {
			assert.True(t, link.Available)
			assert.Equal(t, "https://kodekloud.com/courses/kubernetes-for-beginners/", link.URL)
		}
	}
}

type stubFetcher struct {
	uri  string
	data []byte
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	s.uri = uri
	return s.data, s.err
}

func TestLoadSources(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "taxonomy.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sampleDocument), 0o644))

	t.Run("explicit file", func(t *testing.T) {
		tx, err := Load(context.Background(), file, "", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Web Developer", "QA Engineer"}, tx.RoleNames())
	})

	t.Run("file scheme", func(t *testing.T) {
		tx, err := Load(context.Background(), "file://"+file, "", nil)
		require.NoError(t, err)
		assert.Len(t, tx.RoleNames(), 2)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(dir, "nope.yaml"), "", nil)
		assert.Error(t, err)
	})

	t.Run("fallback file", func(t *testing.T) {
		tx, err := Load(context.Background(), "", file, nil)
		require.NoError(t, err)
		assert.Len(t, tx.RoleNames(), 2)
	})

	t.Run("missing fallback uses default", func(t *testing.T) {
		tx, err := Load(context.Background(), "", filepath.Join(dir, "absent.yaml"), nil)
		require.NoError(t, err)
		assert.Len(t, tx.RoleNames(), 6)
	})

	t.Run("remote", func(t *testing.T) {
		f := &stubFetcher{data: []byte(sampleDocument)}
		tx, err := Load(context.Background(), "gs://bucket/taxonomy.yaml", "", f)
		require.NoError(t, err)
		assert.Equal(t, "gs://bucket/taxonomy.yaml", f.uri)
		assert.Len(t, tx.RoleNames(), 2)
	})

	t.Run("remote failure", func(t *testing.T) {
		f := &stubFetcher{err: errors.New("denied")}
		_, err := Load(context.Background(), "s3://bucket/taxonomy.yaml", "", f)
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("remote invalid document", func(t *testing.T) {
		f := &stubFetcher{data: []byte("roles: {}")}
		_, err := Load(context.Background(), "https://example.com/t.yaml", "", f)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
