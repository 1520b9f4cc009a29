package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/spf13/cobra"

	"github.com/myjobmatch/skillgap/models"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TAXONOMY_SOURCE", "")
	t.Setenv("TAXONOMY_FILE", filepath.Join(t.TempDir(), "taxonomy.yaml"))
	t.Setenv("PORT", "8080")
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyzeCmdTextJSON(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, NewAnalyzeCmd(), "",
		"--role", "Web Developer", "--text", "HTML5, CSS and React", "-o", "json")
	require.NoError(t, err)

	var report models.AnalyzeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Web Developer", report.Role)
	assert.Equal(t, []string{"HTML", "CSS", "React"}, report.Found)
	assert.Contains(t, report.Missing, "JavaScript")
	assert.NotEmpty(t, report.AnalysisID)
	assert.Equal(t, "3 of 9 skills found", report.Message)
}

func TestAnalyzeCmdStdin(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, NewAnalyzeCmd(), "Kubernetes and Docker on Linux",
		"-r", "Cloud Engineer", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "role: Cloud Engineer")
	assert.Contains(t, out, "- Docker")
	assert.Contains(t, out, "- Kubernetes")
}

func TestAnalyzeCmdFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Skilled in Python and SQL"), 0o644))

	out, stderr, err := execute(t, NewAnalyzeCmd(), "", "-r", "Data Analyst", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Role: Data Analyst")
	assert.Contains(t, out, "Python")
	assert.Contains(t, stderr, "Extracted text from")
}

func TestAnalyzeCmdErrors(t *testing.T) {
	isolateEnv(t)

	t.Run("unknown role lists available roles", func(t *testing.T) {
		_, _, err := execute(t, NewAnalyzeCmd(), "", "-r", "Astronaut", "-t", "python")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown role "Astronaut"`)
		assert.Contains(t, err.Error(), "Web Developer")
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := execute(t, NewAnalyzeCmd(), "   \n", "-r", "Data Analyst")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to analyze")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, NewAnalyzeCmd(), "", "-r", "Data Analyst", "-f", filepath.Join(t.TempDir(), "nope.pdf"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})

	t.Run("bad output format", func(t *testing.T) {
		_, _, err := execute(t, NewAnalyzeCmd(), "", "-r", "Data Analyst", "-t", "sql", "-o", "xml")
		require.Error(t, err)
	})

	t.Run("role is required", func(t *testing.T) {
		_, _, err := execute(t, NewAnalyzeCmd(), "", "-t", "sql")
		require.Error(t, err)
	})
}

func TestRolesCmd(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, NewRolesCmd(), "", "-o", "json")
	require.NoError(t, err)

	var roles []models.Role
	require.NoError(t, json.Unmarshal([]byte(out), &roles))
	require.Len(t, roles, 6)
	assert.Equal(t, "Data Analyst", roles[0].Name)

	out, _, err = execute(t, NewRolesCmd(), "", "-o", "json", "AI/ML Engineer")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &roles))
	require.Len(t, roles, 1)
	assert.Equal(t, "AI/ML Engineer", roles[0].Name)

	_, _, err = execute(t, NewRolesCmd(), "", "Astronaut")
	assert.Error(t, err)
}

func TestTaxonomyExportAndValidate(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, NewTaxonomyCmd(), "", "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Built-in skill taxonomy"))

	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `roles:
  Backend Developer:
    Go: [go, golang]
    PostgreSQL: [postgresql, postgres]
resources:
  Go: https://go.dev/tour/
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, _, err = execute(t, NewTaxonomyCmd(), "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Taxonomy is valid: 1 roles, 2 skills, 1 learning resources")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("roles: {}\n"), 0o644))

	_, _, err = execute(t, NewTaxonomyCmd(), "", "validate", bad)
	assert.Error(t, err)
}

func TestCORSConfig(t *testing.T) {
	cfg := corsConfig([]string{"*"})
	assert.True(t, cfg.AllowAllOrigins)
	assert.False(t, cfg.AllowCredentials)

	cfg = corsConfig([]string{"https://app.example.com"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.True(t, cfg.AllowCredentials)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowOrigins)
}
