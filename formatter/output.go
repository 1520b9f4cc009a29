package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/models"
)

// Supported output formats
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ValidateFormat rejects unknown output formats
func ValidateFormat(format string) error {
	switch format {
	case FormatHuman, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want human, json or yaml)", format)
}

// DisplayReport writes an analysis report in the requested format
func DisplayReport(w io.Writer, report models.AnalyzeResponse, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, report)
	case FormatYAML:
		return displayYAML(w, report)
	default:
		displayReportHuman(w, report)
	}
	return nil
}

// DisplayRoles writes role definitions in the requested format
func DisplayRoles(w io.Writer, roles []models.Role, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, roles)
	case FormatYAML:
		return displayYAML(w, roles)
	default:
		displayRolesHuman(w, roles)
	}
	return nil
}

func displayJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayReportHuman(w io.Writer, report models.AnalyzeResponse) {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	cyan.Fprintf(w, "🎯 Role: %s\n\n", report.Role)

	green.Fprintln(w, "✅ SKILLS FOUND IN RESUME:")
	if len(report.Found) > 0 {
		fmt.Fprintf(w, "   %s\n\n", strings.Join(report.Found, ", "))
	} else {
		fmt.Fprintf(w, "   %s\n\n", analyzer.MessageNoneFound)
	}

	yellow.Fprintln(w, "🚧 MISSING SKILLS FOR ROLE:")
	if len(report.Missing) > 0 {
		for _, skill := range report.Missing {
			fmt.Fprintf(w, "   %s %s\n", color.RedString("✗"), skill)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "   %s\n\n", color.GreenString(analyzer.MessageAllCovered))
	}

	cyan.Fprintln(w, "📚 LEARNING RECOMMENDATIONS:")
	shown := 0
	for _, link := range report.Recommendations {
		if !link.Available {
			continue
		}
		shown++
		fmt.Fprintf(w, "   %d. %s: %s\n", shown, link.Skill, color.CyanString(link.URL))
	}
	if shown == 0 {
		fmt.Fprintf(w, "   %s\n", analyzer.MessageSkilledEnough)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintf(w, "%s  %s\n", report.Message, color.HiBlackString("(analysis %s)", report.AnalysisID))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func displayRolesHuman(w io.Writer, roles []models.Role) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	for _, role := range roles {
		cyan.Fprintf(w, "%s (%d skills)\n", role.Name, len(role.Skills))
		for _, skill := range role.Skills {
			fmt.Fprintf(w, "   • %s %s\n", skill.Name, color.HiBlackString("[%s]", strings.Join(skill.Variants, ", ")))
		}
		fmt.Fprintln(w)
	}
}
