package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/myjobmatch/skillgap/analyzer"
	"github.com/myjobmatch/skillgap/formatter"
	"github.com/myjobmatch/skillgap/utils"
)

type analyzeOptions struct {
	role         string
	file         string
	text         string
	outputFormat string
	taxonomy     string
}

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a résumé against a target role",
		Long: `Detect which of a role's skills a résumé mentions, list the missing ones and
recommend learning resources for them.

The résumé is read from --file (PDF, DOCX, TXT or Markdown), from --text, or
from standard input when neither is given.

Examples:
  # Analyze a PDF résumé
  skillgap analyze --role "Cloud Engineer" --file resume.pdf

  # Analyze pasted text and print JSON
  skillgap analyze -r "Web Developer" -t "HTML5, CSS and React" -o json

  # Pipe text in
  pdftotext resume.pdf - | skillgap analyze -r "Data Analyst"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.role, "role", "r", "", "Target role (see 'skillgap roles')")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Résumé file (PDF, DOCX, TXT, MD)")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Résumé text")
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&opts.taxonomy, "taxonomy", "", "Taxonomy source (file, gs://, s3://, firestore://, https://)")
	cmd.MarkFlagRequired("role")
	cmd.MarkFlagsMutuallyExclusive("file", "text")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	if err := formatter.ValidateFormat(opts.outputFormat); err != nil {
		return err
	}

	cfg, err := loadConfig(opts.taxonomy)
	if err != nil {
		return err
	}

	human := opts.outputFormat == formatter.FormatHuman
	tx, err := loadTaxonomyQuiet(cmd.Context(), cfg, human)
	if err != nil {
		return err
	}

	text, err := readResume(cmd.InOrStdin(), opts)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("nothing to analyze: résumé text is empty")
	}

	report, err := analyzer.New(tx).Report(text, opts.role)
	if errors.Is(err, analyzer.ErrUnknownRole) {
		return fmt.Errorf("unknown role %q (available: %s)", opts.role, strings.Join(tx.RoleNames(), ", "))
	}
	if err != nil {
		return err
	}

	if human && opts.file != "" {
		printSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Extracted text from %s", opts.file))
	}

	return formatter.DisplayReport(cmd.OutOrStdout(), report, opts.outputFormat)
}

func readResume(stdin io.Reader, opts *analyzeOptions) (string, error) {
	switch {
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", opts.file, err)
		}
		text, err := utils.NewDocumentExtractor().Extract(utils.MIMEFromFilename(opts.file), opts.file, data)
		if err != nil {
			return "", fmt.Errorf("could not read résumé file %s: %w", opts.file, err)
		}
		return text, nil
	case opts.text != "":
		return opts.text, nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}
}
