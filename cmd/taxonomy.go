package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myjobmatch/skillgap/taxonomy"
)

// NewTaxonomyCmd creates the taxonomy command group
func NewTaxonomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Inspect and validate skill taxonomies",
	}

	cmd.AddCommand(newTaxonomyExportCmd(), newTaxonomyValidateCmd())
	return cmd
}

func newTaxonomyExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the built-in taxonomy as YAML",
		Long: `Print the built-in taxonomy document. Save it as taxonomy.yaml (or upload it
to a bucket or Firestore document) and edit it to customize roles and resources.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(taxonomy.DefaultDocument())
			return err
		},
	}
}

func newTaxonomyValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [SOURCE]",
		Short: "Load a taxonomy and report problems",
		Long: `Load a taxonomy from SOURCE (or the configured source) and check it.
SOURCE may be a local path or a gs://, s3://, firestore:// or https:// URI.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}

			cfg, err := loadConfig(source)
			if err != nil {
				return err
			}

			tx, err := loadTaxonomyQuiet(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}

			skills := 0
			for _, summary := range tx.Summaries() {
				skills += summary.SkillCount
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Taxonomy is valid: %d roles, %d skills, %d learning resources",
				len(tx.RoleNames()), skills, len(tx.Resources())))
			return nil
		},
	}
}
