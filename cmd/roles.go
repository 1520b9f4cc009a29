package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myjobmatch/skillgap/formatter"
	"github.com/myjobmatch/skillgap/models"
)

type rolesOptions struct {
	outputFormat string
	taxonomy     string
}

// NewRolesCmd creates the roles command
func NewRolesCmd() *cobra.Command {
	opts := &rolesOptions{}

	cmd := &cobra.Command{
		Use:   "roles [ROLE...]",
		Short: "List target roles and their skills",
		Long: `List the roles of the loaded taxonomy with their skills and variants.
Pass role names to show only those roles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := formatter.ValidateFormat(opts.outputFormat); err != nil {
				return err
			}

			cfg, err := loadConfig(opts.taxonomy)
			if err != nil {
				return err
			}

			tx, err := loadTaxonomyQuiet(cmd.Context(), cfg, opts.outputFormat == formatter.FormatHuman)
			if err != nil {
				return err
			}

			roles := tx.Roles()
			if len(args) > 0 {
				roles = make([]models.Role, 0, len(args))
				for _, name := range args {
					role, ok := tx.Role(name)
					if !ok {
						return fmt.Errorf("unknown role %q", name)
					}
					roles = append(roles, role)
				}
			}

			return formatter.DisplayRoles(cmd.OutOrStdout(), roles, opts.outputFormat)
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&opts.taxonomy, "taxonomy", "", "Taxonomy source (file, gs://, s3://, firestore://, https://)")

	return cmd
}
