package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/myjobmatch/skillgap/cmd"
	_ "github.com/myjobmatch/skillgap/docs"
)

// @title SkillGap API
// @version 1.0
// @description Résumé skill-gap analysis: detects which skills of a target role a résumé mentions, lists the missing ones and recommends learning resources.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@myjobmatch.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

var (
	version = "v1.0.0" // Overwritten at build time
)

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil && os.Getenv("DEBUG") == "true" {
		log.Println("No .env file found, using environment variables")
	}

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "skillgap",
		Short: "Résumé skill-gap analyzer",
		Long: `skillgap compares a résumé against the skills of a target role, reports
which skills were found and which are missing, and recommends learning
resources for the gaps.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewServeCmd(version),
		cmd.NewAnalyzeCmd(),
		cmd.NewRolesCmd(),
		cmd.NewTaxonomyCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "skillgap version %s\n", version)
		},
	}
}
