// Package main provides the resume_studio CLI: keyword scorecards, automatic resume
// updates, LaTeX export and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	verbose     bool
	databaseURL string
	redisURL    string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "resume_studio",
		Short: "Tailor a resume's keywords to a job posting",
		Long: `resume_studio compares the keywords of a job posting with the keywords found in a resume,
scores how well they line up, and rewrites the resume so that skills it already mentions use
the posting's wording.

Configuration can be loaded from a JSON file using --config. Command-line flags override
config file values; DATABASE_URL and REDIS_URL fill in whatever is still unset.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Print boxed summaries")
	root.PersistentFlags().StringVar(&g.databaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	root.PersistentFlags().StringVar(&g.redisURL, "redis-url", "", "Redis URL for the report cache (defaults to REDIS_URL env var)")

	root.AddCommand(
		newClassifyCmd(g),
		newPlanCmd(g),
		newRewriteCmd(g),
		newAutoUpdateCmd(g),
		newImportCmd(g),
		newExportCmd(g),
		newMigrateCmd(g),
		newServeCmd(g),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
