package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/branding"
	"github.com/indigos33k3r/WebDevelopmentEnvironment/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds front-end web projects: an app folder with css, fonts,
images, js and scss subfolders, a distribution folder, package.json, an
optional gulpfile.js, and the packages they need.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// Interrupting the process cancels any running package install.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
