// Package main provides the command-line interface for bumped.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/lerenn/bumped/cmd/bumped/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bumped",
		Short: "Bumped - keep a version in sync across manifests and release it",
		Long: `Bumped tracks the version declared in several manifest files (package.json, ` +
			`bower.json, Chart.yaml...), keeps them synchronized and runs plugins around each release.

Without subcommand, prints the current version.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := cli.LoadBumped(cmd.Context(), cli.NewReporter())
			if err != nil {
				return err
			}
			_, err = b.Version()
			return err
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&cli.WorkDir, "cwd", "", "Run as if bumped was started in this directory")

	// Add subcommands
	rootCmd.AddCommand(
		createInitCmd(),
		createAddCmd(),
		createRemoveCmd(),
		createSetCmd(),
		createReleaseCmd(),
	)

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cli.Report(err)
		stop()
		os.Exit(1)
	}
}
