package main

import (
	"github.com/lerenn/bumped/cmd/bumped/internal/cli"
	"github.com/spf13/cobra"
)

var prefix string

func createReleaseCmd() *cobra.Command {
	releaseCmd := &cobra.Command{
		Use:   "release <version|keyword>",
		Short: "Release a new version",
		Long: `Release a new version and write it into every tracked file.

The argument is either a semver keyword (major, minor, patch, premajor, preminor,
prepatch, prerelease), a nature keyword (breaking, feature, fix) or an explicit
version greater than the current one. Prerelease plugins run before the files are
written, postrelease plugins after.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := cli.LoadBumped(cmd.Context(), cli.NewReporter())
			if err != nil {
				return err
			}

			var token string
			if len(args) > 0 {
				token = args[0]
			}
			_, err = b.Release(cmd.Context(), token, prefix)
			return err
		},
	}

	releaseCmd.Flags().StringVar(&prefix, "prefix", "", "Pre-release identifier used by pre* keywords (e.g. beta)")

	return releaseCmd
}
