package main

import (
	"github.com/lerenn/bumped/cmd/bumped/internal/cli"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize bumped configuration",
		Long: `Create a fresh configuration in the project directory, replacing any previous one.

Common manifests (package.json, bower.json, manifest.json, composer.json) are tracked when
present. Without any of them, a package.json declaring version 0.0.0 is created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := cli.NewBumped(cli.NewReporter())
			if err != nil {
				return err
			}
			return b.Init(cmd.Context())
		},
	}
}
