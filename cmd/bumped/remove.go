package main

import (
	"github.com/lerenn/bumped/cmd/bumped/internal/cli"
	"github.com/spf13/cobra"
)

func createRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <file>",
		Aliases: []string{"rm"},
		Short:   "Stop tracking a manifest file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := cli.LoadBumped(cmd.Context(), cli.NewReporter())
			if err != nil {
				return err
			}
			return b.RemoveFile(args[0])
		},
	}
}
