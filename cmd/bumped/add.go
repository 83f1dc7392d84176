package main

import (
	"github.com/lerenn/bumped/cmd/bumped/internal/cli"
	"github.com/spf13/cobra"
)

func createAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>",
		Short: "Track a manifest file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := cli.LoadBumped(cmd.Context(), cli.NewReporter())
			if err != nil {
				return err
			}
			return b.AddFile(args[0])
		},
	}
}
