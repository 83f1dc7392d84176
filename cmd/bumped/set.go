package main

import (
	"strings"

	"github.com/lerenn/bumped/cmd/bumped/internal/cli"
	"github.com/spf13/cobra"
)

func createSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <property> <value>",
		Short: "Set a property in every tracked file",
		Long: `Set a property in every tracked file, creating it when missing.

Dotted properties address nested fields (repository.url) and a value written as
[a, b] is stored as an array. The version can only be changed with release.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := cli.LoadBumped(cmd.Context(), cli.NewReporter())
			if err != nil {
				return err
			}

			var property, value string
			if len(args) > 0 {
				property = args[0]
				value = strings.Join(args[1:], " ")
			}
			return b.SetProperty(property, value)
		},
	}
}
