package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prizecycle/localsearch"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List descent methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range localsearch.Methods() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), m); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
