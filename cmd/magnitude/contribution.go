// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func contributionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contribution ITEM",
		Short: "Magnitude gained by adding ITEM to the input items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := a.readItems(cmd)
			if err != nil {
				return err
			}
			gain, err := a.engine.DiversityContribution(args[0], existing)
			if err != nil {
				return err
			}
			if a.format == formatJSON {
				return writeJSON(cmd, map[string]any{
					"item":         args[0],
					"existing":     len(existing),
					"contribution": gain,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", gain)

			return nil
		},
	}
}
