// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func distanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Print the distance between two items",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.provider.Distance(args[0], args[1])
			if a.format == formatJSON {
				return writeJSON(cmd, map[string]any{
					"distance": a.cfg.Engine.Distance,
					"a":        args[0],
					"b":        args[1],
					"value":    d,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", d)

			return nil
		},
	}
}
