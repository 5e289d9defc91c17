// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magnitude/magnitude"
)

type selection struct {
	Indices []int             `json:"indices"`
	Items   []string          `json:"items"`
	Result  *magnitude.Result `json:"result"`
}

func selectCmd(a *app) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Greedily pick the k most diverse input items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.readItems(cmd)
			if err != nil {
				return err
			}
			idx, res, err := a.engine.SelectDiverseIndices(items, k)
			if err != nil {
				return err
			}
			sel := selection{Indices: idx, Items: make([]string, len(idx)), Result: res}
			for i, j := range idx {
				sel.Items[i] = items[j]
			}
			if a.format == formatJSON {
				return writeJSON(cmd, sel)
			}

			out := cmd.OutOrStdout()
			for i, j := range sel.Indices {
				fmt.Fprintf(out, "%d\t%s\n", j, sel.Items[i])
			}
			fmt.Fprintf(out, "magnitude: %.4f (%d of %d items)\n", res.Value, len(idx), len(items))

			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "count", "k", 5, "number of items to select")

	return cmd
}
