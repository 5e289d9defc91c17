// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magnitude/magnitude"
)

func computeCmd(a *app) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the magnitude of the input items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.readItems(cmd)
			if err != nil {
				return err
			}
			res, err := a.engine.Compute(items, details)
			if err != nil {
				return err
			}
			if a.format == formatJSON {
				return writeJSON(cmd, res)
			}
			printResult(cmd, res)

			return nil
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "include the similarity matrix (json only)")

	return cmd
}

func printResult(cmd *cobra.Command, res *magnitude.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Interpretation)
	fmt.Fprintf(out, "magnitude: %.4f\n", res.Value)
	fmt.Fprintf(out, "diversity: %.4f\n", res.DiversityScore)
	fmt.Fprintf(out, "items:     %d\n", res.Size)
	if res.Fallback {
		fmt.Fprintln(out, "note:      solve fell back to uniform weights")
	}
	if len(res.RedundancyPairs) == 0 {
		return
	}
	fmt.Fprintln(out, "redundant pairs:")
	for _, p := range res.RedundancyPairs {
		fmt.Fprintf(out, "  %d %d %.4f\n", p.I, p.J, p.Similarity)
	}
}
