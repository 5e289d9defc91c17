// SPDX-License-Identifier: MIT

// Command magnitude measures the diversity of a set of text items and picks
// diverse subsets. Items are read one per line from --input or stdin.
//
//	magnitude compute --input prompts.txt
//	magnitude select -k 5 --format json < prompts.txt
//	magnitude contribution "new prompt" --input prompts.txt
//	magnitude distance --distance ngram "kitten" "sitting"
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
