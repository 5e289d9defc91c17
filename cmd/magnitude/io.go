// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const maxLine = 1 << 20

// readItems returns the non-blank lines of --input, or of stdin when no
// file (or "-") is given.
func (a *app) readItems(cmd *cobra.Command) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if a.input != "" && a.input != "-" {
		f, err := os.Open(a.input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	items := []string{}
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	a.log.Debug().Int("items", len(items)).Msg("read input")

	return items, nil
}

// writeJSON pretty-prints v to the command's output.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
