package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/input/key"
)

var errInvalidSpecs = errors.New("one or more shortcuts are invalid")

func newNormalizeCmd(_ *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize SPEC...",
		Short: "Print the canonical form of shortcut specifications",
		Long: `Print the canonical form of each shortcut specification, one per line.

Modifiers are ordered ctrl, alt, shift, meta; aliases such as cmd, option
and esc are resolved; the literal plus key is written "plus".

Examples:
  shortcuts normalize Shift+Ctrl+A      # ctrl+shift+a
  shortcuts normalize cmd+plus esc      # meta+plus, escape`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false
			for _, spec := range args {
				sc, err := key.Parse(spec)
				if err != nil {
					fmt.Fprintf(out, "%s\terror: %v\n", spec, err)
					failed = true
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", spec, sc)
			}
			if failed {
				return errInvalidSpecs
			}
			return nil
		},
	}
}
