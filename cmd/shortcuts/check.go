package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/input/keymap"
)

func newCheckCmd(_ *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a bindings file",
		Long: `Validate a TOML or YAML bindings file.

Every binding is listed with its canonical shortcut. Invalid shortcuts are
reported and make the command fail; shortcuts bound by more than one
non-default binding are reported as conflicts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := keymap.LoadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "keymap %q: %d binding(s)\n", km.Name, len(km.Bindings))

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, b := range km.Bindings {
				canonical, ok := key.Normalize(b.Keys)
				if !ok {
					canonical = "INVALID"
				}
				var flags []string
				if b.Default {
					flags = append(flags, "default")
				}
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", canonical, b.Action, strings.Join(flags, ","))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			for _, c := range km.Conflicts() {
				fmt.Fprintf(out, "conflict: %s bound to %s\n", c.Shortcut, strings.Join(c.Actions, ", "))
			}

			if err := km.Validate(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}
