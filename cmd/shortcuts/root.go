package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/shortcuts/internal/config"
)

// cli carries state shared by the subcommands of one invocation.
type cli struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "shortcuts",
		Short: "Normalize, check and try keyboard shortcuts",
		Long: `shortcuts turns shortcut specifications such as "Shift+Ctrl+A" into a
canonical form, validates bindings files, and runs an interactive terminal
session that dispatches key presses to bound actions.

Configuration is read from ~/.config/shortcuts/config.yaml (or --config),
then SHORTCUTS_* environment variables, then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.v, c.cfgFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "", "config file (default: ~/.config/shortcuts/config.yaml)")
	flags.Bool("debug", false, "log every registration and dispatch step")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file instead of stderr")

	_ = c.v.BindPFlag(config.KeyDebug, flags.Lookup("debug"))
	_ = c.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = c.v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))

	root.AddCommand(
		newNormalizeCmd(c),
		newCheckCmd(c),
		newRunCmd(c),
	)
	return root
}
