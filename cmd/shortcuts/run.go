package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/shortcuts/internal/app"
	"github.com/dshills/shortcuts/internal/config"
)

func newRunCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Dispatch key presses in an interactive terminal session",
		Long: `Open the terminal and show which action each key press reaches.

Built-in bindings: ctrl+q quits, ctrl+l clears the log, f1 lists bindings.
A bindings file layers over them and may rebind any of them.

Examples:
  shortcuts run
  shortcuts run --bindings keys.toml --watch`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runApp(c.cfg)
		},
	}

	cmd.Flags().StringP("bindings", "b", "", "TOML or YAML bindings file")
	cmd.Flags().BoolP("watch", "w", false, "reload the bindings file when it changes")
	_ = c.v.BindPFlag(config.KeyBindings, cmd.Flags().Lookup("bindings"))
	_ = c.v.BindPFlag(config.KeyWatch, cmd.Flags().Lookup("watch"))
	return cmd
}

// runApp runs the interactive session until quit or a signal.
func runApp(cfg config.Config, opts ...app.Option) error {
	application, err := app.New(cfg, opts...)
	if err != nil {
		return err
	}
	defer application.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		select {
		case <-signals:
			application.Shutdown()
		case <-application.Done():
		}
	}()

	return application.Run()
}
