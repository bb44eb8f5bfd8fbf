package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/patterns/command"
	"github.com/katalvlaran/patterns/config"
	"github.com/katalvlaran/patterns/logging"
)

var (
	rootShort = "Run the design pattern examples"

	runShort = "Run one example by name"

	runExample = `  # Print the state machine example
  patterns run state

  # Feed a line to the observers
  echo "the answer is 42" | patterns run observer

  # Iterate over your own access log
  patterns run iterator --file /var/log/nginx/access.log`
)

// app carries what every subcommand needs once the root has initialized.
type app struct {
	cfg  config.Config
	lggr *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{lggr: logging.Nop()}

	root := &cobra.Command{
		Use:          "patterns",
		Short:        rootShort,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.lggr.Sync()
		},
	}
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides PATTERNS_LOG_LEVEL)")

	root.AddCommand(a.newListCmd(), a.newRunCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	lggr, err := logging.New(level)
	if err != nil {
		return err
	}
	a.cfg, a.lggr = cfg, lggr

	return nil
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the example names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := a.invoker(cmd, "")
			if err != nil {
				return err
			}
			for _, name := range inv.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func (a *app) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run <name>",
		Short:   runShort,
		Example: runExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			inv, err := a.invoker(cmd, file)
			if err != nil {
				return err
			}

			err = inv.Execute(cmd.Context(), args[0])
			if errors.Is(err, command.ErrUnknownCommand) {
				a.lggr.Error("unknown example", zap.String("name", args[0]), zap.Strings("known", inv.Names()))
			}

			return err
		},
	}
	cmd.Flags().StringP("file", "f", "", "Log file for the iterator example (overrides PATTERNS_ITERATOR_FILE)")

	return cmd
}

func (a *app) invoker(cmd *cobra.Command, file string) (*command.Invoker, error) {
	if file == "" {
		file = a.cfg.IteratorFile
	}
	d := &demos{
		out:  cmd.OutOrStdout(),
		in:   cmd.InOrStdin(),
		lggr: a.lggr,
		cfg:  a.cfg,
		file: file,
	}
	inv := command.NewInvoker()
	if err := d.register(inv); err != nil {
		return nil, err
	}

	return inv, nil
}
