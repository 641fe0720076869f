// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowtrace/internal/config"
	"github.com/katalvlaran/rowtrace/internal/logging"
)

// app is the state shared by subcommands once flags are parsed.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: logging.NewNop()}

	root := &cobra.Command{
		Use:   "rowtrace",
		Short: "rowtrace records every step of Gaussian elimination",
		Long: `rowtrace performs row reduction (REF/RREF), solves linear systems and inverts
matrices, recording each pivot search, swap, scale and elimination as a step.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				raw, _ := cmd.Flags().GetString("log-level")
				if cfg.LogLevel, err = logging.ParseLevel(raw); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.logger = logging.New(cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("env-file", "", "Optional .env file (default: ./.env when present)")

	for _, c := range opCommands(a) {
		root.AddCommand(c)
	}
	root.AddCommand(newRunCmd(a), newServeCmd(a), newVersionCmd())

	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
