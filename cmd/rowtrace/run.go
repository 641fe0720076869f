// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowtrace"
	"github.com/katalvlaran/rowtrace/internal/render"
	"github.com/katalvlaran/rowtrace/step"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		out  outputFlags
		file string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Trace every problem of a YAML file",
		Long: `Reads a multi-document YAML file where each document names an operation
(ref, rref, solve, inverse), a matrix and optional constants, and prints the trace
of each. Problems that fail validation are reported and skipped.`,
		Example: "  rowtrace run -f problems.yaml --last",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := readProblems(file)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			styled := render.New(w, out.color)
			var errs []error
			for _, p := range ps {
				op, m, err := p.Build(a.cfg.MaxDim)
				if err != nil {
					a.logger.Warn("skipping problem", "name", p.Name, "error", err)
					errs = append(errs, fmt.Errorf("%s: %w", p.Name, err))
					continue
				}
				tr, err := rowtrace.Run(op, m, p.Constants,
					step.WithContext(cmd.Context()), step.WithLogger(a.logger))
				if err != nil {
					return fmt.Errorf("%s: %w", p.Name, err)
				}
				if out.format == "text" {
					fmt.Fprintf(w, "%s\n\n", styled.Heading(fmt.Sprintf("== %s (%s) ==", p.Name, op)))
				}
				if err = out.write(w, tr); err != nil {
					return err
				}
			}

			return errors.Join(errs...)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML problem file (multi-document)")
	_ = cmd.MarkFlagRequired("file")
	out.register(cmd)

	return cmd
}
