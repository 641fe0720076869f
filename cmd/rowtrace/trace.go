// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowtrace"
	"github.com/katalvlaran/rowtrace/internal/problem"
	"github.com/katalvlaran/rowtrace/internal/render"
	"github.com/katalvlaran/rowtrace/step"
)

// outputFlags select how a trace is printed.
type outputFlags struct {
	format string
	step   int
	last   bool
	color  bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text or json")
	cmd.Flags().IntVar(&f.step, "step", 0, "Print only step N (1-based); 0 prints all")
	cmd.Flags().BoolVar(&f.last, "last", false, "Print only the last step")
	cmd.Flags().BoolVar(&f.color, "color", false, "Style headings and pivots for the terminal")
}

// write prints tr, or the single step selected by the flags.
func (f *outputFlags) write(w io.Writer, tr *step.Trace) error {
	if f.format != "text" && f.format != "json" {
		return fmt.Errorf("unknown format %q", f.format)
	}

	if f.step == 0 && !f.last {
		if f.format == "json" {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(tr)
		}
		return render.New(w, f.color).Trace(tr)
	}

	c := step.NewCursor(tr)
	if f.last {
		c.End()
	} else if err := c.Seek(f.step - 1); err != nil {
		return fmt.Errorf("--step %d: trace has %d steps: %w", f.step, tr.Len(), err)
	}
	s, err := c.Current()
	if err != nil {
		return err
	}
	if f.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	return render.New(w, f.color).Step(c.Index(), s)
}

var opUsage = map[rowtrace.Operation]struct{ use, short string }{
	rowtrace.REF:     {"ref", "Trace Gaussian elimination to row echelon form"},
	rowtrace.RREF:    {"rref", "Trace Gauss-Jordan elimination to reduced row echelon form"},
	rowtrace.Full:    {"solve", "Trace the solution of A·x = b"},
	rowtrace.Inverse: {"inverse", "Trace the inversion of a square matrix"},
}

// opCommands builds one subcommand per operation.
func opCommands(a *app) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(opUsage))
	for _, op := range rowtrace.Operations() {
		cmds = append(cmds, newOpCmd(a, op))
	}

	return cmds
}

func newOpCmd(a *app, op rowtrace.Operation) *cobra.Command {
	var (
		out       outputFlags
		inline    string
		constants string
		file      string
	)
	u := opUsage[op]
	cmd := &cobra.Command{
		Use:   u.use,
		Short: u.short,
		Example: fmt.Sprintf("  rowtrace %s --matrix '2,4;1,3' --constants '6,4'\n  rowtrace %s -f problem.yaml --last",
			u.use, u.use),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadOne(file, inline, constants)
			if err != nil {
				return err
			}
			p.Operation = op.String()
			_, m, err := p.Build(a.cfg.MaxDim)
			if err != nil {
				return err
			}
			tr, err := rowtrace.Run(op, m, p.Constants,
				step.WithContext(cmd.Context()), step.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Debug("trace produced", "operation", op.String(), "steps", tr.Len())

			return out.write(cmd.OutOrStdout(), tr)
		},
	}
	cmd.Flags().StringVarP(&inline, "matrix", "m", "", `Matrix inline, rows separated by ';' ("1,2;3,4")`)
	cmd.Flags().StringVarP(&constants, "constants", "b", "", `Constant vector inline ("5,6")`)
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML problem file; the first document is used")
	cmd.MarkFlagsMutuallyExclusive("matrix", "file")
	out.register(cmd)

	return cmd
}

// loadOne builds a problem from a file or from inline flags. Inline
// constants override the file's.
func loadOne(file, inline, constants string) (problem.Problem, error) {
	var p problem.Problem
	switch {
	case file != "":
		ps, err := readProblems(file)
		if err != nil {
			return p, err
		}
		if len(ps) == 0 {
			return p, fmt.Errorf("%s: no problems", file)
		}
		p = ps[0]
	case inline != "":
		rows, err := problem.ParseMatrix(inline)
		if err != nil {
			return p, fmt.Errorf("--matrix: %w", err)
		}
		p.Matrix = rows
	default:
		return p, fmt.Errorf("one of --matrix or --file is required")
	}

	if constants != "" {
		b, err := problem.ParseVector(constants)
		if err != nil {
			return p, fmt.Errorf("--constants: %w", err)
		}
		p.Constants = b
	}

	return p, nil
}

func readProblems(path string) ([]problem.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return problem.Decode(f)
}
