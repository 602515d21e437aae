package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvxtal/internal/logging"
	"github.com/katalvlaran/lvxtal/phase"
	"github.com/katalvlaran/lvxtal/phasefile"
)

func newWatchCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "watch <phase-file>",
		Short: "Recompute the reflectors whenever a phase file changes",
		Long: "watch prints the reflectors of <phase-file> and prints them again every time the\n" +
			"file is saved. Errors in the file are reported and watching continues. Stop with Ctrl-C.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			return a.watch(cmd, args[0], format)
		},
	}
	addComputeFlags(cmd)
	cmd.Flags().StringVar(&format, "format", formatTable, "output format (table, json)")

	return cmd
}

func (a *app) watch(cmd *cobra.Command, path, format string) error {
	out := cmd.OutOrStdout()
	report := func(p *phase.Phase, err error) {
		if err != nil {
			a.log.Warn("recompute failed", logging.String("file", path), logging.Err(err))
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			return
		}
		if err = writeReflectors(out, p, format); err != nil {
			a.log.Error("write failed", logging.Err(err))
		}
	}

	// The first computation must succeed; later failures are reported only.
	p, err := a.compute(path)
	if err != nil {
		return err
	}
	report(p, nil)
	a.log.Info("watching", logging.String("file", path))

	err = phasefile.Watch(cmd.Context(), path, func(d *phasefile.Document, err error) {
		if err != nil {
			report(nil, err)
			return
		}
		report(a.computeDocument(d))
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}

	return err
}
