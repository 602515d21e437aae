package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvxtal/batch"
	"github.com/katalvlaran/lvxtal/internal/logging"
	"github.com/katalvlaran/lvxtal/phase"
	"github.com/katalvlaran/lvxtal/phasefile"
)

func newBatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Compute every phase file in a directory in parallel",
		Long: "batch loads every .toml, .yaml and .yml phase file in <dir> and computes their\n" +
			"reflectors concurrently. A failing file is reported and the others carry on\n" +
			"unless --fail-fast is set. The command fails when any file failed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args[0])
		},
	}
	addComputeFlags(cmd)
	cmd.Flags().Int("concurrency", 0, "phases computed at once (default: number of CPUs)")
	cmd.Flags().Bool("fail-fast", false, "stop at the first failing phase")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, dir string) error {
	paths, err := phasefile.List(dir)
	if err != nil {
		return err
	}
	model, err := a.cfg.Compute.ScatteringModel()
	if err != nil {
		return err
	}
	r, err := batch.NewRunner(model,
		batch.WithConcurrency(a.cfg.Batch.Concurrency),
		batch.WithMaxIndex(a.cfg.Compute.MaxIndex),
		batch.WithMinIntensity(a.cfg.Compute.MinRelativeIntensity),
		batch.WithFailFast(a.cfg.Batch.FailFast),
		batch.WithLogger(a.log),
		batch.WithMetrics(a.metrics),
	)
	if err != nil {
		return err
	}

	jobs := make([]batch.Job, len(paths))
	for i, path := range paths {
		jobs[i] = batch.Job{Name: path, Load: func() (*phase.Phase, error) {
			d, err := phasefile.Load(path)
			if err != nil {
				return nil, err
			}
			return d.Build(phase.WithLogger(a.log))
		}}
	}

	rep, runErr := r.Run(cmd.Context(), jobs)
	if rep != nil {
		if err = writeBatch(cmd, rep); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	if rep.Failed > 0 {
		return fmt.Errorf("batch %s: %d of %d phases failed", rep.ID, rep.Failed, len(rep.Results))
	}
	a.log.Info("batch complete", logging.String("run_id", rep.ID.String()), logging.Int("phases", len(rep.Results)))

	return nil
}

func writeBatch(cmd *cobra.Command, rep *batch.Report) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "run %s\n", rep.ID)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tPHASE\tGROUP\tREFLECTORS\tSTRONGEST\tRESULT")
	for _, res := range rep.Results {
		var name, group, strongest string
		if res.Phase != nil {
			name, group = res.Phase.Name(), res.Phase.SpaceGroup().Symbol()
		}
		if len(res.Reflectors) > 0 {
			strongest = res.Reflectors[0].HKL.String()
		}
		result := "ok"
		switch {
		case res.Canceled:
			result = "skipped"
		case res.Err != nil:
			result = res.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", res.Name, name, group, len(res.Reflectors), strongest, result)
	}

	return tw.Flush()
}
