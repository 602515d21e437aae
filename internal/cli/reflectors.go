package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvxtal/phase"
	"github.com/katalvlaran/lvxtal/phasefile"
)

func newReflectorsCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "reflectors <phase-file>",
		Short: "Compute and print the reflectors of one phase",
		Example: "  lvxtal reflectors ferrite.toml --max-index 4\n" +
			"  lvxtal reflectors titanium.yaml --format json",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			p, err := a.compute(args[0])
			if err != nil {
				return err
			}
			return writeReflectors(cmd.OutOrStdout(), p, format)
		},
	}
	addComputeFlags(cmd)
	cmd.Flags().StringVar(&format, "format", formatTable, "output format (table, json)")

	return cmd
}

// compute loads the document at path, builds its phase and computes the
// reflectors with the configured parameters.
func (a *app) compute(path string) (*phase.Phase, error) {
	d, err := phasefile.Load(path)
	if err != nil {
		return nil, err
	}

	return a.computeDocument(d)
}

// computeDocument builds d and computes its reflectors.
func (a *app) computeDocument(d *phasefile.Document) (*phase.Phase, error) {
	p, err := d.Build(phase.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	model, err := a.cfg.Compute.ScatteringModel()
	if err != nil {
		return nil, err
	}
	if err = p.ComputeReflectors(model, a.cfg.Compute.MaxIndex, a.cfg.Compute.MinRelativeIntensity); err != nil {
		return nil, err
	}

	return p, nil
}
