package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lvxtal/phase"
	"github.com/katalvlaran/lvxtal/reflector"
	"github.com/katalvlaran/lvxtal/spacegroup"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
)

func checkFormat(f string) error {
	if f != formatTable && f != formatJSON {
		return fmt.Errorf("--format %q: want %s or %s", f, formatTable, formatJSON)
	}
	return nil
}

// phaseReport is the JSON form of one computed phase.
type phaseReport struct {
	Phase      string                `json:"phase"`
	SpaceGroup int                   `json:"space_group"`
	Symbol     string                `json:"symbol"`
	Setting    string                `json:"setting,omitempty"`
	Reflectors []reflector.Reflector `json:"reflectors"`
}

func newPhaseReport(p *phase.Phase) phaseReport {
	g := p.SpaceGroup()
	r := phaseReport{
		Phase:      p.Name(),
		SpaceGroup: g.Number(),
		Symbol:     g.Symbol(),
		Reflectors: p.Reflectors(),
	}
	if g.Setting() != spacegroup.Default {
		r.Setting = g.Setting().String()
	}
	if r.Reflectors == nil {
		r.Reflectors = []reflector.Reflector{}
	}

	return r
}

// writeReflectors prints the reflectors of p as a table or as JSON.
func writeReflectors(w io.Writer, p *phase.Phase, format string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newPhaseReport(p))
	}

	fmt.Fprintf(w, "%s\n", p)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "h\tk\tl\td (Å)\tI (%)\tm\t")
	for _, r := range p.Reflectors() {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.4f\t%.1f\t%d\t\n",
			r.HKL[0], r.HKL[1], r.HKL[2], r.DSpacing, 100*r.Intensity, r.Multiplicity)
	}

	return tw.Flush()
}
