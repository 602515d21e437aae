package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvxtal/spacegroup"
)

func newSpaceGroupCommand(_ *app) *cobra.Command {
	var (
		setting string
		ops     bool
	)
	cmd := &cobra.Command{
		Use:   "spacegroup <number|symbol>",
		Short: "Describe a space group and list its operations",
		Example: "  lvxtal spacegroup 227 --setting origin2\n" +
			"  lvxtal spacegroup P6_3/mmc --operations",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := resolveGroup(args[0], setting)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%v\n", g)
			fmt.Fprintf(w, "hall:             %s\n", g.Hall())
			fmt.Fprintf(w, "crystal system:   %v\n", g.CrystalSystem())
			fmt.Fprintf(w, "centering:        %c\n", g.Centering())
			fmt.Fprintf(w, "centrosymmetric:  %t\n", g.Centrosymmetric())
			fmt.Fprintf(w, "order:            %d\n", g.Order())
			if ops {
				for i, op := range g.Operations() {
					fmt.Fprintf(w, "%4d  %v\n", i+1, op)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&setting, "setting", "", "origin2 or rhombohedral for groups with alternative settings")
	cmd.Flags().BoolVar(&ops, "operations", false, "list every symmetry operation")

	return cmd
}

// resolveGroup accepts a number 1..230 or a Hermann–Mauguin symbol.
func resolveGroup(arg, setting string) (*spacegroup.Group, error) {
	s, err := spacegroup.ParseSetting(setting)
	if err != nil {
		return nil, err
	}
	n, convErr := strconv.Atoi(arg)
	if convErr == nil {
		return spacegroup.FromIndexSetting(n, s)
	}
	g, err := spacegroup.FromSymbol(arg)
	if err != nil || s == spacegroup.Default {
		return g, err
	}

	return spacegroup.FromIndexSetting(g.Number(), s)
}
