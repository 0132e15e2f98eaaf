package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/ndmath/ratio"
	"github.com/katalvlaran/ndmath/units"
	"github.com/spf13/cobra"
)

type unitsCmd struct {
	*context
}

// newUnitsCmd builds "ndconv units".
func newUnitsCmd(cxt *context) *cobra.Command {
	c := &unitsCmd{context: cxt}

	return &cobra.Command{
		Use:     "units",
		Aliases: []string{"ls"},
		Short:   "List the known units",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run()
		},
	}
}

func (c *unitsCmd) run() error {
	reg := units.Default()
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tNAME\tDIMENSION\tFACTOR")
	for _, sym := range reg.Symbols() {
		u, err := reg.Lookup(sym)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sym, u.Name(), u.Exponents(), scaleOf(u))
	}
	c.log.WithField("count", reg.Len()).Debug("listed units")

	return w.Flush()
}

// scaleOf returns the unit's size relative to the SI unit of its kind.
func scaleOf(u units.Unit) string {
	base, err := units.NewUnit("", "", zeroRatios(u), ratio.Rational{}, ratio.Rational{})
	if err != nil {
		return "?"
	}
	c, err := units.ConversionRatio(u, base)
	if err != nil {
		return "?"
	}
	if !c.Exact {
		return "≈" + c.Ratio.String()
	}

	return c.Ratio.String()
}

// zeroRatios keeps u's exponents; the zero ratios read as 1/1.
func zeroRatios(u units.Unit) units.Dimensions {
	var d units.Dimensions
	for i, e := range u.Exponents() {
		d[i].Exponent = e
	}

	return d
}
