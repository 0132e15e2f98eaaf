package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ndmath/units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type convertCmd struct {
	*context
}

// newConvertCmd builds "ndconv convert VALUE FROM TO".
func newConvertCmd(cxt *context) *cobra.Command {
	c := &convertCmd{context: cxt}
	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert VALUE from unit FROM to unit TO",
		Example: `
  ndconv convert 2 m mm
  ndconv convert 0.5 m in --precision 3
  ndconv convert --affine 20 °C K
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0], args[1], args[2])
		},
	}
	cmd.Flags().Bool(keyAffine, false, "Apply unit offsets (absolute temperatures) instead of scaling only")
	cmd.Flags().Int(keyPrecision, -1, "Decimals to print; -1 prints the shortest exact representation")
	bindFlags(cxt.vip, cmd.Flags())

	return cmd
}

func (c *convertCmd) run(value, fromSym, toSym string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", value, err)
	}
	from, err := units.Lookup(fromSym)
	if err != nil {
		return err
	}
	to, err := units.Lookup(toSym)
	if err != nil {
		return err
	}

	conv, err := units.ConversionRatio(from, to)
	if err != nil {
		return err
	}
	affine := c.vip.GetBool(keyAffine)
	c.log.WithFields(logrus.Fields{
		"from":   from.Name(),
		"to":     to.Name(),
		"ratio":  conv.Ratio.String(),
		"exact":  conv.Exact,
		"affine": affine,
	}).Debug("conversion ratio")

	q := units.New(v, from)
	if affine {
		q, err = units.CastAffine(q, to)
	} else {
		q, err = units.Cast(q, to)
	}
	if err != nil {
		return err
	}

	prec := c.vip.GetInt(keyPrecision)
	_, err = fmt.Fprintf(c.out, "%s %s\n", strconv.FormatFloat(q.Value(), 'f', prec, 64), q.Unit())

	return err
}
