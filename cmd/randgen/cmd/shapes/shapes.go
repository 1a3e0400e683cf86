// Package shapes implements the shapes sub-command.
package shapes

import (
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/oasisprotocol/randgen/cmd/randgen/cmd/typeexpr"
	"github.com/oasisprotocol/randgen/randgen"
	"github.com/oasisprotocol/randgen/randgen/shape"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [EXPR...]",
	Short: "show the shape and default distribution of types",
	Long: `Show the shape and default distribution of each type expression.
With no arguments, all of the scalar types are shown.`,
	RunE: doShapes,
}

// Row is one row of the shapes table.
type Row struct {
	Expr         string
	Type         string
	Shape        shape.Shape
	Distribution string
}

// Describe classifies each type expression and resolves its default
// distribution. Expressions that fail to parse are an error, types without
// a default are described by the reason.
func Describe(exprs []string) ([]Row, error) {
	rows := make([]Row, 0, len(exprs))
	for _, expr := range exprs {
		typ, err := typeexpr.Parse(expr)
		if err != nil {
			return nil, err
		}

		row := Row{
			Expr:  expr,
			Type:  typ.String(),
			Shape: shape.Classify(typ),
		}
		if v, err := randgen.Resolve(typ); err != nil {
			row.Distribution = err.Error()
		} else {
			row.Distribution = v.String()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Render writes rows as a table.
func Render(w io.Writer, rows []Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Expression", "Type", "Shape", "Default distribution"})
	for _, row := range rows {
		table.Append([]string{row.Expr, row.Type, row.Shape.String(), row.Distribution})
	}
	table.Render()
}

func doShapes(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = typeexpr.Names()
		sort.Strings(args)
	}

	rows, err := Describe(args)
	if err != nil {
		return err
	}
	Render(cmd.OutOrStdout(), rows)
	return nil
}

// Register registers the shapes sub-command.
func Register(parentCmd *cobra.Command) {
	parentCmd.AddCommand(shapesCmd)
}
