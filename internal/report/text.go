package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/arith/internal/taxonomy"
)

// TextOptions controls human-readable output.
type TextOptions struct {
	// Precision is the number of digits after the decimal point for
	// division values. Negative means the shortest representation.
	Precision int
}

// WriteText writes results as human-readable styled text using the
// shortest representation for every value.
func WriteText(w io.Writer, results []taxonomy.Result) error {
	return WriteTextOptions(w, results, TextOptions{Precision: -1})
}

// WriteTextOptions writes results as a styled table followed by a
// summary line. Output uses lipgloss for color and formatting when
// the output is a TTY; degrades gracefully for pipes and CI.
func WriteTextOptions(w io.Writer, results []taxonomy.Result, opts TextOptions) error {
	s := DefaultStyles()

	failed := 0
	if len(results) > 0 {
		const maxExpr = 40
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			expr := r.Expression()
			if len(expr) > maxExpr {
				expr = expr[:maxExpr-3] + "..."
			}
			rows = append(rows, []string{
				expr,
				string(r.Outcome),
				formatValue(r, opts.Precision),
			})
			if r.Failed() {
				failed++
			}
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(s.Border).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return s.TableHeader
				}
				if col == 1 && row >= 0 && row < len(rows) {
					return s.OutcomeStyle(rows[row][1])
				}
				return s.TableCell
			}).
			Headers("EXPRESSION", "OUTCOME", "VALUE").
			Rows(rows...)

		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, s.Header.Render(fmt.Sprintf(
		"%d operation(s), %d failed", len(results), failed)))
	return err
}

// formatValue renders a result's value column. Failures show the
// error message; addition values are never rounded.
func formatValue(r taxonomy.Result, precision int) string {
	if r.Value == nil {
		return r.Error
	}
	if precision < 0 || r.Operation != taxonomy.OpDivide {
		return string(*r.Value)
	}
	f, err := r.Value.Float()
	if err != nil {
		return string(*r.Value)
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}
