package convergence

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/notargets/quadconv/quadrature"
)

var CSVHeader = []string{"Integrand", "Rule", "Nodes", "Step", "Estimate", "Analytic", "RelError"}

// WriteCSV writes one row per rule and level, coarse level first.
func (r *Result) WriteCSV(w io.Writer) error {
	var (
		cw = csv.NewWriter(w)
		ff = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, l := range []Level{r.Coarse, r.Fine} {
		for _, rule := range quadrature.Rules() {
			rec := []string{
				r.Integrand, rule.String(), strconv.Itoa(l.Count), ff(l.Step),
				ff(l.Estimates[rule]), ff(r.Analytic), ff(l.Errors[rule]),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
