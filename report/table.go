// Package report prints the error comparison table of a convergence study.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/notargets/quadconv/convergence"
	"github.com/notargets/quadconv/quadrature"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	warnColor   = color.New(color.FgYellow)
)

// PrintErrorTable writes one row per rule, in quadrature.Rules order, with the
// relative error at step h, at step h/ratio, and the observed order. Rules
// whose stencils do not reach b get no order.
func PrintErrorTable(w io.Writer, r *convergence.Result) {
	fine := fmt.Sprintf("h/%d", r.Ratio)
	fmt.Fprintf(w, "Integral of %s over [%v, %v] = %.15g\n", r.Integrand, r.A, r.B, r.Analytic)
	fmt.Fprintf(w, "h = %.6g (%d nodes), %s = %.6g (%d nodes)\n",
		r.Coarse.Step, r.Coarse.Count, fine, r.Fine.Step, r.Fine.Count)
	headerColor.Fprintf(w, "%-12s | %-14s | %-14s | %s\n", "Method", "h", fine, "Order")
	var partial bool
	for _, rule := range quadrature.Rules() {
		order := fmt.Sprintf("%.3f", r.Order[rule])
		if r.Partial[rule] {
			order, partial = "*", true
		}
		fmt.Fprintf(w, "%-12s | %-14.6e | %-14.6e | %s\n",
			rule, r.Coarse.Errors[rule], r.Fine.Errors[rule], order)
	}
	if partial {
		fmt.Fprintf(w, "* stencils stop short of b, the error includes an unintegrated tail\n")
	}
	fmt.Fprintf(w, "Gauss-Legendre reference differs from the analytic value by %.3e\n", r.RefDiff)
	if !r.Converged() {
		warnColor.Fprintf(w, "warning: not every rule improved on the refined grid\n")
	}
}
