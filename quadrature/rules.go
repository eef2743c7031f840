package quadrature

type Rule uint8

const (
	Rectangles Rule = iota
	Trapeze
	Simpson
	NewtonCotes
	Gauss
)

// NumRules is the length of every estimate and error vector.
const NumRules = int(Gauss) + 1

var ruleNames = [NumRules]string{"Rectangles", "Trapeze", "Simpson", "NewtonCotes", "Gauss"}

func (r Rule) String() string {
	if int(r) >= NumRules {
		return "Unknown"
	}
	return ruleNames[r]
}

// Rules lists the rules in estimate vector order.
func Rules() []Rule {
	return []Rule{Rectangles, Trapeze, Simpson, NewtonCotes, Gauss}
}

// Panel applies the rule to the stencil anchored at index i.
func (r Rule) Panel(f []float64, i int, step float64) float64 {
	return windows[r].Panel(f, i, step)
}
