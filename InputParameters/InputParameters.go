package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/quadconv/grid"
	"github.com/notargets/quadconv/quadrature"
	"github.com/notargets/quadconv/sampler"
	"github.com/notargets/quadconv/utils"
)

// Defaults of the reference study
const (
	A         = -5.5312
	B         = 3.32
	K         = 39
	Ratio     = 2
	Integrand = "sin"
)

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title     string  `yaml:"Title"`
	A         float64 `yaml:"A"`
	B         float64 `yaml:"B"`
	K         int     `yaml:"K"`
	Ratio     int     `yaml:"Ratio"`
	Integrand string  `yaml:"Integrand"`
}

func Default() *InputParameters {
	return &InputParameters{
		Title:     "Quadrature convergence",
		A:         A,
		B:         B,
		K:         K,
		Ratio:     Ratio,
		Integrand: Integrand,
	}
}

// Parse overlays the YAML document on ip; keys absent from data keep their
// current values.
func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Step is H = |B-A|/(K-1).
func (ip *InputParameters) Step() (float64, error) {
	return grid.Step(ip.A, ip.B, ip.K)
}

func (ip *InputParameters) Validate() (err error) {
	if err = grid.CheckInterval(ip.A, ip.B); err != nil {
		return
	}
	switch {
	case ip.K < quadrature.MinNodes:
		err = fmt.Errorf("input: %w: K must be at least %d, have %d", utils.ErrInvalidArgument, quadrature.MinNodes, ip.K)
	case ip.Ratio < 2:
		err = fmt.Errorf("input: %w: Ratio must be at least 2, have %d", utils.ErrInvalidArgument, ip.Ratio)
	}
	if err != nil {
		return
	}
	_, err = sampler.Lookup(ip.Integrand)
	return
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Integrand\n", ip.Integrand)
	fmt.Printf("%8.5f\t\t= A\n", ip.A)
	fmt.Printf("%8.5f\t\t= B\n", ip.B)
	fmt.Printf("[%d]\t\t\t= K\n", ip.K)
	fmt.Printf("[%d]\t\t\t= Ratio\n", ip.Ratio)
	if h, err := ip.Step(); err == nil {
		fmt.Printf("%8.5f\t\t= H\n", h)
	}
}
