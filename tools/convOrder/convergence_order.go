package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study, as written by quadconv --csv")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		panic(err)
	}
	keys := make([]string, 0, len(studies))
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cs := studies[k]
		fmt.Printf("Integrand = %s, Rule = %s\n", cs.integrand, cs.rule)
		orders := cs.Orders()
		for i := range cs.steps {
			fmt.Printf("%d, %v, %v", cs.numPTS[i], cs.steps[i], cs.relErr[i])
			if i > 0 {
				fmt.Printf(", order = %5.3f", orders[i-1])
			}
			fmt.Println()
		}
	}
}

type ConvergenceStudy struct {
	integrand, rule string
	numPTS          []int
	steps, relErr   []float64
}

func NewConvergenceStudy(integrand, rule string) *ConvergenceStudy {
	return &ConvergenceStudy{
		integrand: integrand,
		rule:      rule,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, step, relErr float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.steps = append(cs.steps, step)
	cs.relErr = append(cs.relErr, relErr)
}

// Orders returns the observed order between each pair of consecutive entries,
// log(e[i]/e[i+1]) / log(h[i]/h[i+1]), entries sorted by decreasing step.
func (cs *ConvergenceStudy) Orders() (orders []float64) {
	idx := make([]int, len(cs.steps))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return cs.steps[idx[i]] > cs.steps[idx[j]] })
	for n := 0; n+1 < len(idx); n++ {
		i, j := idx[n], idx[n+1]
		orders = append(orders, math.Log(cs.relErr[i]/cs.relErr[j])/math.Log(cs.steps[i]/cs.steps[j]))
	}
	return
}

func readCSV(rdr io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records   [][]string
		ok        bool
		cs        *ConvergenceStudy
		step, rel float64
		npts      int
	)
	studies = make(map[string]*ConvergenceStudy)
	r := csv.NewReader(rdr)
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 7 {
			return nil, fmt.Errorf("line %d: expected 7 fields, have %d", i+1, len(rec))
		}
		integrand, rule := rec[0], rec[1]
		if npts, err = strconv.Atoi(rec[2]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if step, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if rel, err = strconv.ParseFloat(rec[6], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		key := integrand + "/" + rule
		if cs, ok = studies[key]; !ok {
			cs = NewConvergenceStudy(integrand, rule)
			studies[key] = cs
		}
		cs.Add(npts, step, rel)
	}
	return
}
