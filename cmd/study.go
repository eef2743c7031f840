/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/quadconv/InputParameters"
	"github.com/notargets/quadconv/convergence"
	"github.com/notargets/quadconv/report"
	"github.com/notargets/quadconv/sampler"
	"github.com/notargets/quadconv/utils"
)

type StudyRun struct {
	InputFile string
	CSVFile   string
	Profile   string // "", "cpu" or "mem"
	Verbose   bool
}

func addStudyFlags(cmd *cobra.Command) {
	ip := InputParameters.Default()
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- A, B (interval)\n\t- K (base node count)\noverrides the config file, flags given explicitly override it")
	cmd.Flags().Float64("a", ip.A, "lower bound of the interval")
	cmd.Flags().Float64("b", ip.B, "upper bound of the interval")
	cmd.Flags().IntP("k", "k", ip.K, "number of nodes of the base grid")
	cmd.Flags().IntP("ratio", "r", ip.Ratio, "refinement ratio of the second grid")
	cmd.Flags().String("integrand", ip.Integrand, fmt.Sprintf("integrand, one of %v", sampler.Names()))
	cmd.Flags().String("csv", "", "write the study to this CSV file")
	cmd.Flags().String("profile", "", "profile the run: cpu or mem")
	cmd.Flags().BoolP("verbose", "v", false, "print the input parameters and memory usage")
	for _, key := range []string{"a", "b", "k", "ratio", "integrand"} {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// processInput layers the parameters: defaults, then config file and
// environment through viper, then the -I input file, then flags given
// explicitly on the command line.
func processInput(m *StudyRun, cmd *cobra.Command) (ip *InputParameters.InputParameters, err error) {
	ip = InputParameters.Default()
	setFromViper(ip, func(string) bool { return true })
	if len(m.InputFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(m.InputFile); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return
		}
		if cmd != nil {
			setFromViper(ip, cmd.Flags().Changed)
		}
	}
	err = ip.Validate()
	return
}

func setFromViper(ip *InputParameters.InputParameters, use func(key string) bool) {
	if use("a") {
		ip.A = viper.GetFloat64("a")
	}
	if use("b") {
		ip.B = viper.GetFloat64("b")
	}
	if use("k") {
		ip.K = viper.GetInt("k")
	}
	if use("ratio") {
		ip.Ratio = viper.GetInt("ratio")
	}
	if use("integrand") {
		ip.Integrand = viper.GetString("integrand")
	}
}

func RunStudy(w io.Writer, m *StudyRun, ip *InputParameters.InputParameters) (err error) {
	var (
		f   sampler.Integrand
		s   *sampler.Sampler
		st  *convergence.Study
		res *convergence.Result
	)
	switch m.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("%w: unknown profile mode %q", utils.ErrInvalidArgument, m.Profile)
	}
	if m.Verbose {
		ip.Print()
	}
	if f, err = sampler.Lookup(ip.Integrand); err != nil {
		return
	}
	if s, err = sampler.NewSampler(f); err != nil {
		return
	}
	if st, err = convergence.NewStudy(s, ip.A, ip.B, ip.K, ip.Ratio); err != nil {
		return
	}
	if res, err = st.Run(); err != nil {
		return
	}
	report.PrintErrorTable(w, res)
	if len(m.CSVFile) != 0 {
		var file *os.File
		if file, err = os.Create(m.CSVFile); err != nil {
			return
		}
		defer file.Close()
		if err = res.WriteCSV(file); err != nil {
			return
		}
	}
	if m.Verbose {
		fmt.Fprintf(w, "%d integrand evaluations, %s\n",
			res.Coarse.Evaluations+res.Fine.Evaluations, utils.GetMemUsage())
	}
	return
}
