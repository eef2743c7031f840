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
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd runs the reference convergence study when called without a
// subcommand
var rootCmd = &cobra.Command{
	Use:   "quadconv",
	Short: "Quadrature convergence study",
	Long: `
Approximates a definite integral with five composite quadrature rules
(Rectangles, Trapeze, Simpson, NewtonCotes, Gauss) on a grid of step h and on
the grid refined to h/ratio, and prints the relative error of each rule.

quadconv [-I input.yaml] [--k 39] [--ratio 2] [--integrand sin]`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		m := &StudyRun{}
		m.InputFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m.CSVFile, _ = cmd.Flags().GetString("csv")
		m.Profile, _ = cmd.Flags().GetString("profile")
		m.Verbose, _ = cmd.Flags().GetBool("verbose")
		ip, err := processInput(m, cmd)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = RunStudy(os.Stdout, m, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quadconv.yaml)")
	addStudyFlags(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".quadconv" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".quadconv")
	}

	viper.SetEnvPrefix("QUADCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
