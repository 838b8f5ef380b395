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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/difops/InputParameters"
	"github.com/notargets/difops/utils"
)

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Apply each operator to analytic fields and report the error",
	Long: `Apply Grad_par, Div_par, Vpar_Grad_par and Delp2 to analytic fields on the
mesh of the input file, using the configured methods, and report the maximum and
RMS error over the interior cells.`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		setOptionsFile(cmd, ip)
		c := newCase(ip)
		results := c.EvaluateAll()
		printResults(results)
		log.Debug(utils.GetMemUsage())
		for _, res := range results {
			if res.Err != nil {
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	addEvalFlags(EvalCmd)
}

func addEvalFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the mesh, test modes and methods")
	cmd.Flags().StringP("optionsFile", "O", "", "options file (ini, yaml or toml) with an [operators] section, replaces OptionsFile of the input")
}

// setOptionsFile lets -O override the OptionsFile of the input file
func setOptionsFile(cmd *cobra.Command, ip *InputParameters.InputParameters) {
	optsFile, err := cmd.Flags().GetString("optionsFile")
	if err != nil {
		panic(err)
	}
	if len(optsFile) != 0 {
		ip.OptionsFile = optsFile
	}
}

func processInput(cmd *cobra.Command) (ip *InputParameters.InputParameters) {
	var (
		err    error
		icFile string
		data   []byte
	)
	if icFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		panic(err)
	}
	if len(icFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Sheared slab"
Mesh:
  Nx: 8
  Ny: 32
  Nz: 16
  Shear: 0.5
  BRipple: 0.1
Methods:
  grad_par: c2
  vpar_grad_par: u1_fa
ModeY: 1
ModeZ: 2
Location: centre
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(icFile); err != nil {
		panic(err)
	}
	ip = InputParameters.NewInputParameters()
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	return
}

func newCase(ip *InputParameters.InputParameters) (c *Case) {
	opts, err := NewOptions(ip, viper.GetViper())
	if err != nil {
		panic(err)
	}
	if c, err = NewCase(ip, opts, log); err != nil {
		panic(err)
	}
	return
}

func printResults(results []Result) {
	fmt.Printf("%-16s%-8s%14s%14s\n", "Operator", "Method", "Max Error", "RMS Error")
	for _, res := range results {
		if res.Err != nil {
			log.WithFields(logrus.Fields{"operator": res.Operator, "method": res.Method}).Error(res.Err)
			continue
		}
		fmt.Printf("%-16s%-8s%14.6e%14.6e\n", res.Operator, res.Method, res.MaxErr, res.RMSErr)
	}
}
