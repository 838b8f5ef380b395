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
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/difops/InputParameters"
	"github.com/notargets/difops/difops"
	"github.com/notargets/difops/utils"
)

// ConvergeCmd represents the converge command
var ConvergeCmd = &cobra.Command{
	Use:   "converge",
	Short: "Measure the order of accuracy of an operator under grid refinement",
	Long: `Refine the mesh of the input file by factors of two, in Y for the parallel
operators and in X for delp2, and print the error and observed order of each
requested method.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err       error
			operator  string
			methodArg string
			csvFile   string
			np        int
		)
		ip := processInput(cmd)
		if operator, err = cmd.Flags().GetString("operator"); err != nil {
			panic(err)
		}
		if methodArg, err = cmd.Flags().GetString("methods"); err != nil {
			panic(err)
		}
		if csvFile, err = cmd.Flags().GetString("csvFile"); err != nil {
			panic(err)
		}
		if np, err = cmd.Flags().GetInt("parallel"); err != nil {
			panic(err)
		}
		var methods []difops.Difop
		for _, name := range strings.Split(methodArg, ",") {
			var d difops.Difop
			if d, err = difops.ParseDifop(name); err != nil {
				panic(err)
			}
			methods = append(methods, d)
		}
		var studies []*ConvergenceStudy
		all, errs := RunStudies(ip, operator, methods, np)
		for i, cs := range all {
			if errs[i] != nil {
				log.WithFields(logrus.Fields{"operator": operator, "method": methods[i]}).Error(errs[i])
				continue
			}
			cs.Print()
			studies = append(studies, cs)
		}
		if len(csvFile) != 0 {
			if err = WriteCSV(csvFile, studies); err != nil {
				panic(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(ConvergeCmd)
	ConvergeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the coarsest mesh, test modes and refinement levels")
	ConvergeCmd.Flags().StringP("operator", "o", "grad_par", "operator: grad_par, div_par, vpar_grad_par or delp2")
	ConvergeCmd.Flags().StringP("methods", "m", "c2,c4_fa", "comma separated methods to compare")
	ConvergeCmd.Flags().StringP("csvFile", "c", "", "write the studies to a CSV file")
	ConvergeCmd.Flags().IntP("parallel", "p", runtime.NumCPU(), "number of methods studied concurrently")
}

type ConvergenceStudy struct {
	title    string
	method   difops.Difop
	numPTS   []int
	rmsErr   []float64
	maxErr   []float64
	maxOrder []float64
}

func NewConvergenceStudy(title string, method difops.Difop) *ConvergenceStudy {
	return &ConvergenceStudy{
		title:  title,
		method: method,
	}
}

// Add appends a level, the order is measured against the previous level
func (cs *ConvergenceStudy) Add(numPTS int, rmsErr, maxErr float64) {
	order := math.NaN()
	if n := len(cs.numPTS); n > 0 {
		order = math.Log(cs.maxErr[n-1]/maxErr) / math.Log(float64(numPTS)/float64(cs.numPTS[n-1]))
	}
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.rmsErr = append(cs.rmsErr, rmsErr)
	cs.maxErr = append(cs.maxErr, maxErr)
	cs.maxOrder = append(cs.maxOrder, order)
}

// Order is the observed order between the two finest levels
func (cs *ConvergenceStudy) Order() float64 {
	return cs.maxOrder[len(cs.maxOrder)-1]
}

func (cs *ConvergenceStudy) Print() {
	fmt.Printf("Title = %s, Method = %s\n", cs.title, cs.method)
	for i := range cs.numPTS {
		fmt.Printf("%d, %v, %v, %5.2f\n", cs.numPTS[i], cs.rmsErr[i], cs.maxErr[i], cs.maxOrder[i])
	}
}

// RunStudy evaluates an operator over ip.Levels refinements of the mesh
func RunStudy(ip *InputParameters.InputParameters, operator string, method difops.Difop) (cs *ConvergenceStudy, err error) {
	var (
		levels = max(ip.Levels, 2)
		lp     = *ip
	)
	cs = NewConvergenceStudy(fmt.Sprintf("%s %s", ip.Title, operator), method)
	for level := 0; level < levels; level++ {
		var (
			c   *Case
			n   int
			fac = 1 << level
		)
		lp.Mesh = ip.Mesh
		if operator == "delp2" {
			lp.Mesh.Nx *= fac
			n = lp.Mesh.Nx
		} else {
			lp.Mesh.Ny *= fac
			n = lp.Mesh.Ny
		}
		opts, err := NewOptions(&lp, nil)
		if err != nil {
			return nil, err
		}
		if c, err = NewCase(&lp, opts, log); err != nil {
			return nil, err
		}
		res := c.Evaluate(operator, method)
		if res.Err != nil {
			return nil, res.Err
		}
		cs.Add(n, res.RMSErr, res.MaxErr)
	}
	return
}

// RunStudies runs one study per method, the methods are split over np goroutines.
// Results are in the order of methods.
func RunStudies(ip *InputParameters.InputParameters, operator string, methods []difops.Difop,
	np int) (studies []*ConvergenceStudy, errs []error) {
	studies = make([]*ConvergenceStudy, len(methods))
	errs = make([]error, len(methods))
	if len(methods) == 0 {
		return
	}
	np = min(max(np, 1), len(methods))
	var (
		pm = utils.NewPartitionMap(np, len(methods))
		wg = sync.WaitGroup{}
	)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(myThread int) {
			defer wg.Done()
			var (
				kMin, _ = pm.GetBucketRange(myThread)
				mine    = methods[kMin : kMin+pm.GetBucketDimension(myThread)]
			)
			for k, method := range mine {
				studies[kMin+k], errs[kMin+k] = RunStudy(ip, operator, method)
			}
		}(n)
	}
	wg.Wait()
	return
}

func WriteCSV(csvFile string, studies []*ConvergenceStudy) (err error) {
	var f *os.File
	if f, err = os.Create(csvFile); err != nil {
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write([]string{"title", "method", "points", "rms", "max", "order"}); err != nil {
		return
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, cs := range studies {
		for i := range cs.numPTS {
			rec := []string{cs.title, cs.method.String(), strconv.Itoa(cs.numPTS[i]),
				ff(cs.rmsErr[i]), ff(cs.maxErr[i]), ff(cs.maxOrder[i])}
			if err = w.Write(rec); err != nil {
				return
			}
		}
	}
	w.Flush()
	return w.Error()
}
