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

	"github.com/spf13/cobra"

	"github.com/notargets/difops/difops"
)

// MethodsCmd represents the methods command
var MethodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the supported operator, rank, location and method combinations",
	Run: func(cmd *cobra.Command, args []string) {
		fam, err := cmd.Flags().GetString("family")
		if err != nil {
			panic(err)
		}
		PrintMethods(fam)
	},
}

func init() {
	rootCmd.AddCommand(MethodsCmd)
	MethodsCmd.Flags().StringP("family", "f", "", "only list one operator family, e.g. Div_par")
}

func PrintMethods(family string) {
	fmt.Printf("%-14s%-6s%-14s%-14s%-8s%-9s%s\n", "Family", "Rank", "In", "Out", "Method", "Mode", "Reach")
	for _, e := range difops.Entries() {
		if len(family) != 0 && e.Family.String() != family {
			continue
		}
		fmt.Printf("%-14s%-6d%-14s%-14s%-8s%-9s%d\n", e.Family, e.Rank, e.In, e.Out, e.Method, e.Mode, e.Reach)
	}
}
