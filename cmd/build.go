// Copyright 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"

	"github.com/samply/axisctl/util"
	"github.com/spf13/cobra"
)

var outputFile string
var qualified bool

var buildCmd = &cobra.Command{
	Use:   "build [basic|box|netted]",
	Short: "Builds an Axis Expression",
	Long: `Builds the axis expression of one field and prints it.

The categories of the field are given either directly with --categories in
their declared order or by a field of a project file. Warnings about codes
that can't be resolved or invalid box sizes are logged, the expression is
built from the remaining valid input.

Examples:

  axisctl build basic --categories 1,2,3,4,5 --base "Total Respondent"
  axisctl build box --categories 1,2,3,4,5 --boxes=2,-2
  axisctl build netted --project project.yml --field Q1 --groups @groups.txt`,
	ValidArgsFunction: completeKinds,
	Args:              validateKindArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := axisRequest(cmd, args[0])
		if err != nil {
			return err
		}

		op, err := buildAxis(spec, warningSink(&util.Collector{}))
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if outputFile != "" {
			file, err := util.CreateOutputFile(outputFile)
			if err != nil {
				return err
			}
			defer file.Close()
			out = file
		}

		expression := op.Axis.String()
		if qualified {
			expression = op.Axis.QualifiedString()
		}
		_, err = fmt.Fprintln(out, expression)
		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	addAxisFlags(buildCmd)
	buildCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "write the expression to this file instead of stdout")
	buildCmd.Flags().BoolVar(&qualified, "qualified", false, "render the suffix qualifiers of the elements")
}
