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

	"github.com/samply/axisctl/codes"
	"github.com/samply/axisctl/util"
	"github.com/spf13/cobra"
)

func maxLabelLen(groups []codes.Group) int {
	maxLen := len("Label")
	for _, g := range groups {
		if len(g.Label) > maxLen {
			maxLen = len(g.Label)
		}
	}
	return maxLen
}

// printGroups writes one aligned `label : codes` line per group.
func printGroups(w io.Writer, groups []codes.Group) {
	format := "%-" + fmt.Sprintf("%d", maxLabelLen(groups)) + "s : %s\n"
	fmt.Fprintf(w, format, "Label", "Codes")
	for _, g := range groups {
		fmt.Fprintf(w, format, g.Label, g.CodeList())
	}
}

var parseGroupsCmd = &cobra.Command{
	Use:   "parse-groups",
	Short: "Parses a Group Configuration",
	Long: `Parses a group configuration against the categories of a field and
prints the resolved codes of every group.

Each line of the configuration reads label:codes or just codes. Codes are
category identifiers, numbers matching the numeric suffix of an identifier or
low-high ranges of such numbers.

Example:

  axisctl parse-groups --categories 1,2,3,4,5 --groups 'High:1-3\nLow:4-5'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("groups") {
			return fmt.Errorf("the --groups flag is required")
		}
		spec, err := axisRequest(cmd, "netted")
		if err != nil {
			return err
		}
		src, err := spec.Field()
		if err != nil {
			return err
		}

		collector := &util.Collector{}
		sink := warningSink(collector)
		opts, _ := axisSettings(sink)
		groups := codes.NewParser(opts.Separators, sink).Parse(spec.Axis.Groups, src)

		out := cmd.OutOrStdout()
		printGroups(out, groups)
		if len(collector.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			fmt.Fprint(out, util.Indent(2, util.FmtWarnings(collector.Warnings)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseGroupsCmd)

	parseGroupsCmd.Flags().StringVar(&categories, "categories", "", "comma separated category identifiers in declared order")
	parseGroupsCmd.Flags().StringVar(&projectFile, "project", "", "project file to take the field from")
	parseGroupsCmd.Flags().StringVar(&fieldName, "field", "", "name of the field")
	parseGroupsCmd.Flags().StringVar(&groupsArg, "groups", "", "group configuration or @file")
}
