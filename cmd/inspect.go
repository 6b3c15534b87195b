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
	_ "embed"
	"io"
	"strings"
	"text/template"

	"github.com/samply/axisctl/builder"
	"github.com/samply/axisctl/util"
	"github.com/spf13/cobra"
)

//go:embed inspect-template.tmpl
var inspectTemplate string

type inspectRow struct {
	Index       int
	Name        string
	Kind        string
	Description string
	Text        string
	Suffix      string
}

type inspectReport struct {
	Field      string
	Kind       string
	Type       string
	Expression string
	Rows       []inspectRow
	Groups     []builder.Group
	Warnings   []util.Warning
	NameWidth  int
	KindWidth  int
}

func newInspectReport(field, kind string, op *builder.Operator, warnings []util.Warning) inspectReport {
	report := inspectReport{
		Field:      field,
		Kind:       kind,
		Type:       op.Axis.Type.String(),
		Expression: op.Axis.String(),
		Groups:     op.Groups(),
		Warnings:   warnings,
	}
	for i, e := range op.Axis.Elements() {
		row := inspectRow{
			Index:       i + 1,
			Name:        e.Name,
			Kind:        e.Template.Kind().String(),
			Description: e.Description,
			Text:        e.String(),
			Suffix:      e.Suffix.String(),
		}
		report.NameWidth = max(report.NameWidth, len(row.Name))
		report.KindWidth = max(report.KindWidth, len(row.Kind))
		report.Rows = append(report.Rows, row)
	}
	return report
}

func renderInspectReport(wr io.Writer, report inspectReport) error {
	funcMap := template.FuncMap{
		"join":        strings.Join,
		"fmtWarnings": util.FmtWarnings,
		"indent":      util.Indent,
		"trimSpace":   strings.TrimSpace,
	}

	tmpl := template.Must(template.New("inspect").Funcs(funcMap).Parse(inspectTemplate))

	return tmpl.Execute(wr, report)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [basic|box|netted]",
	Short: "Shows an Axis Element by Element",
	Long: `Builds an axis like the build command does and prints a report with
every element, its name, kind, description and suffix qualifiers, the groups
created for the axis and all warnings.`,
	ValidArgsFunction: completeKinds,
	Args:              validateKindArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := axisRequest(cmd, args[0])
		if err != nil {
			return err
		}

		collector := &util.Collector{}
		op, err := buildAxis(spec, warningSink(collector))
		if err != nil {
			return err
		}

		return renderInspectReport(cmd.OutOrStdout(), newInspectReport(spec.Name, args[0], op, collector.Warnings))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	addAxisFlags(inspectCmd)
}
