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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samply/axisctl/axis"
	"github.com/samply/axisctl/builder"
	"github.com/samply/axisctl/config"
	"github.com/samply/axisctl/data"
	"github.com/samply/axisctl/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var categories string
var projectFile string
var fieldName string
var baseLabel string
var groupsArg string
var boxesArg string
var addNps bool

// addAxisFlags registers the flags describing a single axis request.
func addAxisFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&categories, "categories", "", "comma separated category identifiers in declared order")
	cmd.Flags().StringVar(&projectFile, "project", "", "project file to take the field from")
	cmd.Flags().StringVar(&fieldName, "field", "", "name of the field")
	cmd.Flags().StringVar(&baseLabel, "base", "", "label of the base element")
	cmd.Flags().StringVar(&groupsArg, "groups", "", "group configuration or @file (netted axes)")
	cmd.Flags().StringVar(&boxesArg, "boxes", "", "comma separated box sizes, negative for bottom boxes (box axes)")
	cmd.Flags().BoolVar(&addNps, "nps", false, "add the NPS derived element (box axes)")

	cmd.MarkFlagsMutuallyExclusive("categories", "project")
}

func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return data.Kinds, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{}, cobra.ShellCompDirectiveNoFileComp
}

func validateKindArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("requires exactly 1 argument: the axis kind")
	}
	if !slices.Contains(data.Kinds, args[0]) {
		return fmt.Errorf("invalid axis kind. Must be one of: %s", strings.Join(data.Kinds, ", "))
	}
	return nil
}

// parseBoxes parses sizes like `2,-2`.
func parseBoxes(value string) ([]int, error) {
	items := util.SplitList(value)
	boxes := make([]int, 0, len(items))
	for _, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid box size `%s`", item)
		}
		boxes = append(boxes, n)
	}
	return boxes, nil
}

// axisRequest combines the project file entry, if any, with the flags of cmd.
// Flags given on the command line win.
func axisRequest(cmd *cobra.Command, kind string) (data.FieldSpec, error) {
	var spec data.FieldSpec
	switch {
	case projectFile != "":
		if fieldName == "" {
			return spec, errors.New("the --field flag is required together with --project")
		}
		project, err := data.ReadProjectFile(projectFile)
		if err != nil {
			return spec, err
		}
		fs, ok := project.FindField(fieldName)
		if !ok {
			return spec, fmt.Errorf("field `%s` not found in project file %s", fieldName, projectFile)
		}
		spec = *fs
	case categories != "":
		spec = data.FieldSpec{Name: fieldName, Categories: util.SplitList(categories)}
	default:
		return spec, errors.New("one of the flags --categories or --project is required")
	}

	spec.Axis.Kind = kind
	flags := cmd.Flags()
	if flags.Changed("base") {
		spec.Axis.Base = baseLabel
	}
	if flags.Changed("nps") {
		spec.Axis.Nps = addNps
	}
	if flags.Changed("boxes") {
		boxes, err := parseBoxes(boxesArg)
		if err != nil {
			return spec, err
		}
		spec.Axis.Boxes = boxes
	}
	if flags.Changed("groups") {
		groups, err := util.ReadTextArgument(groupsArg)
		if err != nil {
			return spec, err
		}
		spec.Axis.Groups = groups
	}
	return spec, nil
}

// axisSettings derives the builder options and the axis type from the loaded
// config.
func axisSettings(sink util.Sink) (builder.Options, axis.Type) {
	opts := builder.OptionsFromConfig(settings, sink)
	axisType := axis.Normal
	if s, ok := config.TryGet[string](settings, config.KeyAxisType); ok {
		t, err := axis.ParseType(s)
		if err != nil {
			sink.Warning(util.ReasonInvalidConfig, "config key %s: %s", config.KeyAxisType, err.Error())
		} else {
			axisType = t
		}
	}
	return opts, axisType
}

// defaultBoxes returns the box sizes of the config, used when a box axis
// names none itself.
func defaultBoxes(sink util.Sink) []int {
	value := config.GetOr[any](settings, config.KeyBoxSizes, nil)
	if value == nil {
		return nil
	}
	boxes, ok := config.Ints(value)
	if !ok {
		sink.Warning(util.ReasonInvalidConfig, "config key %s has to be a list of integers", config.KeyBoxSizes)
		return nil
	}
	return boxes
}

// buildAxis builds the axis described by spec. Problems with the input data
// go to sink, only a broken field definition is returned as error.
func buildAxis(spec data.FieldSpec, sink util.Sink) (*builder.Operator, error) {
	src, err := spec.Field()
	if err != nil {
		return nil, err
	}
	opts, axisType := axisSettings(sink)
	op, err := builder.NewOperator(axis.New(axisType), src, opts, sink)
	if err != nil {
		return nil, err
	}

	logger.Debug("build axis",
		zap.String("field", spec.Name),
		zap.String("kind", spec.Axis.Kind),
		zap.Int("categories", src.Count()))

	switch spec.Axis.Kind {
	case data.KindBasic:
		op.BuildBasicAxis(spec.Axis.Base)
	case data.KindBox:
		boxes := spec.Axis.Boxes
		if len(boxes) == 0 {
			boxes = defaultBoxes(sink)
		}
		op.BuildTopBottomBoxAxis(spec.Axis.Base, spec.Axis.Nps, boxes)
	case data.KindNetted:
		op.BuildNettedAxis(spec.Axis.Groups, spec.Axis.Base)
	default:
		return nil, fmt.Errorf("invalid axis kind `%s`. Must be one of: %s", spec.Axis.Kind, strings.Join(data.Kinds, ", "))
	}
	return op, nil
}

// warningSink reports to the logger and to collector.
func warningSink(collector *util.Collector) util.Sink {
	return util.MultiSink{util.ZapSink{Logger: logger}, collector}
}
