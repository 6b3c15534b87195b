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
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/samply/axisctl/data"
	"github.com/samply/axisctl/util"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"
)

var manifestFile string
var concurrency int

type batchResult struct {
	entry    data.ManifestEntry
	elements int
	warnings []util.Warning
	err      error
}

func runID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return "urn:uuid:" + id.String(), nil
}

func buildField(spec data.FieldSpec) batchResult {
	collector := &util.Collector{}
	op, err := buildAxis(spec, warningSink(collector))
	if err != nil {
		return batchResult{entry: data.ManifestEntry{Field: spec.Name, Kind: spec.Axis.Kind}, err: err}
	}

	entry := data.ManifestEntry{
		Field:      spec.Name,
		Kind:       spec.Axis.Kind,
		Expression: op.Axis.String(),
	}
	for _, w := range collector.Warnings {
		entry.Warnings = append(entry.Warnings, w.Reason+": "+w.Message())
	}
	return batchResult{entry: entry, elements: op.Axis.Len(), warnings: collector.Warnings}
}

// buildProject builds all fields of project. Every field gets its own axis, so
// fields are built in parallel. Results keep the order of the project file.
func buildProject(project *data.Project, bar *mpb.Bar) []batchResult {
	results := make([]batchResult, len(project.Fields))

	sem := make(chan bool, concurrency)
	for i, spec := range project.Fields {
		sem <- true
		go func(i int, spec data.FieldSpec) {
			defer func() { <-sem }()
			results[i] = buildField(spec)
			if bar != nil {
				bar.Increment()
			}
		}(i, spec)
	}

	// Wait for all builds to finish
	for i := 0; i < cap(sem); i++ {
		sem <- true
	}
	return results
}

var batchCmd = &cobra.Command{
	Use:   "batch [project-file]",
	Short: "Builds the Axes of all Fields of a Project",
	Long: `Builds the axis of every field in a project file and writes a YAML
manifest with all expressions and their warnings. Fields whose definition is
broken are skipped. A statistic will be printed after the run.

Example:

  axisctl batch project.yml --manifest axes.yml`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("requires a project file argument")
		}
		if info, err := os.Stat(args[0]); os.IsNotExist(err) {
			return fmt.Errorf("project file `%s` doesn't exist", args[0])
		} else if err != nil {
			return err
		} else if info.IsDir() {
			return fmt.Errorf("`%s` is a directory", args[0])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if concurrency < 1 {
			return fmt.Errorf("concurrency has to be at least 1, got %d", concurrency)
		}
		project, err := data.ReadProjectFile(args[0])
		if err != nil {
			return err
		}
		id, err := runID()
		if err != nil {
			return err
		}

		file, err := util.CreateOutputFile(manifestFile)
		if err != nil {
			return err
		}
		defer file.Close()

		start := time.Now()

		var progress *mpb.Progress
		var bar *mpb.Bar
		if !noProgress && len(project.Fields) > 0 {
			progress = mpb.New(mpb.WithOutput(cmd.ErrOrStderr()))
			bar = progress.AddBar(int64(len(project.Fields)),
				mpb.BarRemoveOnComplete(),
				mpb.PrependDecorators(
					decor.Name("batch", decor.WC{W: 6, C: decor.DindentRight}),
					decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 4}), "done"),
				),
				mpb.AppendDecorators(decor.Percentage()),
			)
		}

		results := buildProject(project, bar)
		if progress != nil {
			progress.Wait()
		}

		manifest := data.Manifest{RunID: id, Project: project.Name}
		stats := util.BatchStats{Fields: len(project.Fields)}
		for _, result := range results {
			if result.err != nil {
				logger.Error("skip field", zap.String("field", result.entry.Field), zap.Error(result.err))
				stats.Skipped++
				continue
			}
			manifest.Axes = append(manifest.Axes, result.entry)
			stats.ElementCounts = append(stats.ElementCounts, float64(result.elements))
			stats.Warnings = append(stats.Warnings, result.warnings...)
		}

		n, err := data.WriteManifest(file, manifest)
		if err != nil {
			return err
		}
		stats.TotalBytesOut = int64(n)
		stats.TotalDuration = time.Since(start)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Run %s written to %s\n\n", id, manifestFile)
		fmt.Fprint(out, stats.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "path of the YAML manifest to write")
	batchCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 2, "number of parallel builds")

	_ = batchCmd.MarkFlagRequired("manifest")
}
