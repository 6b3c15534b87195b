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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samply/axisctl/data"
	"github.com/samply/axisctl/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchProjectYaml = `
name: Brand Tracker
fields:
  - name: Q1
    categories: ["1", "2", "3", "4", "5"]
    axis:
      kind: box
      base: Total Respondent
      boxes: [2, -2, 9]
  - name: Q2
    categories: ["a", "A"]
    axis:
      kind: basic
  - name: Q3
    categories: ["a", "b", "c"]
    axis:
      kind: netted
      groups: "AB:a,b"
  - name: Q4
    categories: ["x"]
    axis:
      kind: pie
`

func TestBatchCmd(t *testing.T) {
	projectFile := writeFile(t, "project.yml", batchProjectYaml)
	manifestFile := filepath.Join(t.TempDir(), "axes.yml")

	out, err := executeCommand(t, "batch", projectFile, "--manifest", manifestFile, "--no-progress", "-c", "3")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Run urn:uuid:"))
	assert.Contains(t, out, "Fields\t\t[total, skipped]\t4, 2\n")
	assert.Contains(t, out, "Axes\t\t[total]\t\t\t2\n")
	assert.Contains(t, out, "Warnings\t[total]\t\t\t1\n")

	file, err := os.Open(manifestFile)
	require.NoError(t, err)
	defer file.Close()
	manifest, err := data.ReadManifest(file)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(manifest.RunID, "urn:uuid:"))
	assert.Contains(t, out, manifest.RunID)
	assert.Equal(t, "Brand Tracker", manifest.Project)
	assert.Equal(t, []data.ManifestEntry{
		{
			Field:      "Q1",
			Kind:       "box",
			Expression: "{text(),base('Base : Total Respondent'),text(),combine({1,2}),combine({4,5}),subtotal(),text(),net({..}),text(),subtotal('Sigma')}",
			Warnings:   []string{"InvalidBoxSize: box size 9 is out of range, the field has 5 categories"},
		},
		{
			Field:      "Q3",
			Kind:       "netted",
			Expression: "{text(),base(),text(),net({a,b}),text(),net({..}),text(),subtotal('Sigma')}",
		},
	}, manifest.Axes)
}

func TestBatchCmd_ExistingManifest(t *testing.T) {
	projectFile := writeFile(t, "project.yml", batchProjectYaml)
	manifestFile := writeFile(t, "axes.yml", "")

	_, err := executeCommand(t, "batch", projectFile, "--manifest", manifestFile, "--no-progress")

	assert.True(t, errors.Is(err, util.ErrOutputExists))
}

func TestBatchCmd_Errors(t *testing.T) {
	projectFile := writeFile(t, "project.yml", batchProjectYaml)
	manifestFile := filepath.Join(t.TempDir(), "axes.yml")

	tests := map[string]struct {
		args []string
		err  string
	}{
		"no project":       {[]string{"batch", "--manifest", manifestFile}, "requires a project file argument"},
		"missing project":  {[]string{"batch", filepath.Join(t.TempDir(), "missing.yml"), "--manifest", manifestFile}, "doesn't exist"},
		"missing manifest": {[]string{"batch", projectFile}, `required flag(s) "manifest" not set`},
		"no concurrency":   {[]string{"batch", projectFile, "--manifest", manifestFile, "-c", "0"}, "concurrency has to be at least 1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			assert.ErrorContains(t, err, tt.err)
		})
	}
}

func TestBuildProject_KeepsOrder(t *testing.T) {
	concurrency = 4
	defer func() { concurrency = 2 }()

	project := &data.Project{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		project.Fields = append(project.Fields, data.FieldSpec{
			Name:       name,
			Categories: []string{"1", "2"},
			Axis:       data.AxisSpec{Kind: data.KindBasic},
		})
	}

	results := buildProject(project, nil)

	require.Len(t, results, 6)
	for i, result := range results {
		assert.NoError(t, result.err)
		assert.Equal(t, project.Fields[i].Name, result.entry.Field)
		assert.Equal(t, 6, result.elements)
	}
}
