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
	"bytes"
	"testing"

	"github.com/samply/axisctl/codes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintGroups(t *testing.T) {
	var buf bytes.Buffer
	printGroups(&buf, []codes.Group{
		{Label: "Promoters", Codes: []string{"9", "10"}},
		{Label: "", Codes: []string{"1"}},
	})

	assert.Equal(t, "Label     : Codes\nPromoters : 9,10\n          : 1\n", buf.String())
}

func TestParseGroupsCmd(t *testing.T) {
	out, err := executeCommand(t, "parse-groups", "--categories", "1,2,3,4,5", "--groups", `High:1-3\nLow:4-5`)

	require.NoError(t, err)
	assert.Equal(t, "Label : Codes\nHigh  : 1,2,3\nLow   : 4,5\n", out)
}

func TestParseGroupsCmd_Warnings(t *testing.T) {
	out, err := executeCommand(t, "parse-groups", "--categories", "1,2,3", "--groups", `A:1:2\nB:2-3,9`)

	require.NoError(t, err)
	assert.Contains(t, out, "B     : 2,3\n")
	assert.Contains(t, out, "\nWarnings:\n")
	assert.Contains(t, out, "  Reason      : MalformedLine\n")
	assert.Contains(t, out, "  Reason      : TokenResolutionMiss\n")
}

func TestParseGroupsCmd_CustomSeparators(t *testing.T) {
	configFile := writeFile(t, "axisctl.yml", `
groups:
  labelSeparator: "="
  codeSeparator: ";"
  rangeSeparator: "~"
`)

	out, err := executeCommand(t, "parse-groups", "--config", configFile, "--categories", "1,2,3,4", "--groups", "Top=3~4;1")

	require.NoError(t, err)
	assert.Equal(t, "Label : Codes\nTop   : 3,4,1\n", out)
}

func TestParseGroupsCmd_MissingGroups(t *testing.T) {
	_, err := executeCommand(t, "parse-groups", "--categories", "1,2")

	assert.EqualError(t, err, "the --groups flag is required")
}
