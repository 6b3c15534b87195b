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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
axis:
  type: AxisTable
  sigma:
    enabled: false
    label: Total
  nps:
    topBox: 2
    bottomBox: 7
  boxes: [2, -2]
  ratio: 0.5
groups:
  labelSeparator: "="
empty:
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	require.NoError(t, err)

	t.Run("flattens nested keys", func(t *testing.T) {
		assert.Equal(t, []string{
			"axis.boxes",
			"axis.nps.bottomBox",
			"axis.nps.topBox",
			"axis.ratio",
			"axis.sigma.enabled",
			"axis.sigma.label",
			"axis.type",
			"groups.labelSeparator",
		}, s.Keys())
	})

	t.Run("typed access", func(t *testing.T) {
		label, ok := TryGet[string](s, "axis.sigma.label")
		assert.True(t, ok)
		assert.Equal(t, "Total", label)

		enabled, ok := TryGet[bool](s, "axis.sigma.enabled")
		assert.True(t, ok)
		assert.False(t, enabled)

		top, ok := TryGet[int](s, "axis.nps.topBox")
		assert.True(t, ok)
		assert.Equal(t, 2, top)

		ratio, ok := TryGet[float64](s, "axis.ratio")
		assert.True(t, ok)
		assert.Equal(t, 0.5, ratio)
	})

	t.Run("lists of ints", func(t *testing.T) {
		v, ok := s.Get("axis.boxes")
		require.True(t, ok)
		boxes, ok := Ints(v)
		assert.True(t, ok)
		assert.Equal(t, []int{2, -2}, boxes)
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, ok := TryGet[int](s, "axis.sigma.label")
		assert.False(t, ok)
		assert.Equal(t, 3, GetOr(s, "axis.sigma.label", 3))
	})

	t.Run("absent key", func(t *testing.T) {
		_, ok := TryGet[string](s, "axis.missing")
		assert.False(t, ok)
		assert.Equal(t, "x", GetOr(s, "axis.missing", "x"))
	})
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("axis: [unclosed"))
	assert.Error(t, err)
}

func TestTryGet_NilLookup(t *testing.T) {
	_, ok := TryGet[string](nil, "axis.type")
	assert.False(t, ok)

	var s *Store
	_, ok = TryGet[string](s, "axis.type")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("existing file", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "axisctl.yaml")
		assert.NoError(t, os.WriteFile(configFile, []byte(sample), 0644))

		s, err := Load(configFile)

		assert.NoError(t, err)
		assert.Equal(t, "AxisTable", GetOr(s, "axis.type", ""))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tmpDir, "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestStore_Set(t *testing.T) {
	s := NewStore()
	s.Set("axis.nps.topBox", uint64(3))
	s.Set("axis.boxes", []any{int64(1), uint64(2)})

	assert.Equal(t, 3, GetOr(s, "axis.nps.topBox", 0))
	boxes, ok := Ints(GetOr[any](s, "axis.boxes", nil))
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, boxes)
}
