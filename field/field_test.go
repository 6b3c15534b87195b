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

package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("keeps declared order", func(t *testing.T) {
		f, err := New("Q1", []string{"_3", "_1", "_2"})
		require.NoError(t, err)

		assert.Equal(t, 3, f.Count())
		assert.Equal(t, Category{ID: "_3", Index: 0}, f.ByIndex(0))
		assert.Equal(t, Category{ID: "_2", Index: 2}, f.ByIndex(2))
		assert.Equal(t, []string{"_3", "_1", "_2"}, IDs(f))
	})

	t.Run("trims identifiers", func(t *testing.T) {
		f, err := New("Q1", []string{" a ", "b"})
		require.NoError(t, err)
		assert.Equal(t, "a", f.ByIndex(0).ID)
	})

	t.Run("rejects duplicates ignoring case", func(t *testing.T) {
		_, err := New("Q1", []string{"Yes", "yes"})
		assert.Error(t, err)
	})

	t.Run("rejects empty identifiers", func(t *testing.T) {
		_, err := New("Q1", []string{"a", " "})
		assert.Error(t, err)
	})
}

func TestField_ByName(t *testing.T) {
	f, err := New("Q1", []string{"Yes", "No"})
	require.NoError(t, err)

	t.Run("case insensitive keeps original case", func(t *testing.T) {
		c, ok := f.ByName("YES", true)
		assert.True(t, ok)
		assert.Equal(t, "Yes", c.ID)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := f.ByName("YES", false)
		assert.False(t, ok)

		c, ok := f.ByName("No", false)
		assert.True(t, ok)
		assert.Equal(t, 1, c.Index)
	})

	t.Run("nil field", func(t *testing.T) {
		var nilField *Field
		_, ok := nilField.ByName("Yes", true)
		assert.False(t, ok)
		assert.Equal(t, 0, nilField.Count())
	})
}
