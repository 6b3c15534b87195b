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

package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuffix_String(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", (&Suffix{}).String())
		var nilSuffix *Suffix
		assert.Equal(t, "", nilSuffix.String())
	})

	t.Run("All modifiers", func(t *testing.T) {
		s := &Suffix{}
		s.AppendIsHidden(true).
			AppendIsFixed(true).
			AppendIsUnweighted(false).
			AppendIncludeInBase(false).
			AppendDecimals(2).
			AppendFactor(1.5).
			AppendMultiplier("income").
			AppendWeight("wgt").
			AppendCalculationScope(ScopePrecedingElements)

		assert.Equal(t, ".IsHidden(true).IsFixed(true).IsUnweighted(false).IncludeInBase(false)"+
			".Decimals(2).Factor(1.5).Multiplier(income).Weight(wgt).CalculationScope(PrecedingElements)", s.String())
	})
}

func TestSuffix_LastWriteWins(t *testing.T) {
	s := &Suffix{}
	s.AppendDecimals(1).AppendIsHidden(true).AppendDecimals(3)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []SuffixKey{SuffixDecimals, SuffixIsHidden}, s.Keys())
	v, ok := s.Get(SuffixDecimals)
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.Equal(t, ".Decimals(3).IsHidden(true)", s.String())
}

func TestSuffix_Flags(t *testing.T) {
	s := &Suffix{}
	assert.False(t, s.IsHidden())
	assert.False(t, s.IsFixed())

	s.AppendIsHidden(true).AppendIsFixed(false).AppendIsUnweighted(true)
	assert.True(t, s.IsHidden())
	assert.False(t, s.IsFixed())
	assert.True(t, s.IsUnweighted())

	_, ok := s.Get(SuffixWeight)
	assert.False(t, ok)
}

func TestScope_String(t *testing.T) {
	assert.Equal(t, "AllElements", ScopeAllElements.String())
	assert.Equal(t, "PrecedingElements", ScopePrecedingElements.String())
}
