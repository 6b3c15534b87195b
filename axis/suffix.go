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
	"strconv"
	"strings"
)

// SuffixKey identifies a modifier that can follow an element.
type SuffixKey int

const (
	SuffixIsHidden SuffixKey = iota
	SuffixIsFixed
	SuffixIsUnweighted
	SuffixIncludeInBase
	SuffixDecimals
	SuffixFactor
	SuffixMultiplier
	SuffixWeight
	SuffixCalculationScope
)

var suffixNames = [...]string{
	SuffixIsHidden:         "IsHidden",
	SuffixIsFixed:          "IsFixed",
	SuffixIsUnweighted:     "IsUnweighted",
	SuffixIncludeInBase:    "IncludeInBase",
	SuffixDecimals:         "Decimals",
	SuffixFactor:           "Factor",
	SuffixMultiplier:       "Multiplier",
	SuffixWeight:           "Weight",
	SuffixCalculationScope: "CalculationScope",
}

func (k SuffixKey) String() string {
	if k < 0 || int(k) >= len(suffixNames) {
		return "SuffixKey(" + strconv.Itoa(int(k)) + ")"
	}
	return suffixNames[k]
}

// Scope is the value of the CalculationScope modifier.
type Scope int

const (
	ScopeAllElements Scope = iota
	ScopePrecedingElements
)

func (s Scope) String() string {
	if s == ScopePrecedingElements {
		return "PrecedingElements"
	}
	return "AllElements"
}

type suffixEntry struct {
	key   SuffixKey
	value string
}

// Suffix is an ordered set of modifiers. Appending a key that is already
// present replaces its value and keeps its position.
type Suffix struct {
	entries []suffixEntry
}

func (s *Suffix) put(key SuffixKey, value string) *Suffix {
	for i := range s.entries {
		if s.entries[i].key == key {
			s.entries[i].value = value
			return s
		}
	}
	s.entries = append(s.entries, suffixEntry{key: key, value: value})
	return s
}

func (s *Suffix) AppendIsHidden(v bool) *Suffix {
	return s.put(SuffixIsHidden, strconv.FormatBool(v))
}

func (s *Suffix) AppendIsFixed(v bool) *Suffix {
	return s.put(SuffixIsFixed, strconv.FormatBool(v))
}

func (s *Suffix) AppendIsUnweighted(v bool) *Suffix {
	return s.put(SuffixIsUnweighted, strconv.FormatBool(v))
}

func (s *Suffix) AppendIncludeInBase(v bool) *Suffix {
	return s.put(SuffixIncludeInBase, strconv.FormatBool(v))
}

func (s *Suffix) AppendDecimals(n int) *Suffix {
	return s.put(SuffixDecimals, strconv.Itoa(n))
}

func (s *Suffix) AppendFactor(f float64) *Suffix {
	return s.put(SuffixFactor, strconv.FormatFloat(f, 'f', -1, 64))
}

// AppendMultiplier multiplies the element by the given variable.
func (s *Suffix) AppendMultiplier(variable string) *Suffix {
	return s.put(SuffixMultiplier, variable)
}

// AppendWeight weights the element by the given variable.
func (s *Suffix) AppendWeight(variable string) *Suffix {
	return s.put(SuffixWeight, variable)
}

func (s *Suffix) AppendCalculationScope(scope Scope) *Suffix {
	return s.put(SuffixCalculationScope, scope.String())
}

// Get returns the rendered value of key.
func (s *Suffix) Get(key SuffixKey) (string, bool) {
	if s == nil {
		return "", false
	}
	for _, e := range s.entries {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

func (s *Suffix) flag(key SuffixKey) bool {
	v, ok := s.Get(key)
	return ok && v == "true"
}

func (s *Suffix) IsHidden() bool { return s.flag(SuffixIsHidden) }

func (s *Suffix) IsFixed() bool { return s.flag(SuffixIsFixed) }

func (s *Suffix) IsUnweighted() bool { return s.flag(SuffixIsUnweighted) }

// Keys returns the present modifiers in the order they were first appended.
func (s *Suffix) Keys() []SuffixKey {
	if s == nil {
		return nil
	}
	keys := make([]SuffixKey, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.key
	}
	return keys
}

func (s *Suffix) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// String renders the modifiers as `.Name(value)` qualifiers.
func (s *Suffix) String() string {
	if s.Len() == 0 {
		return ""
	}
	builder := strings.Builder{}
	for _, e := range s.entries {
		builder.WriteString(".")
		builder.WriteString(e.key.String())
		builder.WriteString("(")
		builder.WriteString(e.value)
		builder.WriteString(")")
	}
	return builder.String()
}
