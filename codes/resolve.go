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

// Package codes resolves user supplied category codes against a field and
// parses multi-line group configurations.
package codes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samply/axisctl/field"
)

// ErrInvalidRangeBound is returned if a range bound has no numeric suffix.
var ErrInvalidRangeBound = errors.New("range bound has no numeric suffix")

// NumericSuffix returns the value of the trailing decimal digits of s.
func NumericSuffix(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ResolveExact resolves token to a category identifier of src.
//
// An integer token matches the first category in declared order whose numeric
// suffix equals it. Any other token matches a category identifier ignoring
// case. If nothing matches, the trimmed token is returned together with false.
func ResolveExact(token string, src field.Source) (string, bool) {
	token = strings.TrimSpace(token)
	if n, err := strconv.Atoi(token); err == nil {
		for i := 0; i < src.Count(); i++ {
			c := src.ByIndex(i)
			if v, ok := NumericSuffix(c.ID); ok && v == n {
				return c.ID, true
			}
		}
		return token, false
	}
	if c, ok := src.ByName(token, true); ok {
		return c.ID, true
	}
	return token, false
}

// ResolveRange returns, in declared order, the identifiers of all categories
// of src whose numeric suffix lies within the numeric suffixes of low and high,
// both inclusive. A range with low above high is empty.
func ResolveRange(low, high string, src field.Source) ([]string, error) {
	lo, ok := NumericSuffix(low)
	if !ok {
		return nil, fmt.Errorf("%w: `%s`", ErrInvalidRangeBound, strings.TrimSpace(low))
	}
	hi, ok := NumericSuffix(high)
	if !ok {
		return nil, fmt.Errorf("%w: `%s`", ErrInvalidRangeBound, strings.TrimSpace(high))
	}

	ids := make([]string, 0)
	if lo > hi {
		return ids, nil
	}
	for i := 0; i < src.Count(); i++ {
		c := src.ByIndex(i)
		if v, ok := NumericSuffix(c.ID); ok && v >= lo && v <= hi {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func isInteger(token string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(token))
	return err == nil
}
