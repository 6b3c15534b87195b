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
	"fmt"
	"strings"
)

// Category is one response option of a field. Index is the position in the
// field's declared order, which is the only order the rest of axisctl relies
// on.
type Category struct {
	ID    string
	Index int
}

// Source is the read-only view on a field's categories.
type Source interface {
	Count() int
	ByIndex(i int) Category
	ByName(name string, caseInsensitive bool) (Category, bool)
}

// Key is a case-insensitive lookup key. It is only used at map boundaries;
// category identifiers themselves keep their original case.
type Key string

// NewKey folds name into a Key.
func NewKey(name string) Key {
	return Key(strings.ToLower(name))
}

// Field is a slice backed Source.
type Field struct {
	Name       string
	categories []Category
	exact      map[string]int
	folded     map[Key]int
}

// New creates a Field with the given category identifiers in declared order.
// Duplicate identifiers (compared case-insensitively) are rejected.
func New(name string, ids []string) (*Field, error) {
	f := &Field{
		Name:       name,
		categories: make([]Category, 0, len(ids)),
		exact:      make(map[string]int, len(ids)),
		folded:     make(map[Key]int, len(ids)),
	}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("field `%s` has an empty category identifier", name)
		}
		key := NewKey(id)
		if _, ok := f.folded[key]; ok {
			return nil, fmt.Errorf("field `%s` has a duplicate category `%s`", name, id)
		}
		idx := len(f.categories)
		f.categories = append(f.categories, Category{ID: id, Index: idx})
		f.exact[id] = idx
		f.folded[key] = idx
	}
	return f, nil
}

func (f *Field) Count() int {
	if f == nil {
		return 0
	}
	return len(f.categories)
}

func (f *Field) ByIndex(i int) Category {
	return f.categories[i]
}

func (f *Field) ByName(name string, caseInsensitive bool) (Category, bool) {
	if f == nil {
		return Category{}, false
	}
	var idx int
	var ok bool
	if caseInsensitive {
		idx, ok = f.folded[NewKey(name)]
	} else {
		idx, ok = f.exact[name]
	}
	if !ok {
		return Category{}, false
	}
	return f.categories[idx], true
}

// IDs returns the category identifiers of src in declared order.
func IDs(src Source) []string {
	ids := make([]string, 0, src.Count())
	for i := 0; i < src.Count(); i++ {
		ids = append(ids, src.ByIndex(i).ID)
	}
	return ids
}
