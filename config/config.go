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

// Package config provides typed access to the tunables of the axis builder.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
)

// Lookup is a read-only key value source.
type Lookup interface {
	Get(key string) (any, bool)
}

// TryGet returns the value stored under key if it is present and of type T.
func TryGet[T any](l Lookup, key string) (T, bool) {
	var zero T
	if l == nil {
		return zero, false
	}
	v, ok := l.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// GetOr returns the value stored under key or def if TryGet fails.
func GetOr[T any](l Lookup, key string, def T) T {
	if v, ok := TryGet[T](l, key); ok {
		return v
	}
	return def
}

// Store is a flat map of dotted keys. Integer values are always stored as int.
type Store struct {
	values map[string]any
}

func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

func (s *Store) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

func (s *Store) Set(key string, value any) {
	s.values[key] = normalize(value)
}

// Keys returns all keys in lexical order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Load reads a YAML config file.
func Load(filename string) (*Store, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error while reading config file: %s: %w", filename, err)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("error while parsing config file: %s: %w", filename, err)
	}
	return s, nil
}

// Parse reads a YAML document. Nested mappings become dotted keys, so
//
//	axis:
//	  sigma:
//	    label: Total
//
// is stored under `axis.sigma.label`.
func Parse(data []byte) (*Store, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	s := NewStore()
	s.flatten("", doc)
	return s, nil
}

func (s *Store) flatten(prefix string, m map[string]any) {
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := value.(type) {
		case nil:
		case map[string]any:
			s.flatten(key, v)
		case map[any]any:
			nested := make(map[string]any, len(v))
			for k, val := range v {
				nested[fmt.Sprint(k)] = val
			}
			s.flatten(key, nested)
		default:
			s.Set(key, v)
		}
	}
}

func normalize(value any) any {
	switch v := value.(type) {
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = normalize(item)
		}
		return items
	}
	return value
}

// Ints converts a list value to ints. It fails if any item is no int.
func Ints(value any) ([]int, bool) {
	switch v := value.(type) {
	case []int:
		return v, true
	case []any:
		ints := make([]int, 0, len(v))
		for _, item := range v {
			n, ok := item.(int)
			if !ok {
				return nil, false
			}
			ints = append(ints, n)
		}
		return ints, true
	}
	return nil, false
}
