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

package util

import (
	"fmt"
	"os"
	"strings"
)

// ReadTextArgument resolves a command line argument that holds multi-line
// text.
//
// An argument starting with `@` names a file whose content is returned with
// trailing whitespace removed. Any other argument is taken literally, with the
// two character sequence `\n` turned into a line break.
func ReadTextArgument(arg string) (string, error) {
	if !strings.HasPrefix(arg, "@") {
		return strings.ReplaceAll(arg, `\n`, "\n"), nil
	}
	b, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
	if err != nil {
		return "", fmt.Errorf("error while reading file: %s: %w", arg, err)
	}
	return strings.TrimRight(string(b), " \t\r\n"), nil
}

// SplitList splits a comma separated command line value and drops empty
// items.
func SplitList(value string) []string {
	items := make([]string, 0, strings.Count(value, ",")+1)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
