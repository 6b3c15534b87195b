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
	"strings"
	"text/template"

	"go.uber.org/zap"
)

// Reason codes of the warnings reported while building axes.
const (
	ReasonTokenResolutionMiss = "TokenResolutionMiss"
	ReasonInvalidRange        = "InvalidRange"
	ReasonMalformedLine       = "MalformedLine"
	ReasonInvalidBoxSize      = "InvalidBoxSize"
	ReasonDuplicateBox        = "DuplicateBox"
	ReasonEmptyGroup          = "EmptyGroup"
	ReasonMissingMetadata     = "MissingMetadata"
	ReasonInvalidConfig       = "InvalidConfig"
)

// Sink receives non-fatal warnings. Implementations must not panic and must
// not block.
//
// The message template uses fmt verbs, one %s per argument.
type Sink interface {
	Warning(reason string, template string, args ...string)
}

// Warning is a single recorded warning.
type Warning struct {
	Reason   string
	Template string
	Args     []string
}

// Message returns the template with its arguments filled in.
func (w Warning) Message() string {
	return formatMessage(w.Template, w.Args)
}

func formatMessage(template string, args []string) string {
	if len(args) == 0 {
		return template
	}
	vals := make([]any, len(args))
	for i, arg := range args {
		vals[i] = arg
	}
	return fmt.Sprintf(template, vals...)
}

// Collector keeps every warning in memory.
type Collector struct {
	Warnings []Warning
}

func (c *Collector) Warning(reason string, template string, args ...string) {
	c.Warnings = append(c.Warnings, Warning{Reason: reason, Template: template, Args: args})
}

// Count returns the number of warnings with the given reason.
func (c *Collector) Count(reason string) int {
	var n int
	for _, w := range c.Warnings {
		if w.Reason == reason {
			n++
		}
	}
	return n
}

// Reset drops all recorded warnings.
func (c *Collector) Reset() {
	c.Warnings = nil
}

// ZapSink logs every warning at warn level.
type ZapSink struct {
	Logger *zap.Logger
}

func (s ZapSink) Warning(reason string, template string, args ...string) {
	if s.Logger == nil {
		return
	}
	s.Logger.Warn(formatMessage(template, args),
		zap.String("reason", reason),
		zap.Strings("args", args))
}

// MultiSink forwards every warning to all of its sinks.
type MultiSink []Sink

func (m MultiSink) Warning(reason string, template string, args ...string) {
	for _, s := range m {
		if s != nil {
			s.Warning(reason, template, args...)
		}
	}
}

// Discard drops all warnings.
var Discard Sink = discard{}

type discard struct{}

func (discard) Warning(string, string, ...string) {}

var warningTemplate, _ = template.New("warnings").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`{{ range $index, $warning := . -}}
{{ if $index }}---
{{ end -}}
Reason      : {{ $warning.Reason }}
Message     : {{ $warning.Message }}
{{ with $warning.Args -}}
Arguments   : {{ join . ", " }}
{{ end -}}
{{ end -}}
`)

// FmtWarnings renders warnings as a human readable block.
func FmtWarnings(warnings []Warning) string {
	builder := strings.Builder{}

	err := warningTemplate.Execute(&builder, warnings)
	if err != nil {
		return err.Error()
	}

	return builder.String()
}

func Indent(spaces int, v string) string {
	pad := strings.Repeat(" ", spaces)
	return pad + IndentExceptFirstLine(spaces, v)
}

func IndentExceptFirstLine(spaces int, v string) string {
	pad := strings.Repeat(" ", spaces)
	return strings.ReplaceAll(v, "\n", "\n"+pad)
}
