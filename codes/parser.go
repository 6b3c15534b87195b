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

package codes

import (
	"strconv"
	"strings"

	"github.com/samply/axisctl/field"
	"github.com/samply/axisctl/util"
)

// Separators of a group configuration.
type Separators struct {
	// Label separates the optional label from the codes of a line.
	Label string
	// Code separates the code pieces of a line.
	Code string
	// Range joins the two bounds of a range piece.
	Range string
}

func DefaultSeparators() Separators {
	return Separators{Label: ":", Code: ",", Range: "-"}
}

// Group is one parsed line of a group configuration.
type Group struct {
	Label string
	Codes []string
}

// CodeList returns the codes joined by commas.
func (g Group) CodeList() string {
	return strings.Join(g.Codes, ",")
}

// Parser turns a group configuration into groups of resolved codes.
//
// Each line reads `label:codes` or just `codes`. Codes are single tokens or
// `low-high` ranges, separated by commas. Problems are reported to Sink and
// never stop the parse.
type Parser struct {
	Separators Separators
	Sink       util.Sink
}

func NewParser(separators Separators, sink util.Sink) *Parser {
	if sink == nil {
		sink = util.Discard
	}
	return &Parser{Separators: separators, Sink: sink}
}

// Parse returns the groups of config in input order. Lines without any
// resolvable code are dropped.
func (p *Parser) Parse(config string, src field.Source) []Group {
	groups := make([]Group, 0)
	for i, line := range strings.Split(config, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lineNo := strconv.Itoa(i + 1)

		label, codeText, ok := p.splitLine(line)
		if !ok {
			p.Sink.Warning(util.ReasonMalformedLine, "line %s `%s` contains more than one label separator `%s`",
				lineNo, line, p.Separators.Label)
			continue
		}

		codes := p.resolveCodes(codeText, lineNo, src)
		if len(codes) == 0 {
			p.Sink.Warning(util.ReasonEmptyGroup, "line %s `%s` resolves to no category", lineNo, line)
			continue
		}
		groups = append(groups, Group{Label: label, Codes: codes})
	}
	return groups
}

func (p *Parser) splitLine(line string) (label string, codes string, ok bool) {
	sep := p.Separators.Label
	if sep == "" {
		return "", line, true
	}
	switch strings.Count(line, sep) {
	case 0:
		return "", line, true
	case 1:
		label, codes, _ = strings.Cut(line, sep)
		return strings.TrimSpace(label), strings.TrimSpace(codes), true
	default:
		return "", "", false
	}
}

func (p *Parser) resolveCodes(text string, lineNo string, src field.Source) []string {
	pieces := []string{text}
	if p.Separators.Code != "" {
		pieces = strings.Split(text, p.Separators.Code)
	}

	codes := make([]string, 0, len(pieces))
	seen := make(map[field.Key]bool, len(pieces))
	add := func(id string) {
		if key := field.NewKey(id); !seen[key] {
			seen[key] = true
			codes = append(codes, id)
		}
	}

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		if bounds := p.splitRange(piece, src); bounds != nil {
			if len(bounds) != 2 {
				p.Sink.Warning(util.ReasonInvalidRange, "line %s: range `%s` must have exactly two bounds", lineNo, piece)
				continue
			}
			ids, err := ResolveRange(bounds[0], bounds[1], src)
			if err != nil {
				p.Sink.Warning(util.ReasonInvalidRange, "line %s: range `%s` is invalid: %s", lineNo, piece, err.Error())
				continue
			}
			if len(ids) == 0 {
				p.Sink.Warning(util.ReasonInvalidRange, "line %s: range `%s` matches no category", lineNo, piece)
				continue
			}
			for _, id := range ids {
				add(id)
			}
			continue
		}

		id, ok := ResolveExact(piece, src)
		if !ok {
			if isInteger(piece) {
				p.Sink.Warning(util.ReasonTokenResolutionMiss, "line %s: code `%s` matches no category and is skipped", lineNo, piece)
				continue
			}
			p.Sink.Warning(util.ReasonTokenResolutionMiss, "line %s: code `%s` matches no category and is kept as is", lineNo, piece)
		}
		add(id)
	}
	return codes
}

// splitRange returns the bounds of piece or nil if piece is no range. A piece
// that names a category is never a range, even if it contains the range
// separator.
func (p *Parser) splitRange(piece string, src field.Source) []string {
	sep := p.Separators.Range
	if sep == "" || !strings.Contains(piece, sep) {
		return nil
	}
	if _, ok := src.ByName(piece, true); ok {
		return nil
	}
	return strings.Split(piece, sep)
}
