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

// Package builder assembles complete axes from a category source and a set of
// layout options.
package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samply/axisctl/axis"
	"github.com/samply/axisctl/codes"
	"github.com/samply/axisctl/field"
	"github.com/samply/axisctl/util"
)

var ErrNilAxis = errors.New("target axis is nil")

// categoryRange is the wildcard code that stands for every category of the
// field.
const categoryRange = ".."

type GroupKind int

const (
	NetGroup GroupKind = iota
	CombineGroup
)

func (k GroupKind) String() string {
	if k == CombineGroup {
		return "combine"
	}
	return "net"
}

// Group is a named set of category codes created during a build.
type Group struct {
	Name         string
	Label        string
	Codes        []string
	Kind         GroupKind
	TopBottomBox bool
}

// Operator builds axes into its target Axis. Every Build method starts from an
// empty axis, so calling it twice with the same input gives the same result.
//
// An Operator must not be used by more than one goroutine at a time.
type Operator struct {
	Axis    *axis.Axis
	Field   field.Source
	Options Options

	sink   util.Sink
	seq    int
	groups []Group
}

// NewOperator returns an Operator that writes into a. The sink receives all
// warnings of later builds. A nil sink discards them.
func NewOperator(a *axis.Axis, src field.Source, opts Options, sink util.Sink) (*Operator, error) {
	if a == nil {
		return nil, ErrNilAxis
	}
	if sink == nil {
		sink = util.Discard
	}
	return &Operator{Axis: a, Field: src, Options: opts, sink: sink}, nil
}

// Groups returns the groups created by the last build in creation order.
//
// A build that stops with MissingMetadata leaves the axis untouched, so the
// groups stay those of the last successful build.
func (o *Operator) Groups() []Group {
	groups := make([]Group, len(o.groups))
	copy(groups, o.groups)
	return groups
}

// BuildBasicAxis builds the header, the full category range and the sigma
// subtotal.
func (o *Operator) BuildBasicAxis(baseLabel string) {
	if !o.start() {
		return
	}
	o.appendHeader(baseLabel)
	o.appendCategories()
	o.appendSigma(true)
}

// BuildTopBottomBoxAxis builds an axis with one combine group per box size.
// A positive size asks for a top box, a negative size for a bottom box of the
// absolute size. If addNps is set, the NPS derived element is added after the
// boxes together with the two boxes it refers to.
func (o *Operator) BuildTopBottomBoxAxis(baseLabel string, addNps bool, boxes []int) {
	if !o.start() {
		return
	}
	o.appendHeader(baseLabel)

	for _, size := range boxes {
		g, ok := o.boxGroup(size)
		if !ok {
			continue
		}
		if o.findGroup(g.Name) != nil {
			o.sink.Warning(util.ReasonDuplicateBox, "box `%s` is requested more than once", g.Name)
			continue
		}
		o.groups = append(o.groups, g)
	}

	var nps *npsElement
	if addNps {
		nps = o.npsElement()
	}

	o.arrange(o.Options.LayoutPolicy, len(o.groups) == 0 && nps == nil, func() {
		for _, g := range o.groups {
			o.appendGroup(g)
		}
		if nps != nil {
			o.Axis.AppendDerived("nps", nps.label, nps.expr)
		}
	})
}

// BuildNettedAxis builds an axis from the groups of groupConfig, laid out
// according to the group layout of the options.
func (o *Operator) BuildNettedAxis(groupConfig, baseLabel string) {
	if !o.start() {
		return
	}
	o.appendHeader(baseLabel)

	kind := NetGroup
	if o.Options.GroupLayout != StandardNet {
		kind = CombineGroup
	}
	parser := codes.NewParser(o.Options.Separators, o.sink)
	for _, parsed := range parser.Parse(groupConfig, o.Field) {
		o.seq++
		label := parsed.Label
		if label == "" {
			label = parsed.CodeList()
		}
		o.groups = append(o.groups, Group{
			Name:  "n" + strconv.Itoa(o.seq),
			Label: o.Options.NetAheadLabel + label,
			Codes: parsed.Codes,
			Kind:  kind,
		})
	}

	if kind == NetGroup {
		for i, g := range o.groups {
			if i > 0 && o.Options.BlankSeparatorBetweenGroups {
				o.Axis.AppendText()
			}
			o.appendGroup(g)
		}
		o.appendCategories()
		o.appendSigma(false)
		return
	}

	o.arrange(o.Options.GroupLayout.policy(), len(o.groups) == 0, func() {
		for _, g := range o.groups {
			o.appendGroup(g)
		}
	})
}

// start checks the category source and resets the axis and the build state.
func (o *Operator) start() bool {
	if o.Field == nil || o.Field.Count() == 0 {
		o.sink.Warning(util.ReasonMissingMetadata, "field has no categories, the axis is left unchanged")
		return false
	}
	o.Axis.Clear()
	o.seq = 0
	o.groups = nil
	return true
}

// arrange places the block written by emit relative to the category range and
// the sigma subtotal. Separators are only written if the block is not empty.
func (o *Operator) arrange(policy LayoutPolicy, empty bool, emit func()) {
	switch policy {
	case BetweenAllCategoryAndSigma:
		o.appendCategories()
		if !empty {
			emit()
			o.Axis.AppendSubTotal("", "").Suffix.AppendIsHidden(true)
			o.Axis.AppendNet("", "", categoryRange).Suffix.AppendIsHidden(true)
		}
		o.appendSigma(false)
	case AfterSigma:
		o.appendCategories()
		o.appendSigma(false)
		if !empty {
			o.ensureText()
			emit()
		}
	default:
		if !empty {
			emit()
			o.Axis.AppendSubTotal("", "").Suffix.AppendIsHidden(true).AppendIsFixed(true)
		}
		o.appendCategories()
		o.appendSigma(false)
	}
}

func (o *Operator) appendHeader(baseLabel string) {
	if baseLabel != "" {
		baseLabel = o.Options.BaseLabelPrefix + baseLabel
	}
	o.Axis.AppendText()
	o.Axis.AppendBase(baseLabel)
	o.Axis.AppendText()
}

func (o *Operator) appendCategories() {
	o.ensureText()
	o.Axis.AppendNet("", "", categoryRange)
}

func (o *Operator) appendSigma(force bool) {
	if !force && !o.Options.AddSigma {
		return
	}
	o.ensureText()
	o.Axis.AppendSubTotal("sigma", o.Options.SigmaLabel)
}

// ensureText appends a text element unless the axis already ends with one.
func (o *Operator) ensureText() {
	if last := o.Axis.Last(); last != nil && last.Template.Kind() == axis.KindText {
		return
	}
	o.Axis.AppendText()
}

func (o *Operator) appendGroup(g Group) {
	if g.Kind == CombineGroup {
		o.Axis.AppendCombine(g.Name, g.Label, g.Codes...)
		return
	}
	o.Axis.AppendNet(g.Name, g.Label, g.Codes...)
}

func (o *Operator) findGroup(name string) *Group {
	for i := range o.groups {
		if o.groups[i].Name == name {
			return &o.groups[i]
		}
	}
	return nil
}

// boxGroup returns the top box group for positive sizes and the bottom box
// group for negative ones.
func (o *Operator) boxGroup(size int) (Group, bool) {
	top := size > 0
	n := size
	if !top {
		n = -size
	}
	count := o.Field.Count()
	if n <= 0 || n > count {
		o.sink.Warning(util.ReasonInvalidBoxSize, "box size %s is out of range, the field has %s categories",
			strconv.Itoa(size), strconv.Itoa(count))
		return Group{}, false
	}

	// reversed fields list their best category last
	fromStart := top != o.Options.BoxDirectionReversed
	start := 0
	if !fromStart {
		start = count - n
	}
	ids := make([]string, 0, n)
	for i := start; i < start+n; i++ {
		ids = append(ids, o.Field.ByIndex(i).ID)
	}

	name, label := fmt.Sprintf("t%db", n), fmt.Sprintf("%sTop %d Box", o.Options.NetAheadLabel, n)
	if !top {
		name, label = fmt.Sprintf("b%db", n), fmt.Sprintf("%sBottom %d Box", o.Options.NetAheadLabel, n)
	}
	return Group{Name: name, Label: label, Codes: ids, Kind: CombineGroup, TopBottomBox: true}, true
}

type npsElement struct {
	label string
	expr  string
}

// npsElement makes sure both boxes the NPS refers to exist. It returns nil,
// and adds neither box, if one of them cannot be built. Both sizes are
// counted from their own end and have to be positive.
func (o *Operator) npsElement() *npsElement {
	topSize, bottomSize := o.Options.NpsTopBoxSize, o.Options.NpsBottomBoxSize
	if topSize <= 0 || bottomSize <= 0 {
		o.sink.Warning(util.ReasonInvalidBoxSize, "NPS box sizes have to be positive, got top %s and bottom %s",
			strconv.Itoa(topSize), strconv.Itoa(bottomSize))
		return nil
	}
	top, ok := o.boxGroup(topSize)
	if !ok {
		return nil
	}
	bottom, ok := o.boxGroup(-bottomSize)
	if !ok {
		return nil
	}
	for _, g := range []Group{top, bottom} {
		if o.findGroup(g.Name) == nil {
			o.groups = append(o.groups, g)
		}
	}
	return &npsElement{
		label: fmt.Sprintf("NPS(T%dB-B%dB)", topSize, bottomSize),
		expr:  fmt.Sprintf("t%db-b%db", topSize, bottomSize),
	}
}
