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

// Package axis holds the in-memory form of an axis expression and renders it
// into the text the tabulation engine parses.
package axis

import (
	"fmt"
	"strconv"
	"strings"
)

// Type selects the outer wrapper of a rendered axis.
type Type int

const (
	// Normal renders as `{...}`.
	Normal Type = iota
	// AxisTable renders as `axis({...})`.
	AxisTable
)

func (t Type) String() string {
	if t == AxisTable {
		return "AxisTable"
	}
	return "Normal"
}

// ParseType parses the names returned by Type.String, ignoring case.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return Normal, nil
	case "axistable":
		return AxisTable, nil
	}
	return Normal, fmt.Errorf("unknown axis type `%s`", s)
}

// Element is a single entry of an axis.
type Element struct {
	Name        string
	Description string
	Template    Template
	Suffix      *Suffix
}

// String renders the element without its suffix.
func (e *Element) String() string {
	return e.Template.String()
}

// QualifiedString renders the element followed by its suffix qualifiers.
func (e *Element) QualifiedString() string {
	return e.Template.String() + e.Suffix.String()
}

// Axis is an ordered list of elements.
type Axis struct {
	Type     Type
	elements []*Element
	seq      int
}

func New(t Type) *Axis {
	return &Axis{Type: t}
}

// Clear removes all elements and restarts element naming.
func (a *Axis) Clear() {
	a.elements = nil
	a.seq = 0
}

func (a *Axis) Len() int {
	return len(a.elements)
}

// Elements returns the elements in order. The slice is a copy, the elements
// are not.
func (a *Axis) Elements() []*Element {
	elements := make([]*Element, len(a.elements))
	copy(elements, a.elements)
	return elements
}

// Last returns the last element or nil if the axis is empty.
func (a *Axis) Last() *Element {
	if len(a.elements) == 0 {
		return nil
	}
	return a.elements[len(a.elements)-1]
}

// Find returns the first element with the given name.
func (a *Axis) Find(name string) *Element {
	for _, e := range a.elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Append adds an element with template t. An empty name is replaced by the
// kind name followed by a sequence number that is unique within the axis.
func (a *Axis) Append(name, description string, t Template) *Element {
	if name == "" {
		a.seq++
		name = t.Kind().String() + strconv.Itoa(a.seq)
	}
	e := &Element{Name: name, Description: description, Template: t, Suffix: &Suffix{}}
	a.elements = append(a.elements, e)
	return e
}

func (a *Axis) AppendText() *Element {
	return a.Append("", "", Text{})
}

func (a *Axis) AppendBase(label string) *Element {
	return a.Append("", label, Base{Label: label})
}

func (a *Axis) AppendUnweightedBase(label string) *Element {
	return a.Append("", label, UnweightedBase{Label: label})
}

func (a *Axis) AppendEffectiveBase() *Element {
	return a.Append("", "", EffectiveBase{})
}

func (a *Axis) AppendTotal() *Element {
	return a.Append("", "", Total{})
}

func (a *Axis) AppendSubTotal(name, label string) *Element {
	return a.Append(name, label, SubTotal{Label: label})
}

func (a *Axis) AppendMean(name, variable, label string) *Element {
	return a.Append(name, label, Mean{Variable: variable, Label: label})
}

func (a *Axis) AppendStdDev(name, variable, label string) *Element {
	return a.Append(name, label, StdDev{Variable: variable, Label: label})
}

func (a *Axis) AppendStdErr(name, variable, label string) *Element {
	return a.Append(name, label, StdErr{Variable: variable, Label: label})
}

func (a *Axis) AppendMin(name, variable, label string) *Element {
	return a.Append(name, label, Min{Variable: variable, Label: label})
}

func (a *Axis) AppendMax(name, variable, label string) *Element {
	return a.Append(name, label, Max{Variable: variable, Label: label})
}

func (a *Axis) AppendNet(name, description string, codes ...string) *Element {
	return a.Append(name, description, Net{Codes: codes})
}

func (a *Axis) AppendCombine(name, description string, codes ...string) *Element {
	return a.Append(name, description, Combine{Codes: codes})
}

func (a *Axis) AppendExpression(name, description, expr string) *Element {
	return a.Append(name, description, Expression{Expr: expr})
}

func (a *Axis) AppendNumeric(name, variable, label string) *Element {
	return a.Append(name, label, Numeric{Variable: variable, Label: label})
}

func (a *Axis) AppendDerived(name, description, expr string) *Element {
	return a.Append(name, description, Derived{Expr: expr})
}

func (a *Axis) AppendSum(name, variable, label string) *Element {
	return a.Append(name, label, Sum{Variable: variable, Label: label})
}

func (a *Axis) AppendMedian(name, variable, label string) *Element {
	return a.Append(name, label, Median{Variable: variable, Label: label})
}

func (a *Axis) AppendPercentile(name, variable string, cutoff float64, label string) *Element {
	return a.Append(name, label, Percentile{Variable: variable, Cutoff: cutoff, Label: label})
}

func (a *Axis) AppendMode(name, variable, label string) *Element {
	return a.Append(name, label, Mode{Variable: variable, Label: label})
}

func (a *Axis) AppendNtd() *Element {
	return a.Append("", "", Ntd{})
}

// String renders the axis expression without element suffixes.
func (a *Axis) String() string {
	return a.render((*Element).String)
}

// QualifiedString renders the axis expression with element suffixes.
func (a *Axis) QualifiedString() string {
	return a.render((*Element).QualifiedString)
}

func (a *Axis) render(element func(*Element) string) string {
	parts := make([]string, len(a.elements))
	for i, e := range a.elements {
		parts[i] = element(e)
	}
	body := "{" + strings.Join(parts, ",") + "}"
	if a.Type == AxisTable {
		return "axis(" + body + ")"
	}
	return body
}
