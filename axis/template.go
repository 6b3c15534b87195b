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

// Kind identifies the element kind of a Template.
type Kind int

const (
	KindText Kind = iota
	KindBase
	KindUnweightedBase
	KindEffectiveBase
	KindTotal
	KindSubTotal
	KindMean
	KindStdDev
	KindStdErr
	KindMin
	KindMax
	KindNet
	KindCombine
	KindExpression
	KindNumeric
	KindDerived
	KindSum
	KindMedian
	KindPercentile
	KindMode
	KindNtd
)

var kindNames = [...]string{
	KindText:           "text",
	KindBase:           "base",
	KindUnweightedBase: "unweightedbase",
	KindEffectiveBase:  "effectivebase",
	KindTotal:          "total",
	KindSubTotal:       "subtotal",
	KindMean:           "mean",
	KindStdDev:         "stddev",
	KindStdErr:         "stderr",
	KindMin:            "min",
	KindMax:            "max",
	KindNet:            "net",
	KindCombine:        "combine",
	KindExpression:     "expression",
	KindNumeric:        "numeric",
	KindDerived:        "derived",
	KindSum:            "sum",
	KindMedian:         "median",
	KindPercentile:     "percentile",
	KindMode:           "mode",
	KindNtd:            "ntd",
}

// String returns the function name the kind has in an axis expression.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Template is the element specific part of an axis element. The set of
// implementations is closed; every variant renders itself.
type Template interface {
	Kind() Kind
	String() string
	template()
}

type sealed struct{}

func (sealed) template() {}

// Text is a blank row or column.
type Text struct{ sealed }

func (Text) Kind() Kind     { return KindText }
func (Text) String() string { return "text()" }

type Base struct {
	sealed
	Label string
}

func (Base) Kind() Kind       { return KindBase }
func (t Base) String() string { return call("base", optionalLiteral(t.Label)...) }

type UnweightedBase struct {
	sealed
	Label string
}

func (UnweightedBase) Kind() Kind { return KindUnweightedBase }
func (t UnweightedBase) String() string {
	return call("unweightedbase", optionalLiteral(t.Label)...)
}

type EffectiveBase struct{ sealed }

func (EffectiveBase) Kind() Kind     { return KindEffectiveBase }
func (EffectiveBase) String() string { return "effectivebase()" }

type Total struct{ sealed }

func (Total) Kind() Kind     { return KindTotal }
func (Total) String() string { return "total()" }

type SubTotal struct {
	sealed
	Label string
}

func (SubTotal) Kind() Kind       { return KindSubTotal }
func (t SubTotal) String() string { return call("subtotal", optionalLiteral(t.Label)...) }

type Mean struct {
	sealed
	Variable, Label string
}

func (Mean) Kind() Kind       { return KindMean }
func (t Mean) String() string { return statistic("mean", t.Variable, t.Label) }

type StdDev struct {
	sealed
	Variable, Label string
}

func (StdDev) Kind() Kind       { return KindStdDev }
func (t StdDev) String() string { return statistic("stddev", t.Variable, t.Label) }

type StdErr struct {
	sealed
	Variable, Label string
}

func (StdErr) Kind() Kind       { return KindStdErr }
func (t StdErr) String() string { return statistic("stderr", t.Variable, t.Label) }

type Min struct {
	sealed
	Variable, Label string
}

func (Min) Kind() Kind       { return KindMin }
func (t Min) String() string { return statistic("min", t.Variable, t.Label) }

type Max struct {
	sealed
	Variable, Label string
}

func (Max) Kind() Kind       { return KindMax }
func (t Max) String() string { return statistic("max", t.Variable, t.Label) }

// Net shows the codes as one aggregate next to the individual categories.
// The code `..` stands for all categories.
type Net struct {
	sealed
	Codes []string
}

func (Net) Kind() Kind       { return KindNet }
func (t Net) String() string { return "net(" + codeList(t.Codes) + ")" }

// Combine collapses the codes into a single element.
type Combine struct {
	sealed
	Codes []string
}

func (Combine) Kind() Kind       { return KindCombine }
func (t Combine) String() string { return "combine(" + codeList(t.Codes) + ")" }

type Expression struct {
	sealed
	Expr string
}

func (Expression) Kind() Kind       { return KindExpression }
func (t Expression) String() string { return call("expression", literal(t.Expr)) }

type Numeric struct {
	sealed
	Variable, Label string
}

func (Numeric) Kind() Kind       { return KindNumeric }
func (t Numeric) String() string { return statistic("numeric", t.Variable, t.Label) }

// Derived is computed from other elements of the same axis, referenced by
// name.
type Derived struct {
	sealed
	Expr string
}

func (Derived) Kind() Kind       { return KindDerived }
func (t Derived) String() string { return call("derived", literal(t.Expr)) }

type Sum struct {
	sealed
	Variable, Label string
}

func (Sum) Kind() Kind       { return KindSum }
func (t Sum) String() string { return statistic("sum", t.Variable, t.Label) }

type Median struct {
	sealed
	Variable, Label string
}

func (Median) Kind() Kind       { return KindMedian }
func (t Median) String() string { return statistic("median", t.Variable, t.Label) }

type Percentile struct {
	sealed
	Variable string
	Cutoff   float64
	Label    string
}

func (Percentile) Kind() Kind { return KindPercentile }
func (t Percentile) String() string {
	args := []string{t.Variable, strconv.FormatFloat(t.Cutoff, 'f', -1, 64)}
	return call("percentile", append(args, optionalLiteral(t.Label)...)...)
}

type Mode struct {
	sealed
	Variable, Label string
}

func (Mode) Kind() Kind       { return KindMode }
func (t Mode) String() string { return statistic("mode", t.Variable, t.Label) }

type Ntd struct{ sealed }

func (Ntd) Kind() Kind     { return KindNtd }
func (Ntd) String() string { return "ntd()" }

func call(fn string, args ...string) string {
	return fn + "(" + strings.Join(args, ", ") + ")"
}

func statistic(fn, variable, label string) string {
	return call(fn, append([]string{variable}, optionalLiteral(label)...)...)
}

func codeList(codes []string) string {
	return "{" + strings.Join(codes, ",") + "}"
}

// literal quotes s with single quotes; embedded quotes are doubled.
func literal(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func optionalLiteral(s string) []string {
	if s == "" {
		return nil
	}
	return []string{literal(s)}
}
