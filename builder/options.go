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

package builder

import (
	"fmt"
	"strings"

	"github.com/samply/axisctl/codes"
	"github.com/samply/axisctl/config"
	"github.com/samply/axisctl/util"
)

// LayoutPolicy places top/bottom box groups and the NPS element relative to
// the category range and the sigma subtotal.
type LayoutPolicy int

const (
	BeforeAllCategory LayoutPolicy = iota
	BetweenAllCategoryAndSigma
	AfterSigma
)

var layoutPolicyNames = []string{"BeforeAllCategory", "BetweenAllCategoryAndSigma", "AfterSigma"}

func (p LayoutPolicy) String() string {
	if p < 0 || int(p) >= len(layoutPolicyNames) {
		return fmt.Sprintf("LayoutPolicy(%d)", int(p))
	}
	return layoutPolicyNames[p]
}

// ParseLayoutPolicy parses the names returned by LayoutPolicy.String, ignoring
// case.
func ParseLayoutPolicy(s string) (LayoutPolicy, error) {
	for i, name := range layoutPolicyNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return LayoutPolicy(i), nil
		}
	}
	return BeforeAllCategory, fmt.Errorf("unknown layout policy `%s`, must be one of: %s", s, strings.Join(layoutPolicyNames, ", "))
}

// GroupLayoutStrategy decides how the groups of a netted axis are rendered.
type GroupLayoutStrategy int

const (
	// StandardNet renders every group as a net in input order, followed by
	// the category range.
	StandardNet GroupLayoutStrategy = iota
	CombineBeforeAllCategory
	CombineBetweenAllCategoryAndSigma
	CombineAfterSigma
)

var groupLayoutNames = []string{"StandardNet", "CombineBeforeAllCategory", "CombineBetweenAllCategoryAndSigma", "CombineAfterSigma"}

func (s GroupLayoutStrategy) String() string {
	if s < 0 || int(s) >= len(groupLayoutNames) {
		return fmt.Sprintf("GroupLayoutStrategy(%d)", int(s))
	}
	return groupLayoutNames[s]
}

// ParseGroupLayoutStrategy parses the names returned by
// GroupLayoutStrategy.String, ignoring case.
func ParseGroupLayoutStrategy(s string) (GroupLayoutStrategy, error) {
	for i, name := range groupLayoutNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return GroupLayoutStrategy(i), nil
		}
	}
	return StandardNet, fmt.Errorf("unknown group layout `%s`, must be one of: %s", s, strings.Join(groupLayoutNames, ", "))
}

// policy returns the seam a combine strategy anchors at.
func (s GroupLayoutStrategy) policy() LayoutPolicy {
	switch s {
	case CombineBetweenAllCategoryAndSigma:
		return BetweenAllCategoryAndSigma
	case CombineAfterSigma:
		return AfterSigma
	default:
		return BeforeAllCategory
	}
}

// Options configure an Operator.
type Options struct {
	LayoutPolicy                LayoutPolicy
	GroupLayout                 GroupLayoutStrategy
	AddSigma                    bool
	SigmaLabel                  string
	BaseLabelPrefix             string
	NetAheadLabel               string
	NpsTopBoxSize               int
	NpsBottomBoxSize            int
	BlankSeparatorBetweenGroups bool
	BoxDirectionReversed        bool
	Separators                  codes.Separators
}

func DefaultOptions() Options {
	return Options{
		LayoutPolicy:     BeforeAllCategory,
		GroupLayout:      StandardNet,
		AddSigma:         true,
		SigmaLabel:       "Sigma",
		BaseLabelPrefix:  "Base : ",
		NpsTopBoxSize:    2,
		NpsBottomBoxSize: 7,
		Separators:       codes.DefaultSeparators(),
	}
}

// OptionsFromConfig starts with DefaultOptions and overrides every value
// present in l. Values of the wrong type or with invalid content are reported
// to sink and ignored.
func OptionsFromConfig(l config.Lookup, sink util.Sink) Options {
	if sink == nil {
		sink = util.Discard
	}
	r := reader{lookup: l, sink: sink}
	opts := DefaultOptions()

	r.flag(config.KeySigmaEnabled, &opts.AddSigma)
	r.text(config.KeySigmaLabel, &opts.SigmaLabel)
	r.text(config.KeyBaseLabelPrefix, &opts.BaseLabelPrefix)
	r.text(config.KeyNetAheadLabel, &opts.NetAheadLabel)
	r.flag(config.KeyBoxReversed, &opts.BoxDirectionReversed)
	r.flag(config.KeyGroupBlankSeparator, &opts.BlankSeparatorBetweenGroups)
	r.positiveInt(config.KeyNpsTopBox, &opts.NpsTopBoxSize)
	r.positiveInt(config.KeyNpsBottomBox, &opts.NpsBottomBoxSize)
	r.separator(config.KeyLabelSeparator, &opts.Separators.Label)
	r.separator(config.KeyCodeSeparator, &opts.Separators.Code)
	r.separator(config.KeyRangeSeparator, &opts.Separators.Range)

	var policy string
	if r.text(config.KeyBoxLayout, &policy) {
		if p, err := ParseLayoutPolicy(policy); err != nil {
			sink.Warning(util.ReasonInvalidConfig, "config key %s: %s", config.KeyBoxLayout, err.Error())
		} else {
			opts.LayoutPolicy = p
		}
	}
	var strategy string
	if r.text(config.KeyGroupLayout, &strategy) {
		if s, err := ParseGroupLayoutStrategy(strategy); err != nil {
			sink.Warning(util.ReasonInvalidConfig, "config key %s: %s", config.KeyGroupLayout, err.Error())
		} else {
			opts.GroupLayout = s
		}
	}
	return opts
}

type reader struct {
	lookup config.Lookup
	sink   util.Sink
}

// typed reports whether key is present with type T and stores it in dst.
func typed[T any](r reader, key string, dst *T) bool {
	v, ok := config.TryGet[T](r.lookup, key)
	if ok {
		*dst = v
		return true
	}
	if r.lookup != nil {
		if raw, present := r.lookup.Get(key); present {
			r.sink.Warning(util.ReasonInvalidConfig, "config key %s has the unexpected type %s", key, fmt.Sprintf("%T", raw))
		}
	}
	return false
}

func (r reader) text(key string, dst *string) bool {
	return typed(r, key, dst)
}

func (r reader) flag(key string, dst *bool) bool {
	return typed(r, key, dst)
}

func (r reader) positiveInt(key string, dst *int) {
	var n int
	if !typed(r, key, &n) {
		return
	}
	if n <= 0 {
		r.sink.Warning(util.ReasonInvalidConfig, "config key %s must be positive, got %s", key, fmt.Sprint(n))
		return
	}
	*dst = n
}

func (r reader) separator(key string, dst *string) {
	var sep string
	if !typed(r, key, &sep) {
		return
	}
	if sep == "" || strings.Contains(sep, "\n") {
		r.sink.Warning(util.ReasonInvalidConfig, "config key %s must be a non-empty single line separator", key)
		return
	}
	*dst = sep
}
