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

package config

// Keys understood by axisctl.
const (
	KeyAxisType            = "axis.type"
	KeyBaseLabelPrefix     = "axis.base.prefix"
	KeySigmaEnabled        = "axis.sigma.enabled"
	KeySigmaLabel          = "axis.sigma.label"
	KeyNetAheadLabel       = "axis.net.aheadLabel"
	KeyBoxLayout           = "axis.box.layout"
	KeyBoxReversed         = "axis.box.reversed"
	KeyBoxSizes            = "axis.box.sizes"
	KeyNpsTopBox           = "axis.nps.topBox"
	KeyNpsBottomBox        = "axis.nps.bottomBox"
	KeyGroupLayout         = "axis.group.layout"
	KeyGroupBlankSeparator = "axis.group.blankSeparator"
	KeyLabelSeparator      = "groups.labelSeparator"
	KeyCodeSeparator       = "groups.codeSeparator"
	KeyRangeSeparator      = "groups.rangeSeparator"
)
