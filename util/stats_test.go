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
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateElementStatistics_emptySet(t *testing.T) {
	statistics := CalculateElementStatistics([]float64{})
	assert.Equal(t, ElementStatistics{}, statistics)
}

func TestCalculateElementStatistics(t *testing.T) {
	statistics := CalculateElementStatistics([]float64{10, 6, 8})
	assert.Equal(t, 6.0, statistics.Min)
	assert.Equal(t, 8.0, statistics.Mean)
	assert.Equal(t, 10.0, statistics.Max)
}

func TestBatchStats_String(t *testing.T) {
	t.Run("Empty BatchStats", func(t *testing.T) {
		bs := &BatchStats{}
		result := bs.String()

		assert.Contains(t, result, "Fields")
		assert.Contains(t, result, "Axes")
		assert.Contains(t, result, "Duration")
		assert.NotContains(t, result, "Elements")
		assert.NotContains(t, result, "Warnings:")
	})

	t.Run("BatchStats with element counts", func(t *testing.T) {
		bs := &BatchStats{
			Fields:        3,
			ElementCounts: []float64{7, 9, 11},
			TotalDuration: 1500 * time.Millisecond,
		}
		result := bs.String()

		assert.Contains(t, result, "7, 9.00, 11")
		assert.Contains(t, result, "1.5s")
	})

	t.Run("BatchStats with warnings", func(t *testing.T) {
		bs := &BatchStats{
			Warnings: []Warning{{Reason: ReasonInvalidBoxSize, Template: "box size 0 is invalid"}},
		}
		result := bs.String()

		assert.Contains(t, result, "Warnings:")
		assert.Contains(t, result, "  Reason      : InvalidBoxSize")
	})
}

func TestFmtBytesHumanReadable(t *testing.T) {
	byteUnitMappings := map[float32]string{
		1:                               "B",
		float32(10 * math.Pow(1024, 1)): "KiB",
		float32(10 * math.Pow(1024, 2)): "MiB",
		float32(10 * math.Pow(1024, 3)): "GiB",
		float32(10 * math.Pow(1024, 4)): "TiB",
		float32(10 * math.Pow(1024, 5)): "PiB",
		float32(10 * math.Pow(1024, 6)): "PiB",
	}

	for bytes, unit := range byteUnitMappings {
		t.Run(unit, func(t *testing.T) {
			humanReadableResult := FmtBytesHumanReadable(bytes)
			assert.True(t, strings.HasSuffix(humanReadableResult, unit))
		})
	}
}

func TestFmtDurationHumanReadable(t *testing.T) {
	durationFormatMappings := map[string]string{
		"0s512ms":   "512ms",
		"1012ms":    "1.012s",
		"1000ms":    "1s",
		"2800ms":    "2.8s",
		"60000ms":   "1m0s",
		"620000ms":  "10m20s",
		"3600000ms": "1h0m0s",
	}

	for duration, format := range durationFormatMappings {
		t.Run(format, func(t *testing.T) {
			d, _ := time.ParseDuration(duration)

			humanReadableResult := FmtDurationHumanReadable(d)
			assert.Equal(t, format, humanReadableResult)
		})
	}
}
