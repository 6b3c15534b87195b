package util

import (
	"fmt"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
)

// ElementStatistics summarizes the element counts of a set of built axes.
type ElementStatistics struct {
	Min, Mean, Max float64
}

// CalculateElementStatistics calculates the ElementStatistics for the given
// element counts.
func CalculateElementStatistics(counts []float64) ElementStatistics {
	if len(counts) == 0 {
		return ElementStatistics{}
	}

	return ElementStatistics{
		Min:  floats.Min(counts),
		Mean: floats.Sum(counts) / float64(len(counts)),
		Max:  floats.Max(counts),
	}
}

// BatchStats collects what happened while building the axes of a project.
type BatchStats struct {
	Fields        int
	Skipped       int
	ElementCounts []float64
	Warnings      []Warning
	TotalBytesOut int64
	TotalDuration time.Duration
}

func (bs *BatchStats) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("Fields		[total, skipped]	%d, %d\n", bs.Fields, bs.Skipped))
	builder.WriteString(fmt.Sprintf("Axes		[total]			%d\n", len(bs.ElementCounts)))

	if len(bs.ElementCounts) > 0 {
		s := CalculateElementStatistics(bs.ElementCounts)
		builder.WriteString(fmt.Sprintf("Elements	[min, mean, max]	%.0f, %.2f, %.0f\n", s.Min, s.Mean, s.Max))
	}

	builder.WriteString(fmt.Sprintf("Warnings	[total]			%d\n", len(bs.Warnings)))
	builder.WriteString(fmt.Sprintf("Duration	[total]			%s\n", FmtDurationHumanReadable(bs.TotalDuration)))
	builder.WriteString(fmt.Sprintf("Bytes Out	[total]			%s\n", FmtBytesHumanReadable(float32(bs.TotalBytesOut))))

	if len(bs.Warnings) > 0 {
		builder.WriteString("\nWarnings:\n")
		builder.WriteString(Indent(2, FmtWarnings(bs.Warnings)))
	}

	return builder.String()
}

// FmtBytesHumanReadable takes an amount of bytes and returns them in a human readable form
// up to a unit of PiB.
func FmtBytesHumanReadable(bytes float32) string {
	units := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

	var unitIdx int
	for {
		if bytes <= 1024 || (unitIdx+1) > len(units)-1 {
			break
		}

		bytes = bytes / 1024
		unitIdx++
	}

	return fmt.Sprintf("%.2f %s", bytes, units[unitIdx])
}

// FmtDurationHumanReadable takes a duration and returns it in a human readable form.
// Durations under a minute get printed with millisecond precision, longer ones
// with second precision.
func FmtDurationHumanReadable(d time.Duration) string {
	if d.Milliseconds() < 60000 {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}
