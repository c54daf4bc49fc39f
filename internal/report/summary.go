package report

import (
	"math"

	"Cascade/internal/chart"
	"Cascade/internal/model"
)

// Summarize derives display statistics from computed entries.
func Summarize(entries []model.Entry) model.Summary {
	sum := model.Summary{NetTotal: chart.NetTotal(entries)}

	for _, e := range entries {
		if e.IsTotal {
			continue
		}
		if e.Y > 0 {
			sum.Rises++
		} else if e.Y < 0 {
			sum.Drops++
		}
	}

	if rise, ok := chart.LargestRise(entries); ok {
		sum.LargestRiseX = rise.X
		sum.LargestRiseY = rise.Y
	}
	if drop, ok := chart.LargestDrop(entries); ok {
		sum.LargestDropX = drop.X
		sum.LargestDropY = drop.Y
	}

	if min, max, err := chart.Domain(entries); err == nil {
		sum.DomainMin = min
		sum.DomainMax = max
	}

	return sum
}

// AlertLevels maps the ratio of |net-total change| to the configured
// threshold onto a severity label.
var AlertLevels = []struct {
	MinRatio float64
	Level    string
}{
	{3.0, "critical"},
	{1.5, "major"},
	{1.0, "minor"},
}

// ClassifyDelta returns the alert level for a net-total change relative to
// the threshold, or "" when no alert should fire. A non-positive threshold
// disables alerting; NaN deltas never alert.
func ClassifyDelta(delta, threshold float64) string {
	if threshold <= 0 || math.IsNaN(delta) {
		return ""
	}
	ratio := math.Abs(delta) / threshold
	for _, l := range AlertLevels {
		if ratio >= l.MinRatio {
			return l.Level
		}
	}
	return ""
}
