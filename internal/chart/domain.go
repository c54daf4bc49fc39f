package chart

import (
	"errors"
	"math"

	"Cascade/internal/model"
)

// Domain scans all entries and returns the lowest and highest interval bound,
// for axis scaling.
func Domain(entries []model.Entry) (min, max float64, err error) {
	if len(entries) == 0 {
		return 0, 0, errors.New("no entries provided")
	}
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, e := range entries {
		lo, hi := e.Start, e.End
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo < min {
			min = lo
		}
		if hi > max {
			max = hi
		}
	}
	return min, max, nil
}

// NetTotal returns the cumulative sum across the non-total entries.
func NetTotal(entries []model.Entry) float64 {
	sum := 0.0
	for _, e := range entries {
		if e.IsTotal {
			continue
		}
		sum += e.Y
	}
	return sum
}

// LargestRise returns the non-total entry with the greatest positive value.
// The second return is false when no entry rises.
func LargestRise(entries []model.Entry) (model.Entry, bool) {
	var best model.Entry
	found := false
	for _, e := range entries {
		if e.IsTotal || e.Y <= 0 {
			continue
		}
		if !found || e.Y > best.Y {
			best = e
			found = true
		}
	}
	return best, found
}

// LargestDrop returns the non-total entry with the most negative value.
// The second return is false when no entry drops.
func LargestDrop(entries []model.Entry) (model.Entry, bool) {
	var best model.Entry
	found := false
	for _, e := range entries {
		if e.IsTotal || e.Y >= 0 {
			continue
		}
		if !found || e.Y < best.Y {
			best = e
			found = true
		}
	}
	return best, found
}
