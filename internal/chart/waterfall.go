package chart

import "Cascade/internal/model"

// TotalLabel is the label of the synthetic trailing total bar.
const TotalLabel = "Total"

// Accessors extracts the label and value from an input row. Supplying the
// pair as function values keeps the calculator independent of row shape.
type Accessors[R any] struct {
	X func(R) string
	Y func(R) float64
}

// WaterfallEntries computes waterfall chart entries from rows in input order.
// Each bar spans Start to End in a running cumulative total, with
// End = Start + Y; a synthetic Total bar spanning 0 to the final sum is
// appended. Rows are neither validated nor reordered, negative values simply
// produce bars pointing down, and NaN values propagate through the
// arithmetic. Empty input yields the zero Total bar alone.
func WaterfallEntries[R any](rows []R, acc Accessors[R]) []model.Entry {
	entries := make([]model.Entry, 0, len(rows)+1)
	total := 0.0
	for _, row := range rows {
		y := acc.Y(row)
		entries = append(entries, model.Entry{
			Start: total,
			End:   total + y,
			X:     acc.X(row),
			Y:     y,
		})
		total += y
	}
	return append(entries, model.Entry{
		Start:   0,
		End:     total,
		X:       TotalLabel,
		Y:       total,
		IsTotal: true,
	})
}
