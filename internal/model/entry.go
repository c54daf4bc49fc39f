package model

import "time"

// Entry represents a single waterfall chart bar. Start and End are the base
// and tip of the bar in the running cumulative total; End may be less than
// Start when the value is negative. IsTotal marks the synthetic summary bar.
type Entry struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	X       string  `json:"x"`
	Y       float64 `json:"y"`
	IsTotal bool    `json:"isTotal,omitempty"`
}

// Dataset holds one fully computed waterfall chart.
type Dataset struct {
	Name       string    `json:"name"`
	Source     string    `json:"source"`
	Entries    []Entry   `json:"entries"`
	Summary    Summary   `json:"summary"`
	ComputedAt time.Time `json:"computed_at"`
}
