package model

import "time"

// ChartState is the persisted set of latest datasets, keyed by name.
type ChartState struct {
	Datasets  map[string]*Dataset `json:"datasets"`
	UpdatedAt time.Time           `json:"updated_at"`
}
