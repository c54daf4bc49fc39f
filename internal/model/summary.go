package model

// Summary holds derived statistics over a dataset's entries.
type Summary struct {
	NetTotal     float64 `json:"net_total"`
	Rises        int     `json:"rises"`
	Drops        int     `json:"drops"`
	LargestRiseX string  `json:"largest_rise_x,omitempty"`
	LargestRiseY float64 `json:"largest_rise_y"`
	LargestDropX string  `json:"largest_drop_x,omitempty"`
	LargestDropY float64 `json:"largest_drop_y"`
	DomainMin    float64 `json:"domain_min"`
	DomainMax    float64 `json:"domain_max"`
}
