package state

import (
	"encoding/json"
	"os"
	"time"

	"Cascade/internal/model"
)

// LoadState reads chart state from a JSON file. Returns an empty state if the
// file doesn't exist.
func LoadState(filePath string) (*model.ChartState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.ChartState{Datasets: map[string]*model.Dataset{}}, nil
		}
		return nil, err
	}
	var st model.ChartState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	if st.Datasets == nil {
		st.Datasets = map[string]*model.Dataset{}
	}
	return &st, nil
}

// SaveState writes chart state to a JSON file.
func SaveState(filePath string, st *model.ChartState) error {
	st.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
