package state

import (
	"log"
	"sort"
	"sync"

	"Cascade/internal/model"
)

// Manager holds the latest dataset per name with concurrency safety, backed
// by a JSON state file so a restart serves data before the first refresh.
type Manager struct {
	mu       sync.Mutex
	state    *model.ChartState
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
func NewManager(filePath string) (*Manager, error) {
	st, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	return &Manager{state: st, filePath: filePath}, nil
}

// Get returns the latest dataset with the given name.
func (m *Manager) Get(name string) (*model.Dataset, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ds, ok := m.state.Datasets[name]
	return ds, ok
}

// List returns all datasets sorted by name.
func (m *Manager) List() []*model.Dataset {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*model.Dataset, 0, len(m.state.Datasets))
	for _, ds := range m.state.Datasets {
		out = append(out, ds)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Update replaces the stored dataset and persists the state. It returns the
// net-total change against the previous snapshot; first is true when no
// previous snapshot existed, in which case delta is zero.
func (m *Manager) Update(ds *model.Dataset) (delta float64, first bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.state.Datasets[ds.Name]
	if ok {
		delta = ds.Summary.NetTotal - prev.Summary.NetTotal
	}
	m.state.Datasets[ds.Name] = ds

	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save chart state: %v", err)
	}
	return delta, !ok
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
