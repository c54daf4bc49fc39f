package recorder

import (
	"time"

	"Cascade/internal/model"

	"github.com/google/uuid"
)

// Snapshot is one recorded refresh of one dataset.
type Snapshot struct {
	RunID   string
	Dataset *model.Dataset
}

// NewSnapshot wraps a computed dataset with a fresh run id.
func NewSnapshot(ds *model.Dataset) *Snapshot {
	return &Snapshot{RunID: uuid.NewString(), Dataset: ds}
}

// Recorder persists historical chart data for analysis.
type Recorder interface {
	RecordSnapshot(snap *Snapshot) error
	PruneBefore(cutoff time.Time) (int64, error)
	Close() error
}
