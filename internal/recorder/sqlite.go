package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists chart snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard tooling can read while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         TEXT NOT NULL,
			timestamp      INTEGER NOT NULL,
			dataset        TEXT NOT NULL,
			source         TEXT,
			entry_count    INTEGER,
			net_total      REAL,
			rises          INTEGER,
			drops          INTEGER,
			largest_rise_x TEXT,
			largest_rise_y REAL,
			largest_drop_x TEXT,
			largest_drop_y REAL,
			domain_min     REAL,
			domain_max     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id)`,

		`CREATE TABLE IF NOT EXISTS entries (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			position  INTEGER NOT NULL,
			x         TEXT,
			y         REAL,
			bar_start REAL,
			bar_end   REAL,
			is_total  INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_run ON entries(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSnapshot writes the snapshot row and all entry rows in one transaction.
func (r *SQLiteRecorder) RecordSnapshot(snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ds := snap.Dataset
	sum := ds.Summary

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO snapshots
		(run_id, timestamp, dataset, source, entry_count,
		 net_total, rises, drops,
		 largest_rise_x, largest_rise_y, largest_drop_x, largest_drop_y,
		 domain_min, domain_max)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		snap.RunID, ds.ComputedAt.Unix(), ds.Name, ds.Source, len(ds.Entries),
		sum.NetTotal, sum.Rises, sum.Drops,
		sum.LargestRiseX, sum.LargestRiseY, sum.LargestDropX, sum.LargestDropY,
		sum.DomainMin, sum.DomainMax,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO entries
		(run_id, position, x, y, bar_start, bar_end, is_total)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare entries: %w", err)
	}
	defer stmt.Close()

	for i, e := range ds.Entries {
		isTotal := 0
		if e.IsTotal {
			isTotal = 1
		}
		if _, err := stmt.Exec(snap.RunID, i, e.X, e.Y, e.Start, e.End, isTotal); err != nil {
			return fmt.Errorf("insert entry %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// PruneBefore deletes snapshots (and their entries) recorded before the cutoff.
func (r *SQLiteRecorder) PruneBefore(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := cutoff.Unix()

	res, err := r.db.Exec(
		`DELETE FROM entries WHERE run_id IN (SELECT run_id FROM snapshots WHERE timestamp < ?)`, ts)
	if err != nil {
		return 0, fmt.Errorf("prune entries: %w", err)
	}
	entryRows, _ := res.RowsAffected()

	res, err = r.db.Exec(`DELETE FROM snapshots WHERE timestamp < ?`, ts)
	if err != nil {
		return entryRows, fmt.Errorf("prune snapshots: %w", err)
	}
	snapRows, _ := res.RowsAffected()

	return entryRows + snapRows, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
