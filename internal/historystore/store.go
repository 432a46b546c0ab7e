// Package historystore persists simulation run metadata, population
// snapshots and history events to a sqlite database, so runs can be
// compared after the process exits. It only writes; nothing here loads a
// run back into a simulation.
package historystore

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/evoterra/evoterra/internal/history"
	"github.com/evoterra/evoterra/internal/sim"
)

// Store wraps a sqlite-backed connection for recording run history.
type Store struct {
	db    *sqlx.DB
	runID string
}

// Open creates (if needed) and opens the sqlite database at path,
// migrating its schema.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	seed INTEGER NOT NULL,
	world_width INTEGER NOT NULL,
	world_height INTEGER NOT NULL,
	started_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
	run_id TEXT NOT NULL REFERENCES runs(id),
	tick INTEGER NOT NULL,
	total_population INTEGER NOT NULL,
	herbivore_count INTEGER NOT NULL,
	carnivore_count INTEGER NOT NULL,
	living_species INTEGER NOT NULL,
	recorded_at DATETIME NOT NULL,
	PRIMARY KEY (run_id, tick)
);

CREATE TABLE IF NOT EXISTS events (
	run_id TEXT NOT NULL REFERENCES runs(id),
	year INTEGER NOT NULL,
	kind INTEGER NOT NULL,
	importance INTEGER NOT NULL,
	description TEXT NOT NULL,
	nation_id INTEGER,
	culture_id INTEGER,
	religion_id INTEGER
);
CREATE INDEX IF NOT EXISTS events_by_nation ON events(run_id, nation_id);
`

// BeginRun records the start of a new simulation run.
func (s *Store) BeginRun(runID string, seed int64, width, height int) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, seed, world_width, world_height, started_at) VALUES (?, ?, ?, ?, ?)`,
		runID, seed, width, height, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	s.runID = runID
	return nil
}

// RecordSnapshot persists the simulation's current aggregate state as a
// snapshot row tied to the active run.
func (s *Store) RecordSnapshot(sim *sim.Simulation) error {
	if s.runID == "" {
		return fmt.Errorf("no active run: call BeginRun first")
	}

	herb, carn := 0, 0
	for _, c := range sim.Creatures {
		if c.Phenotype.IsHerbivore() {
			herb++
		} else if c.Phenotype.IsCarnivore() {
			carn++
		}
	}

	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO snapshots
			(run_id, tick, total_population, herbivore_count, carnivore_count, living_species, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.runID, sim.GetTick(), len(sim.Creatures), herb, carn,
		len(sim.Species.LivingSpecies()), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

// RecordEvent mirrors a single history event into the events table. This
// is a write-behind mirror only: the in-memory history.Manager stays the
// single source of truth the tick loop reads; this table exists so a
// host can run ad-hoc queries the in-memory secondary indices don't
// pre-compute, such as a nation's full event history across its
// lifetime even after the in-memory log has pruned older entries.
func (s *Store) RecordEvent(e history.Event) error {
	if s.runID == "" {
		return fmt.Errorf("no active run: call BeginRun first")
	}

	_, err := s.db.Exec(
		`INSERT INTO events (run_id, year, kind, importance, description, nation_id, culture_id, religion_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.runID, e.Year, int(e.Kind), e.Importance(), e.Description,
		nullableID(e.NationID), nullableID(e.CultureID), nullableID(e.ReligionID),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func nullableID(id uint64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}
