// Package catalog records generated planets in a SQLite database so runs can
// be listed and reproduced later.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Faultbox/planetgen/internal/planet"
)

// ErrNotFound is returned when no entry has the requested ID.
var ErrNotFound = errors.New("catalog entry not found")

// Entry is one recorded planet.
type Entry struct {
	ID          uuid.UUID         `json:"id"`
	SystemSeed  *int64            `json:"system_seed,omitempty"`
	Descriptor  planet.Descriptor `json:"descriptor"`
	Temperature float64           `json:"temperature"`
	Stats       planet.Stats      `json:"stats"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Store is a SQLite-backed catalog.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path. Use ":memory:" for a
// throwaway catalog.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: creating tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS planets (
		id TEXT PRIMARY KEY,
		system_seed INTEGER,
		seed INTEGER NOT NULL,
		descriptor TEXT NOT NULL,
		temperature REAL NOT NULL,
		triangles INTEGER NOT NULL,
		chunks INTEGER NOT NULL,
		placements INTEGER NOT NULL,
		stats TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_planets_seed ON planets(seed);
	CREATE INDEX IF NOT EXISTS idx_planets_created ON planets(created_at);
	CREATE INDEX IF NOT EXISTS idx_planets_system ON planets(system_seed);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a generated planet. systemSeed is nil for stand-alone
// planets.
func (s *Store) Record(ctx context.Context, p *planet.Planet, systemSeed *int64) (*Entry, error) {
	desc, err := json.Marshal(p.Descriptor)
	if err != nil {
		return nil, fmt.Errorf("catalog: encoding descriptor: %w", err)
	}
	stats, err := json.Marshal(p.Stats)
	if err != nil {
		return nil, fmt.Errorf("catalog: encoding stats: %w", err)
	}

	e := &Entry{
		ID:          p.ID,
		SystemSeed:  systemSeed,
		Descriptor:  p.Descriptor,
		Temperature: p.Temperature,
		Stats:       p.Stats,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO planets
			(id, system_seed, seed, descriptor, temperature, triangles, chunks, placements, stats, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID.String(), systemSeed, p.Descriptor.Seed, string(desc), p.Temperature,
		p.Stats.Triangles, p.Stats.Chunks, p.Stats.PlacementCount(), string(stats), e.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("catalog: inserting %s: %w", e.ID, err)
	}
	return e, nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, system_seed, descriptor, temperature, stats, created_at
		FROM planets WHERE id = ?
	`, id.String())

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, err
}

// List returns up to limit entries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, system_seed, descriptor, temperature, stats, created_at
		FROM planets ORDER BY created_at DESC, rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: listing: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of recorded planets.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM planets`).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		idStr      string
		systemSeed sql.NullInt64
		desc       string
		stats      string
		created    int64
		e          Entry
	)
	if err := row.Scan(&idStr, &systemSeed, &desc, &e.Temperature, &stats, &created); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("catalog: bad id %q: %w", idStr, err)
	}
	e.ID = id
	if systemSeed.Valid {
		seed := systemSeed.Int64
		e.SystemSeed = &seed
	}
	if err := json.Unmarshal([]byte(desc), &e.Descriptor); err != nil {
		return nil, fmt.Errorf("catalog: decoding descriptor of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(stats), &e.Stats); err != nil {
		return nil, fmt.Errorf("catalog: decoding stats of %s: %w", id, err)
	}
	e.CreatedAt = time.Unix(created, 0).UTC()
	return &e, nil
}
