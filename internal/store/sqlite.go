// Package store persists generated layouts in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/samdwyer/dungeonlayout/internal/layout"
)

// ErrNotFound is returned when no layout has the requested ID.
var ErrNotFound = errors.New("layout not found")

//go:embed schema.sql
var schema string

// timeLayout keeps created_at fixed-width so it sorts as text.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Summary describes a stored layout without its geometry.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Seed      int64     `json:"seed"`
	Preset    string    `json:"preset"`
	Rooms     int       `json:"rooms"`
	MainRooms int       `json:"mainRooms"`
	Corridors int       `json:"corridors"`
	CreatedAt time.Time `json:"createdAt"`
}

// Record is a stored layout.
type Record struct {
	Summary
	Layout layout.Layout `json:"layout"`
}

// ============================================================
// SQLite Repository
// ============================================================

// Store reads and writes layouts.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New wraps an open database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Init creates the schema if it is missing.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Save stores l under a fresh ID.
func (s *Store) Save(ctx context.Context, preset string, l layout.Layout) (*Record, error) {
	body, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	rec := &Record{
		Summary: Summary{
			ID:        uuid.New(),
			Seed:      l.Seed,
			Preset:    preset,
			Rooms:     len(l.Rooms),
			MainRooms: l.MainRoomCount(),
			Corridors: len(l.Corridors),
			CreatedAt: s.now().UTC().Truncate(time.Millisecond),
		},
		Layout: l,
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO layouts (id, seed, preset, rooms, main_rooms, corridors, created_at, body)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `,
		rec.ID.String(),
		rec.Seed,
		rec.Preset,
		rec.Rooms,
		rec.MainRooms,
		rec.Corridors,
		rec.CreatedAt.Format(timeLayout),
		string(body),
	)
	if err != nil {
		return nil, fmt.Errorf("insert layout: %w", err)
	}
	return rec, nil
}

// Get returns the layout with the given ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, seed, preset, rooms, main_rooms, corridors, created_at, body
        FROM layouts
        WHERE id = ?
    `, id.String())

	var (
		rec     Record
		rawID   string
		created string
		body    string
	)
	if err := row.Scan(&rawID, &rec.Seed, &rec.Preset, &rec.Rooms, &rec.MainRooms, &rec.Corridors, &created, &body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := fillSummary(&rec.Summary, rawID, created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(body), &rec.Layout); err != nil {
		return nil, fmt.Errorf("decode layout %s: %w", rawID, err)
	}
	return &rec, nil
}

// List returns up to limit summaries, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, seed, preset, rooms, main_rooms, corridors, created_at
        FROM layouts
        ORDER BY created_at DESC, rowid DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var (
			sum     Summary
			rawID   string
			created string
		)
		if err := rows.Scan(&rawID, &sum.Seed, &sum.Preset, &sum.Rooms, &sum.MainRooms, &sum.Corridors, &created); err != nil {
			return nil, err
		}
		if err := fillSummary(&sum, rawID, created); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func fillSummary(sum *Summary, rawID, created string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("parse id %q: %w", rawID, err)
	}
	at, err := time.Parse(timeLayout, created)
	if err != nil {
		return fmt.Errorf("parse created_at %q: %w", created, err)
	}
	sum.ID = id
	sum.CreatedAt = at
	return nil
}

// OpenSQLite opens the database at dbPath, creating its directory.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
