// Package puzzles persists generated puzzles in a SQLite database.
package puzzles

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Puzzle is one stored puzzle.
type Puzzle struct {
	ID        string    `json:"id"`
	Variant   string    `json:"variant"`
	Clues     string    `json:"clues"` // N^2 characters, '0' for empty cells
	Givens    int       `json:"givens"`
	CreatedAt time.Time `json:"created_at"`
}

// Store handles SQLite database operations for puzzle storage.
type Store struct {
	db *sql.DB
}

// Open creates a Store backed by the database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// migrate creates the schema if it does not exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id TEXT PRIMARY KEY,
		variant TEXT NOT NULL,
		clues TEXT NOT NULL,
		givens INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_puzzles_variant ON puzzles(variant);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_puzzles_clues ON puzzles(variant, clues);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save stores a puzzle and returns the stored record.
func (s *Store) Save(ctx context.Context, variant, clues string) (Puzzle, error) {
	givens := 0
	for i := 0; i < len(clues); i++ {
		if clues[i] != '0' {
			givens++
		}
	}

	puzzle := Puzzle{
		ID:        uuid.New().String(),
		Variant:   variant,
		Clues:     clues,
		Givens:    givens,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO puzzles (id, variant, clues, givens, created_at) VALUES (?, ?, ?, ?, ?)`,
		puzzle.ID, puzzle.Variant, puzzle.Clues, puzzle.Givens, puzzle.CreatedAt)
	if err != nil {
		return Puzzle{}, fmt.Errorf("insert puzzle: %w", err)
	}
	return puzzle, nil
}

// Get returns the puzzle with the given id.
func (s *Store) Get(ctx context.Context, id string) (Puzzle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, variant, clues, givens, created_at FROM puzzles WHERE id = ?`, id)

	var puzzle Puzzle
	if err := row.Scan(&puzzle.ID, &puzzle.Variant, &puzzle.Clues, &puzzle.Givens, &puzzle.CreatedAt); err != nil {
		return Puzzle{}, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	return puzzle, nil
}

// List returns up to limit puzzles of the given variant, newest first. An
// empty variant matches everything.
func (s *Store) List(ctx context.Context, variant string, limit int) ([]Puzzle, error) {
	query := `SELECT id, variant, clues, givens, created_at FROM puzzles`
	args := []any{}
	if variant != "" {
		query += ` WHERE variant = ?`
		args = append(args, variant)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()

	var puzzles []Puzzle
	for rows.Next() {
		var puzzle Puzzle
		if err := rows.Scan(&puzzle.ID, &puzzle.Variant, &puzzle.Clues, &puzzle.Givens, &puzzle.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan puzzle: %w", err)
		}
		puzzles = append(puzzles, puzzle)
	}
	return puzzles, rows.Err()
}

// Count returns the number of stored puzzles.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM puzzles`).Scan(&count)
	return count, err
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
