// Package sqlite persists board snapshots so the CLI can track an
// iteration across invocations. The store keeps a full picture of one
// board: its columns, the iteration's cards with their placements, and
// the pending undo record.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/sprintboard/pkg/board"
)

// DBFileName is the database file created under the data directory.
const DBFileName = "sprintboard.db"

// Store lifecycle and snapshot errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
	ErrNoSnapshot  = errors.New("no board snapshot saved")
)

// Store reads and writes board snapshots in a SQLite database.
type Store struct {
	mu   sync.Mutex
	open bool
	db   *sql.DB
}

// NewStore creates an unopened store; call Open before use.
func NewStore() *Store {
	return &Store{}
}

// Open creates dataDir if needed, opens the database file inside it,
// and initializes the schema. Returns ErrAlreadyOpen if called while
// open.
func (s *Store) Open(dataDir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return ErrAlreadyOpen
	}

	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("initialize schema: %w", err)
		}
	}

	s.db = db
	s.open = true
	return nil
}

// Close releases the database handle. Idempotent: closing a closed
// store succeeds.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	err := s.db.Close()
	s.db = nil
	return err
}

// HasSnapshot reports whether a board snapshot has been saved.
func (s *Store) HasSnapshot() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return false, ErrStoreClosed
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM columns").Scan(&n); err != nil {
		return false, fmt.Errorf("count columns: %w", err)
	}
	return n > 0, nil
}

// SaveSnapshot replaces the stored snapshot with the current state of
// b and it, in one transaction. Entities without an ID are assigned
// one.
func (s *Store) SaveSnapshot(b *board.Board, it *board.Iteration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"last_move", "cards", "columns"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, col := range b.Columns() {
		if col.ID == "" {
			col.ID = generateID()
		}
		var limit any
		if l, ok := col.PointsLimit(); ok {
			limit = l
		}
		_, err := tx.Exec(
			"INSERT INTO columns (column_id, name, type, points_limit, ordinal) VALUES (?, ?, ?, ?, ?)",
			col.ID, col.Name, string(col.Type), limit, i,
		)
		if err != nil {
			return fmt.Errorf("insert column %s: %w", col.Name, err)
		}
	}

	for i, card := range it.Cards() {
		if card.ID == "" {
			card.ID = generateID()
		}
		col := card.Column()
		if col == nil {
			// Members always carry a placement; guard anyway.
			return fmt.Errorf("card %s has no column", card.ID)
		}
		_, err := tx.Exec(
			"INSERT INTO cards (card_id, title, description, estimate, column_id, ordinal) VALUES (?, ?, ?, ?, ?, ?)",
			card.ID, card.Title, card.Description, card.Estimate(), col.ID, i,
		)
		if err != nil {
			return fmt.Errorf("insert card %s: %w", card.ID, err)
		}
	}

	if card, from, ok := it.LastMove(); ok {
		_, err := tx.Exec(
			"INSERT INTO last_move (card_id, column_id) VALUES (?, ?)",
			card.ID, from.ID,
		)
		if err != nil {
			return fmt.Errorf("insert last move: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot rebuilds the saved board and iteration. Entity identity
// is restored through stored IDs: the returned cards and columns are
// fresh objects wired back together the way they were saved. Returns
// ErrNoSnapshot when nothing has been saved.
func (s *Store) LoadSnapshot() (*board.Board, *board.Iteration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, nil, ErrStoreClosed
	}

	columns, byID, err := s.loadColumns()
	if err != nil {
		return nil, nil, err
	}
	if len(columns) == 0 {
		return nil, nil, ErrNoSnapshot
	}

	// A loaded snapshot goes through the same validation as a fresh
	// board; a tampered database cannot smuggle in an invalid one.
	b, err := board.NewBoard(columns...)
	if err != nil {
		return nil, nil, fmt.Errorf("rebuild board: %w", err)
	}

	placements, cardsByID, err := s.loadCards(byID)
	if err != nil {
		return nil, nil, err
	}

	undo, err := s.loadLastMove(cardsByID, byID)
	if err != nil {
		return nil, nil, err
	}

	it, err := board.RestoreIteration(b, placements, undo)
	if err != nil {
		return nil, nil, fmt.Errorf("rebuild iteration: %w", err)
	}
	return b, it, nil
}

// loadColumns hydrates all columns in ordinal order.
func (s *Store) loadColumns() ([]*board.Column, map[string]*board.Column, error) {
	rows, err := s.db.Query(
		"SELECT column_id, name, type, points_limit FROM columns ORDER BY ordinal")
	if err != nil {
		return nil, nil, fmt.Errorf("query columns: %w", err)
	}
	defer rows.Close()

	var columns []*board.Column
	byID := make(map[string]*board.Column)
	for rows.Next() {
		var id, name, typ string
		var limit sql.NullInt64
		if err := rows.Scan(&id, &name, &typ, &limit); err != nil {
			return nil, nil, fmt.Errorf("scan column: %w", err)
		}
		col, err := board.NewColumn(name, board.ColumnType(typ))
		if err != nil {
			return nil, nil, fmt.Errorf("hydrate column %s: %w", id, err)
		}
		col.ID = id
		if limit.Valid {
			if err := col.SetPointsLimit(int(limit.Int64)); err != nil {
				return nil, nil, fmt.Errorf("hydrate column %s: %w", id, err)
			}
		}
		columns = append(columns, col)
		byID[id] = col
	}
	return columns, byID, rows.Err()
}

// loadCards hydrates all cards in ordinal order and resolves their
// column placements.
func (s *Store) loadCards(columns map[string]*board.Column) ([]board.Placement, map[string]*board.Card, error) {
	rows, err := s.db.Query(
		"SELECT card_id, title, description, estimate, column_id FROM cards ORDER BY ordinal")
	if err != nil {
		return nil, nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	var placements []board.Placement
	byID := make(map[string]*board.Card)
	for rows.Next() {
		var id, title, description, columnID string
		var estimate int
		if err := rows.Scan(&id, &title, &description, &estimate, &columnID); err != nil {
			return nil, nil, fmt.Errorf("scan card: %w", err)
		}
		card, err := board.NewCard(title, description, estimate)
		if err != nil {
			return nil, nil, fmt.Errorf("hydrate card %s: %w", id, err)
		}
		card.ID = id
		col, ok := columns[columnID]
		if !ok {
			return nil, nil, fmt.Errorf("card %s references unknown column %s", id, columnID)
		}
		placements = append(placements, board.Placement{Card: card, Column: col})
		byID[id] = card
	}
	return placements, byID, rows.Err()
}

// loadLastMove hydrates the pending undo record, if one was saved.
func (s *Store) loadLastMove(cards map[string]*board.Card, columns map[string]*board.Column) (*board.Placement, error) {
	var cardID, columnID string
	err := s.db.QueryRow("SELECT card_id, column_id FROM last_move").Scan(&cardID, &columnID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last move: %w", err)
	}

	card, ok := cards[cardID]
	if !ok {
		return nil, fmt.Errorf("last move references unknown card %s", cardID)
	}
	col, ok := columns[columnID]
	if !ok {
		return nil, fmt.Errorf("last move references unknown column %s", columnID)
	}
	return &board.Placement{Card: card, Column: col}, nil
}

// generateID returns a UUID v7 string, falling back to v4 if the
// system clock misbehaves.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
