// Shared helpers for integration tests.
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sprintboard/internal/sqlite"
	"github.com/mesh-intelligence/sprintboard/pkg/board"
)

// newOpenStore returns a store opened against a fresh temp data dir.
func newOpenStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore()
	require.NoError(t, store.Open(t.TempDir()))
	t.Cleanup(func() { store.Close() })
	return store
}

// newColumn builds a column or fails the test.
func newColumn(t *testing.T, name string, typ board.ColumnType) *board.Column {
	t.Helper()
	col, err := board.NewColumn(name, typ)
	require.NoError(t, err)
	return col
}

// newCard builds a card or fails the test.
func newCard(t *testing.T, title string, estimate int) *board.Card {
	t.Helper()
	card, err := board.NewCard(title, "", estimate)
	require.NoError(t, err)
	return card
}

// newStandardBoard builds a todo(starting) / doing(limit 10) /
// review / done board and its iteration.
func newStandardBoard(t *testing.T) (*board.Board, *board.Iteration) {
	t.Helper()
	todo := newColumn(t, "todo", board.ColumnStarting)
	doing := newColumn(t, "doing", board.ColumnNormal)
	require.NoError(t, doing.SetPointsLimit(10))
	review := newColumn(t, "review", board.ColumnNormal)
	done := newColumn(t, "done", board.ColumnDone)

	b, err := board.NewBoard(todo, doing, review, done)
	require.NoError(t, err)
	return b, board.NewIteration(b)
}
