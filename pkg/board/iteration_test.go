package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCard builds a card or fails the test.
func mustCard(t *testing.T, title string, estimate int) *Card {
	t.Helper()
	card, err := NewCard(title, "", estimate)
	require.NoError(t, err)
	return card
}

// newTestBoard builds a todo(starting) / doing / done board and its
// iteration.
func newTestBoard(t *testing.T) (*Board, *Iteration) {
	t.Helper()
	b, err := NewBoard(
		mustColumn(t, "todo", ColumnStarting),
		mustColumn(t, "doing", ColumnNormal),
		mustColumn(t, "done", ColumnDone),
	)
	require.NoError(t, err)
	return b, NewIteration(b)
}

func TestIterationAdd(t *testing.T) {
	b, it := newTestBoard(t)
	card := mustCard(t, "A", 5)

	require.NoError(t, it.Add(card))
	assert.Same(t, b.StartColumn(), card.Column(), "added cards enter the starting column")

	assert.ErrorIs(t, it.Add(card), ErrCardAlreadyAdded)

	// A field-identical card is a different entity and may be added.
	twin := mustCard(t, "A", 5)
	assert.NoError(t, it.Add(twin))
}

func TestIterationAddIgnoresStartingColumnLimit(t *testing.T) {
	start := mustLimitedColumn(t, "todo", ColumnStarting, 10)
	done := mustColumn(t, "done", ColumnDone)
	b, err := NewBoard(start, done)
	require.NoError(t, err)
	it := NewIteration(b)

	// Entry is never WIP-checked: 15 points fit into a 10 point column.
	require.NoError(t, it.Add(mustCard(t, "A", 5)))
	require.NoError(t, it.Add(mustCard(t, "B", 5)))
	require.NoError(t, it.Add(mustCard(t, "C", 5)))

	cards, err := it.CardsIn(start)
	require.NoError(t, err)
	assert.Len(t, cards, 3)
}

func TestIterationRemove(t *testing.T) {
	b, it := newTestBoard(t)
	card := mustCard(t, "A", 3)

	assert.ErrorIs(t, it.Remove(card), ErrCardNotFound)

	require.NoError(t, it.Add(card))
	require.NoError(t, it.Remove(card))

	cards, err := it.CardsIn(b.StartColumn())
	require.NoError(t, err)
	assert.Empty(t, cards)

	// Removal does not clear the card's column assignment.
	assert.Same(t, b.StartColumn(), card.Column())

	assert.ErrorIs(t, it.Remove(card), ErrCardNotFound)
}

func TestIterationMove(t *testing.T) {
	b, it := newTestBoard(t)
	doing := b.Columns()[1]
	card := mustCard(t, "A", 5)
	require.NoError(t, it.Add(card))

	require.NoError(t, it.Move(card, doing))
	assert.Same(t, doing, card.Column())

	// Any-to-any movement is allowed, including straight back to start.
	require.NoError(t, it.Move(card, b.StartColumn()))
	assert.Same(t, b.StartColumn(), card.Column())
}

func TestIterationMoveErrors(t *testing.T) {
	b, it := newTestBoard(t)
	doing := b.Columns()[1]
	member := mustCard(t, "member", 2)
	require.NoError(t, it.Add(member))

	stranger := mustCard(t, "stranger", 2)
	foreign := mustColumn(t, "foreign", ColumnNormal)
	foreignLimited := mustLimitedColumn(t, "foreign-limited", ColumnNormal, 10)

	tests := []struct {
		name    string
		card    *Card
		to      *Column
		wantErr error
	}{
		{
			name:    "unknown card",
			card:    stranger,
			to:      doing,
			wantErr: ErrCardNotFound,
		},
		{
			name:    "column from another board",
			card:    member,
			to:      foreign,
			wantErr: ErrColumnNotFound,
		},
		{
			name: "foreign limited column reports column error before limit",
			card: member,
			to:   foreignLimited,
			// The limit computation validates column membership first.
			wantErr: ErrColumnNotFound,
		},
		{
			name: "unknown card into foreign limited column",
			card: stranger,
			to:   foreignLimited,
			// Same precedence: the column check inside the limit
			// computation fires before the membership check.
			wantErr: ErrColumnNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, it.Move(tt.card, tt.to), tt.wantErr)
		})
	}
}

func TestIterationMoveFailureLeavesStateUntouched(t *testing.T) {
	b, it := newTestBoard(t)
	card := mustCard(t, "A", 5)
	require.NoError(t, it.Add(card))

	foreign := mustColumn(t, "foreign", ColumnNormal)
	assert.ErrorIs(t, it.Move(card, foreign), ErrColumnNotFound)

	assert.Same(t, b.StartColumn(), card.Column())
	assert.ErrorIs(t, it.UndoLastMove(), ErrNoLastMove, "failed moves are not recorded")
}

func TestIterationWIPLimit(t *testing.T) {
	start := mustColumn(t, "todo", ColumnStarting)
	doing := mustLimitedColumn(t, "doing", ColumnNormal, 10)
	done := mustColumn(t, "done", ColumnDone)
	b, err := NewBoard(start, doing, done)
	require.NoError(t, err)
	it := NewIteration(b)

	a := mustCard(t, "A", 5)
	c := mustCard(t, "B", 5)
	d := mustCard(t, "C", 1)
	for _, card := range []*Card{a, c, d} {
		require.NoError(t, it.Add(card))
	}

	// 5 + 5 fill the column exactly; the limit is inclusive.
	require.NoError(t, it.Move(a, doing))
	require.NoError(t, it.Move(c, doing))

	// One more point would exceed the cap.
	assert.ErrorIs(t, it.Move(d, doing), ErrWIPLimitExceeded)
	assert.Same(t, start, d.Column(), "rejected card stays put")

	// Moving out is never blocked; the freed capacity admits the card.
	require.NoError(t, it.Move(a, done))
	require.NoError(t, it.Move(d, doing))
}

func TestIterationMoveIntoLimitedStartingColumn(t *testing.T) {
	start := mustLimitedColumn(t, "todo", ColumnStarting, 10)
	done := mustColumn(t, "done", ColumnDone)
	b, err := NewBoard(start, done)
	require.NoError(t, err)
	it := NewIteration(b)

	a := mustCard(t, "A", 5)
	c := mustCard(t, "B", 5)
	require.NoError(t, it.Add(a))
	require.NoError(t, it.Add(c))

	// A and B already occupy all 10 points. A third card enters via Add
	// unchecked, moves to done, and then cannot move back.
	d := mustCard(t, "C", 5)
	require.NoError(t, it.Add(d))
	require.NoError(t, it.Move(d, done))
	assert.ErrorIs(t, it.Move(d, start), ErrWIPLimitExceeded)
}

func TestIterationZeroLimitBlocksPositiveEstimates(t *testing.T) {
	start := mustColumn(t, "todo", ColumnStarting)
	frozen := mustLimitedColumn(t, "frozen", ColumnNormal, 0)
	done := mustColumn(t, "done", ColumnDone)
	b, err := NewBoard(start, frozen, done)
	require.NoError(t, err)
	it := NewIteration(b)

	pointed := mustCard(t, "A", 1)
	free := mustCard(t, "B", 0)
	require.NoError(t, it.Add(pointed))
	require.NoError(t, it.Add(free))

	assert.ErrorIs(t, it.Move(pointed, frozen), ErrWIPLimitExceeded)
	assert.NoError(t, it.Move(free, frozen), "zero-estimate cards fit a zero limit")
}

func TestIterationVelocity(t *testing.T) {
	b, it := newTestBoard(t)
	done := b.DoneColumn()

	assert.Equal(t, 0, it.Velocity(), "empty iteration has zero velocity")

	a := mustCard(t, "A", 5)
	c := mustCard(t, "B", 3)
	require.NoError(t, it.Add(a))
	require.NoError(t, it.Add(c))
	assert.Equal(t, 0, it.Velocity(), "adding cards does not affect velocity")
	assert.Equal(t, 8, it.RemainingPoints())

	require.NoError(t, it.Move(a, done))
	assert.Equal(t, 5, it.Velocity())
	assert.Equal(t, 3, it.RemainingPoints())

	require.NoError(t, it.Move(c, done))
	assert.Equal(t, 8, it.Velocity())
	assert.Equal(t, 0, it.RemainingPoints())

	require.NoError(t, it.Move(a, b.StartColumn()))
	assert.Equal(t, 3, it.Velocity())
}

func TestIterationUndoRevertsVelocity(t *testing.T) {
	b, it := newTestBoard(t)
	a := mustCard(t, "A", 5)
	require.NoError(t, it.Add(a))

	assert.Equal(t, 0, it.Velocity())
	require.NoError(t, it.Move(a, b.DoneColumn()))
	assert.Equal(t, 5, it.Velocity())

	require.NoError(t, it.UndoLastMove())
	assert.Equal(t, 0, it.Velocity())
	assert.Same(t, b.StartColumn(), a.Column())
}

func TestIterationUndoConsumesRecord(t *testing.T) {
	b, it := newTestBoard(t)
	a := mustCard(t, "A", 5)
	require.NoError(t, it.Add(a))

	assert.ErrorIs(t, it.UndoLastMove(), ErrNoLastMove, "nothing recorded yet")

	require.NoError(t, it.Move(a, b.DoneColumn()))
	require.NoError(t, it.UndoLastMove())

	// Single-level undo: the record is consumed, a second undo fails.
	assert.ErrorIs(t, it.UndoLastMove(), ErrNoLastMove)
	assert.Same(t, b.StartColumn(), a.Column())
}

func TestIterationUndoKeepsOnlyMostRecentMove(t *testing.T) {
	b, it := newTestBoard(t)
	doing := b.Columns()[1]
	a := mustCard(t, "A", 2)
	require.NoError(t, it.Add(a))

	require.NoError(t, it.Move(a, doing))
	require.NoError(t, it.Move(a, b.DoneColumn()))

	// Undo reverts only the last move: done back to doing, not to start.
	require.NoError(t, it.UndoLastMove())
	assert.Same(t, doing, a.Column())
	assert.ErrorIs(t, it.UndoLastMove(), ErrNoLastMove)
}

func TestIterationUndoAfterRemoveFails(t *testing.T) {
	b, it := newTestBoard(t)
	a := mustCard(t, "A", 2)
	require.NoError(t, it.Add(a))
	require.NoError(t, it.Move(a, b.DoneColumn()))

	require.NoError(t, it.Remove(a))
	assert.ErrorIs(t, it.UndoLastMove(), ErrCardNotFound)
}

func TestIterationUndoSkipsWIPLimit(t *testing.T) {
	start := mustLimitedColumn(t, "todo", ColumnStarting, 10)
	done := mustColumn(t, "done", ColumnDone)
	b, err := NewBoard(start, done)
	require.NoError(t, err)
	it := NewIteration(b)

	a := mustCard(t, "A", 5)
	c := mustCard(t, "B", 5)
	d := mustCard(t, "C", 5)
	for _, card := range []*Card{a, c, d} {
		require.NoError(t, it.Add(card))
	}

	// The starting column sits at 15/10 thanks to unchecked adds. Moving
	// C to done and undoing must put it back despite the blown limit.
	require.NoError(t, it.Move(d, done))
	require.NoError(t, it.UndoLastMove())
	assert.Same(t, start, d.Column())
}

func TestIterationCardsIn(t *testing.T) {
	b, it := newTestBoard(t)
	doing := b.Columns()[1]

	foreign := mustColumn(t, "foreign", ColumnNormal)
	_, err := it.CardsIn(foreign)
	assert.ErrorIs(t, err, ErrColumnNotFound)

	a := mustCard(t, "A", 1)
	c := mustCard(t, "B", 2)
	d := mustCard(t, "C", 3)
	for _, card := range []*Card{a, c, d} {
		require.NoError(t, it.Add(card))
	}

	require.NoError(t, it.Move(c, doing))

	inStart, err := it.CardsIn(b.StartColumn())
	require.NoError(t, err)
	require.Len(t, inStart, 2)
	assert.Same(t, a, inStart[0], "insertion order preserved")
	assert.Same(t, d, inStart[1])

	inDoing, err := it.CardsIn(doing)
	require.NoError(t, err)
	require.Len(t, inDoing, 1)
	assert.Same(t, c, inDoing[0])

	// Moving back re-orders by original insertion, not by move time.
	require.NoError(t, it.Move(c, b.StartColumn()))
	inStart, err = it.CardsIn(b.StartColumn())
	require.NoError(t, err)
	require.Len(t, inStart, 3)
	assert.Same(t, a, inStart[0])
	assert.Same(t, c, inStart[1])
	assert.Same(t, d, inStart[2])
}

func TestRestoreIteration(t *testing.T) {
	b, _ := newTestBoard(t)
	doing := b.Columns()[1]
	a := mustCard(t, "A", 5)
	c := mustCard(t, "B", 3)

	it, err := RestoreIteration(b, []Placement{
		{Card: a, Column: b.DoneColumn()},
		{Card: c, Column: doing},
	}, &Placement{Card: a, Column: b.StartColumn()})
	require.NoError(t, err)

	assert.Equal(t, 5, it.Velocity())
	card, from, ok := it.LastMove()
	require.True(t, ok)
	assert.Same(t, a, card)
	assert.Same(t, b.StartColumn(), from)

	// The restored record behaves like a live one.
	require.NoError(t, it.UndoLastMove())
	assert.Same(t, b.StartColumn(), a.Column())
	assert.Equal(t, 0, it.Velocity())
}

func TestRestoreIterationErrors(t *testing.T) {
	b, _ := newTestBoard(t)
	foreign := mustColumn(t, "foreign", ColumnNormal)
	a := mustCard(t, "A", 1)

	_, err := RestoreIteration(b, []Placement{{Card: a, Column: foreign}}, nil)
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = RestoreIteration(b, []Placement{
		{Card: a, Column: b.StartColumn()},
		{Card: a, Column: b.StartColumn()},
	}, nil)
	assert.ErrorIs(t, err, ErrCardAlreadyAdded)

	stranger := mustCard(t, "B", 1)
	_, err = RestoreIteration(b,
		[]Placement{{Card: a, Column: b.StartColumn()}},
		&Placement{Card: stranger, Column: b.StartColumn()})
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestIterationLastMove(t *testing.T) {
	b, it := newTestBoard(t)
	a := mustCard(t, "A", 2)
	require.NoError(t, it.Add(a))

	_, _, ok := it.LastMove()
	assert.False(t, ok)

	require.NoError(t, it.Move(a, b.DoneColumn()))
	card, from, ok := it.LastMove()
	require.True(t, ok)
	assert.Same(t, a, card)
	assert.Same(t, b.StartColumn(), from)
}

func TestIterationCardsSnapshot(t *testing.T) {
	_, it := newTestBoard(t)
	a := mustCard(t, "A", 1)
	c := mustCard(t, "B", 2)
	require.NoError(t, it.Add(a))
	require.NoError(t, it.Add(c))

	cards := it.Cards()
	require.Len(t, cards, 2)
	assert.Same(t, a, cards[0])
	assert.Same(t, c, cards[1])

	cards[0] = nil
	assert.Same(t, a, it.Cards()[0], "returned slice is a copy")
}
