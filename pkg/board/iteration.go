package board

import "sync"

// lastMove records the single most recent move: the card that moved and
// the column it occupied before the move. Overwritten on every
// successful move and consumed by UndoLastMove.
type lastMove struct {
	card *Card
	from *Column
}

// Iteration is the stateful tracking engine for one board. It holds the
// cards currently tracked in insertion order, validates every move
// against the board's column set and the destination's WIP limit, and
// supports single-level undo.
//
// The iteration does not own its cards; callers keep the references and
// use them as handles. The iteration is the only writer of a card's
// column field while the card is a member.
//
// All exported methods are safe for concurrent use; a single mutex
// guards the membership set and the undo record.
type Iteration struct {
	mu       sync.Mutex
	board    *Board
	cards    []*Card
	lastMove *lastMove
}

// NewIteration creates the tracking engine for b. One iteration per
// board; the binding is permanent.
func NewIteration(b *Board) *Iteration {
	return &Iteration{board: b}
}

// Placement pairs a card with a column on the same board.
type Placement struct {
	Card   *Card
	Column *Column
}

// RestoreIteration rebuilds an iteration from a previously captured
// snapshot: cards in slice order with their recorded columns, plus the
// pending undo record, if any. Placement bypasses the WIP check, since
// a legal snapshot may hold an over-limit column (unchecked adds, undone
// moves). Column membership and card uniqueness are still enforced.
func RestoreIteration(b *Board, placements []Placement, undo *Placement) (*Iteration, error) {
	it := NewIteration(b)
	for _, p := range placements {
		if !b.Contains(p.Column) {
			return nil, ErrColumnNotFound
		}
		if it.indexOf(p.Card) >= 0 {
			return nil, ErrCardAlreadyAdded
		}
		it.cards = append(it.cards, p.Card)
		p.Card.column = p.Column
	}
	if undo != nil {
		if it.indexOf(undo.Card) < 0 {
			return nil, ErrCardNotFound
		}
		if !b.Contains(undo.Column) {
			return nil, ErrColumnNotFound
		}
		it.lastMove = &lastMove{card: undo.Card, from: undo.Column}
	}
	return it, nil
}

// Board returns the board the iteration is bound to.
func (it *Iteration) Board() *Board {
	return it.board
}

// Add places a card in the board's starting column and begins tracking
// it. Returns ErrCardAlreadyAdded if the card is already a member.
// Entry is never blocked by the starting column's WIP limit; only moves
// are.
func (it *Iteration) Add(card *Card) error {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.indexOf(card) >= 0 {
		return ErrCardAlreadyAdded
	}
	it.cards = append(it.cards, card)
	card.column = it.board.start
	return nil
}

// Remove stops tracking a card. Returns ErrCardNotFound if the card is
// not a member. The card keeps its last column assignment.
func (it *Iteration) Remove(card *Card) error {
	it.mu.Lock()
	defer it.mu.Unlock()

	i := it.indexOf(card)
	if i < 0 {
		return ErrCardNotFound
	}
	it.cards = append(it.cards[:i], it.cards[i+1:]...)
	return nil
}

// Move places a member card into another of the board's columns.
//
// When the destination carries a points limit, the limit check runs
// first: it fails ErrColumnNotFound if the destination is not one of
// the board's columns, and ErrWIPLimitExceeded if the cards already in
// the destination plus the moved card would exceed the limit. Moving a
// card out of a column is never blocked by any limit.
//
// The card's pre-move column is recorded for UndoLastMove, replacing
// any earlier record.
func (it *Iteration) Move(card *Card, to *Column) error {
	it.mu.Lock()
	defer it.mu.Unlock()

	if limit, ok := to.PointsLimit(); ok {
		current, err := it.pointsIn(to)
		if err != nil {
			return err
		}
		if current+card.estimate > limit {
			return ErrWIPLimitExceeded
		}
	}

	if it.indexOf(card) < 0 {
		return ErrCardNotFound
	}
	if !it.board.Contains(to) {
		return ErrColumnNotFound
	}

	it.lastMove = &lastMove{card: card, from: card.column}
	card.column = to
	return nil
}

// UndoLastMove restores the most recently moved card to the column it
// occupied before that move. The record is consumed: a second
// consecutive undo fails ErrNoLastMove. Membership and column validity
// are re-checked, but not the WIP limit, since the origin column may
// legally already sit at its cap.
func (it *Iteration) UndoLastMove() error {
	it.mu.Lock()
	defer it.mu.Unlock()

	rec := it.lastMove
	if rec == nil {
		return ErrNoLastMove
	}
	if it.indexOf(rec.card) < 0 {
		return ErrCardNotFound
	}
	if !it.board.Contains(rec.from) {
		return ErrColumnNotFound
	}

	rec.card.column = rec.from
	it.lastMove = nil
	return nil
}

// LastMove returns the pending undo record: the most recently moved
// card and the column UndoLastMove would restore it to. ok is false
// when no undoable move is recorded.
func (it *Iteration) LastMove() (card *Card, from *Column, ok bool) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.lastMove == nil {
		return nil, nil, false
	}
	return it.lastMove.card, it.lastMove.from, true
}

// CardsIn returns the member cards currently in col, in insertion
// order. Returns ErrColumnNotFound if col is not one of the board's
// columns.
func (it *Iteration) CardsIn(col *Column) ([]*Card, error) {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.cardsIn(col)
}

// Cards returns all member cards in insertion order.
func (it *Iteration) Cards() []*Card {
	it.mu.Lock()
	defer it.mu.Unlock()

	out := make([]*Card, len(it.cards))
	copy(out, it.cards)
	return out
}

// Velocity returns the total estimate of member cards sitting in a
// done-typed column. Zero when the iteration is empty or nothing is
// done.
func (it *Iteration) Velocity() int {
	it.mu.Lock()
	defer it.mu.Unlock()

	total := 0
	for _, card := range it.cards {
		if card.column != nil && card.column.Type == ColumnDone {
			total += card.estimate
		}
	}
	return total
}

// RemainingPoints returns the total estimate of member cards not yet in
// a done-typed column.
func (it *Iteration) RemainingPoints() int {
	it.mu.Lock()
	defer it.mu.Unlock()

	total := 0
	for _, card := range it.cards {
		if card.column == nil || card.column.Type != ColumnDone {
			total += card.estimate
		}
	}
	return total
}

// indexOf returns the position of card in the membership set, or -1.
// Identity comparison; callers hold the lock.
func (it *Iteration) indexOf(card *Card) int {
	for i, c := range it.cards {
		if c == card {
			return i
		}
	}
	return -1
}

// cardsIn is CardsIn without locking.
func (it *Iteration) cardsIn(col *Column) ([]*Card, error) {
	if !it.board.Contains(col) {
		return nil, ErrColumnNotFound
	}
	var out []*Card
	for _, card := range it.cards {
		if card.column == col {
			out = append(out, card)
		}
	}
	return out, nil
}

// pointsIn sums the estimates of member cards in col via the same
// validated lookup CardsIn uses. Callers hold the lock.
func (it *Iteration) pointsIn(col *Column) (int, error) {
	cards, err := it.cardsIn(col)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, card := range cards {
		total += card.estimate
	}
	return total, nil
}
