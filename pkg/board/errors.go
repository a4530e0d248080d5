package board

import "errors"

// Board construction errors. A failed construction yields no usable
// Board. Start-column checks run before done-column checks, so a column
// set that is wrong in both ways reports the start error.
var (
	ErrNoStartColumn        = errors.New("board has no starting column")
	ErrMultipleStartColumns = errors.New("board has multiple starting columns")
	ErrNoDoneColumn         = errors.New("board has no done column")
	ErrMultipleDoneColumns  = errors.New("board has multiple done columns")
)

// Lookup errors. Membership is by pointer identity, never by value.
var (
	ErrCardNotFound   = errors.New("card is not part of the iteration")
	ErrColumnNotFound = errors.New("column is not part of the board")
)

// State errors raised on add/undo misuse.
var (
	ErrCardAlreadyAdded = errors.New("card already added to the iteration")
	ErrNoLastMove       = errors.New("no move to undo")
)

// ErrWIPLimitExceeded is returned when a move would push the destination
// column past its points limit.
var ErrWIPLimitExceeded = errors.New("column points limit exceeded")

// Entity validation errors.
var (
	ErrEmptyName         = errors.New("name must not be empty")
	ErrNegativeEstimate  = errors.New("estimate must not be negative")
	ErrNegativeLimit     = errors.New("points limit must not be negative")
	ErrInvalidColumnType = errors.New("invalid column type")
)
