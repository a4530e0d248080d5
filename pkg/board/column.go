package board

// ColumnType classifies a workflow column. A valid board has exactly one
// starting column and exactly one done column; everything else is normal.
type ColumnType string

// Column types a board recognizes.
const (
	ColumnStarting ColumnType = "starting"
	ColumnNormal   ColumnType = "normal"
	ColumnDone     ColumnType = "done"
)

// validColumnTypes is the set of recognized column type values.
var validColumnTypes = map[ColumnType]bool{
	ColumnStarting: true,
	ColumnNormal:   true,
	ColumnDone:     true,
}

// Valid reports whether t is a recognized column type.
func (t ColumnType) Valid() bool {
	return validColumnTypes[t]
}

// Column is a named workflow stage. Columns are compared by pointer
// identity; two distinct columns may share a name. The ID exists for
// persistence and display, not for equality.
type Column struct {
	ID   string
	Name string
	Type ColumnType

	limit   int
	limited bool
}

// NewColumn creates a column of the given type.
// Returns ErrEmptyName or ErrInvalidColumnType on bad input.
func NewColumn(name string, typ ColumnType) (*Column, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !typ.Valid() {
		return nil, ErrInvalidColumnType
	}
	return &Column{Name: name, Type: typ}, nil
}

// Rename changes the column name. Returns ErrEmptyName on empty input.
func (c *Column) Rename(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	return nil
}

// SetPointsLimit caps the total estimate of cards the column may hold.
// A zero limit is legal and blocks every move with a positive estimate.
// Returns ErrNegativeLimit on negative input.
func (c *Column) SetPointsLimit(points int) error {
	if points < 0 {
		return ErrNegativeLimit
	}
	c.limit = points
	c.limited = true
	return nil
}

// ClearPointsLimit removes the points limit. Idempotent.
func (c *Column) ClearPointsLimit() {
	c.limit = 0
	c.limited = false
}

// PointsLimit returns the points limit and whether one is set.
func (c *Column) PointsLimit() (int, bool) {
	return c.limit, c.limited
}
