package board

// Board is an immutable, validated set of columns. Construction fails
// unless the set contains exactly one starting column and exactly one
// done column; no structural mutation is possible afterwards.
type Board struct {
	columns []*Column
	start   *Column
	done    *Column
}

// NewBoard validates the column set and constructs a board with the
// column order preserved. Start-column checks run before done-column
// checks: a set with zero starting columns and two done columns reports
// ErrNoStartColumn.
func NewBoard(columns ...*Column) (*Board, error) {
	var start, done []*Column
	for _, col := range columns {
		switch col.Type {
		case ColumnStarting:
			start = append(start, col)
		case ColumnDone:
			done = append(done, col)
		}
	}

	if len(start) == 0 {
		return nil, ErrNoStartColumn
	}
	if len(start) > 1 {
		return nil, ErrMultipleStartColumns
	}
	if len(done) == 0 {
		return nil, ErrNoDoneColumn
	}
	if len(done) > 1 {
		return nil, ErrMultipleDoneColumns
	}

	b := &Board{
		columns: make([]*Column, len(columns)),
		start:   start[0],
		done:    done[0],
	}
	copy(b.columns, columns)
	return b, nil
}

// Columns returns the board's columns in construction order. The slice
// is a copy; the columns themselves are shared.
func (b *Board) Columns() []*Column {
	out := make([]*Column, len(b.columns))
	copy(out, b.columns)
	return out
}

// StartColumn returns the board's unique starting column.
func (b *Board) StartColumn() *Column {
	return b.start
}

// DoneColumn returns the board's unique done column.
func (b *Board) DoneColumn() *Column {
	return b.done
}

// Contains reports whether col is one of the board's columns, compared
// by pointer identity.
func (b *Board) Contains(col *Column) bool {
	for _, c := range b.columns {
		if c == col {
			return true
		}
	}
	return false
}
