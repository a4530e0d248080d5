package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustColumn builds a column or fails the test.
func mustColumn(t *testing.T, name string, typ ColumnType) *Column {
	t.Helper()
	col, err := NewColumn(name, typ)
	require.NoError(t, err)
	return col
}

// mustLimitedColumn builds a column with a points limit or fails the test.
func mustLimitedColumn(t *testing.T, name string, typ ColumnType, limit int) *Column {
	t.Helper()
	col := mustColumn(t, name, typ)
	require.NoError(t, col.SetPointsLimit(limit))
	return col
}

func TestNewBoardValidation(t *testing.T) {
	tests := []struct {
		name    string
		types   []ColumnType
		wantErr error
	}{
		{
			name:  "minimal valid board",
			types: []ColumnType{ColumnStarting, ColumnDone},
		},
		{
			name:  "valid board with normal columns",
			types: []ColumnType{ColumnStarting, ColumnNormal, ColumnNormal, ColumnDone},
		},
		{
			name:    "no starting column",
			types:   []ColumnType{ColumnNormal, ColumnDone},
			wantErr: ErrNoStartColumn,
		},
		{
			name:    "multiple starting columns",
			types:   []ColumnType{ColumnStarting, ColumnStarting, ColumnDone},
			wantErr: ErrMultipleStartColumns,
		},
		{
			name:    "no done column",
			types:   []ColumnType{ColumnStarting, ColumnNormal},
			wantErr: ErrNoDoneColumn,
		},
		{
			name:    "multiple done columns",
			types:   []ColumnType{ColumnStarting, ColumnDone, ColumnDone},
			wantErr: ErrMultipleDoneColumns,
		},
		{
			name:    "empty column set",
			types:   nil,
			wantErr: ErrNoStartColumn,
		},
		{
			name:    "start error takes precedence over done error",
			types:   []ColumnType{ColumnNormal, ColumnDone, ColumnDone},
			wantErr: ErrNoStartColumn,
		},
		{
			name:    "multiple start reported before missing done",
			types:   []ColumnType{ColumnStarting, ColumnStarting, ColumnNormal},
			wantErr: ErrMultipleStartColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cols []*Column
			for i, typ := range tt.types {
				cols = append(cols, mustColumn(t, string(typ)+string(rune('a'+i)), typ))
			}

			b, err := NewBoard(cols...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)
			} else {
				require.NoError(t, err)
				assert.Equal(t, ColumnStarting, b.StartColumn().Type)
				assert.Equal(t, ColumnDone, b.DoneColumn().Type)
			}
		})
	}
}

func TestNewBoardPreservesColumnOrder(t *testing.T) {
	todo := mustColumn(t, "todo", ColumnStarting)
	doing := mustColumn(t, "doing", ColumnNormal)
	review := mustColumn(t, "review", ColumnNormal)
	done := mustColumn(t, "done", ColumnDone)

	b, err := NewBoard(todo, doing, review, done)
	require.NoError(t, err)

	got := b.Columns()
	require.Len(t, got, 4)
	assert.Same(t, todo, got[0])
	assert.Same(t, doing, got[1])
	assert.Same(t, review, got[2])
	assert.Same(t, done, got[3])
}

func TestBoardColumnsReturnsCopy(t *testing.T) {
	b, err := NewBoard(
		mustColumn(t, "todo", ColumnStarting),
		mustColumn(t, "done", ColumnDone),
	)
	require.NoError(t, err)

	cols := b.Columns()
	cols[0] = nil
	assert.NotNil(t, b.Columns()[0], "mutating the returned slice must not affect the board")
}

func TestBoardContainsUsesIdentity(t *testing.T) {
	todo := mustColumn(t, "todo", ColumnStarting)
	done := mustColumn(t, "done", ColumnDone)
	b, err := NewBoard(todo, done)
	require.NoError(t, err)

	assert.True(t, b.Contains(todo))
	assert.True(t, b.Contains(done))

	// A field-identical column from another board is not a member.
	twin := mustColumn(t, "todo", ColumnStarting)
	assert.False(t, b.Contains(twin))
	assert.False(t, b.Contains(nil))
}

func TestBoardBindsStartAndDoneReferences(t *testing.T) {
	todo := mustColumn(t, "todo", ColumnStarting)
	done := mustColumn(t, "done", ColumnDone)
	b, err := NewBoard(todo, done)
	require.NoError(t, err)

	assert.Same(t, todo, b.StartColumn())
	assert.Same(t, done, b.DoneColumn())
}
