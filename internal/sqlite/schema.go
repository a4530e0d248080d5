package sqlite

// Schema DDL for the snapshot tables. A snapshot is a full picture of
// one board and its iteration; saving rewrites every row.
const (
	createColumns = `CREATE TABLE IF NOT EXISTS columns (
    column_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    points_limit INTEGER,
    ordinal INTEGER NOT NULL
);`

	createCards = `CREATE TABLE IF NOT EXISTS cards (
    card_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    estimate INTEGER NOT NULL,
    column_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    FOREIGN KEY (column_id) REFERENCES columns(column_id)
);`

	createLastMove = `CREATE TABLE IF NOT EXISTS last_move (
    card_id TEXT NOT NULL,
    column_id TEXT NOT NULL,
    FOREIGN KEY (card_id) REFERENCES cards(card_id),
    FOREIGN KEY (column_id) REFERENCES columns(column_id)
);`
)

// schemaDDL lists the statements Open executes in order.
var schemaDDL = []string{
	createColumns,
	createCards,
	createLastMove,
}
