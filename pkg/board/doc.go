// Package board models a single-iteration Agile tracking board: cards
// move through ordered workflow columns, one column is the entry point,
// one is the terminal done column, and columns may cap total in-flight
// points (a WIP limit).
//
// The package exposes four entities. Column and Card are leaf value
// carriers identified by pointer identity. Board is an immutable,
// validated set of columns. Iteration is the stateful engine: it holds
// the cards currently tracked, validates movement between columns,
// supports single-level undo, and derives velocity from current card
// placement.
package board
