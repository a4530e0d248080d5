// Undo command reverts the most recent move.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent move",
	Long: `Undo restores the most recently moved card to the column it occupied
before that move. Only the single most recent move is undoable, and
undoing consumes it: a second consecutive undo fails.

Example:
  sprintboard undo`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	b, it, err := loadSnapshot(store)
	if err != nil {
		return err
	}

	card, _, ok := it.LastMove()
	if err := it.UndoLastMove(); err != nil {
		return fmt.Errorf("undo move: %w", err)
	}

	if err := store.SaveSnapshot(b, it); err != nil {
		return fmt.Errorf("save board: %w", err)
	}

	if flagJSON {
		return printJSON(toCardJSON(card))
	}
	if ok && card.Column() != nil {
		fmt.Printf("Moved card %s back to %s\n", card.ID, card.Column().Name)
	}
	return nil
}
