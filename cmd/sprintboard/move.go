// Move command relocates a card to another column.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move CARD_ID COLUMN",
	Short: "Move a card to another column",
	Long: `Move places a card into the named column. The destination's WIP limit
is enforced: the move fails if the cards already there plus the moved
card would exceed the column's points limit. Moving out of a column is
never blocked.

Example:
  sprintboard move 01890a5d doing
  sprintboard move 01890a5d done --json`,
	Args: cobra.ExactArgs(2),
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	b, it, err := loadSnapshot(store)
	if err != nil {
		return err
	}

	card, err := findCard(it, args[0])
	if err != nil {
		return err
	}
	col, err := findColumn(b, args[1])
	if err != nil {
		return err
	}

	if err := it.Move(card, col); err != nil {
		return fmt.Errorf("move card: %w", err)
	}

	if err := store.SaveSnapshot(b, it); err != nil {
		return fmt.Errorf("save board: %w", err)
	}

	if flagJSON {
		return printJSON(toCardJSON(card))
	}
	fmt.Printf("Moved card %s to %s\n", card.ID, col.Name)
	return nil
}
