// Card remove command stops tracking a card.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cardRemoveCmd = &cobra.Command{
	Use:   "remove CARD_ID",
	Short: "Remove a card from the iteration",
	Long: `Remove stops tracking a card. The card ID may be abbreviated to any
unique prefix.

Example:
  sprintboard card remove 01890a5d
  sprintboard card remove 01890a5d --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCardRemove,
}

func runCardRemove(cmd *cobra.Command, args []string) error {
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
	if err := it.Remove(card); err != nil {
		return fmt.Errorf("remove card: %w", err)
	}

	if err := store.SaveSnapshot(b, it); err != nil {
		return fmt.Errorf("save board: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"removed": card.ID})
	}
	fmt.Printf("Removed card %s\n", card.ID)
	return nil
}
