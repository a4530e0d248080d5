// Card list command shows tracked cards.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sprintboard/pkg/board"
)

var listColumn string

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked cards",
	Long: `List shows the iteration's cards in the order they were added.

Use --column to show only one column's cards.

Example:
  sprintboard card list
  sprintboard card list --column doing
  sprintboard card list --json`,
	Args: cobra.NoArgs,
	RunE: runCardList,
}

func init() {
	cardListCmd.Flags().StringVar(&listColumn, "column", "", "show only cards in this column")
}

func runCardList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	b, it, err := loadSnapshot(store)
	if err != nil {
		return err
	}

	var cards []*board.Card
	if listColumn != "" {
		col, err := findColumn(b, listColumn)
		if err != nil {
			return err
		}
		cards, err = it.CardsIn(col)
		if err != nil {
			return err
		}
	} else {
		cards = it.Cards()
	}

	if flagJSON {
		out := make([]cardJSON, 0, len(cards))
		for _, card := range cards {
			out = append(out, toCardJSON(card))
		}
		return printJSON(out)
	}
	printCardTable(cards)
	return nil
}
