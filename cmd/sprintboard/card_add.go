// Card add command creates a new card in the starting column.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sprintboard/pkg/board"
)

var (
	cardTitle       string
	cardDescription string
	cardEstimate    int
)

var cardAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a card and place it in the starting column",
	Long: `Add creates a card with the given title and point estimate and places
it in the board's starting column. Entry is never blocked by the
starting column's WIP limit.

Example:
  sprintboard card add --title "Implement login" --estimate 5
  sprintboard card add --title "Fix typo" --description "README heading" --estimate 1
  sprintboard card add --title "Spike caching" --estimate 3 --json`,
	Args: cobra.NoArgs,
	RunE: runCardAdd,
}

func init() {
	cardAddCmd.Flags().StringVar(&cardTitle, "title", "", "card title (required)")
	cardAddCmd.Flags().StringVar(&cardDescription, "description", "", "card description")
	cardAddCmd.Flags().IntVar(&cardEstimate, "estimate", 0, "point estimate")
	_ = cardAddCmd.MarkFlagRequired("title")
}

func runCardAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	b, it, err := loadSnapshot(store)
	if err != nil {
		return err
	}

	card, err := board.NewCard(cardTitle, cardDescription, cardEstimate)
	if err != nil {
		return fmt.Errorf("create card: %w", err)
	}
	if err := it.Add(card); err != nil {
		return fmt.Errorf("add card: %w", err)
	}

	if err := store.SaveSnapshot(b, it); err != nil {
		return fmt.Errorf("save board: %w", err)
	}

	if flagJSON {
		return printJSON(toCardJSON(card))
	}
	fmt.Printf("Added card %s to %s\n", card.ID, b.StartColumn().Name)
	return nil
}
