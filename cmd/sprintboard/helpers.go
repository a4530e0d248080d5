// Shared helpers for sprintboard CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/sprintboard/internal/sqlite"
	"github.com/mesh-intelligence/sprintboard/pkg/board"
)

// openStore resolves the data directory and opens the snapshot store.
// The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	if err := store.Open(dataDir); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// loadSnapshot loads the saved board and iteration, turning a missing
// snapshot into a hint to run init first.
func loadSnapshot(store *sqlite.Store) (*board.Board, *board.Iteration, error) {
	b, it, err := store.LoadSnapshot()
	if err == sqlite.ErrNoSnapshot {
		return nil, nil, fmt.Errorf("no board found; run \"sprintboard init\" first: %w", err)
	}
	return b, it, err
}

// findColumn returns the first board column with the given name.
// Column names are the CLI's lookup key; the engine itself compares
// columns by identity.
func findColumn(b *board.Board, name string) (*board.Column, error) {
	for _, col := range b.Columns() {
		if col.Name == name {
			return col, nil
		}
	}
	return nil, fmt.Errorf("no column named %q: %w", name, board.ErrColumnNotFound)
}

// findCard resolves a card by ID or unique ID prefix.
func findCard(it *board.Iteration, id string) (*board.Card, error) {
	if id == "" {
		return nil, fmt.Errorf("card ID must not be empty: %w", errUsage)
	}

	var matches []*board.Card
	for _, card := range it.Cards() {
		if card.ID == id {
			return card, nil
		}
		if strings.HasPrefix(card.ID, id) {
			matches = append(matches, card)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no card with ID %q: %w", id, board.ErrCardNotFound)
	default:
		return nil, fmt.Errorf("card ID %q is ambiguous (%d matches): %w", id, len(matches), errUsage)
	}
}

// cardJSON is the JSON shape for card output.
type cardJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Estimate    int    `json:"estimate"`
	Column      string `json:"column"`
}

// toCardJSON converts a card for output.
func toCardJSON(card *board.Card) cardJSON {
	out := cardJSON{
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Description,
		Estimate:    card.Estimate(),
	}
	if col := card.Column(); col != nil {
		out.Column = col.Name
	}
	return out
}

// printJSON writes v as indented JSON on stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printCardTable prints cards in a human-readable table format.
func printCardTable(cards []*board.Card) {
	if len(cards) == 0 {
		fmt.Println("No cards found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tPOINTS\tCOLUMN")
	fmt.Fprintln(w, "--\t-----\t------\t------")
	for _, card := range cards {
		title := card.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		shortID := card.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		column := ""
		if col := card.Column(); col != nil {
			column = col.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", shortID, title, card.Estimate(), column)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d card(s)\n", len(cards))
}
