// Status command summarizes the board.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize the board",
	Long: `Status prints per-column card counts and point totals, WIP limits,
velocity, and the points still in flight.

Example:
  sprintboard status
  sprintboard status --json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

// columnStatus is the JSON shape for one column's summary.
type columnStatus struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Cards       int    `json:"cards"`
	Points      int    `json:"points"`
	PointsLimit *int   `json:"points_limit,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	b, it, err := loadSnapshot(store)
	if err != nil {
		return err
	}

	var columns []columnStatus
	for _, col := range b.Columns() {
		cards, err := it.CardsIn(col)
		if err != nil {
			return err
		}
		points := 0
		for _, card := range cards {
			points += card.Estimate()
		}
		cs := columnStatus{
			Name:   col.Name,
			Type:   string(col.Type),
			Cards:  len(cards),
			Points: points,
		}
		if limit, ok := col.PointsLimit(); ok {
			cs.PointsLimit = &limit
		}
		columns = append(columns, cs)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"columns":          columns,
			"velocity":         it.Velocity(),
			"remaining_points": it.RemainingPoints(),
		})
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tTYPE\tCARDS\tPOINTS\tLIMIT")
	fmt.Fprintln(w, "------\t----\t-----\t------\t-----")
	for _, cs := range columns {
		limit := "-"
		if cs.PointsLimit != nil {
			limit = fmt.Sprintf("%d", *cs.PointsLimit)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", cs.Name, cs.Type, cs.Cards, cs.Points, limit)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Velocity: %d\n", it.Velocity())
	fmt.Printf("Remaining: %d\n", it.RemainingPoints())
	return nil
}
