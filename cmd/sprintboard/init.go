// Init command creates the board from the configured column list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sprintboard/pkg/board"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the board from the configured columns",
	Long: `Init builds the board from the columns list in config.yaml and saves
the first snapshot. The configuration must contain exactly one column of
type "starting" and exactly one of type "done".

Example:
  sprintboard init
  sprintboard init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "replace an existing board and discard its cards")
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	has, err := store.HasSnapshot()
	if err != nil {
		return err
	}
	if has && !initForce {
		return fmt.Errorf("a board already exists; use --force to replace it: %w", errUsage)
	}

	b, err := boardFromConfig(boardConfig)
	if err != nil {
		return fmt.Errorf("build board: %w", err)
	}

	it := board.NewIteration(b)
	if err := store.SaveSnapshot(b, it); err != nil {
		return fmt.Errorf("save board: %w", err)
	}

	if flagJSON {
		names := make([]string, 0, len(b.Columns()))
		for _, col := range b.Columns() {
			names = append(names, col.Name)
		}
		return printJSON(map[string]any{"columns": names})
	}

	fmt.Println("Board initialized")
	for _, col := range b.Columns() {
		line := fmt.Sprintf("  %s (%s", col.Name, col.Type)
		if limit, ok := col.PointsLimit(); ok {
			line += fmt.Sprintf(", limit %d", limit)
		}
		fmt.Println(line + ")")
	}
	return nil
}
