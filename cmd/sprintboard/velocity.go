// Velocity command reports completed points.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var velocityCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Print the iteration's velocity",
	Long: `Velocity is the total point estimate of cards currently in the done
column.

Example:
  sprintboard velocity
  sprintboard velocity --json`,
	Args: cobra.NoArgs,
	RunE: runVelocity,
}

func runVelocity(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	_, it, err := loadSnapshot(store)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]int{"velocity": it.Velocity()})
	}
	fmt.Println(it.Velocity())
	return nil
}
