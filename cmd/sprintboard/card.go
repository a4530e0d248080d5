// Card command group.
package main

import "github.com/spf13/cobra"

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage the iteration's cards",
}

func init() {
	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardRemoveCmd)
}
