// cmd/skillet/list.go
package main

import (
	"fmt"

	"github.com/annabarone/skilletlib/internal/skillet"
	"github.com/annabarone/skilletlib/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skillets available in the repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.Header("Available skillets")

		index, err := skillet.FetchIndex()
		if err != nil {
			return err
		}

		fmt.Printf("\n  %-25s %-10s %s\n", "NAME", "TYPE", "DESCRIPTION")
		fmt.Printf("  %-25s %-10s %s\n", "----", "----", "-----------")
		for _, entry := range index {
			fmt.Printf("  %-25s %-10s %s\n", entry.Name, entry.Type, entry.Description)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
