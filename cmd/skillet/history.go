// cmd/skillet/history.go
package main

import (
	"fmt"

	"github.com/annabarone/skilletlib/internal/history"
	"github.com/annabarone/skilletlib/internal/ui"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past skillet executions",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := history.Load(history.DefaultPath())
		if err != nil {
			return err
		}

		if len(h.Entries) == 0 {
			ui.Info("No skillets executed yet")
			return nil
		}

		ui.Header("Execution history")
		fmt.Printf("\n  %-25s %-10s %-10s %-10s %s\n", "SKILLET", "MODE", "SNIPPETS", "SKIPPED", "WHEN")
		fmt.Printf("  %-25s %-10s %-10s %-10s %s\n", "-------", "----", "--------", "-------", "----")
		for _, e := range h.Entries {
			fmt.Printf("  %-25s %-10s %-10d %-10d %s\n",
				e.Skillet, e.Mode, e.Snippets, e.Skipped, e.ExecutedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
