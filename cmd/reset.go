package cmd

import (
	"fmt"

	"github.com/nasigu/diagquiz/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()

		if err := db.Slot(store.StorageKey).Clear(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Println("Session erased.")
		return nil
	},
}
