package cmd

import (
	"fmt"

	"github.com/nasigu/diagquiz/internal/export"
	"github.com/nasigu/diagquiz/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the saved session to a JSON file",
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

		st := store.NewStore(db.Slot(store.StorageKey))
		state := st.Load()
		if len(state.Answers) == 0 {
			return fmt.Errorf("no saved session to export")
		}

		dir, _ := cmd.Flags().GetString("out")
		path, err := export.Write(dir, st.Export(userAgent()))
		if err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Println("Wrote", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", ".", "Directory to write the export file into")
}
