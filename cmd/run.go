package cmd

import (
	"fmt"
	"runtime"

	"github.com/nasigu/diagquiz/internal/app"
	"github.com/nasigu/diagquiz/internal/store"
	"github.com/nasigu/diagquiz/internal/submit"
	"github.com/nasigu/diagquiz/internal/telegram"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	webhook, _ := cmd.Flags().GetString("webhook")
	if webhook == "" {
		webhook = submit.DefaultURL
	}

	opts := app.Options{
		Store:     store.NewStore(db.Slot(store.StorageKey)),
		Submitter: submit.NewClient(webhook),
		Detector:  telegram.EnvDetector{},
		UserAgent: userAgent(),
	}

	return app.Run(opts)
}

// userAgent identifies the terminal client in exported snapshots, standing
// in for the browser user agent of the web client.
func userAgent() string {
	return fmt.Sprintf("diagquiz/%s (%s; %s)", version, runtime.GOOS, runtime.GOARCH)
}
