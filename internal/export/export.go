// Package export writes the session snapshot to a downloadable JSON file.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nasigu/diagquiz/internal/store"
)

// Filename derives the download name from the snapshot: the export time in
// RFC 3339 with colons replaced by dashes, suffixed with the Telegram
// username or id when an identity is attached.
func Filename(snap store.Snapshot) string {
	stamp := strings.ReplaceAll(snap.ExportTime.Format(time.RFC3339), ":", "-")
	name := "quiz_result_" + stamp
	if u := snap.TelegramUser; u != nil {
		if u.Username != "" {
			name += "_" + u.Username
		} else {
			name += fmt.Sprintf("_%d", u.ID)
		}
	}
	return name + ".json"
}

// Write stores the snapshot as indented JSON under dir and returns the path.
func Write(dir string, snap store.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	path := filepath.Join(dir, Filename(snap))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
