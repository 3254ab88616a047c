package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// GetDefaultDatabasePath returns the transcript database under XDG_STATE_HOME
func GetDefaultDatabasePath() string {
	return filepath.Join(xdg.StateHome, "chatsamples", "transcripts.db")
}
