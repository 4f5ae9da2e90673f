package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetRatConfigDir returns the path to the rat configuration directory.
// The directory is located inside the user's configuration directory
// as <UserConfigDir>/.rat, unless overridden by RAT_CONFIG_HOME.
func GetRatConfigDir() (string, error) {
	if ratConfigHome := os.Getenv("RAT_CONFIG_HOME"); ratConfigHome != "" {
		return ratConfigHome, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(cfg, ".rat"), nil
}

// ConversationsDir is where saved transcripts go.
func ConversationsDir(configDir string) string {
	return filepath.Join(configDir, "conversations")
}
