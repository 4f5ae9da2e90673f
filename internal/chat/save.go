package chat

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/utils"
)

// FromPath reads a conversation saved by Save.
func FromPath(path string) (models.Chat, error) {
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("reading chat from '%v'\n", path))
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return models.Chat{}, fmt.Errorf("failed to read file: %w", err)
	}
	var chat models.Chat
	err = json.Unmarshal(b, &chat)
	if err != nil {
		return models.Chat{}, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return chat, nil
}

// Save chat as <convDir>/<chat.ID>.json and return the path. Saving the same chat
// again overwrites the previous file.
func Save(convDir string, chat models.Chat) (string, error) {
	if err := os.MkdirAll(convDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create conversations directory: %w", err)
	}
	fileName := filepath.Join(convDir, chat.ID+".json")
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("saving chat to: '%v'\n", fileName))
	}
	if err := utils.WriteFile(fileName, &chat); err != nil {
		return "", err
	}
	return fileName, nil
}
