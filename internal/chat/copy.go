package chat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/rat/internal/models"
)

// codeBlocks returns the content of each fenced code block in text, without
// the fences and language tag. An unterminated block runs to the end of text.
func codeBlocks(text string) []string {
	var blocks []string
	var current []string
	inBlock := false
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inBlock {
				blocks = append(blocks, strings.Join(current, "\n"))
				current = nil
			}
			inBlock = !inBlock
			continue
		}
		if inBlock {
			current = append(current, line)
		}
	}
	if inBlock {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

// selectBlocks picks from blocks by selector, either 'a' for all of them or a
// 1-based index.
func selectBlocks(blocks []string, selector string) (string, error) {
	if len(blocks) == 0 {
		return "", errors.New("no code blocks found in the last answer")
	}
	if selector == "a" || selector == "all" {
		return strings.Join(blocks, "\n\n"), nil
	}
	n, err := strconv.Atoi(selector)
	if err != nil {
		return "", fmt.Errorf("expected 'a' or a block number, got: '%v'", selector)
	}
	if n < 1 || n > len(blocks) {
		return "", fmt.Errorf("block %v out of range, the last answer has %v code block(s)", n, len(blocks))
	}
	return blocks[n-1], nil
}

func (d *Dispatcher) copy(selector string) error {
	h := d.session.History()
	last, _, err := h.LastOfRole(models.RoleAssistant)
	if err != nil {
		return errors.New("nothing to copy, there is no answer yet")
	}
	toCopy, err := selectBlocks(codeBlocks(last.Content), selector)
	if err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}
	if err := d.writeClipboard(toCopy); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	ancli.PrintOK("copied to clipboard\n")
	return nil
}
