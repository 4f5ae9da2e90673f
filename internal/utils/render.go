package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/charmbracelet/lipgloss"
)

func noColor() bool {
	return misc.Truthy(os.Getenv("NO_COLOR"))
}

func styled(s lipgloss.Style, text string) string {
	if noColor() {
		return text
	}
	return s.Render(text)
}

var (
	bannerStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	reasoningStyle = lipgloss.NewStyle().Faint(true)
	ruleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Banner renders the startup panel.
func Banner(variant, reasoningModel, responseModel string) string {
	lines := []string{
		styled(titleStyle, "RAT: Retrieval Augmented Thinking"),
		fmt.Sprintf("variant:   %v", variant),
		fmt.Sprintf("reasoning: %v", reasoningModel),
		fmt.Sprintf("response:  %v", responseModel),
		"",
		"Type 'help' for commands, 'quit' to exit.",
	}
	body := strings.Join(lines, "\n")
	if noColor() {
		return body
	}
	return bannerStyle.Render(body)
}

// ReasoningHeader introduces the echoed deliberation.
func ReasoningHeader() string {
	return styled(titleStyle, "Reasoning Process")
}

// Rule is a horizontal line spanning width.
func Rule(width int) string {
	if width <= 0 {
		width = 80
	}
	return styled(ruleStyle, strings.Repeat("─", width))
}

// Reasoning styles deliberation text.
func Reasoning(text string) string {
	return styled(reasoningStyle, text)
}

// RoleLabel is the coloured prefix of a message, such as 'assistant:'.
func RoleLabel(role string) string {
	color := ancli.BLUE
	switch role {
	case "user":
		color = ancli.CYAN
	case "system":
		color = ancli.MAGENTA
	}
	if noColor() {
		return role + ":"
	}
	return ancli.ColoredMessage(color, role) + ":"
}
