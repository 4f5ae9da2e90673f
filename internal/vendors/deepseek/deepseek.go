package deepseek

import (
	"github.com/baalimago/rat/internal/text/generic"
)

// Default reasoner. MaxTokens is kept at 1 so that the answer is cut off right
// after the deliberation, which is sent separately as reasoning_content.
var Default = Deepseek{
	Model:     "deepseek-reasoner",
	MaxTokens: 1,
	URL:       ChatURL,
	APIKeyEnv: "DEEPSEEK_API_KEY",
}

type Deepseek struct {
	generic.StreamCompleter
	Model     string
	MaxTokens int
	URL       string
	APIKeyEnv string
}
