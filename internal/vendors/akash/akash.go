package akash

import (
	"github.com/baalimago/rat/internal/text/generic"
)

const (
	ChatURL = "https://chatapi.akash.network/api/v1/chat/completions"
	// ReasoningModel is served by Akash, but only useful for deliberation.
	ReasoningModel = "DeepSeek-R1"
	ResponseModel  = "Meta-Llama-3-3-70B-Instruct"
)

var Default = Akash{
	Model:     ReasoningModel,
	URL:       ChatURL,
	APIKeyEnv: "AKASH_API_KEY",
}

// Akash is the Akash chat API. It serves both the <think> style reasoner and the
// response models.
type Akash struct {
	generic.StreamCompleter
	Model     string
	MaxTokens int
	URL       string
	APIKeyEnv string
}
