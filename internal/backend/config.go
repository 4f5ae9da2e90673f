package backend

import (
	"time"

	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/vendors/akash"
	"github.com/baalimago/rat/internal/vendors/anthropic"
	"github.com/baalimago/rat/internal/vendors/deepseek"
	"github.com/baalimago/rat/internal/vendors/openrouter"
)

const ConfigFileName = "ratConfig.yaml"

const (
	ProviderDeepseek   = "deepseek"
	ProviderAkash      = "akash"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	// ProviderMock answers without any network, for trying things out offline.
	ProviderMock = "mock"
)

// Endpoint is one stage's upstream. Empty fields fall back to the provider's defaults.
type Endpoint struct {
	Provider  string `yaml:"provider"`
	URL       string `yaml:"url,omitempty"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	MaxTokens int    `yaml:"max_tokens,omitempty"`
}

type VariantConfig struct {
	Reasoning   Endpoint `yaml:"reasoning"`
	Response    Endpoint `yaml:"response"`
	KnownModels []string `yaml:"known_models"`
}

// Config is the content of ratConfig.yaml.
type Config struct {
	Variant       string `yaml:"variant"`
	NoStream      bool   `yaml:"no_stream"`
	HideReasoning bool   `yaml:"hide_reasoning"`
	// RequestTimeout is a fixed deadline for each upstream call. 0 disables it.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	FetchModels    bool          `yaml:"fetch_models"`
	SystemPrompt   string        `yaml:"system_prompt,omitempty"`
	Standard       VariantConfig `yaml:"standard"`
	Claude         VariantConfig `yaml:"claude"`
	Akash          VariantConfig `yaml:"akash"`
}

func deepseekEndpoint() Endpoint {
	return Endpoint{
		Provider:  ProviderDeepseek,
		Model:     deepseek.Default.Model,
		APIKeyEnv: deepseek.Default.APIKeyEnv,
		MaxTokens: deepseek.Default.MaxTokens,
	}
}

func akashReasoningEndpoint() Endpoint {
	return Endpoint{
		Provider:  ProviderAkash,
		Model:     akash.ReasoningModel,
		APIKeyEnv: akash.Default.APIKeyEnv,
	}
}

func DefaultConfig() Config {
	return Config{
		Variant:        string(models.VariantStandard),
		RequestTimeout: 5 * time.Minute,
		Standard: VariantConfig{
			Reasoning: deepseekEndpoint(),
			Response: Endpoint{
				Provider:  ProviderOpenRouter,
				Model:     openrouter.Default.Model,
				APIKeyEnv: openrouter.Default.APIKeyEnv,
			},
			KnownModels: []string{
				"openai/gpt-4o-mini",
				"openai/gpt-4o",
				"anthropic/claude-3.5-haiku",
				"anthropic/claude-3.5-sonnet",
				"google/gemini-2.0-flash-001",
				"meta-llama/llama-3.3-70b-instruct",
			},
		},
		Claude: VariantConfig{
			Reasoning: akashReasoningEndpoint(),
			Response: Endpoint{
				Provider:  ProviderAnthropic,
				Model:     anthropic.Default.Model,
				APIKeyEnv: anthropic.Default.APIKeyEnv,
				MaxTokens: anthropic.Default.MaxTokens,
			},
			KnownModels: anthropic.KnownModels,
		},
		Akash: VariantConfig{
			Reasoning: akashReasoningEndpoint(),
			Response: Endpoint{
				Provider:  ProviderAkash,
				Model:     akash.ResponseModel,
				APIKeyEnv: akash.Default.APIKeyEnv,
			},
			KnownModels: []string{
				akash.ResponseModel,
				"Meta-Llama-3-1-8B-Instruct-FP8",
				"Meta-Llama-3-1-405B-Instruct-FP8",
			},
		},
	}
}

// For returns the stage configuration of variant v.
func (c Config) For(v models.Variant) VariantConfig {
	switch v {
	case models.VariantClaudePrefill:
		return c.Claude
	case models.VariantAkash:
		return c.Akash
	default:
		return c.Standard
	}
}
