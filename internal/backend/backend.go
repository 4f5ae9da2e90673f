// Package backend resolves a variant into its reasoning, injection and response
// components, validating credentials and capabilities up front.
package backend

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/rat/internal/inject"
	"github.com/baalimago/rat/internal/models"
	"github.com/baalimago/rat/internal/vendors"
	"github.com/baalimago/rat/internal/vendors/akash"
	"github.com/baalimago/rat/internal/vendors/anthropic"
	"github.com/baalimago/rat/internal/vendors/deepseek"
	"github.com/baalimago/rat/internal/vendors/openrouter"
)

// Backend is the resolved set of components for one variant. Fixed for the
// lifetime of a session.
type Backend struct {
	Variant        models.Variant
	Extractor      models.ReasoningExtractor
	Injector       models.ContextInjector
	Generator      models.ResponseGenerator
	ReasoningModel string
	ResponseModel  string
	KnownModels    []string
}

type Options struct {
	// UseDeepseek replaces the reasoning stage with the DeepSeek reasoner.
	UseDeepseek bool
}

// New builds the backend of variant v. It fails with models.ErrAuth if a
// credential is missing, and with models.ErrUnsupportedCapability if the
// response stage can't serve the variant's injection strategy.
func New(conf Config, v models.Variant, opts Options) (*Backend, error) {
	vc := conf.For(v)
	reasoning := vc.Reasoning
	if opts.UseDeepseek {
		reasoning = deepseekEndpoint()
	}
	extractor, err := newExtractor(reasoning, conf.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to setup reasoning stage: %w", err)
	}
	generator, err := newGenerator(vc.Response, conf.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to setup response stage: %w", err)
	}
	injector := inject.New(v)
	if err := inject.CheckCapability(injector, generator); err != nil {
		return nil, fmt.Errorf("variant '%v': %w", v, err)
	}

	known := slices.Clone(vc.KnownModels)
	if vc.Response.Model != "" && !slices.Contains(known, vc.Response.Model) {
		known = append([]string{vc.Response.Model}, known...)
	}
	return &Backend{
		Variant:        v,
		Extractor:      extractor,
		Injector:       injector,
		Generator:      generator,
		ReasoningModel: reasoning.Model,
		ResponseModel:  vc.Response.Model,
		KnownModels:    known,
	}, nil
}

// FetchModels extends KnownModels with what the response provider lists. A
// failure leaves KnownModels untouched.
func (b *Backend) FetchModels(ctx context.Context) error {
	lister, ok := b.Generator.(models.ModelLister)
	if !ok {
		return fmt.Errorf("response backend of variant '%v' can't list models", b.Variant)
	}
	fetched, err := lister.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	for _, m := range fetched {
		if !slices.Contains(b.KnownModels, m) {
			b.KnownModels = append(b.KnownModels, m)
		}
	}
	return nil
}

// FetchModelsOrWarn is FetchModels, but failure is only printed.
func (b *Backend) FetchModelsOrWarn(ctx context.Context) {
	if err := b.FetchModels(ctx); err != nil {
		ancli.PrintWarn(fmt.Sprintf("using configured models only: %v\n", err))
	}
}

func newExtractor(ep Endpoint, timeout time.Duration) (models.ReasoningExtractor, error) {
	switch ep.Provider {
	case ProviderDeepseek:
		d := deepseek.Deepseek{
			Model:     ep.Model,
			MaxTokens: ep.MaxTokens,
			URL:       ep.URL,
			APIKeyEnv: ep.APIKeyEnv,
		}
		if d.Model == "" {
			d.Model = deepseek.Default.Model
		}
		if d.MaxTokens == 0 {
			d.MaxTokens = deepseek.Default.MaxTokens
		}
		d.Timeout = timeout
		return &d, d.Setup()
	case ProviderAkash:
		a := akash.Akash{
			Model:     ep.Model,
			MaxTokens: ep.MaxTokens,
			URL:       ep.URL,
			APIKeyEnv: ep.APIKeyEnv,
		}
		if a.Model == "" {
			a.Model = akash.ReasoningModel
		}
		a.Timeout = timeout
		return &a, a.Setup()
	case ProviderMock:
		return &vendors.MockReasoner{}, nil
	}
	return nil, fmt.Errorf("provider '%v' can't be used for reasoning, expected one of: %v, %v", ep.Provider, ProviderDeepseek, ProviderAkash)
}

func newGenerator(ep Endpoint, timeout time.Duration) (models.ResponseGenerator, error) {
	switch ep.Provider {
	case ProviderOpenRouter:
		o := openrouter.OpenRouter{
			Model:     ep.Model,
			MaxTokens: ep.MaxTokens,
			URL:       ep.URL,
			APIKeyEnv: ep.APIKeyEnv,
		}
		o.Timeout = timeout
		return &o, o.Setup()
	case ProviderAkash:
		a := akash.Akash{
			Model:     ep.Model,
			MaxTokens: ep.MaxTokens,
			URL:       ep.URL,
			APIKeyEnv: ep.APIKeyEnv,
		}
		a.Timeout = timeout
		return &a, a.Setup()
	case ProviderAnthropic:
		c := anthropic.Claude{
			Model:     ep.Model,
			MaxTokens: ep.MaxTokens,
			URL:       ep.URL,
			APIKeyEnv: ep.APIKeyEnv,
			Timeout:   timeout,
		}
		return &c, c.Setup()
	case ProviderMock:
		return &vendors.MockResponder{Prefill: true}, nil
	}
	return nil, fmt.Errorf("provider '%v' can't be used for responses, expected one of: %v, %v, %v", ep.Provider, ProviderOpenRouter, ProviderAkash, ProviderAnthropic)
}
