package akash

import (
	"context"
	"fmt"
	"strings"
)

// ListModels lists the response models, reasoning models are filtered out.
func (a *Akash) ListModels(ctx context.Context) ([]string, error) {
	all, err := a.StreamCompleter.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list akash models: %w", err)
	}
	ret := make([]string, 0, len(all))
	for _, m := range all {
		if strings.Contains(m, ReasoningModel) {
			continue
		}
		ret = append(ret, m)
	}
	return ret, nil
}
