package generic

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/rat/internal/models"
)

// Setup reads the api key from apiKeyEnv and prepares the http client. A missing
// key is an auth error, since it's fatal at startup.
func (s *StreamCompleter) Setup(apiKeyEnv, url, debugEnv string) error {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return fmt.Errorf("%w: environment variable '%v' not set", models.ErrAuth, apiKeyEnv)
	}
	s.client = &http.Client{Timeout: s.Timeout}
	s.apiKey = apiKey
	if url != "" {
		s.URL = url
	}
	if s.ModelsURL == "" {
		s.ModelsURL = strings.TrimSuffix(s.URL, "/chat/completions") + "/models"
	}

	if misc.Truthy(os.Getenv("DEBUG")) || misc.Truthy(os.Getenv(debugEnv)) {
		s.debug = true
	}
	return nil
}
