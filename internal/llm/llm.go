package llm

import (
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/clipforge/clipforge/internal/config"
)

// RequestTimeout bounds the single outbound call per invocation. A timed-out
// call is handled like any other failed one.
const RequestTimeout = 35 * time.Second

// NewClient creates a chat-completion client for the configured backend.
// The two flavors differ only in auth shape: bearer token (openai) versus
// api-key header with an api-version query parameter (azure).
func NewClient(cfg config.APIConfig) *openai.Client {
	var clientCfg openai.ClientConfig
	switch cfg.Type {
	case config.APITypeAzure:
		clientCfg = openai.DefaultAzureConfig(cfg.Key, cfg.BaseURL)
		if cfg.Version != "" {
			clientCfg.APIVersion = cfg.Version
		}
	default:
		clientCfg = openai.DefaultConfig(cfg.Key)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
	}
	clientCfg.HTTPClient = &http.Client{Timeout: RequestTimeout}

	return openai.NewClientWithConfig(clientCfg)
}
