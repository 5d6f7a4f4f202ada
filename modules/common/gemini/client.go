package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"marketing-poster-server/modules/common/config"
)

// ContentGenerator is the single model call the adapters depend on.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewClient - builds the process wide genai client for the configured backend.
// The returned client is read-only after construction and safe to share between requests.
func NewClient(ctx context.Context, cfg *config.Config) (*genai.Client, error) {
	cc := &genai.ClientConfig{}

	switch cfg.GeminiBackend {
	case config.BackendVertex:
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.GoogleCloudProject
		cc.Location = cfg.GoogleCloudLocation
	default:
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.GeminiAPIKey
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}
