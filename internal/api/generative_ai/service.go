package generativeAI

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/wanderplan/wanderplan/config"
)

// AIClient wraps the Gemini SDK with the model name and per-call timeouts
// taken from the application config. It holds no mutable state and is safe
// for concurrent use.
type AIClient struct {
	client          *genai.Client
	model           string
	listTimeout     time.Duration
	generateTimeout time.Duration
}

func NewAIClient(ctx context.Context, cfg *config.Config) (*AIClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &AIClient{
		client:          client,
		model:           cfg.Gemini.Model,
		listTimeout:     cfg.Gemini.ListTimeout,
		generateTimeout: cfg.Gemini.GenerateTimeout,
	}, nil
}

func (ai *AIClient) Model() string {
	return ai.model
}

// EnsureModelAvailable lists the provider's models and confirms the
// configured one is among them. Model names come back fully qualified
// ("models/gemini-2.0-flash"), so both forms are accepted.
func (ai *AIClient) EnsureModelAvailable(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ai.listTimeout)
	defer cancel()

	for m, err := range ai.client.Models.All(ctx) {
		if err != nil {
			return fmt.Errorf("failed to list models: %w", err)
		}
		if m.Name == ai.model || strings.HasSuffix(m.Name, "/"+ai.model) {
			return nil
		}
	}
	return fmt.Errorf("model %q not available", ai.model)
}

// GenerateResponse sends a single text prompt and returns the text payload
// of the first candidate.
func (ai *AIClient) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ai.generateTimeout)
	defer cancel()

	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	var txt string
	for _, candidate := range result.Candidates {
		if candidate.Content != nil && len(candidate.Content.Parts) > 0 {
			txt = candidate.Content.Parts[0].Text
			break
		}
	}
	if txt == "" {
		return "", fmt.Errorf("no valid content from model")
	}
	return txt, nil
}
