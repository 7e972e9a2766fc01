package planner

import (
	"context"
	"fmt"
	"log/slog"

	generativeAI "github.com/wanderplan/wanderplan/internal/api/generative_ai"
	"github.com/wanderplan/wanderplan/internal/types"
)

// ItinerarySource is the primary, best-effort itinerary generator. Any
// error means the caller should fall back to the mock generator.
type ItinerarySource interface {
	GenerateItinerary(ctx context.Context, city, interests string, days int) (*types.Itinerary, error)
}

// GeminiItinerarySource generates itineraries through the Gemini API and
// validates the response shape before handing it to the pipeline.
type GeminiItinerarySource struct {
	ai     *generativeAI.AIClient
	logger *slog.Logger
}

func NewGeminiItinerarySource(ai *generativeAI.AIClient, logger *slog.Logger) *GeminiItinerarySource {
	return &GeminiItinerarySource{ai: ai, logger: logger}
}

func (s *GeminiItinerarySource) GenerateItinerary(ctx context.Context, city, interests string, days int) (*types.Itinerary, error) {
	l := s.logger.With(slog.String("source", "gemini"), slog.String("city", city))

	if err := s.ai.EnsureModelAvailable(ctx); err != nil {
		l.WarnContext(ctx, "Model availability check failed", slog.Any("error", err))
		return nil, fmt.Errorf("model availability check failed: %w", err)
	}

	prompt := GetItineraryPrompt(city, interests, days)
	txt, err := s.ai.GenerateResponse(ctx, prompt)
	if err != nil {
		l.WarnContext(ctx, "Itinerary generation failed", slog.Any("error", err))
		return nil, fmt.Errorf("itinerary generation failed: %w", err)
	}

	itinerary, err := parseItinerary(cleanJSONResponse(txt))
	if err != nil {
		l.WarnContext(ctx, "Itinerary response failed validation",
			slog.Any("error", err),
			slog.Int("response_len", len(txt)),
		)
		return nil, err
	}

	if len(itinerary.Days) != days {
		// Tolerated: the fallback guarantees well-formedness, a shorter
		// answer from the model is still usable output.
		l.WarnContext(ctx, "Model returned unexpected day count",
			slog.Int("requested", days),
			slog.Int("returned", len(itinerary.Days)),
		)
	}
	return itinerary, nil
}
