package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/wanderplan/wanderplan/app/metrics"
	"github.com/wanderplan/wanderplan/internal/types"
)

// ImageSource returns illustrative photo URLs for a city. Implementations
// never fail: provider errors are absorbed into placeholder substitution.
type ImageSource interface {
	CityImages(ctx context.Context, city string) []string
}

// PlannerService owns the synthesis pipeline: primary source first, mock
// generator as the guaranteed fallback.
type PlannerService interface {
	CreatePlan(ctx context.Context, req types.TripRequest) *types.TripPlan
}

// Ensure implementation satisfies the interface
var _ PlannerService = (*PlannerServiceImpl)(nil)

type PlannerServiceImpl struct {
	logger *slog.Logger
	source ItinerarySource
	images ImageSource
}

func NewPlannerService(source ItinerarySource, images ImageSource, logger *slog.Logger) *PlannerServiceImpl {
	return &PlannerServiceImpl{
		logger: logger,
		source: source,
		images: images,
	}
}

// CreatePlan never fails from the caller's perspective. The primary source
// is attempted exactly once; any failure falls through to the deterministic
// generator. Outbound calls run sequentially, each with its own timeout.
func (s *PlannerServiceImpl) CreatePlan(ctx context.Context, req types.TripRequest) *types.TripPlan {
	l := s.logger.With(
		slog.String("city", req.City),
		slog.Int("days", req.Days),
	)
	m := metrics.Get()

	start := time.Now()
	itinerary, err := s.source.GenerateItinerary(ctx, req.City, req.Interests, req.Days)
	m.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds())

	usedFallback := false
	if err != nil {
		l.WarnContext(ctx, "Primary itinerary source failed, using fallback", slog.Any("error", err))
		mock := GenerateMockItinerary(req.City, req.Interests, req.Days)
		itinerary = &mock
		usedFallback = true
		m.PlanFallbackTotal.Add(ctx, 1)
	}

	images := s.images.CityImages(ctx, req.City)

	m.PlanRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.Bool("fallback", usedFallback)))

	return &types.TripPlan{
		ID:           uuid.New(),
		Request:      req,
		Itinerary:    *itinerary,
		UsedFallback: usedFallback,
		Images:       images,
	}
}
