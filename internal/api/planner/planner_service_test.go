package planner

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/types"
)

// MockItinerarySource is a mock implementation of ItinerarySource
type MockItinerarySource struct {
	mock.Mock
}

func (m *MockItinerarySource) GenerateItinerary(ctx context.Context, city, interests string, days int) (*types.Itinerary, error) {
	args := m.Called(ctx, city, interests, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Itinerary), args.Error(1)
}

// MockImageSource is a mock implementation of ImageSource
type MockImageSource struct {
	mock.Mock
}

func (m *MockImageSource) CityImages(ctx context.Context, city string) []string {
	args := m.Called(ctx, city)
	return args.Get(0).([]string)
}

func TestCreatePlanUsesPrimarySource(t *testing.T) {
	source := new(MockItinerarySource)
	imageSource := new(MockImageSource)
	service := NewPlannerService(source, imageSource, slog.Default())
	ctx := context.Background()

	req := types.TripRequest{City: "Paris", Interests: "culture, food", Days: 4}
	generated := &types.Itinerary{
		Days: []types.DayPlan{
			{Day: 1, Activities: []string{"a", "b", "c"}},
		},
		Tips:    []string{"tip"},
		Packing: []string{"item"},
	}
	images := []string{"https://example.com/1.jpg", "https://example.com/2.jpg"}

	source.On("GenerateItinerary", ctx, "Paris", "culture, food", 4).Return(generated, nil)
	imageSource.On("CityImages", ctx, "Paris").Return(images)

	plan := service.CreatePlan(ctx, req)

	require.NotNil(t, plan)
	assert.False(t, plan.UsedFallback)
	assert.Equal(t, *generated, plan.Itinerary)
	assert.Equal(t, images, plan.Images)
	assert.Equal(t, req, plan.Request)
	assert.NotEqual(t, plan.ID.String(), "00000000-0000-0000-0000-000000000000")
	source.AssertExpectations(t)
	imageSource.AssertExpectations(t)
}

func TestCreatePlanFallsBackOnSourceFailure(t *testing.T) {
	source := new(MockItinerarySource)
	imageSource := new(MockImageSource)
	service := NewPlannerService(source, imageSource, slog.Default())
	ctx := context.Background()

	req := types.TripRequest{City: "Paris", Interests: "culture, food", Days: 4}

	source.On("GenerateItinerary", ctx, "Paris", "culture, food", 4).
		Return(nil, errors.New("model unreachable"))
	imageSource.On("CityImages", ctx, "Paris").Return([]string{"https://example.com/a.jpg"})

	plan := service.CreatePlan(ctx, req)

	require.NotNil(t, plan)
	assert.True(t, plan.UsedFallback)
	assert.Equal(t, GenerateMockItinerary("Paris", "culture, food", 4), plan.Itinerary)
	// One attempt only: no retry loop around the primary source.
	source.AssertNumberOfCalls(t, "GenerateItinerary", 1)
}
