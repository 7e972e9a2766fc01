package planner

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/render"
	"github.com/wanderplan/wanderplan/internal/types"
)

var generatedItinerary = types.Itinerary{
	Days: []types.DayPlan{
		{Day: 1, Activities: []string{"Morning coffee by the river", "Tram ride through the hills", "Fado dinner"}},
		{Day: 2, Activities: []string{"a", "b", "c"}},
		{Day: 3, Activities: []string{"d", "e", "f"}},
	},
	Tips:    []string{"tip"},
	Packing: []string{"item"},
}

func newTestHandler(t *testing.T, service PlannerService) *Handler {
	t.Helper()
	renderer, err := render.New()
	require.NoError(t, err)
	return NewHandler(service, renderer, slog.Default())
}

func postPlanForm(t *testing.T, h *Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.CreatePlan(rr, req)
	return rr
}

func TestShowForm(t *testing.T) {
	h := newTestHandler(t, nil)

	rr := httptest.NewRecorder()
	h.ShowForm(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	body := rr.Body.String()
	assert.Contains(t, body, `action="/plan"`)
	for _, category := range categoryOrder {
		assert.Contains(t, body, category)
	}
}

func TestCreatePlanFallbackEndToEnd(t *testing.T) {
	// Primary source unreachable: the page must still render a full
	// four-day plan from the fallback generator.
	source := new(MockItinerarySource)
	source.On("GenerateItinerary", mock.Anything, "Paris", "culture, food", 4).
		Return(nil, errors.New("dial tcp: connection refused"))
	imageSource := new(MockImageSource)
	imageSource.On("CityImages", mock.Anything, "Paris").
		Return([]string{"https://example.com/a.jpg", "https://example.com/b.jpg"})

	service := NewPlannerService(source, imageSource, slog.Default())
	h := newTestHandler(t, service)

	rr := postPlanForm(t, h, url.Values{
		"city":      {"Paris"},
		"interests": {"culture", "food"},
		"days":      {"4"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "4-day itinerary for Paris")
	assert.Contains(t, body, "Day 1")
	assert.Contains(t, body, "Day 4")
	assert.NotContains(t, body, "Day 5")
	assert.Contains(t, body, "curated activity library")
	assert.Contains(t, body, "https://example.com/a.jpg")
}

func TestCreatePlanPrimarySourceSuccess(t *testing.T) {
	source := new(MockItinerarySource)
	source.On("GenerateItinerary", mock.Anything, "Lisbon", "general sightseeing", 3).
		Return(&generatedItinerary, nil)
	imageSource := new(MockImageSource)
	imageSource.On("CityImages", mock.Anything, "Lisbon").Return([]string{})

	service := NewPlannerService(source, imageSource, slog.Default())
	h := newTestHandler(t, service)

	rr := postPlanForm(t, h, url.Values{"city": {"Lisbon"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Morning coffee by the river")
	assert.NotContains(t, body, "curated activity library")
}

func TestCreatePlanValidationErrors(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		name            string
		form            url.Values
		expectedMessage string
	}{
		{
			name:            "Empty city",
			form:            url.Values{"city": {"  "}},
			expectedMessage: "Please enter a destination city.",
		},
		{
			name:            "City too long",
			form:            url.Values{"city": {strings.Repeat("x", 150)}},
			expectedMessage: "That input is a little long.",
		},
		{
			name:            "Empty interests",
			form:            url.Values{"city": {"Rome"}, "interests": {" "}},
			expectedMessage: "Please select or enter at least one interest.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := postPlanForm(t, h, tc.form)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedMessage)
		})
	}
}

func TestUserFacingMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Timeout", context.DeadlineExceeded, "took too long"},
		{"Rate limit", errors.New("googleapi: Error 429: quota exceeded"), "a lot of requests"},
		{"Auth", errors.New("401 unauthorized: invalid API key"), "authenticate"},
		{"Generic", errors.New("boom"), "Something unexpected went wrong"},
		{"Nil", nil, "Something unexpected went wrong"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, userFacingMessage(tc.err), tc.expected)
		})
	}
}
