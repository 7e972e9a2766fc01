package types

import (
	"errors"

	"github.com/google/uuid"
)

// Validation failures surfaced to the user as instructional messages.
// Everything else below the handler boundary is recovered by a fallback.
var (
	ErrEmptyCity      = errors.New("city must not be empty")
	ErrEmptyInterests = errors.New("interests must not be empty")
	ErrInputTooLong   = errors.New("input exceeds maximum length")
)

// TripRequest is the canonical, normalized form input. Immutable once
// built and discarded after the response is rendered.
type TripRequest struct {
	City      string `json:"city"`
	Interests string `json:"interests"`
	Days      int    `json:"days"`
}

// DayPlan is one day of an itinerary. Day is 1-based and contiguous;
// Activities holds morning, afternoon and evening in that order.
type DayPlan struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

type Itinerary struct {
	Days    []DayPlan `json:"days"`
	Tips    []string  `json:"tips"`
	Packing []string  `json:"packing"`
}

// TripPlan is the request-scoped aggregate handed to the renderer.
type TripPlan struct {
	ID           uuid.UUID
	Request      TripRequest
	Itinerary    Itinerary
	UsedFallback bool
	Images       []string
}
