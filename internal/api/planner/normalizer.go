package planner

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wanderplan/wanderplan/internal/types"
)

const (
	maxCityLen       = 100
	maxInterestsLen  = 200
	defaultDays      = 3
	maxDays          = 30
	defaultInterests = "general sightseeing"
)

// sanitizeInput strips the literal angle brackets from user text. This is a
// display-safety measure for the rendered page, not a security boundary.
func sanitizeInput(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}

// NormalizeTripRequest coerces raw form values into a canonical TripRequest.
// City takes the first value when submitted multiple times; interests are
// joined with ", " and default to general sightseeing when the field is
// absent; days defaults to 3 on anything unparseable or non-positive and is
// capped at 30 to bound page size and prompt length.
func NormalizeTripRequest(form url.Values) (types.TripRequest, error) {
	city := ""
	if vs, ok := form["city"]; ok && len(vs) > 0 {
		city = vs[0]
	}
	city = sanitizeInput(city)
	if city == "" {
		return types.TripRequest{}, types.ErrEmptyCity
	}
	if utf8.RuneCountInString(city) > maxCityLen {
		return types.TripRequest{}, types.ErrInputTooLong
	}

	interests := defaultInterests
	if vs, ok := form["interests"]; ok {
		interests = sanitizeInput(strings.Join(vs, ", "))
		if interests == "" {
			return types.TripRequest{}, types.ErrEmptyInterests
		}
	}
	if utf8.RuneCountInString(interests) > maxInterestsLen {
		return types.TripRequest{}, types.ErrInputTooLong
	}

	days := defaultDays
	if raw := strings.TrimSpace(form.Get("days")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			days = n
		}
	}
	if days > maxDays {
		days = maxDays
	}

	return types.TripRequest{City: city, Interests: interests, Days: days}, nil
}
