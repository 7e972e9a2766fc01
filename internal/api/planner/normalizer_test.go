package planner

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/types"
)

func TestNormalizeTripRequest(t *testing.T) {
	tests := []struct {
		name        string
		form        url.Values
		expected    types.TripRequest
		expectedErr error
	}{
		{
			name: "Valid request",
			form: url.Values{"city": {"Lisbon"}, "interests": {"food"}, "days": {"5"}},
			expected: types.TripRequest{
				City:      "Lisbon",
				Interests: "food",
				Days:      5,
			},
		},
		{
			name:        "Empty city",
			form:        url.Values{"city": {""}, "interests": {"food"}},
			expectedErr: types.ErrEmptyCity,
		},
		{
			name:        "Whitespace-only city",
			form:        url.Values{"city": {"   "}, "interests": {"food"}},
			expectedErr: types.ErrEmptyCity,
		},
		{
			name:        "City too long",
			form:        url.Values{"city": {strings.Repeat("a", 101)}},
			expectedErr: types.ErrInputTooLong,
		},
		{
			name:     "Multibyte city counts runes, not bytes",
			form:     url.Values{"city": {strings.Repeat("ü", 60)}},
			expected: types.TripRequest{City: strings.Repeat("ü", 60), Interests: "general sightseeing", Days: 3},
		},
		{
			name:        "Multibyte city over the rune limit",
			form:        url.Values{"city": {strings.Repeat("ü", 101)}},
			expectedErr: types.ErrInputTooLong,
		},
		{
			name:        "Interests too long",
			form:        url.Values{"city": {"Lisbon"}, "interests": {strings.Repeat("b", 201)}},
			expectedErr: types.ErrInputTooLong,
		},
		{
			name:        "Interests present but empty",
			form:        url.Values{"city": {"Lisbon"}, "interests": {"  "}},
			expectedErr: types.ErrEmptyInterests,
		},
		{
			name:     "Multi-value city takes first element",
			form:     url.Values{"city": {"Paris", "Rome"}},
			expected: types.TripRequest{City: "Paris", Interests: "general sightseeing", Days: 3},
		},
		{
			name:     "Multi-value interests joined",
			form:     url.Values{"city": {"Paris"}, "interests": {"culture", "food"}},
			expected: types.TripRequest{City: "Paris", Interests: "culture, food", Days: 3},
		},
		{
			name:     "Absent interests default",
			form:     url.Values{"city": {"Kyoto"}},
			expected: types.TripRequest{City: "Kyoto", Interests: "general sightseeing", Days: 3},
		},
		{
			name:     "Unparseable days default to 3",
			form:     url.Values{"city": {"Kyoto"}, "days": {"abc"}},
			expected: types.TripRequest{City: "Kyoto", Interests: "general sightseeing", Days: 3},
		},
		{
			name:     "Non-positive days default to 3",
			form:     url.Values{"city": {"Kyoto"}, "days": {"-2"}},
			expected: types.TripRequest{City: "Kyoto", Interests: "general sightseeing", Days: 3},
		},
		{
			name:     "Days clamped to 30",
			form:     url.Values{"city": {"Kyoto"}, "days": {"90"}},
			expected: types.TripRequest{City: "Kyoto", Interests: "general sightseeing", Days: 30},
		},
		{
			name:     "Angle brackets stripped",
			form:     url.Values{"city": {"<b>Oslo</b>"}, "interests": {"<script>nature</script>"}},
			expected: types.TripRequest{City: "bOslo/b", Interests: "scriptnature/script", Days: 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeTripRequest(tc.form)
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
