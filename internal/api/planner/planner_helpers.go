package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wanderplan/wanderplan/internal/types"
)

func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	// Remove markdown code block markers
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}

	if strings.HasSuffix(response, "```") {
		response = strings.TrimSuffix(response, "```")
	}

	response = strings.TrimSpace(response)

	// Models sometimes wrap the JSON in explanatory prose; extract the
	// first top-level object.
	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace == -1 || lastBrace <= firstBrace {
		return response
	}
	return strings.TrimSpace(response[firstBrace : lastBrace+1])
}

// parseItinerary validates and decodes a model response into an Itinerary.
// Structural checks only: days must be a non-empty array and tips/packing
// must be present. The day count is deliberately not compared against the
// request, so a model answering with fewer days than asked still counts as
// a success.
func parseItinerary(jsonStr string) (*types.Itinerary, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary JSON: %w", err)
	}
	for _, field := range []string{"days", "tips", "packing"} {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("itinerary JSON missing %q field", field)
		}
	}

	var itinerary types.Itinerary
	if err := json.Unmarshal([]byte(jsonStr), &itinerary); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary JSON: %w", err)
	}
	if len(itinerary.Days) == 0 {
		return nil, fmt.Errorf("itinerary JSON has no days")
	}
	return &itinerary, nil
}
