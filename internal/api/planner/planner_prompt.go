package planner

import "fmt"

func GetItineraryPrompt(city, interests string, days int) string {
	return fmt.Sprintf(`
        Create a %d-day travel itinerary for %s for a traveler interested in: [%s].
        Each day has exactly three activities: morning, afternoon and evening, in that order.
        Day 1 should account for arrival, the last day for departure.
        Return the response STRICTLY as a JSON object with:
        {
        "days": [
            {
            "day": <1-based day number>,
            "activities": ["morning activity", "afternoon activity", "evening activity"]
            }
        ],
        "tips": ["practical travel tip for this destination"],
        "packing": ["item worth packing for this trip"]
        }
        Do not include any text outside the JSON object.`, days, city, interests)
}
