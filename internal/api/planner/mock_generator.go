package planner

import (
	"fmt"
	"strings"

	"github.com/wanderplan/wanderplan/internal/types"
)

// Candidate activities per interest category. Order matters: day slots are
// filled positionally from the concatenated candidate list, so each table
// starts with its strongest picks. "{city}" is substituted at build time.
var interestActivities = map[string][]string{
	"culture": {
		"Visit the main museum of art and history in {city}",
		"Take a guided walking tour of the old town",
		"See a performance at a historic theatre or concert hall",
		"Explore the most iconic cathedral or temple in {city}",
		"Wander through a gallery district and its small exhibitions",
		"Join a local history lecture or museum night tour",
		"Visit a heritage site just outside {city}",
	},
	"food": {
		"Sample street food at the central market of {city}",
		"Take a cooking class featuring regional dishes",
		"Dine at a family-run restaurant recommended by locals",
		"Join a guided food tour through the old quarters",
		"Visit a local bakery and try the morning specialties",
		"Taste regional wine or craft beer at a tasting room",
		"Have dinner at a rooftop restaurant overlooking {city}",
	},
	"adventure": {
		"Go hiking on a scenic trail near {city}",
		"Rent a bike and explore the outskirts",
		"Try a kayaking or rafting trip on the nearest river",
		"Take a zip-line or high-ropes course",
		"Join a rock-climbing session with a local guide",
		"Go on a sunrise trek to a viewpoint above {city}",
		"Book an off-road or horseback excursion",
	},
	"nature": {
		"Stroll through the botanical gardens of {city}",
		"Spend the morning in the largest city park",
		"Take a day trip to a nearby national park",
		"Watch the sunset from a natural viewpoint",
		"Join a bird-watching or wildlife-spotting walk",
		"Visit a lake or riverside promenade",
		"Explore a nature reserve a short ride from {city}",
	},
	"relaxation": {
		"Book a morning at a spa or thermal baths",
		"Relax at a quiet cafe with a view of {city}",
		"Join a yoga or meditation session in the park",
		"Take a slow boat ride or harbor cruise",
		"Spend the afternoon reading in a garden courtyard",
		"Enjoy a long, unhurried lunch at a terrace restaurant",
		"Get a massage or wellness treatment",
	},
	"shopping": {
		"Browse the main shopping street of {city}",
		"Hunt for antiques at a flea market",
		"Visit local artisan workshops and boutiques",
		"Explore a covered market hall for regional products",
		"Shop for souvenirs in the old town",
		"Visit a design or concept store district",
		"Pick up local delicacies to bring home from {city}",
	},
}

// categoryOrder lists the known categories in display order for the form.
var categoryOrder = []string{"culture", "food", "adventure", "nature", "relaxation", "shopping"}

var genericActivities = []string{
	"Take a walking tour of the main sights of {city}",
	"Visit the most popular landmark in {city}",
	"Explore the old town and its side streets",
	"Have lunch at a well-reviewed local restaurant",
	"Visit a viewpoint for a panorama of {city}",
	"Browse a local market",
	"Enjoy an evening stroll along the liveliest boulevard",
}

var travelTips = []string{
	"Check visa requirements and passport validity well before departure",
	"Learn a few basic phrases in the local language",
	"Carry a copy of your passport separate from the original",
	"Notify your bank of travel dates to avoid card blocks",
	"Use official taxis or reputable ride apps, especially at night",
	"Keep small bills on hand for markets and tips",
	"Buy a local SIM or eSIM for cheap data on arrival",
	"Check the weather forecast the night before each day trip",
}

var packingList = []string{
	"Comfortable walking shoes",
	"Weather-appropriate outer layer",
	"Universal power adapter",
	"Portable phone charger",
	"Reusable water bottle",
	"Day pack for excursions",
	"Sunscreen and sunglasses",
	"Basic first-aid kit and personal medication",
	"Copies of travel documents",
	"A change of clothes in your carry-on",
}

// candidateActivities builds the flat candidate list for the given
// interests string: each recognized category contributes its full table, in
// the order the interests were listed. A token counts as a category only on
// exact equality after trimming and lowercasing, so "seafood" does not pull
// in the food table. Unrecognized input falls back to the generic list so
// the generator always has something to slot.
func candidateActivities(interests string) []string {
	var candidates []string
	for _, token := range strings.Split(strings.ToLower(interests), ",") {
		token = strings.TrimSpace(token)
		if activities, ok := interestActivities[token]; ok {
			candidates = append(candidates, activities...)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, genericActivities...)
	}
	return candidates
}

func activityAt(candidates []string, idx int, city string) string {
	if idx < 0 || idx >= len(candidates) {
		return fmt.Sprintf("Explore more of %s at your own pace", city)
	}
	return strings.ReplaceAll(candidates[idx], "{city}", city)
}

// GenerateMockItinerary is the deterministic fallback generator. It is pure
// and total: for any city, interests and days >= 1 it returns an itinerary
// with exactly `days` day plans of three activities each.
func GenerateMockItinerary(city, interests string, days int) types.Itinerary {
	candidates := candidateActivities(interests)

	dayPlans := make([]types.DayPlan, 0, days)
	for d := 1; d <= days; d++ {
		base := (d - 1) * 3
		var activities []string
		switch {
		case d == 1:
			activities = []string{
				fmt.Sprintf("Arrive in %s, check in and get your bearings with a short walk", city),
				activityAt(candidates, 0, city),
				activityAt(candidates, 1, city),
			}
		case d == days:
			activities = []string{
				activityAt(candidates, base, city),
				activityAt(candidates, base+1, city),
				fmt.Sprintf("Pick up last souvenirs and depart from %s", city),
			}
		default:
			activities = []string{
				activityAt(candidates, base, city),
				activityAt(candidates, base+1, city),
				activityAt(candidates, base+2, city),
			}
		}
		dayPlans = append(dayPlans, types.DayPlan{Day: d, Activities: activities})
	}

	return types.Itinerary{
		Days:    dayPlans,
		Tips:    append([]string(nil), travelTips...),
		Packing: append([]string(nil), packingList...),
	}
}
