package services

import (
	"fmt"
	"math"
	"math/rand"

	"roamio/internal/models/db_models"
)

// PlannerServiceInterface generates the derived records for a new
// trip: the category budget split and the day-by-day itinerary.
type PlannerServiceInterface interface {
	AllocateBudget(totalBudget int) db_models.BudgetAllocation
	BuildItinerary(destinationName string, duration int, budget int, preferences []string) []db_models.TripDetail
}

type PlannerService struct {
	rng *rand.Rand
}

// NewPlannerService builds a planner. The rand source drives only the
// preference pick in mid-morning activity titles; inject a seeded
// source in tests for reproducible output.
func NewPlannerService(rng *rand.Rand) PlannerServiceInterface {
	return &PlannerService{rng: rng}
}

// AllocateBudget splits a total budget across the five spending
// categories at fixed percentages. Each amount is rounded to the
// nearest unit independently, so the five may not sum exactly to the
// total. Degenerate inputs (zero or negative) pass through unchecked.
func (p *PlannerService) AllocateBudget(totalBudget int) db_models.BudgetAllocation {
	share := func(pct float64) int {
		return int(math.Round(float64(totalBudget) * pct))
	}
	return db_models.BudgetAllocation{
		Accommodation:  share(0.40),
		Transportation: share(0.15),
		Food:           share(0.20),
		Activities:     share(0.10),
		Miscellaneous:  share(0.15),
	}
}

// BuildItinerary produces one day plan per day of the trip, each with
// the five fixed activity slots. Duration 0 yields an empty itinerary;
// there is no upper cap.
func (p *PlannerService) BuildItinerary(destinationName string, duration int, budget int, preferences []string) []db_models.TripDetail {
	plans := make([]db_models.TripDetail, 0, max(duration, 0))

	for day := 1; day <= duration; day++ {
		var title string
		switch {
		case day == 1:
			// The welcome check runs first: a one-day trip is titled
			// "Welcome to", not "Farewell to".
			title = fmt.Sprintf("Welcome to %s", destinationName)
		case day == duration:
			title = fmt.Sprintf("Farewell to %s", destinationName)
		default:
			title = fmt.Sprintf("Exploring %s - Day %d", destinationName, day)
		}

		plans = append(plans, db_models.TripDetail{
			Day:        day,
			Title:      title,
			Activities: p.dayActivities(destinationName, day, duration, budget, preferences),
		})
	}

	return plans
}

func (p *PlannerService) dayActivities(destinationName string, day, duration, budget int, preferences []string) []db_models.Activity {
	cost := func(pct float64) int {
		return int(math.Round(float64(budget) * pct))
	}

	morningTitle := fmt.Sprintf("%s Orientation Tour", destinationName)
	if day != 1 {
		morningTitle = fmt.Sprintf("%s %s Experience", destinationName, p.pickPreference(preferences))
	}

	afternoonTitle := fmt.Sprintf("%s Attraction Visit", destinationName)
	if day == duration {
		afternoonTitle = "Souvenir Shopping"
	}

	return []db_models.Activity{
		{
			Time:        "08:00",
			Title:       "Breakfast at hotel",
			Description: "Start your day with a delicious breakfast",
			Location:    "Hotel",
			Type:        "breakfast",
			Cost:        cost(0.01),
		},
		{
			Time:        "10:00",
			Title:       morningTitle,
			Description: "Explore the highlights of the area",
			Location:    "City Center",
			Type:        "sightseeing",
			Cost:        cost(0.02),
		},
		{
			Time:        "13:00",
			Title:       "Lunch break",
			Description: "Enjoy local cuisine at a recommended restaurant",
			Location:    "Local Restaurant",
			Type:        "lunch",
			Cost:        cost(0.015),
		},
		{
			Time:        "15:00",
			Title:       afternoonTitle,
			Description: "Visit a popular local attraction",
			Location:    "Tourist Area",
			Type:        "sightseeing",
			Cost:        cost(0.025),
		},
		{
			Time:        "19:00",
			Title:       "Dinner experience",
			Description: "Savor the local flavors at a recommended venue",
			Location:    "Restaurant District",
			Type:        "dinner",
			Cost:        cost(0.03),
		},
	}
}

func (p *PlannerService) pickPreference(preferences []string) string {
	if len(preferences) == 0 {
		return "Cultural"
	}
	return preferences[p.rng.Intn(len(preferences))]
}
