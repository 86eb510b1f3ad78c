package db_models

// TripDetail is one day of a trip itinerary. Day numbers are 1-based
// and contiguous up to the trip duration when generated at creation.
type TripDetail struct {
	ID         int        `json:"id"`
	TripID     int        `json:"tripId"`
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Cost        int    `json:"cost"`
}
