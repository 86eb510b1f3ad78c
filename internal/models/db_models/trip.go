package db_models

import "time"

// Trip is the top-level record created by the trip planner. Dates are
// kept as "2006-01-02" strings, matching the wire format the client
// sends; duration is resolved at creation time.
type Trip struct {
	ID                 int       `json:"id"`
	UserID             *int      `json:"userId"`
	DestinationID      int       `json:"destinationId"`
	StartDate          string    `json:"startDate"`
	EndDate            string    `json:"endDate,omitempty"`
	Budget             int       `json:"budget"`
	Travelers          int       `json:"travelers"`
	Duration           int       `json:"duration"`
	TripType           string    `json:"tripType,omitempty"`
	Preferences        []string  `json:"preferences"`
	HotelID            *int      `json:"hotelId"`
	TotalCost          *int      `json:"totalCost"`
	TourGuideRequested bool      `json:"tourGuideRequested"`
	CreatedAt          time.Time `json:"createdAt"`
}
