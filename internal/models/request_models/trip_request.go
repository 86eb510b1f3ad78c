package request_models

// CreateTripRequest carries the trip-creation payload. Required-field
// checks run in the service, in order, so the response can name the
// first missing field; binding here only enforces the JSON shape.
type CreateTripRequest struct {
	UserID             *int     `json:"userId"`
	DestinationID      int      `json:"destinationId"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	Budget             int      `json:"budget"`
	Travelers          int      `json:"travelers"`
	Duration           int      `json:"duration"`
	TripType           string   `json:"tripType"`
	Preferences        []string `json:"preferences"`
	HotelID            *int     `json:"hotelId"`
	TotalCost          *int     `json:"totalCost"`
	TourGuideRequested bool     `json:"tourGuideRequested"`
}

// UpdateTripRequest applies a shallow merge: only non-nil fields
// overwrite the stored record.
type UpdateTripRequest struct {
	UserID             *int      `json:"userId"`
	DestinationID      *int      `json:"destinationId"`
	StartDate          *string   `json:"startDate"`
	EndDate            *string   `json:"endDate"`
	Budget             *int      `json:"budget"`
	Travelers          *int      `json:"travelers"`
	Duration           *int      `json:"duration"`
	TripType           *string   `json:"tripType"`
	Preferences        *[]string `json:"preferences"`
	HotelID            *int      `json:"hotelId"`
	TotalCost          *int      `json:"totalCost"`
	TourGuideRequested *bool     `json:"tourGuideRequested"`
}

type CreateTripDetailRequest struct {
	Day        int                   `json:"day" binding:"required"`
	Title      string                `json:"title" binding:"required"`
	Activities []TripActivityRequest `json:"activities"`
}

type TripActivityRequest struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Cost        int    `json:"cost"`
}

type UpdateBudgetRequest struct {
	Accommodation  *int `json:"accommodation"`
	Transportation *int `json:"transportation"`
	Food           *int `json:"food"`
	Activities     *int `json:"activities"`
	Miscellaneous  *int `json:"miscellaneous"`
}
