package response_models

import "roamio/internal/models/db_models"

// HotelResponse is a hotel enriched with its destination's name and
// country for list views.
type HotelResponse struct {
	db_models.Hotel
	DestinationName string `json:"destinationName,omitempty"`
	Country         string `json:"country,omitempty"`
}

type AttractionResponse struct {
	db_models.Attraction
	DestinationName string `json:"destinationName,omitempty"`
	Country         string `json:"country,omitempty"`
}
