package db_models

type Hotel struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	DestinationID      int      `json:"destinationId"`
	Description        string   `json:"description"`
	ImageURL           string   `json:"imageUrl"`
	Location           string   `json:"location"`
	DistanceFromCenter float64  `json:"distanceFromCenter"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"reviewCount"`
	PricePerNight      int      `json:"pricePerNight"`
	Facilities         []string `json:"facilities"`
	Label              string   `json:"label,omitempty"`
	DiscountInfo       string   `json:"discountInfo,omitempty"`
	WithinBudget       bool     `json:"withinBudget"`
}
