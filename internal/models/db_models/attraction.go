package db_models

type Attraction struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	DestinationID int     `json:"destinationId"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	Location      string  `json:"location"`
	Type          string  `json:"type"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Price         int     `json:"price"`
	WithinBudget  bool    `json:"withinBudget"`
	Label         string  `json:"label,omitempty"`
}
