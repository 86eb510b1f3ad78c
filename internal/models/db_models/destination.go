package db_models

type Destination struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Country        string   `json:"country"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	PricePerPerson int      `json:"pricePerPerson"`
	DurationDays   int      `json:"durationDays"`
	Tags           []string `json:"tags"`
	BudgetMatch    int      `json:"budgetMatch"`
}
