package db_models

// BudgetAllocation splits a trip budget into the five spending
// categories. The amounts are produced by rounding fixed percentages,
// so their sum may drift from the trip budget by a few units.
type BudgetAllocation struct {
	ID             int `json:"id"`
	TripID         int `json:"tripId"`
	Accommodation  int `json:"accommodation"`
	Transportation int `json:"transportation"`
	Food           int `json:"food"`
	Activities     int `json:"activities"`
	Miscellaneous  int `json:"miscellaneous"`
}
