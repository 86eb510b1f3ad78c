package request_models

type DestinationSearchRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Budget      int    `json:"budget"`
	TripType    string `json:"tripType"`
	Travelers   int    `json:"travelers"`
}
