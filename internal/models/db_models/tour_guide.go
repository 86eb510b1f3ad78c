package db_models

type TourGuide struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	Bio             string   `json:"bio"`
	ImageURL        string   `json:"imageUrl"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviewCount"`
	Specialties     []string `json:"specialties"`
	Languages       []string `json:"languages"`
	PricePerDay     int      `json:"pricePerDay"`
	YearsExperience int      `json:"yearsExperience"`
	ToursCompleted  int      `json:"toursCompleted"`
	Certifications  []string `json:"certifications"`
	ContactEmail    string   `json:"contactEmail"`
	ContactPhone    string   `json:"contactPhone"`
}

type TourGuideReview struct {
	ID            int     `json:"id"`
	TourGuideID   int     `json:"tourGuideId"`
	ReviewerName  string  `json:"reviewerName"`
	ReviewerImage string  `json:"reviewerImage"`
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	Date          string  `json:"date"`
	TourLocation  string  `json:"tourLocation"`
}

type TourGuidePhoto struct {
	ID          int    `json:"id"`
	TourGuideID int    `json:"tourGuideId"`
	ImageURL    string `json:"imageUrl"`
	Location    string `json:"location"`
	Date        string `json:"date"`
}
