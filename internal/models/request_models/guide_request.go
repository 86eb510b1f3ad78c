package request_models

type CreateTourGuideRequest struct {
	Name            string   `json:"name" binding:"required"`
	Location        string   `json:"location" binding:"required"`
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

type CreateGuideReviewRequest struct {
	ReviewerName  string  `json:"reviewerName" binding:"required"`
	ReviewerImage string  `json:"reviewerImage"`
	Rating        float64 `json:"rating" binding:"required"`
	Comment       string  `json:"comment"`
	Date          string  `json:"date"`
	TourLocation  string  `json:"tourLocation"`
}

type CreateGuidePhotoRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	Location string `json:"location"`
	Date     string `json:"date"`
}
