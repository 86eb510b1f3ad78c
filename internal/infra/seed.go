package infra

import (
	"time"

	"roamio/internal/models/db_models"
)

// Seed loads the sample catalog the app ships with: a country list, a
// few destinations with hotels and attractions, one example trip with
// its itinerary and budget, and a handful of tour guides.
func Seed(db *MemoryDB) {
	seedCountries(db)
	seedDestinations(db)
	seedHotels(db)
	seedAttractions(db)
	seedSampleTrip(db)
	seedTourGuides(db)
}

func seedCountries(db *MemoryDB) {
	countries := []db_models.Country{
		{Name: "United States", Code: "US", Cities: []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "San Francisco"}},
		{Name: "Spain", Code: "ES", Cities: []string{"Madrid", "Barcelona", "Valencia", "Seville", "Málaga", "Bilbao", "Granada", "Palma de Mallorca", "Tenerife", "Córdoba"}},
		{Name: "France", Code: "FR", Cities: []string{"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes", "Strasbourg", "Montpellier", "Bordeaux", "Lille"}},
		{Name: "Italy", Code: "IT", Cities: []string{"Rome", "Milan", "Naples", "Turin", "Palermo", "Genoa", "Bologna", "Florence", "Bari", "Venice"}},
		{Name: "Japan", Code: "JP", Cities: []string{"Tokyo", "Osaka", "Kyoto", "Yokohama", "Sapporo", "Nagoya", "Fukuoka", "Kobe", "Hiroshima", "Sendai"}},
		{Name: "United Kingdom", Code: "GB", Cities: []string{"London", "Manchester", "Birmingham", "Edinburgh", "Glasgow", "Liverpool", "Bristol", "Leeds", "Newcastle", "Sheffield"}},
		{Name: "Germany", Code: "DE", Cities: []string{"Berlin", "Hamburg", "Munich", "Cologne", "Frankfurt", "Stuttgart", "Düsseldorf", "Leipzig", "Dortmund", "Essen"}},
		{Name: "Australia", Code: "AU", Cities: []string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Gold Coast", "Canberra", "Newcastle", "Wollongong", "Hobart"}},
		{Name: "Greece", Code: "GR", Cities: []string{"Athens", "Thessaloniki", "Patras", "Heraklion", "Larissa", "Volos", "Rhodes", "Chania", "Santorini", "Corfu"}},
		{Name: "Thailand", Code: "TH", Cities: []string{"Bangkok", "Chiang Mai", "Phuket", "Pattaya", "Hua Hin", "Koh Samui", "Krabi", "Ayutthaya", "Phi Phi Islands", "Kanchanaburi"}},
	}
	for _, c := range countries {
		db.Countries[c.Code] = c
	}
}

func seedDestinations(db *MemoryDB) {
	destinations := []db_models.Destination{
		{
			Name:        "Barcelona",
			Country:     "Spain",
			Description: "A vibrant city known for its architecture, culture, and beautiful beaches.",
			ImageURL:    "https://images.unsplash.com/photo-1523531294919-4bcd7c65e216?auto=format&fit=crop&w=870&q=80",
			Rating:      4.5, ReviewCount: 236, PricePerPerson: 1200, DurationDays: 7,
			Tags: []string{"Beach", "Culture", "Food"}, BudgetMatch: 98,
		},
		{
			Name:        "Tokyo",
			Country:     "Japan",
			Description: "A fascinating blend of traditional and ultra-modern, with something for everyone.",
			ImageURL:    "https://images.unsplash.com/photo-1542051841857-5f90071e7989?auto=format&fit=crop&w=870&q=80",
			Rating:      4.9, ReviewCount: 412, PricePerPerson: 1850, DurationDays: 10,
			Tags: []string{"City", "Culture", "Food"}, BudgetMatch: 82,
		},
		{
			Name:        "Santorini",
			Country:     "Greece",
			Description: "Famous for its stunning sunsets, white-washed buildings and blue domes.",
			ImageURL:    "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?auto=format&fit=crop&w=870&q=80",
			Rating:      4.0, ReviewCount: 188, PricePerPerson: 1450, DurationDays: 6,
			Tags: []string{"Beach", "Relaxation", "Romantic"}, BudgetMatch: 95,
		},
	}
	for _, d := range destinations {
		dest := d
		db.Destinations.Insert(func(id int) db_models.Destination {
			dest.ID = id
			return dest
		})
	}
}

func seedHotels(db *MemoryDB) {
	hotels := []db_models.Hotel{
		{
			Name: "Hotel Arts Barcelona", DestinationID: 1,
			Description: "5-star luxury hotel with stunning sea views, rooftop pool, and award-winning dining.",
			ImageURL:    "https://images.unsplash.com/photo-1455587734955-081b22074882?auto=format&fit=crop&w=1170&q=80",
			Location:    "Beachfront", DistanceFromCenter: 2.1, Rating: 4.5, ReviewCount: 842, PricePerNight: 210,
			Facilities: []string{"Free WiFi", "Pool", "Restaurant", "Room Service"},
			Label:      "Recommended", DiscountInfo: "15% off for your dates", WithinBudget: true,
		},
		{
			Name: "Praktik Rambla", DestinationID: 1,
			Description: "Boutique hotel in a modernist building with charming terrace, central location near Passeig de Gràcia.",
			ImageURL:    "https://images.unsplash.com/photo-1445019980597-93fa8acb246c?auto=format&fit=crop&w=1174&q=80",
			Location:    "Eixample", DistanceFromCenter: 0.5, Rating: 4.0, ReviewCount: 526, PricePerNight: 150,
			Facilities: []string{"Free WiFi", "Breakfast", "Historic Building"},
			Label:      "Best Value", DiscountInfo: "Free cancellation", WithinBudget: true,
		},
		{
			Name: "Casa Camper Barcelona", DestinationID: 1,
			Description: "Designer boutique hotel with 24-hour complimentary snacks and drinks, spacious rooms with sitting areas.",
			ImageURL:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&w=1170&q=80",
			Location:    "El Raval", DistanceFromCenter: 0.8, Rating: 4.8, ReviewCount: 368, PricePerNight: 280,
			Facilities: []string{"Free WiFi", "24h Food", "Fitness", "Laundry"},
			Label:      "Premium", DiscountInfo: "Only 2 rooms left", WithinBudget: false,
		},
		{
			Name: "Generator Barcelona", DestinationID: 1,
			Description: "Modern hostel with private rooms and social atmosphere, rooftop terrace and trendy bar area.",
			ImageURL:    "https://images.unsplash.com/photo-1578683010236-d716f9a3f461?auto=format&fit=crop&w=1170&q=80",
			Location:    "Gràcia", DistanceFromCenter: 1.5, Rating: 3.0, ReviewCount: 523, PricePerNight: 85,
			Facilities: []string{"Free WiFi", "Bar", "Social"},
			Label:      "Budget Friendly", DiscountInfo: "Save $15 with code SUMMER", WithinBudget: true,
		},
	}
	for _, h := range hotels {
		hotel := h
		db.Hotels.Insert(func(id int) db_models.Hotel {
			hotel.ID = id
			return hotel
		})
	}
}

func seedAttractions(db *MemoryDB) {
	attractions := []db_models.Attraction{
		{
			Name: "Sagrada Familia", DestinationID: 1,
			Description: "Gaudí's unfinished masterpiece, this spectacular basilica is a must-see Barcelona attraction.",
			ImageURL:    "https://images.unsplash.com/photo-1583779457094-ab6f9164a1c8?auto=format&fit=crop&w=1170&q=80",
			Location:    "L'Eixample", Type: "Sightseeing", Rating: 4.8, ReviewCount: 14257, Price: 26,
			WithinBudget: true, Label: "Within Budget",
		},
		{
			Name: "Park Güell", DestinationID: 1,
			Description: "Colorful park with amazing views, featuring Gaudí's iconic mosaic work and natural design.",
			ImageURL:    "https://images.unsplash.com/photo-1551634979-2b11f8c218da?auto=format&fit=crop&w=1170&q=80",
			Location:    "Gràcia", Type: "Sightseeing", Rating: 4.3, ReviewCount: 9873, Price: 12,
			WithinBudget: true, Label: "Within Budget",
		},
		{
			Name: "Gothic Quarter Tour", DestinationID: 1,
			Description: "Walking tour through Barcelona's historic Gothic Quarter with a knowledgeable local guide.",
			ImageURL:    "https://images.unsplash.com/photo-1539037116277-4db20889f2d4?auto=format&fit=crop&w=1170&q=80",
			Location:    "Ciutat Vella", Type: "Tour", Rating: 4.9, ReviewCount: 3421, Price: 18,
			WithinBudget: true, Label: "Best Value",
		},
		{
			Name: "Tapas Cooking Class", DestinationID: 1,
			Description: "Learn to cook authentic Spanish tapas with a professional chef, then enjoy your creations.",
			ImageURL:    "https://images.unsplash.com/photo-1591780980986-58d9b721a7e3?auto=format&fit=crop&w=1170&q=80",
			Location:    "El Born", Type: "Food & Drink", Rating: 4.7, ReviewCount: 1238, Price: 65,
			WithinBudget: false, Label: "Popular",
		},
		{
			Name: "Casa Batlló", DestinationID: 1,
			Description: "One of Gaudí's most famous buildings with a dragon-inspired façade and innovative design.",
			ImageURL:    "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=1170&q=80",
			Location:    "Passeig de Gràcia", Type: "Sightseeing", Rating: 4.6, ReviewCount: 7842, Price: 35,
			WithinBudget: true, Label: "Within Budget",
		},
	}
	for _, a := range attractions {
		attraction := a
		db.Attractions.Insert(func(id int) db_models.Attraction {
			attraction.ID = id
			return attraction
		})
	}
}

func seedSampleTrip(db *MemoryDB) {
	hotelID := 1
	totalCost := 3840
	db.Trips.Insert(func(id int) db_models.Trip {
		return db_models.Trip{
			ID: id, DestinationID: 1,
			StartDate: "2023-06-15", EndDate: "2023-06-22",
			Budget: 2000, Travelers: 2, Duration: 7, TripType: "City",
			Preferences: []string{}, HotelID: &hotelID, TotalCost: &totalCost,
			CreatedAt: time.Now(),
		}
	})

	details := []db_models.TripDetail{
		{TripID: 1, Day: 1, Title: "Arrival & Exploration", Activities: []db_models.Activity{
			{Time: "10:45", Title: "Arrival at Barcelona El Prat Airport", Location: "Airport", Type: "transport"},
			{Time: "12:30", Title: "Hotel check-in & refreshment", Location: "Hotel", Type: "rest"},
			{Time: "14:00", Title: "Explore Las Ramblas & Gothic Quarter", Location: "Ciutat Vella", Type: "sightseeing"},
			{Time: "19:00", Title: "Welcome dinner at El Nacional", Location: "Passeig de Gràcia", Type: "dinner"},
		}},
		{TripID: 1, Day: 2, Title: "Gaudí Masterpieces", Activities: []db_models.Activity{
			{Time: "09:00", Title: "Sagrada Familia guided tour", Location: "L'Eixample", Type: "sightseeing"},
			{Time: "13:00", Title: "Lunch at Enrique Tomás", Location: "Local Restaurant", Type: "lunch"},
			{Time: "15:00", Title: "Park Güell visit", Location: "Gràcia", Type: "sightseeing"},
		}},
		{TripID: 1, Day: 3, Title: "Beach & Culture", Activities: []db_models.Activity{
			{Time: "10:00", Title: "Relaxation at Barceloneta Beach", Location: "Barceloneta", Type: "relaxation"},
			{Time: "14:00", Title: "Visit Picasso Museum", Location: "El Born", Type: "sightseeing"},
			{Time: "19:00", Title: "Tapas Cooking Class & Dinner", Location: "El Born", Type: "dinner"},
		}},
	}
	for _, d := range details {
		detail := d
		db.TripDetails.Insert(func(id int) db_models.TripDetail {
			detail.ID = id
			return detail
		})
	}

	db.BudgetAllocations.Insert(func(id int) db_models.BudgetAllocation {
		return db_models.BudgetAllocation{
			ID: id, TripID: 1,
			Accommodation: 800, Transportation: 300, Food: 400, Activities: 200, Miscellaneous: 300,
		}
	})
}

func seedTourGuides(db *MemoryDB) {
	guides := []db_models.TourGuide{
		{
			Name: "Elena Gomez", Location: "Barcelona, Spain",
			Bio:      "Professional guide with over 10 years of experience showing tourists the hidden gems of Barcelona. Fluent in Spanish, English, and French, specializing in architectural and culinary tours.",
			ImageURL: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&w=988&q=80",
			Rating:   4.9, ReviewCount: 143,
			Specialties: []string{"Architecture", "Culinary", "Local Culture"},
			Languages:   []string{"Spanish", "English", "French"},
			PricePerDay: 180, YearsExperience: 10, ToursCompleted: 756,
			Certifications: []string{"Licensed Barcelona Tour Guide", "Culinary Tour Specialist", "First Aid Certified"},
			ContactEmail:   "elena.gomez@barcelonaguides.com", ContactPhone: "+34 612 345 678",
		},
		{
			Name: "Akira Tanaka", Location: "Tokyo, Japan",
			Bio:      "Tokyo native with extensive knowledge of both traditional and modern aspects of Japanese culture. Passionate about sharing authentic experiences with travelers seeking to discover the real Japan.",
			ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=1170&q=80",
			Rating:   4.8, ReviewCount: 98,
			Specialties: []string{"Traditional Culture", "Technology", "Food Tours"},
			Languages:   []string{"Japanese", "English", "Mandarin"},
			PricePerDay: 200, YearsExperience: 8, ToursCompleted: 512,
			Certifications: []string{"Tokyo Tourism Association Guide", "Japanese Cultural Heritage Expert", "Language Proficiency"},
			ContactEmail:   "akira.tanaka@tokyoguides.jp", ContactPhone: "+81 90 1234 5678",
		},
		{
			Name: "Dimitris Papadopoulos", Location: "Santorini, Greece",
			Bio:      "Island native with deep knowledge of Greek history and culture. Specializes in private tours that combine breathtaking scenery, historical sites, and authentic local experiences off the beaten path.",
			ImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=987&q=80",
			Rating:   4.7, ReviewCount: 76,
			Specialties: []string{"History", "Photography", "Culinary", "Sailing"},
			Languages:   []string{"Greek", "English", "Italian", "German"},
			PricePerDay: 160, YearsExperience: 15, ToursCompleted: 628,
			Certifications: []string{"Greek National Tourism Organization License", "Marine Safety Certified", "Advanced First Aid"},
			ContactEmail:   "dimitris@santoriniexplorers.gr", ContactPhone: "+30 695 123 4567",
		},
	}
	for _, g := range guides {
		guide := g
		db.TourGuides.Insert(func(id int) db_models.TourGuide {
			guide.ID = id
			return guide
		})
	}

	reviews := []db_models.TourGuideReview{
		{
			TourGuideID: 1, ReviewerName: "Sarah Johnson",
			ReviewerImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=987&q=80",
			Rating:        5.0,
			Comment:       "Elena showed us a Barcelona we would never have discovered on our own. Her knowledge of Gaudí's architecture was incredible, and she knew exactly when to visit each site to avoid the crowds.",
			Date:          "2023-05-15", TourLocation: "Barcelona",
		},
		{
			TourGuideID: 1, ReviewerName: "Michael Chen",
			ReviewerImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=987&q=80",
			Rating:        4.5,
			Comment:       "Elena is extremely knowledgeable and friendly. She customized our tour perfectly for our interests and her restaurant recommendations were spot on!",
			Date:          "2023-04-22", TourLocation: "Barcelona",
		},
	}
	for _, r := range reviews {
		review := r
		db.GuideReviews.Insert(func(id int) db_models.TourGuideReview {
			review.ID = id
			return review
		})
	}

	photos := []db_models.TourGuidePhoto{
		{TourGuideID: 1, ImageURL: "https://images.unsplash.com/photo-1551622996-91a4c97ad239?auto=format&fit=crop&w=1170&q=80", Location: "Sagrada Familia, Barcelona", Date: "2023-03-10"},
		{TourGuideID: 1, ImageURL: "https://images.unsplash.com/photo-1561409106-fece0aca76fc?auto=format&fit=crop&w=987&q=80", Location: "Park Güell, Barcelona", Date: "2023-02-15"},
		{TourGuideID: 1, ImageURL: "https://images.unsplash.com/photo-1587789202069-f57ef526faf2?auto=format&fit=crop&w=987&q=80", Location: "Gothic Quarter, Barcelona", Date: "2023-04-18"},
	}
	for _, p := range photos {
		photo := p
		db.GuidePhotos.Insert(func(id int) db_models.TourGuidePhoto {
			photo.ID = id
			return photo
		})
	}
}
