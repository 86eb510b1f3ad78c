package services

import (
	"context"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type GuideServiceInterface interface {
	GetTourGuides(ctx context.Context) ([]db_models.TourGuide, error)
	GetTourGuide(ctx context.Context, id int) (*db_models.TourGuide, error)
	CreateTourGuide(ctx context.Context, req request_models.CreateTourGuideRequest) (*db_models.TourGuide, error)
	GetReviews(ctx context.Context, guideID int) ([]db_models.TourGuideReview, error)
	AddReview(ctx context.Context, guideID int, req request_models.CreateGuideReviewRequest) (*db_models.TourGuideReview, error)
	GetPhotos(ctx context.Context, guideID int) ([]db_models.TourGuidePhoto, error)
	AddPhoto(ctx context.Context, guideID int, req request_models.CreateGuidePhotoRequest) (*db_models.TourGuidePhoto, error)
}

type GuideService struct {
	guideRepo repositories.GuideRepository
}

func NewGuideService(guideRepo repositories.GuideRepository) GuideServiceInterface {
	return &GuideService{guideRepo: guideRepo}
}

func (s *GuideService) GetTourGuides(ctx context.Context) ([]db_models.TourGuide, error) {
	return s.guideRepo.GetAll(ctx)
}

func (s *GuideService) GetTourGuide(ctx context.Context, id int) (*db_models.TourGuide, error) {
	guide, err := s.guideRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, utils.ErrTourGuideNotFound
	}
	return guide, nil
}

func (s *GuideService) CreateTourGuide(ctx context.Context, req request_models.CreateTourGuideRequest) (*db_models.TourGuide, error) {
	guide, err := s.guideRepo.Create(ctx, db_models.TourGuide{
		Name:            req.Name,
		Location:        req.Location,
		Bio:             req.Bio,
		ImageURL:        req.ImageURL,
		Rating:          req.Rating,
		ReviewCount:     req.ReviewCount,
		Specialties:     req.Specialties,
		Languages:       req.Languages,
		PricePerDay:     req.PricePerDay,
		YearsExperience: req.YearsExperience,
		ToursCompleted:  req.ToursCompleted,
		Certifications:  req.Certifications,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
	})
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (s *GuideService) GetReviews(ctx context.Context, guideID int) ([]db_models.TourGuideReview, error) {
	return s.guideRepo.ListReviews(ctx, guideID)
}

func (s *GuideService) AddReview(ctx context.Context, guideID int, req request_models.CreateGuideReviewRequest) (*db_models.TourGuideReview, error) {
	review, err := s.guideRepo.CreateReview(ctx, db_models.TourGuideReview{
		TourGuideID:   guideID,
		ReviewerName:  req.ReviewerName,
		ReviewerImage: req.ReviewerImage,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Date:          req.Date,
		TourLocation:  req.TourLocation,
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *GuideService) GetPhotos(ctx context.Context, guideID int) ([]db_models.TourGuidePhoto, error) {
	return s.guideRepo.ListPhotos(ctx, guideID)
}

func (s *GuideService) AddPhoto(ctx context.Context, guideID int, req request_models.CreateGuidePhotoRequest) (*db_models.TourGuidePhoto, error) {
	photo, err := s.guideRepo.CreatePhoto(ctx, db_models.TourGuidePhoto{
		TourGuideID: guideID,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		Date:        req.Date,
	})
	if err != nil {
		return nil, err
	}
	return &photo, nil
}
