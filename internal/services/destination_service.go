package services

import (
	"context"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type DestinationServiceInterface interface {
	GetDestinations(ctx context.Context) ([]db_models.Destination, error)
	GetDestination(ctx context.Context, id int) (*db_models.Destination, error)
	SearchDestinations(ctx context.Context, params request_models.DestinationSearchRequest) ([]db_models.Destination, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{destinationRepo: destinationRepo}
}

func (s *DestinationService) GetDestinations(ctx context.Context) ([]db_models.Destination, error) {
	return s.destinationRepo.GetAll(ctx)
}

func (s *DestinationService) GetDestination(ctx context.Context, id int) (*db_models.Destination, error) {
	destination, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}
	return destination, nil
}

func (s *DestinationService) SearchDestinations(ctx context.Context, params request_models.DestinationSearchRequest) ([]db_models.Destination, error) {
	return s.destinationRepo.Search(ctx, params)
}
