package services

import (
	"context"

	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type AttractionServiceInterface interface {
	GetAttractionsByDestination(ctx context.Context, destinationID int) ([]response_models.AttractionResponse, error)
	GetAllAttractions(ctx context.Context) ([]response_models.AttractionResponse, error)
	GetAttraction(ctx context.Context, id int) (*response_models.AttractionResponse, error)
}

type AttractionService struct {
	attractionRepo  repositories.AttractionRepository
	destinationRepo repositories.DestinationRepository
}

func NewAttractionService(attractionRepo repositories.AttractionRepository, destinationRepo repositories.DestinationRepository) AttractionServiceInterface {
	return &AttractionService{attractionRepo: attractionRepo, destinationRepo: destinationRepo}
}

func (s *AttractionService) GetAttractionsByDestination(ctx context.Context, destinationID int) ([]response_models.AttractionResponse, error) {
	attractions, err := s.attractionRepo.GetByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	destination, err := s.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.AttractionResponse, 0, len(attractions))
	for _, a := range attractions {
		resp := response_models.AttractionResponse{Attraction: a}
		if destination != nil {
			resp.DestinationName = destination.Name
			resp.Country = destination.Country
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *AttractionService) GetAllAttractions(ctx context.Context) ([]response_models.AttractionResponse, error) {
	destinations, err := s.destinationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.AttractionResponse, 0)
	for _, d := range destinations {
		attractions, err := s.attractionRepo.GetByDestination(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range attractions {
			out = append(out, response_models.AttractionResponse{
				Attraction:      a,
				DestinationName: d.Name,
				Country:         d.Country,
			})
		}
	}
	return out, nil
}

func (s *AttractionService) GetAttraction(ctx context.Context, id int) (*response_models.AttractionResponse, error) {
	attraction, err := s.attractionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attraction == nil {
		return nil, utils.ErrAttractionNotFound
	}

	resp := response_models.AttractionResponse{Attraction: *attraction}
	if destination, err := s.destinationRepo.GetByID(ctx, attraction.DestinationID); err == nil && destination != nil {
		resp.DestinationName = destination.Name
		resp.Country = destination.Country
	}
	return &resp, nil
}
