package services

import (
	"context"

	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type HotelServiceInterface interface {
	GetHotelsByDestination(ctx context.Context, destinationID int) ([]response_models.HotelResponse, error)
	GetAllHotels(ctx context.Context) ([]response_models.HotelResponse, error)
	GetHotel(ctx context.Context, id int) (*response_models.HotelResponse, error)
}

type HotelService struct {
	hotelRepo       repositories.HotelRepository
	destinationRepo repositories.DestinationRepository
}

func NewHotelService(hotelRepo repositories.HotelRepository, destinationRepo repositories.DestinationRepository) HotelServiceInterface {
	return &HotelService{hotelRepo: hotelRepo, destinationRepo: destinationRepo}
}

// GetHotelsByDestination returns a destination's hotels enriched with
// the destination name and country for list rendering.
func (s *HotelService) GetHotelsByDestination(ctx context.Context, destinationID int) ([]response_models.HotelResponse, error) {
	hotels, err := s.hotelRepo.GetByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	destination, err := s.destinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		resp := response_models.HotelResponse{Hotel: h}
		if destination != nil {
			resp.DestinationName = destination.Name
			resp.Country = destination.Country
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *HotelService) GetAllHotels(ctx context.Context) ([]response_models.HotelResponse, error) {
	destinations, err := s.destinationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.HotelResponse, 0)
	for _, d := range destinations {
		hotels, err := s.hotelRepo.GetByDestination(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		for _, h := range hotels {
			out = append(out, response_models.HotelResponse{
				Hotel:           h,
				DestinationName: d.Name,
				Country:         d.Country,
			})
		}
	}
	return out, nil
}

func (s *HotelService) GetHotel(ctx context.Context, id int) (*response_models.HotelResponse, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}

	resp := response_models.HotelResponse{Hotel: *hotel}
	if destination, err := s.destinationRepo.GetByID(ctx, hotel.DestinationID); err == nil && destination != nil {
		resp.DestinationName = destination.Name
		resp.Country = destination.Country
	}
	return &resp, nil
}
