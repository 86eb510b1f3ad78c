package services

import (
	"context"
	"fmt"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, userID *int) ([]db_models.Trip, error)
	GetTrip(ctx context.Context, id int) (*db_models.Trip, error)
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error)
	UpdateTrip(ctx context.Context, id int, req request_models.UpdateTripRequest) (*db_models.Trip, error)
	DeleteTrip(ctx context.Context, id int) error
	GetTripDetails(ctx context.Context, tripID int) ([]db_models.TripDetail, error)
	AddTripDetail(ctx context.Context, tripID int, req request_models.CreateTripDetailRequest) (*db_models.TripDetail, error)
	GetBudget(ctx context.Context, tripID int) (*db_models.BudgetAllocation, error)
	UpdateBudget(ctx context.Context, tripID int, req request_models.UpdateBudgetRequest) (*db_models.BudgetAllocation, error)
}

type TripService struct {
	tripRepo        repositories.TripRepository
	detailRepo      repositories.TripDetailRepository
	budgetRepo      repositories.BudgetRepository
	destinationRepo repositories.DestinationRepository
	planner         PlannerServiceInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	detailRepo repositories.TripDetailRepository,
	budgetRepo repositories.BudgetRepository,
	destinationRepo repositories.DestinationRepository,
	planner PlannerServiceInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo:        tripRepo,
		detailRepo:      detailRepo,
		budgetRepo:      budgetRepo,
		destinationRepo: destinationRepo,
		planner:         planner,
	}
}

func (s *TripService) ListTrips(ctx context.Context, userID *int) ([]db_models.Trip, error) {
	return s.tripRepo.List(ctx, userID)
}

func (s *TripService) GetTrip(ctx context.Context, id int) (*db_models.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

// CreateTrip validates the request, fills defaults, persists the trip,
// and then derives its budget allocation and day-by-day itinerary.
// There is no rollback: if a later step fails the trip record stays
// behind without its derived records.
func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error) {
	// Required fields, checked in order so the first missing one is
	// the one named in the response.
	if req.DestinationID == 0 {
		return nil, utils.ErrDestinationRequired
	}
	if req.StartDate == "" {
		return nil, utils.ErrStartDateRequired
	}
	if req.Budget == 0 {
		return nil, utils.ErrBudgetRequired
	}

	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}

	duration := req.Duration
	if duration == 0 && req.EndDate != "" {
		d, err := utils.DaysBetween(req.StartDate, req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("compute trip duration: %w", err)
		}
		duration = d
	}
	// A same-day or inverted date range derives zero or less; every
	// stored trip covers at least one day.
	if duration < 1 {
		duration = 1
	}

	preferences := req.Preferences
	if preferences == nil {
		preferences = []string{}
	}

	trip, err := s.tripRepo.Create(ctx, db_models.Trip{
		UserID:             req.UserID,
		DestinationID:      req.DestinationID,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Budget:             req.Budget,
		Travelers:          travelers,
		Duration:           duration,
		TripType:           req.TripType,
		Preferences:        preferences,
		HotelID:            req.HotelID,
		TotalCost:          req.TotalCost,
		TourGuideRequested: req.TourGuideRequested,
	})
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	allocation := s.planner.AllocateBudget(trip.Budget)
	allocation.TripID = trip.ID
	if _, err := s.budgetRepo.Create(ctx, allocation); err != nil {
		return nil, fmt.Errorf("create budget allocation: %w", err)
	}

	destinationName := "Your Destination"
	if dest, err := s.destinationRepo.GetByID(ctx, trip.DestinationID); err == nil && dest != nil {
		destinationName = dest.Name
	}

	for _, plan := range s.planner.BuildItinerary(destinationName, trip.Duration, trip.Budget, trip.Preferences) {
		plan.TripID = trip.ID
		if _, err := s.detailRepo.Create(ctx, plan); err != nil {
			return nil, fmt.Errorf("create trip detail for day %d: %w", plan.Day, err)
		}
	}

	return &trip, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, id int, req request_models.UpdateTripRequest) (*db_models.Trip, error) {
	trip, err := s.tripRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

// DeleteTrip removes only the trip record. Its details and budget
// allocation stay behind, matching the observed product behavior.
func (s *TripService) DeleteTrip(ctx context.Context, id int) error {
	deleted, err := s.tripRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}

func (s *TripService) GetTripDetails(ctx context.Context, tripID int) ([]db_models.TripDetail, error) {
	return s.detailRepo.ListByTrip(ctx, tripID)
}

func (s *TripService) AddTripDetail(ctx context.Context, tripID int, req request_models.CreateTripDetailRequest) (*db_models.TripDetail, error) {
	activities := make([]db_models.Activity, 0, len(req.Activities))
	for _, a := range req.Activities {
		activities = append(activities, db_models.Activity{
			Time:        a.Time,
			Title:       a.Title,
			Description: a.Description,
			Location:    a.Location,
			Type:        a.Type,
			Cost:        a.Cost,
		})
	}
	detail, err := s.detailRepo.Create(ctx, db_models.TripDetail{
		TripID:     tripID,
		Day:        req.Day,
		Title:      req.Title,
		Activities: activities,
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *TripService) GetBudget(ctx context.Context, tripID int) (*db_models.BudgetAllocation, error) {
	allocation, err := s.budgetRepo.GetByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, utils.ErrBudgetNotFound
	}
	return allocation, nil
}

func (s *TripService) UpdateBudget(ctx context.Context, tripID int, req request_models.UpdateBudgetRequest) (*db_models.BudgetAllocation, error) {
	allocation, err := s.budgetRepo.UpdateByTrip(ctx, tripID, req)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, utils.ErrBudgetNotFound
	}
	return allocation, nil
}
