package repositories

import (
	"context"
	"sort"
	"time"

	"roamio/internal/infra"
	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
)

type TripRepository interface {
	List(ctx context.Context, userID *int) ([]db_models.Trip, error)
	GetByID(ctx context.Context, id int) (*db_models.Trip, error)
	Create(ctx context.Context, trip db_models.Trip) (db_models.Trip, error)
	Update(ctx context.Context, id int, update request_models.UpdateTripRequest) (*db_models.Trip, error)
	Delete(ctx context.Context, id int) (bool, error)
}

func NewTripRepository(db *infra.MemoryDB) TripRepository {
	return &tripRepository{db: db}
}

type tripRepository struct {
	db *infra.MemoryDB
}

func (r *tripRepository) List(ctx context.Context, userID *int) ([]db_models.Trip, error) {
	out := make([]db_models.Trip, 0)
	for _, t := range r.db.Trips.List() {
		if userID != nil && (t.UserID == nil || *t.UserID != *userID) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *tripRepository) GetByID(ctx context.Context, id int) (*db_models.Trip, error) {
	t, ok := r.db.Trips.Get(id)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *tripRepository) Create(ctx context.Context, trip db_models.Trip) (db_models.Trip, error) {
	return r.db.Trips.Insert(func(id int) db_models.Trip {
		trip.ID = id
		trip.CreatedAt = time.Now()
		return trip
	}), nil
}

// Update shallow-merges the supplied fields over the stored record.
func (r *tripRepository) Update(ctx context.Context, id int, update request_models.UpdateTripRequest) (*db_models.Trip, error) {
	t, ok := r.db.Trips.Update(id, func(t db_models.Trip) db_models.Trip {
		if update.UserID != nil {
			t.UserID = update.UserID
		}
		if update.DestinationID != nil {
			t.DestinationID = *update.DestinationID
		}
		if update.StartDate != nil {
			t.StartDate = *update.StartDate
		}
		if update.EndDate != nil {
			t.EndDate = *update.EndDate
		}
		if update.Budget != nil {
			t.Budget = *update.Budget
		}
		if update.Travelers != nil {
			t.Travelers = *update.Travelers
		}
		if update.Duration != nil {
			t.Duration = *update.Duration
		}
		if update.TripType != nil {
			t.TripType = *update.TripType
		}
		if update.Preferences != nil {
			t.Preferences = *update.Preferences
		}
		if update.HotelID != nil {
			t.HotelID = update.HotelID
		}
		if update.TotalCost != nil {
			t.TotalCost = update.TotalCost
		}
		if update.TourGuideRequested != nil {
			t.TourGuideRequested = *update.TourGuideRequested
		}
		return t
	})
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *tripRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.db.Trips.Delete(id), nil
}
