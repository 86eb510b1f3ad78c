package repositories

import (
	"context"
	"sort"

	"roamio/internal/infra"
	"roamio/internal/models/db_models"
)

type TripDetailRepository interface {
	ListByTrip(ctx context.Context, tripID int) ([]db_models.TripDetail, error)
	Create(ctx context.Context, detail db_models.TripDetail) (db_models.TripDetail, error)
}

func NewTripDetailRepository(db *infra.MemoryDB) TripDetailRepository {
	return &tripDetailRepository{db: db}
}

type tripDetailRepository struct {
	db *infra.MemoryDB
}

func (r *tripDetailRepository) ListByTrip(ctx context.Context, tripID int) ([]db_models.TripDetail, error) {
	out := make([]db_models.TripDetail, 0)
	for _, d := range r.db.TripDetails.List() {
		if d.TripID == tripID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (r *tripDetailRepository) Create(ctx context.Context, detail db_models.TripDetail) (db_models.TripDetail, error) {
	return r.db.TripDetails.Insert(func(id int) db_models.TripDetail {
		detail.ID = id
		return detail
	}), nil
}
