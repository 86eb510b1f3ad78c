package repositories

import (
	"context"
	"sort"

	"roamio/internal/infra"
	"roamio/internal/models/db_models"
)

type HotelRepository interface {
	GetByDestination(ctx context.Context, destinationID int) ([]db_models.Hotel, error)
	GetByID(ctx context.Context, id int) (*db_models.Hotel, error)
}

func NewHotelRepository(db *infra.MemoryDB) HotelRepository {
	return &hotelRepository{db: db}
}

type hotelRepository struct {
	db *infra.MemoryDB
}

func (r *hotelRepository) GetByDestination(ctx context.Context, destinationID int) ([]db_models.Hotel, error) {
	out := make([]db_models.Hotel, 0)
	for _, h := range r.db.Hotels.List() {
		if h.DestinationID == destinationID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id int) (*db_models.Hotel, error) {
	h, ok := r.db.Hotels.Get(id)
	if !ok {
		return nil, nil
	}
	return &h, nil
}
