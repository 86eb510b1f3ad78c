package repositories

import (
	"context"
	"sort"

	"roamio/internal/infra"
	"roamio/internal/models/db_models"
)

type AttractionRepository interface {
	GetByDestination(ctx context.Context, destinationID int) ([]db_models.Attraction, error)
	GetByID(ctx context.Context, id int) (*db_models.Attraction, error)
}

func NewAttractionRepository(db *infra.MemoryDB) AttractionRepository {
	return &attractionRepository{db: db}
}

type attractionRepository struct {
	db *infra.MemoryDB
}

func (r *attractionRepository) GetByDestination(ctx context.Context, destinationID int) ([]db_models.Attraction, error) {
	out := make([]db_models.Attraction, 0)
	for _, a := range r.db.Attractions.List() {
		if a.DestinationID == destinationID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *attractionRepository) GetByID(ctx context.Context, id int) (*db_models.Attraction, error) {
	a, ok := r.db.Attractions.Get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}
