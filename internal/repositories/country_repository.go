package repositories

import (
	"context"
	"sort"

	"roamio/internal/infra"
	"roamio/internal/models/db_models"
)

type CountryRepository interface {
	GetAll(ctx context.Context) ([]db_models.Country, error)
	GetByCode(ctx context.Context, code string) (*db_models.Country, error)
}

func NewCountryRepository(db *infra.MemoryDB) CountryRepository {
	return &countryRepository{db: db}
}

type countryRepository struct {
	db *infra.MemoryDB
}

func (r *countryRepository) GetAll(ctx context.Context) ([]db_models.Country, error) {
	out := make([]db_models.Country, 0, len(r.db.Countries))
	for _, c := range r.db.Countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *countryRepository) GetByCode(ctx context.Context, code string) (*db_models.Country, error) {
	c, ok := r.db.Countries[code]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
