package repositories

import (
	"context"
	"sort"
	"strings"

	"roamio/internal/infra"
	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
)

type DestinationRepository interface {
	GetAll(ctx context.Context) ([]db_models.Destination, error)
	GetByID(ctx context.Context, id int) (*db_models.Destination, error)
	Search(ctx context.Context, params request_models.DestinationSearchRequest) ([]db_models.Destination, error)
}

func NewDestinationRepository(db *infra.MemoryDB) DestinationRepository {
	return &destinationRepository{db: db}
}

type destinationRepository struct {
	db *infra.MemoryDB
}

func (r *destinationRepository) GetAll(ctx context.Context) ([]db_models.Destination, error) {
	out := r.db.Destinations.List()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *destinationRepository) GetByID(ctx context.Context, id int) (*db_models.Destination, error) {
	d, ok := r.db.Destinations.Get(id)
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *destinationRepository) Search(ctx context.Context, params request_models.DestinationSearchRequest) ([]db_models.Destination, error) {
	results, _ := r.GetAll(ctx)

	if params.Destination != "" {
		term := strings.ToLower(params.Destination)
		filtered := results[:0]
		for _, d := range results {
			if strings.Contains(strings.ToLower(d.Name), term) ||
				strings.Contains(strings.ToLower(d.Country), term) {
				filtered = append(filtered, d)
			}
		}
		results = filtered
	}

	if params.Budget > 0 {
		travelers := params.Travelers
		if travelers == 0 {
			travelers = 1
		}
		filtered := results[:0]
		for _, d := range results {
			if d.PricePerPerson*travelers <= params.Budget {
				filtered = append(filtered, d)
			}
		}
		results = filtered
		sort.Slice(results, func(i, j int) bool {
			return results[i].BudgetMatch > results[j].BudgetMatch
		})
	}

	if params.TripType != "" {
		filtered := results[:0]
		for _, d := range results {
			for _, tag := range d.Tags {
				if strings.EqualFold(tag, params.TripType) {
					filtered = append(filtered, d)
					break
				}
			}
		}
		results = filtered
	}

	return results, nil
}
