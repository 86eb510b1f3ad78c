package repositories

import (
	"context"

	"roamio/internal/infra"
	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
)

type BudgetRepository interface {
	GetByTrip(ctx context.Context, tripID int) (*db_models.BudgetAllocation, error)
	Create(ctx context.Context, allocation db_models.BudgetAllocation) (db_models.BudgetAllocation, error)
	UpdateByTrip(ctx context.Context, tripID int, update request_models.UpdateBudgetRequest) (*db_models.BudgetAllocation, error)
}

func NewBudgetRepository(db *infra.MemoryDB) BudgetRepository {
	return &budgetRepository{db: db}
}

type budgetRepository struct {
	db *infra.MemoryDB
}

func (r *budgetRepository) GetByTrip(ctx context.Context, tripID int) (*db_models.BudgetAllocation, error) {
	for _, a := range r.db.BudgetAllocations.List() {
		if a.TripID == tripID {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *budgetRepository) Create(ctx context.Context, allocation db_models.BudgetAllocation) (db_models.BudgetAllocation, error) {
	return r.db.BudgetAllocations.Insert(func(id int) db_models.BudgetAllocation {
		allocation.ID = id
		return allocation
	}), nil
}

func (r *budgetRepository) UpdateByTrip(ctx context.Context, tripID int, update request_models.UpdateBudgetRequest) (*db_models.BudgetAllocation, error) {
	existing, err := r.GetByTrip(ctx, tripID)
	if err != nil || existing == nil {
		return nil, err
	}
	a, _ := r.db.BudgetAllocations.Update(existing.ID, func(a db_models.BudgetAllocation) db_models.BudgetAllocation {
		if update.Accommodation != nil {
			a.Accommodation = *update.Accommodation
		}
		if update.Transportation != nil {
			a.Transportation = *update.Transportation
		}
		if update.Food != nil {
			a.Food = *update.Food
		}
		if update.Activities != nil {
			a.Activities = *update.Activities
		}
		if update.Miscellaneous != nil {
			a.Miscellaneous = *update.Miscellaneous
		}
		return a
	})
	return &a, nil
}
