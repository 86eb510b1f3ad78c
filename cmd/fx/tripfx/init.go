package tripfx

import (
	"go.uber.org/fx"
	"roamio/internal/infra"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripDetailRepo,
	provideBudgetRepo,
	provideTripService,
)

func provideTripRepo(db *infra.MemoryDB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripDetailRepo(db *infra.MemoryDB) repositories.TripDetailRepository {
	return repositories.NewTripDetailRepository(db)
}

func provideBudgetRepo(db *infra.MemoryDB) repositories.BudgetRepository {
	return repositories.NewBudgetRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	detailRepo repositories.TripDetailRepository,
	budgetRepo repositories.BudgetRepository,
	destinationRepo repositories.DestinationRepository,
	planner services.PlannerServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, detailRepo, budgetRepo, destinationRepo, planner)
}
