package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
)

// TestTripUpdate_shallowMerge overwrites only the supplied fields.
func TestTripUpdate_shallowMerge(t *testing.T) {
	repo := repositories.NewTripRepository(seededDB(t))
	ctx := context.Background()

	budget := 2500
	tourGuide := true
	updated, err := repo.Update(ctx, 1, request_models.UpdateTripRequest{
		Budget:             &budget,
		TourGuideRequested: &tourGuide,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, 2500, updated.Budget)
	require.True(t, updated.TourGuideRequested)

	// Untouched fields keep their seeded values.
	require.Equal(t, "2023-06-15", updated.StartDate)
	require.Equal(t, 7, updated.Duration)
	require.Equal(t, 2, updated.Travelers)
}

// TestTripUpdate_missing reports absence as nil without error.
func TestTripUpdate_missing(t *testing.T) {
	repo := repositories.NewTripRepository(seededDB(t))

	budget := 100
	updated, err := repo.Update(context.Background(), 99, request_models.UpdateTripRequest{Budget: &budget})
	require.NoError(t, err)
	require.Nil(t, updated)
}

// TestTripList_filterByUser returns only the given user's trips when a
// user id is supplied, and everything otherwise.
func TestTripList_filterByUser(t *testing.T) {
	db := seededDB(t)
	repo := repositories.NewTripRepository(db)
	ctx := context.Background()

	userID := 7
	_, err := repo.Create(ctx, db_models.Trip{UserID: &userID, DestinationID: 2, StartDate: "2026-09-01", Budget: 900})
	require.NoError(t, err)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	mine, err := repo.List(ctx, &userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, 2, mine[0].DestinationID)

	other := 8
	none, err := repo.List(ctx, &other)
	require.NoError(t, err)
	require.Empty(t, none)
}

// TestTripDelete_leavesDerivedRecords removes the trip row only; its
// itinerary and budget allocation survive in their own tables.
func TestTripDelete_leavesDerivedRecords(t *testing.T) {
	db := seededDB(t)
	repo := repositories.NewTripRepository(db)
	detailRepo := repositories.NewTripDetailRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	ctx := context.Background()

	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	require.True(t, deleted)

	details, err := detailRepo.ListByTrip(ctx, 1)
	require.NoError(t, err)
	require.Len(t, details, 3)

	alloc, err := budgetRepo.GetByTrip(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, alloc)
}

// TestBudgetUpdateByTrip merges only the supplied categories.
func TestBudgetUpdateByTrip(t *testing.T) {
	repo := repositories.NewBudgetRepository(seededDB(t))
	ctx := context.Background()

	food := 500
	updated, err := repo.UpdateByTrip(ctx, 1, request_models.UpdateBudgetRequest{Food: &food})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, 500, updated.Food)
	require.Equal(t, 800, updated.Accommodation)

	missing, err := repo.UpdateByTrip(ctx, 99, request_models.UpdateBudgetRequest{Food: &food})
	require.NoError(t, err)
	require.Nil(t, missing)
}
