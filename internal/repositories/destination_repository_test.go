package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"roamio/internal/infra"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
)

func seededDB(t *testing.T) *infra.MemoryDB {
	t.Helper()
	db := infra.NewMemoryDB()
	infra.Seed(db)
	return db
}

// TestDestinationSearch_byName matches either the destination name or
// its country, case-insensitively.
func TestDestinationSearch_byName(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededDB(t))
	ctx := context.Background()

	results, err := repo.Search(ctx, request_models.DestinationSearchRequest{Destination: "barce"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Barcelona", results[0].Name)

	results, err = repo.Search(ctx, request_models.DestinationSearchRequest{Destination: "JAPAN"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Tokyo", results[0].Name)
}

// TestDestinationSearch_budget filters by per-person price times
// travelers, then orders by budget match.
func TestDestinationSearch_budget(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededDB(t))

	results, err := repo.Search(context.Background(), request_models.DestinationSearchRequest{
		Budget:    3000,
		Travelers: 2,
	})
	require.NoError(t, err)

	// Barcelona (1200 x 2) and Santorini (1450 x 2) fit; Tokyo does not.
	// Barcelona leads on budget match 98 vs 95.
	require.Len(t, results, 2)
	require.Equal(t, "Barcelona", results[0].Name)
	require.Equal(t, "Santorini", results[1].Name)
}

// TestDestinationSearch_tripType matches trip type against tags,
// ignoring case.
func TestDestinationSearch_tripType(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededDB(t))

	results, err := repo.Search(context.Background(), request_models.DestinationSearchRequest{TripType: "beach"})
	require.NoError(t, err)
	require.Len(t, results, 2)
}

// TestDestinationSearch_noFilters returns the full catalog.
func TestDestinationSearch_noFilters(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededDB(t))

	results, err := repo.Search(context.Background(), request_models.DestinationSearchRequest{})
	require.NoError(t, err)
	require.Len(t, results, 3)
}

// TestDestinationGetByID_missing reports absence as a nil record, not
// an error. The service layer maps nil to its not-found sentinel.
func TestDestinationGetByID_missing(t *testing.T) {
	repo := repositories.NewDestinationRepository(seededDB(t))

	d, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	require.Nil(t, d)
}
