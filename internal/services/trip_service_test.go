package services_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type mockTripRepo struct {
	listFn   func(ctx context.Context, userID *int) ([]db_models.Trip, error)
	getFn    func(ctx context.Context, id int) (*db_models.Trip, error)
	createFn func(ctx context.Context, trip db_models.Trip) (db_models.Trip, error)
	updateFn func(ctx context.Context, id int, update request_models.UpdateTripRequest) (*db_models.Trip, error)
	deleteFn func(ctx context.Context, id int) (bool, error)
}

func (m *mockTripRepo) List(ctx context.Context, userID *int) ([]db_models.Trip, error) {
	return m.listFn(ctx, userID)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id int) (*db_models.Trip, error) {
	return m.getFn(ctx, id)
}

func (m *mockTripRepo) Create(ctx context.Context, trip db_models.Trip) (db_models.Trip, error) {
	return m.createFn(ctx, trip)
}

func (m *mockTripRepo) Update(ctx context.Context, id int, update request_models.UpdateTripRequest) (*db_models.Trip, error) {
	return m.updateFn(ctx, id, update)
}

func (m *mockTripRepo) Delete(ctx context.Context, id int) (bool, error) {
	return m.deleteFn(ctx, id)
}

type mockDetailRepo struct {
	listFn   func(ctx context.Context, tripID int) ([]db_models.TripDetail, error)
	createFn func(ctx context.Context, detail db_models.TripDetail) (db_models.TripDetail, error)
}

func (m *mockDetailRepo) ListByTrip(ctx context.Context, tripID int) ([]db_models.TripDetail, error) {
	return m.listFn(ctx, tripID)
}

func (m *mockDetailRepo) Create(ctx context.Context, detail db_models.TripDetail) (db_models.TripDetail, error) {
	return m.createFn(ctx, detail)
}

type mockBudgetRepo struct {
	getFn    func(ctx context.Context, tripID int) (*db_models.BudgetAllocation, error)
	createFn func(ctx context.Context, allocation db_models.BudgetAllocation) (db_models.BudgetAllocation, error)
	updateFn func(ctx context.Context, tripID int, update request_models.UpdateBudgetRequest) (*db_models.BudgetAllocation, error)
}

func (m *mockBudgetRepo) GetByTrip(ctx context.Context, tripID int) (*db_models.BudgetAllocation, error) {
	return m.getFn(ctx, tripID)
}

func (m *mockBudgetRepo) Create(ctx context.Context, allocation db_models.BudgetAllocation) (db_models.BudgetAllocation, error) {
	return m.createFn(ctx, allocation)
}

func (m *mockBudgetRepo) UpdateByTrip(ctx context.Context, tripID int, update request_models.UpdateBudgetRequest) (*db_models.BudgetAllocation, error) {
	return m.updateFn(ctx, tripID, update)
}

type mockDestinationRepo struct {
	getAllFn func(ctx context.Context) ([]db_models.Destination, error)
	getFn    func(ctx context.Context, id int) (*db_models.Destination, error)
	searchFn func(ctx context.Context, params request_models.DestinationSearchRequest) ([]db_models.Destination, error)
}

func (m *mockDestinationRepo) GetAll(ctx context.Context) ([]db_models.Destination, error) {
	return m.getAllFn(ctx)
}

func (m *mockDestinationRepo) GetByID(ctx context.Context, id int) (*db_models.Destination, error) {
	return m.getFn(ctx, id)
}

func (m *mockDestinationRepo) Search(ctx context.Context, params request_models.DestinationSearchRequest) ([]db_models.Destination, error) {
	return m.searchFn(ctx, params)
}

// tripFixture wires a trip service over in-test mock repos that record
// everything created. The trip repo assigns sequential IDs.
type tripFixture struct {
	svc     services.TripServiceInterface
	trips   []db_models.Trip
	details []db_models.TripDetail
	budgets []db_models.BudgetAllocation
}

func newTripFixture(t *testing.T) *tripFixture {
	t.Helper()
	f := &tripFixture{}

	tripRepo := &mockTripRepo{
		createFn: func(ctx context.Context, trip db_models.Trip) (db_models.Trip, error) {
			trip.ID = len(f.trips) + 1
			f.trips = append(f.trips, trip)
			return trip, nil
		},
	}
	detailRepo := &mockDetailRepo{
		createFn: func(ctx context.Context, detail db_models.TripDetail) (db_models.TripDetail, error) {
			detail.ID = len(f.details) + 1
			f.details = append(f.details, detail)
			return detail, nil
		},
	}
	budgetRepo := &mockBudgetRepo{
		createFn: func(ctx context.Context, allocation db_models.BudgetAllocation) (db_models.BudgetAllocation, error) {
			allocation.ID = len(f.budgets) + 1
			f.budgets = append(f.budgets, allocation)
			return allocation, nil
		},
	}
	destinationRepo := &mockDestinationRepo{
		getFn: func(ctx context.Context, id int) (*db_models.Destination, error) {
			if id == 1 {
				return &db_models.Destination{ID: 1, Name: "Barcelona", Country: "Spain"}, nil
			}
			return nil, nil
		},
	}

	planner := services.NewPlannerService(rand.New(rand.NewSource(1)))
	f.svc = services.NewTripService(tripRepo, detailRepo, budgetRepo, destinationRepo, planner)
	return f
}

// TestCreateTrip_requiredFieldOrder checks that validation names the
// first missing field, in destination, start date, budget order.
func TestCreateTrip_requiredFieldOrder(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateTrip(ctx, request_models.CreateTripRequest{})
	require.ErrorIs(t, err, utils.ErrDestinationRequired)

	_, err = f.svc.CreateTrip(ctx, request_models.CreateTripRequest{DestinationID: 1})
	require.ErrorIs(t, err, utils.ErrStartDateRequired)

	_, err = f.svc.CreateTrip(ctx, request_models.CreateTripRequest{DestinationID: 1, StartDate: "2026-09-01"})
	require.ErrorIs(t, err, utils.ErrBudgetRequired)

	require.Empty(t, f.trips)
}

// TestCreateTrip_defaults verifies traveler and duration defaults when
// neither is supplied and the preferences slice is never nil.
func TestCreateTrip_defaults(t *testing.T) {
	f := newTripFixture(t)

	trip, err := f.svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		DestinationID: 1,
		StartDate:     "2026-09-01",
		Budget:        1000,
	})

	require.NoError(t, err)
	require.Equal(t, 1, trip.Travelers)
	require.Equal(t, 1, trip.Duration)
	require.NotNil(t, trip.Preferences)
	require.Empty(t, trip.Preferences)
}

// TestCreateTrip_durationFromDates derives the duration from the date
// range when only the dates are given.
func TestCreateTrip_durationFromDates(t *testing.T) {
	f := newTripFixture(t)

	trip, err := f.svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		DestinationID: 1,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-04",
		Budget:        1500,
	})

	require.NoError(t, err)
	require.Equal(t, 3, trip.Duration)
}

// TestCreateTrip_sameDayRange clamps a derived duration of zero to one
// day, so the trip still gets an itinerary.
func TestCreateTrip_sameDayRange(t *testing.T) {
	f := newTripFixture(t)

	trip, err := f.svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		DestinationID: 1,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-01",
		Budget:        500,
	})

	require.NoError(t, err)
	require.Equal(t, 1, trip.Duration)
	require.Len(t, f.details, 1)
}

// TestCreateTrip_derivedRecords runs a full creation and checks the
// persisted allocation and itinerary against the trip.
func TestCreateTrip_derivedRecords(t *testing.T) {
	f := newTripFixture(t)

	trip, err := f.svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		DestinationID: 1,
		StartDate:     "2026-09-01",
		Budget:        1000,
		Duration:      3,
		Travelers:     2,
	})
	require.NoError(t, err)

	require.Len(t, f.budgets, 1)
	alloc := f.budgets[0]
	require.Equal(t, trip.ID, alloc.TripID)
	require.Equal(t, 400, alloc.Accommodation)
	require.Equal(t, 150, alloc.Transportation)

	require.Len(t, f.details, 3)
	require.Equal(t, "Welcome to Barcelona", f.details[0].Title)
	require.Equal(t, "Farewell to Barcelona", f.details[2].Title)
	for i, d := range f.details {
		require.Equal(t, trip.ID, d.TripID)
		require.Equal(t, i+1, d.Day)
		require.Len(t, d.Activities, 5)
	}
}

// TestCreateTrip_unknownDestinationName falls back to a placeholder
// name in itinerary titles when the destination is not on file.
func TestCreateTrip_unknownDestinationName(t *testing.T) {
	f := newTripFixture(t)

	_, err := f.svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		DestinationID: 99,
		StartDate:     "2026-09-01",
		Budget:        500,
		Duration:      1,
	})

	require.NoError(t, err)
	require.Equal(t, "Welcome to Your Destination", f.details[0].Title)
}

// TestCreateTrip_badEndDate surfaces the parse failure instead of
// guessing a duration.
func TestCreateTrip_badEndDate(t *testing.T) {
	f := newTripFixture(t)

	_, err := f.svc.CreateTrip(context.Background(), request_models.CreateTripRequest{
		DestinationID: 1,
		StartDate:     "2026-09-01",
		EndDate:       "not-a-date",
		Budget:        500,
	})

	require.Error(t, err)
	require.Empty(t, f.trips)
}

// TestGetTrip_notFound maps a missing record to the trip sentinel.
func TestGetTrip_notFound(t *testing.T) {
	repo := &mockTripRepo{
		getFn: func(ctx context.Context, id int) (*db_models.Trip, error) { return nil, nil },
	}
	svc := services.NewTripService(repo, &mockDetailRepo{}, &mockBudgetRepo{}, &mockDestinationRepo{},
		services.NewPlannerService(rand.New(rand.NewSource(1))))

	_, err := svc.GetTrip(context.Background(), 42)
	require.ErrorIs(t, err, utils.ErrTripNotFound)
}

// TestDeleteTrip_LeavesDetailsAndBudget deletes a trip and confirms its
// itinerary and allocation records are untouched.
func TestDeleteTrip_LeavesDetailsAndBudget(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.svc.CreateTrip(ctx, request_models.CreateTripRequest{
		DestinationID: 1,
		StartDate:     "2026-09-01",
		Budget:        1000,
		Duration:      2,
	})
	require.NoError(t, err)

	deleted := false
	repo := &mockTripRepo{
		deleteFn: func(ctx context.Context, id int) (bool, error) {
			deleted = id == trip.ID
			return deleted, nil
		},
	}
	detailRepo := &mockDetailRepo{
		listFn: func(ctx context.Context, tripID int) ([]db_models.TripDetail, error) {
			return f.details, nil
		},
	}
	svc := services.NewTripService(repo, detailRepo, &mockBudgetRepo{}, &mockDestinationRepo{},
		services.NewPlannerService(rand.New(rand.NewSource(1))))

	require.NoError(t, svc.DeleteTrip(ctx, trip.ID))
	require.True(t, deleted)

	details, err := svc.GetTripDetails(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	require.Len(t, f.budgets, 1)
}

// TestDeleteTrip_notFound maps a no-op delete to the trip sentinel.
func TestDeleteTrip_notFound(t *testing.T) {
	repo := &mockTripRepo{
		deleteFn: func(ctx context.Context, id int) (bool, error) { return false, nil },
	}
	svc := services.NewTripService(repo, &mockDetailRepo{}, &mockBudgetRepo{}, &mockDestinationRepo{},
		services.NewPlannerService(rand.New(rand.NewSource(1))))

	err := svc.DeleteTrip(context.Background(), 42)
	require.ErrorIs(t, err, utils.ErrTripNotFound)
}

// TestAddTripDetail_mapsActivities converts the request activities into
// stored ones and stamps the trip ID.
func TestAddTripDetail_mapsActivities(t *testing.T) {
	f := newTripFixture(t)

	detail, err := f.svc.AddTripDetail(context.Background(), 7, request_models.CreateTripDetailRequest{
		Day:   4,
		Title: "Day Trip to Montserrat",
		Activities: []request_models.TripActivityRequest{
			{Time: "09:00", Title: "Train ride", Type: "transport", Cost: 25},
		},
	})

	require.NoError(t, err)
	require.Equal(t, 7, detail.TripID)
	require.Equal(t, 4, detail.Day)
	require.Len(t, detail.Activities, 1)
	require.Equal(t, "Train ride", detail.Activities[0].Title)
}

// TestGetBudget_notFound maps a missing allocation to its sentinel.
func TestGetBudget_notFound(t *testing.T) {
	budgetRepo := &mockBudgetRepo{
		getFn: func(ctx context.Context, tripID int) (*db_models.BudgetAllocation, error) { return nil, nil },
	}
	svc := services.NewTripService(&mockTripRepo{}, &mockDetailRepo{}, budgetRepo, &mockDestinationRepo{},
		services.NewPlannerService(rand.New(rand.NewSource(1))))

	_, err := svc.GetBudget(context.Background(), 42)
	require.ErrorIs(t, err, utils.ErrBudgetNotFound)
}
