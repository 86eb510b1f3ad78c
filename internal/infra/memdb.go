package infra

import (
	"sync"

	"roamio/internal/models/db_models"
)

// Table is a mutex-guarded in-memory table with serial integer ids.
// gin serves each request on its own goroutine, so unlike the
// single-threaded runtime this store replaces, access must be guarded.
type Table[T any] struct {
	mu     sync.RWMutex
	rows   map[int]T
	nextID int
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{rows: make(map[int]T), nextID: 1}
}

// Insert allocates the next id and stores the row built by assign.
func (t *Table[T]) Insert(assign func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	row := assign(id)
	t.rows[id] = row
	return row
}

func (t *Table[T]) Get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// List returns a snapshot of every row, in unspecified order.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, row)
	}
	return out
}

// Update replaces the row under id with the result of apply.
// Returns false when the id is absent.
func (t *Table[T]) Update(id int, apply func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	row = apply(row)
	t.rows[id] = row
	return row, true
}

func (t *Table[T]) Delete(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// MemoryDB holds every table of the application. All data lives only
// for the process lifetime; a restart reseeds from scratch.
type MemoryDB struct {
	Accounts          *Table[db_models.Account]
	Destinations      *Table[db_models.Destination]
	Hotels            *Table[db_models.Hotel]
	Attractions       *Table[db_models.Attraction]
	Trips             *Table[db_models.Trip]
	TripDetails       *Table[db_models.TripDetail]
	BudgetAllocations *Table[db_models.BudgetAllocation]
	TourGuides        *Table[db_models.TourGuide]
	GuideReviews      *Table[db_models.TourGuideReview]
	GuidePhotos       *Table[db_models.TourGuidePhoto]

	// Countries are reference data keyed by ISO code, written once at
	// seed time and read-only afterwards.
	Countries map[string]db_models.Country
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		Accounts:          NewTable[db_models.Account](),
		Destinations:      NewTable[db_models.Destination](),
		Hotels:            NewTable[db_models.Hotel](),
		Attractions:       NewTable[db_models.Attraction](),
		Trips:             NewTable[db_models.Trip](),
		TripDetails:       NewTable[db_models.TripDetail](),
		BudgetAllocations: NewTable[db_models.BudgetAllocation](),
		TourGuides:        NewTable[db_models.TourGuide](),
		GuideReviews:      NewTable[db_models.TourGuideReview](),
		GuidePhotos:       NewTable[db_models.TourGuidePhoto](),
		Countries:         make(map[string]db_models.Country),
	}
}
