package repositories

import (
	"context"
	"sort"

	"roamio/internal/infra"
	"roamio/internal/models/db_models"
)

type GuideRepository interface {
	GetAll(ctx context.Context) ([]db_models.TourGuide, error)
	GetByID(ctx context.Context, id int) (*db_models.TourGuide, error)
	Create(ctx context.Context, guide db_models.TourGuide) (db_models.TourGuide, error)
	ListReviews(ctx context.Context, guideID int) ([]db_models.TourGuideReview, error)
	CreateReview(ctx context.Context, review db_models.TourGuideReview) (db_models.TourGuideReview, error)
	ListPhotos(ctx context.Context, guideID int) ([]db_models.TourGuidePhoto, error)
	CreatePhoto(ctx context.Context, photo db_models.TourGuidePhoto) (db_models.TourGuidePhoto, error)
}

func NewGuideRepository(db *infra.MemoryDB) GuideRepository {
	return &guideRepository{db: db}
}

type guideRepository struct {
	db *infra.MemoryDB
}

func (r *guideRepository) GetAll(ctx context.Context) ([]db_models.TourGuide, error) {
	out := r.db.TourGuides.List()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *guideRepository) GetByID(ctx context.Context, id int) (*db_models.TourGuide, error) {
	g, ok := r.db.TourGuides.Get(id)
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *guideRepository) Create(ctx context.Context, guide db_models.TourGuide) (db_models.TourGuide, error) {
	return r.db.TourGuides.Insert(func(id int) db_models.TourGuide {
		guide.ID = id
		return guide
	}), nil
}

func (r *guideRepository) ListReviews(ctx context.Context, guideID int) ([]db_models.TourGuideReview, error) {
	out := make([]db_models.TourGuideReview, 0)
	for _, rev := range r.db.GuideReviews.List() {
		if rev.TourGuideID == guideID {
			out = append(out, rev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *guideRepository) CreateReview(ctx context.Context, review db_models.TourGuideReview) (db_models.TourGuideReview, error) {
	return r.db.GuideReviews.Insert(func(id int) db_models.TourGuideReview {
		review.ID = id
		return review
	}), nil
}

func (r *guideRepository) ListPhotos(ctx context.Context, guideID int) ([]db_models.TourGuidePhoto, error) {
	out := make([]db_models.TourGuidePhoto, 0)
	for _, p := range r.db.GuidePhotos.List() {
		if p.TourGuideID == guideID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *guideRepository) CreatePhoto(ctx context.Context, photo db_models.TourGuidePhoto) (db_models.TourGuidePhoto, error) {
	return r.db.GuidePhotos.Insert(func(id int) db_models.TourGuidePhoto {
		photo.ID = id
		return photo
	}), nil
}
