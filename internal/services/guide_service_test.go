package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"roamio/internal/infra"
	"roamio/internal/models/request_models"
	"roamio/internal/repositories"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

func newGuideService(t *testing.T) services.GuideServiceInterface {
	t.Helper()
	db := infra.NewMemoryDB()
	infra.Seed(db)
	return services.NewGuideService(repositories.NewGuideRepository(db))
}

// TestGetTourGuides lists the seeded guides in id order.
func TestGetTourGuides(t *testing.T) {
	svc := newGuideService(t)

	guides, err := svc.GetTourGuides(context.Background())
	require.NoError(t, err)
	require.Len(t, guides, 3)
	require.Equal(t, 1, guides[0].ID)
}

// TestGetTourGuide_missing maps absence to the guide sentinel.
func TestGetTourGuide_missing(t *testing.T) {
	svc := newGuideService(t)

	_, err := svc.GetTourGuide(context.Background(), 99)
	require.ErrorIs(t, err, utils.ErrTourGuideNotFound)
}

// TestAddReview_scopedToGuide stores the review under its guide and
// keeps other guides' review lists untouched.
func TestAddReview_scopedToGuide(t *testing.T) {
	svc := newGuideService(t)
	ctx := context.Background()

	before, err := svc.GetReviews(ctx, 1)
	require.NoError(t, err)

	review, err := svc.AddReview(ctx, 1, request_models.CreateGuideReviewRequest{
		ReviewerName: "Maya",
		Rating:       5,
		Comment:      "Fantastic walking tour",
		TourLocation: "Barcelona",
	})
	require.NoError(t, err)
	require.Equal(t, 1, review.TourGuideID)

	after, err := svc.GetReviews(ctx, 1)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	other, err := svc.GetReviews(ctx, 3)
	require.NoError(t, err)
	for _, rev := range other {
		require.Equal(t, 3, rev.TourGuideID)
	}
}

// TestAddPhoto stores the photo under its guide.
func TestAddPhoto(t *testing.T) {
	svc := newGuideService(t)
	ctx := context.Background()

	photo, err := svc.AddPhoto(ctx, 2, request_models.CreateGuidePhotoRequest{
		ImageURL: "https://example.com/tour.jpg",
		Location: "Tokyo",
	})
	require.NoError(t, err)
	require.Equal(t, 2, photo.TourGuideID)

	photos, err := svc.GetPhotos(ctx, 2)
	require.NoError(t, err)
	require.NotEmpty(t, photos)
}
