package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytesized/business-boost/internal/adapters/database"
	"github.com/bytesized/business-boost/internal/domain/entities"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

func TestReviewAdapter_Create_UpdatesSeededAggregate(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	businessRepo := database.NewBusinessAdapter(client)
	reviewRepo := database.NewReviewAdapter(client)

	byName := seedCatalog(t, ctx, businessRepo)
	user := createTestUser(t, ctx, client, "reviewer")
	java := byName["Java Junction Cafe"]

	err := reviewRepo.Create(ctx, &entities.Review{
		BusinessID: java.ID,
		UserID:     user.ID,
		Rating:     5,
		Comment:    "Great",
	})
	require.NoError(t, err)

	updated, err := businessRepo.GetByID(ctx, java.ID)
	require.NoError(t, err)
	assert.Equal(t, 129, updated.ReviewCount)
	// The seeded aggregate keeps its weight: (4.5*128 + 5) / 129.
	assert.InDelta(t, (4.5*128+5)/129, updated.Rating, 1e-9)
	assert.Greater(t, updated.Rating, 4.5)
}

func TestReviewAdapter_Create_FreshBusinessMatchesMean(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	businessRepo := database.NewBusinessAdapter(client)
	reviewRepo := database.NewReviewAdapter(client)

	business := &entities.Business{Name: "New Spot", Category: "food"}
	require.NoError(t, businessRepo.Create(ctx, business))
	user := createTestUser(t, ctx, client, "reviewer")

	for _, rating := range []int{4, 5} {
		require.NoError(t, reviewRepo.Create(ctx, &entities.Review{
			BusinessID: business.ID,
			UserID:     user.ID,
			Rating:     rating,
			Comment:    "ok",
		}))
	}

	updated, err := businessRepo.GetByID(ctx, business.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ReviewCount)
	assert.InDelta(t, 4.5, updated.Rating, 1e-9)
}

func TestReviewAdapter_Create_RejectsOutOfRangeRating(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	businessRepo := database.NewBusinessAdapter(client)
	reviewRepo := database.NewReviewAdapter(client)

	byName := seedCatalog(t, ctx, businessRepo)
	user := createTestUser(t, ctx, client, "reviewer")
	java := byName["Java Junction Cafe"]

	for _, rating := range []int{0, 6, -1} {
		err := reviewRepo.Create(ctx, &entities.Review{
			BusinessID: java.ID,
			UserID:     user.ID,
			Rating:     rating,
			Comment:    "nope",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	}

	// Nothing persisted, aggregate untouched.
	assert.Equal(t, 0, countRows(t, client, "reviews"))
	unchanged, err := businessRepo.GetByID(ctx, java.ID)
	require.NoError(t, err)
	assert.Equal(t, 128, unchanged.ReviewCount)
	assert.InDelta(t, 4.5, unchanged.Rating, 1e-9)
}

func TestReviewAdapter_Create_UnknownBusinessRollsBack(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	reviewRepo := database.NewReviewAdapter(client)
	user := createTestUser(t, ctx, client, "reviewer")

	err := reviewRepo.Create(ctx, &entities.Review{
		BusinessID: "missing-business",
		UserID:     user.ID,
		Rating:     4,
		Comment:    "where is it",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 0, countRows(t, client, "reviews"))
}

func TestReviewAdapter_Create_UnknownUser(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	businessRepo := database.NewBusinessAdapter(client)
	reviewRepo := database.NewReviewAdapter(client)
	byName := seedCatalog(t, ctx, businessRepo)

	err := reviewRepo.Create(ctx, &entities.Review{
		BusinessID: byName["Tech Haven"].ID,
		UserID:     "missing-user",
		Rating:     4,
		Comment:    "who am i",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 0, countRows(t, client, "reviews"))
}

func TestReviewAdapter_ListByUser_NewestFirstWithBusinessName(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	businessRepo := database.NewBusinessAdapter(client)
	reviewRepo := database.NewReviewAdapter(client)

	byName := seedCatalog(t, ctx, businessRepo)
	user := createTestUser(t, ctx, client, "reviewer")
	other := createTestUser(t, ctx, client, "someone-else")

	now := time.Now().UTC()
	require.NoError(t, reviewRepo.Create(ctx, &entities.Review{
		BusinessID: byName["Java Junction Cafe"].ID,
		UserID:     user.ID,
		Rating:     5,
		Comment:    "older",
		CreatedAt:  now.Add(-time.Hour),
	}))
	require.NoError(t, reviewRepo.Create(ctx, &entities.Review{
		BusinessID: byName["Tech Haven"].ID,
		UserID:     user.ID,
		Rating:     3,
		Comment:    "newer",
		CreatedAt:  now,
	}))
	require.NoError(t, reviewRepo.Create(ctx, &entities.Review{
		BusinessID: byName["Tech Haven"].ID,
		UserID:     other.ID,
		Rating:     1,
		Comment:    "not mine",
		CreatedAt:  now,
	}))

	reviews, err := reviewRepo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "newer", reviews[0].Comment)
	assert.Equal(t, "Tech Haven", reviews[0].BusinessName)
	assert.Equal(t, "older", reviews[1].Comment)
	assert.Equal(t, "Java Junction Cafe", reviews[1].BusinessName)
}

func TestReviewAdapter_ListByBusiness(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	businessRepo := database.NewBusinessAdapter(client)
	reviewRepo := database.NewReviewAdapter(client)

	byName := seedCatalog(t, ctx, businessRepo)
	user := createTestUser(t, ctx, client, "reviewer")
	java := byName["Java Junction Cafe"]

	require.NoError(t, reviewRepo.Create(ctx, &entities.Review{
		BusinessID: java.ID,
		UserID:     user.ID,
		Rating:     4,
		Comment:    "nice",
	}))

	reviews, err := reviewRepo.ListByBusiness(ctx, java.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, user.ID, reviews[0].UserID)

	empty, err := reviewRepo.ListByBusiness(ctx, byName["Tech Haven"].ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
