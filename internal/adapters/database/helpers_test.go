package database_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bytesized/business-boost/internal/adapters/database"
	"github.com/bytesized/business-boost/internal/domain/entities"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	"github.com/bytesized/business-boost/internal/infrastructure/clients/sqlite"
	"github.com/bytesized/business-boost/pkg/config"
)

// newTestClient opens a fresh in-memory database with the full schema.
func newTestClient(t *testing.T) *sqlite.Client {
	t.Helper()

	client, err := sqlite.NewClient(&config.DatabaseConfig{
		Path:          ":memory:",
		BusyTimeoutMS: 5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

// seedCatalog populates the sample businesses and returns them keyed by name.
func seedCatalog(t *testing.T, ctx context.Context, repo repositories.BusinessRepository) map[string]*entities.Business {
	t.Helper()

	seeded, err := repo.EnsureSeedData(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	businesses, err := repo.List(ctx, repositories.BusinessFilter{})
	require.NoError(t, err)
	require.Len(t, businesses, 3)

	byName := map[string]*entities.Business{}
	for _, business := range businesses {
		byName[business.Name] = business
	}
	return byName
}

// createTestUser inserts a user directly through the adapter.
func createTestUser(t *testing.T, ctx context.Context, client *sqlite.Client, username string) *entities.User {
	t.Helper()

	user := &entities.User{
		Username:     username,
		PasswordHash: "test-hash-" + uuid.NewString(),
		Email:        username + "@example.com",
	}
	require.NoError(t, database.NewUserAdapter(client).Create(ctx, user))
	return user
}

// validReviewFixture passes the adapter's input validation so tests can
// reach the storage layer.
func validReviewFixture() *entities.Review {
	return &entities.Review{
		BusinessID: "business-1",
		UserID:     "user-1",
		Rating:     4,
		Comment:    "fine",
	}
}

func countRows(t *testing.T, client *sqlite.Client, table string) int {
	t.Helper()

	var count int
	require.NoError(t, client.DB().QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}
