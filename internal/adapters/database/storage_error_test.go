package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytesized/business-boost/internal/adapters/database"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	"github.com/bytesized/business-boost/internal/infrastructure/clients/sqlite"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

// Storage failures that a healthy database will not produce on demand:
// every one must surface as an internal error, never be swallowed.

func TestBusinessAdapter_List_StorageErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	diskErr := errors.New("disk I/O error")
	mock.ExpectQuery("SELECT").WillReturnError(diskErr)

	repo := database.NewBusinessAdapter(sqlite.NewFromDB(db))
	_, err = repo.List(context.Background(), repositories.BusinessFilter{})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	assert.ErrorIs(t, err, diskErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsAdapter_Collect_StorageErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	corruptErr := errors.New("database disk image is malformed")
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").WillReturnError(corruptErr)
	mock.ExpectRollback()

	repo := database.NewStatisticsAdapter(sqlite.NewFromDB(db))
	_, err = repo.Collect(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
	assert.ErrorIs(t, err, corruptErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewAdapter_Create_BeginFailurePropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	lockErr := errors.New("database is locked")
	mock.ExpectBegin().WillReturnError(lockErr)

	repo := database.NewReviewAdapter(sqlite.NewFromDB(db))
	createErr := repo.Create(context.Background(), validReviewFixture())

	require.Error(t, createErr)
	assert.True(t, apperrors.IsType(createErr, apperrors.ErrorTypeInternal))
	assert.ErrorIs(t, createErr, lockErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
