package database

import (
	"context"

	"github.com/bytesized/business-boost/internal/domain/entities"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	"github.com/bytesized/business-boost/internal/infrastructure/clients/sqlite"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

// StatisticsAdapter implements the StatisticsRepository interface
type StatisticsAdapter struct {
	client *sqlite.Client
}

// NewStatisticsAdapter creates a new statistics adapter
func NewStatisticsAdapter(client *sqlite.Client) repositories.StatisticsRepository {
	return &StatisticsAdapter{client: client}
}

// Collect gathers the catalog summary in a single read transaction so
// all numbers describe the same snapshot.
func (a *StatisticsAdapter) Collect(ctx context.Context) (*entities.Statistics, error) {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	stats := &entities.Statistics{
		ByCategory: map[string]int{},
		TopRated:   []entities.TopBusiness{},
	}

	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM businesses",
	).Scan(&stats.TotalBusinesses); err != nil {
		return nil, apperrors.NewInternalError("failed to count businesses", err)
	}

	rows, err := tx.QueryContext(ctx,
		"SELECT category, COUNT(*) FROM businesses GROUP BY category",
	)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count businesses by category", err)
	}
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			rows.Close()
			return nil, apperrors.NewInternalError("failed to scan category count", err)
		}
		stats.ByCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, apperrors.NewInternalError("error iterating category counts", err)
	}
	rows.Close()

	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(AVG(rating), 0) FROM businesses",
	).Scan(&stats.AverageRating); err != nil {
		return nil, apperrors.NewInternalError("failed to average ratings", err)
	}

	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reviews",
	).Scan(&stats.TotalReviews); err != nil {
		return nil, apperrors.NewInternalError("failed to count reviews", err)
	}

	// Tie-break by id so equal ratings order the same way every call.
	rows, err = tx.QueryContext(ctx,
		"SELECT id, name, rating FROM businesses ORDER BY rating DESC, id ASC LIMIT 5",
	)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to rank businesses", err)
	}
	for rows.Next() {
		var top entities.TopBusiness
		if err := rows.Scan(&top.ID, &top.Name, &top.Rating); err != nil {
			rows.Close()
			return nil, apperrors.NewInternalError("failed to scan top business", err)
		}
		stats.TopRated = append(stats.TopRated, top)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, apperrors.NewInternalError("error iterating top businesses", err)
	}
	rows.Close()

	if err := tx.Commit(); err != nil {
		return nil, apperrors.NewInternalError("failed to commit statistics read", err)
	}

	return stats, nil
}
