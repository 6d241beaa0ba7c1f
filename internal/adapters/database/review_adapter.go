package database

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/bytesized/business-boost/internal/domain/entities"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	"github.com/bytesized/business-boost/internal/infrastructure/clients/sqlite"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

// ReviewAdapter implements the ReviewRepository interface
type ReviewAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *sqlite.Client) repositories.ReviewRepository {
	return &ReviewAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// Create inserts the review and folds its rating into the parent
// business's aggregate in one transaction. The aggregate update is
// incremental so that pre-seeded rating/review_count values keep their
// weight: new_rating = (rating*review_count + r) / (review_count + 1).
func (a *ReviewAdapter) Create(ctx context.Context, review *entities.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", review.UserID,
	).Scan(&exists); err != nil {
		return apperrors.NewInternalError("failed to check user", err)
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("user with id %s not found", review.UserID))
	}

	insert, args, err := a.db.Insert("reviews").Rows(goqu.Record{
		"id":          review.ID,
		"business_id": review.BusinessID,
		"user_id":     review.UserID,
		"rating":      review.Rating,
		"comment":     review.Comment,
		"created_at":  review.CreatedAt,
	}).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build review insert query", err)
	}

	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		return apperrors.NewInternalError("failed to create review", err)
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE businesses SET
			rating = (rating * review_count + ?) / (review_count + 1.0),
			review_count = review_count + 1
		WHERE id = ?
	`, review.Rating, review.BusinessID)
	if err != nil {
		return apperrors.NewInternalError("failed to update business rating", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("business with id %s not found", review.BusinessID))
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit review", err)
	}

	return nil
}

// ListByUser retrieves a user's reviews with the reviewed business's
// name, newest first.
func (a *ReviewAdapter) ListByUser(ctx context.Context, userID string) ([]*entities.UserReview, error) {
	query, args, err := a.db.From(goqu.T("reviews").As("r")).
		Join(goqu.T("businesses").As("b"), goqu.On(goqu.Ex{"r.business_id": goqu.I("b.id")})).
		Select(
			goqu.I("r.id"), goqu.I("r.business_id"), goqu.I("r.user_id"),
			goqu.I("r.rating"), goqu.I("r.comment"), goqu.I("r.created_at"),
			goqu.I("b.name").As("business_name"),
		).
		Where(goqu.I("r.user_id").Eq(userID)).
		Order(goqu.I("r.created_at").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user reviews query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list user reviews", err)
	}
	defer rows.Close()

	reviews := []*entities.UserReview{}
	for rows.Next() {
		review := &entities.UserReview{}
		err := rows.Scan(
			&review.ID,
			&review.BusinessID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.BusinessName,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan user review", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating user reviews", err)
	}

	return reviews, nil
}

// ListByBusiness retrieves the reviews of a business, newest first
func (a *ReviewAdapter) ListByBusiness(ctx context.Context, businessID string) ([]*entities.Review, error) {
	query, args, err := a.db.From("reviews").
		Select("id", "business_id", "user_id", "rating", "comment", "created_at").
		Where(goqu.C("business_id").Eq(businessID)).
		Order(goqu.C("created_at").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build reviews query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list reviews", err)
	}
	defer rows.Close()

	reviews := []*entities.Review{}
	for rows.Next() {
		review := &entities.Review{}
		err := rows.Scan(
			&review.ID,
			&review.BusinessID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan review", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating reviews", err)
	}

	return reviews, nil
}
