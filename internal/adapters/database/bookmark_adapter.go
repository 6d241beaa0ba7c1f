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

// BookmarkAdapter implements the BookmarkRepository interface
type BookmarkAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewBookmarkAdapter creates a new bookmark adapter
func NewBookmarkAdapter(client *sqlite.Client) repositories.BookmarkRepository {
	return &BookmarkAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// Toggle removes the bookmark when present, otherwise adds it. The
// delete-then-insert runs in one transaction so two callers cannot both
// observe "not present"; the UNIQUE(user_id, business_id) constraint
// backs the invariant at the schema level.
func (a *BookmarkAdapter) Toggle(ctx context.Context, userID, businessID string) (entities.BookmarkAction, error) {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return "", apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"DELETE FROM bookmarks WHERE user_id = ? AND business_id = ?",
		userID, businessID,
	)
	if err != nil {
		return "", apperrors.NewInternalError("failed to remove bookmark", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return "", apperrors.NewInternalError("failed to get rows affected", err)
	}

	if deleted > 0 {
		if err := tx.Commit(); err != nil {
			return "", apperrors.NewInternalError("failed to commit bookmark removal", err)
		}
		return entities.BookmarkRemoved, nil
	}

	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM businesses WHERE id = ?)", businessID,
	).Scan(&exists); err != nil {
		return "", apperrors.NewInternalError("failed to check business", err)
	}
	if !exists {
		return "", apperrors.NewNotFoundError(fmt.Sprintf("business with id %s not found", businessID))
	}

	insert, args, err := a.db.Insert("bookmarks").Rows(goqu.Record{
		"id":          uuid.NewString(),
		"user_id":     userID,
		"business_id": businessID,
		"created_at":  time.Now().UTC(),
	}).Prepared(true).ToSQL()
	if err != nil {
		return "", apperrors.NewInternalError("failed to build bookmark insert query", err)
	}

	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		return "", apperrors.NewInternalError("failed to add bookmark", err)
	}

	if err := tx.Commit(); err != nil {
		return "", apperrors.NewInternalError("failed to commit bookmark", err)
	}

	return entities.BookmarkAdded, nil
}

// ListBusinesses retrieves the user's bookmarked businesses, newest
// bookmark first.
func (a *BookmarkAdapter) ListBusinesses(ctx context.Context, userID string) ([]*entities.Business, error) {
	query, args, err := a.db.From(goqu.T("businesses").As("b")).
		Join(goqu.T("bookmarks").As("bk"), goqu.On(goqu.Ex{"bk.business_id": goqu.I("b.id")})).
		Select(
			goqu.I("b.id"), goqu.I("b.name"), goqu.I("b.category"), goqu.I("b.address"),
			goqu.I("b.phone"), goqu.I("b.email"), goqu.I("b.description"), goqu.I("b.rating"),
			goqu.I("b.review_count"), goqu.I("b.deals"), goqu.I("b.latitude"),
			goqu.I("b.longitude"), goqu.I("b.created_at"),
		).
		Where(goqu.I("bk.user_id").Eq(userID)).
		Order(goqu.I("bk.created_at").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build bookmarks query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list bookmarks", err)
	}
	defer rows.Close()

	businesses := []*entities.Business{}
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan bookmarked business", err)
		}
		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating bookmarks", err)
	}

	return businesses, nil
}
