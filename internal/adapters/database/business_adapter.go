package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/google/uuid"

	"github.com/bytesized/business-boost/internal/domain/entities"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	"github.com/bytesized/business-boost/internal/infrastructure/clients/sqlite"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

var businessColumns = []interface{}{
	"id", "name", "category", "address", "phone", "email", "description",
	"rating", "review_count", "deals", "latitude", "longitude", "created_at",
}

// BusinessAdapter implements the BusinessRepository interface
type BusinessAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewBusinessAdapter creates a new business adapter
func NewBusinessAdapter(client *sqlite.Client) repositories.BusinessRepository {
	return &BusinessAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// Create creates a new business
func (a *BusinessAdapter) Create(ctx context.Context, business *entities.Business) error {
	if business.ID == "" {
		business.ID = uuid.NewString()
	}
	if business.CreatedAt.IsZero() {
		business.CreatedAt = time.Now().UTC()
	}

	query, args, err := a.db.Insert("businesses").Rows(businessRecord(business)).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build business insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create business", err)
	}

	return nil
}

// GetByID retrieves a business by ID
func (a *BusinessAdapter) GetByID(ctx context.Context, id string) (*entities.Business, error) {
	query, args, err := a.db.From("businesses").
		Select(businessColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build business query", err)
	}

	business, err := scanBusiness(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("business with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get business", err)
	}

	return business, nil
}

// List retrieves businesses matching the filter. All filters are
// conjunctive; an empty result is a valid outcome, not an error.
func (a *BusinessAdapter) List(ctx context.Context, filter repositories.BusinessFilter) ([]*entities.Business, error) {
	ds := a.db.From("businesses").Select(businessColumns...)

	if filter.Category != "" && filter.Category != "all" {
		ds = ds.Where(goqu.C("category").Eq(filter.Category))
	}

	if filter.SearchTerm != "" {
		pattern := "%" + strings.ToLower(filter.SearchTerm) + "%"
		ds = ds.Where(goqu.Or(
			goqu.Func("lower", goqu.C("name")).Like(pattern),
			goqu.Func("lower", goqu.C("description")).Like(pattern),
		))
	}

	if filter.MinRating > 0 {
		ds = ds.Where(goqu.C("rating").Gte(filter.MinRating))
	}

	switch filter.SortBy {
	case repositories.SortByRating:
		ds = ds.Order(goqu.C("rating").Desc(), goqu.C("name").Asc())
	case repositories.SortByReviewCount:
		ds = ds.Order(goqu.C("review_count").Desc(), goqu.C("name").Asc())
	default:
		ds = ds.Order(goqu.C("name").Asc())
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build business list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list businesses", err)
	}
	defer rows.Close()

	businesses := []*entities.Business{}
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan business", err)
		}
		businesses = append(businesses, business)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating businesses", err)
	}

	return businesses, nil
}

// EnsureSeedData inserts the sample catalog when the businesses table is
// empty. Subsequent runs are no-ops.
func (a *BusinessAdapter) EnsureSeedData(ctx context.Context) (bool, error) {
	var count int
	err := a.client.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM businesses").Scan(&count)
	if err != nil {
		return false, apperrors.NewInternalError("failed to count businesses", err)
	}
	if count > 0 {
		return false, nil
	}

	records := make([]interface{}, 0, len(sampleBusinesses))
	for i := range sampleBusinesses {
		business := sampleBusinesses[i]
		business.ID = uuid.NewString()
		business.CreatedAt = time.Now().UTC()
		records = append(records, businessRecord(&business))
	}

	query, args, err := a.db.Insert("businesses").Rows(records...).Prepared(true).ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build seed query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return false, apperrors.NewInternalError("failed to seed businesses", err)
	}

	return true, nil
}

func businessRecord(business *entities.Business) goqu.Record {
	return goqu.Record{
		"id":           business.ID,
		"name":         business.Name,
		"category":     business.Category,
		"address":      business.Address,
		"phone":        business.Phone,
		"email":        business.Email,
		"description":  business.Description,
		"rating":       business.Rating,
		"review_count": business.ReviewCount,
		"deals":        business.Deals,
		"latitude":     business.Location.Latitude,
		"longitude":    business.Location.Longitude,
		"created_at":   business.CreatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBusiness(row rowScanner) (*entities.Business, error) {
	business := &entities.Business{}
	err := row.Scan(
		&business.ID,
		&business.Name,
		&business.Category,
		&business.Address,
		&business.Phone,
		&business.Email,
		&business.Description,
		&business.Rating,
		&business.ReviewCount,
		&business.Deals,
		&business.Location.Latitude,
		&business.Location.Longitude,
		&business.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return business, nil
}
