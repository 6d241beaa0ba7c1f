package services

import (
	"context"
	"io"

	"github.com/bytesized/business-boost/internal/domain/entities"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	"github.com/bytesized/business-boost/internal/export"
	"github.com/bytesized/business-boost/pkg/utils"
)

// CatalogService exposes the browse and export surface of the catalog
type CatalogService struct {
	businesses repositories.BusinessRepository
	statistics repositories.StatisticsRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(businesses repositories.BusinessRepository, statistics repositories.StatisticsRepository) *CatalogService {
	return &CatalogService{
		businesses: businesses,
		statistics: statistics,
	}
}

// ListBusinesses retrieves businesses matching the filter. The category
// is normalized so "All Categories" style inputs disable the filter.
func (s *CatalogService) ListBusinesses(ctx context.Context, filter repositories.BusinessFilter) ([]*entities.Business, error) {
	filter.Category = utils.NormalizeCategory(filter.Category)
	if filter.Category == utils.CategoryAll {
		filter.Category = ""
	}
	return s.businesses.List(ctx, filter)
}

// GetBusiness retrieves a single business by id
func (s *CatalogService) GetBusiness(ctx context.Context, id string) (*entities.Business, error) {
	return s.businesses.GetByID(ctx, id)
}

// Statistics returns catalog-wide aggregate numbers
func (s *CatalogService) Statistics(ctx context.Context) (*entities.Statistics, error) {
	return s.statistics.Collect(ctx)
}

// ExportCSV writes the filtered catalog to w as CSV
func (s *CatalogService) ExportCSV(ctx context.Context, w io.Writer, filter repositories.BusinessFilter, opts export.Options) error {
	businesses, err := s.ListBusinesses(ctx, filter)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, businesses, opts)
}

// ExportPDF writes the filtered catalog to w as a PDF report
func (s *CatalogService) ExportPDF(ctx context.Context, w io.Writer, filter repositories.BusinessFilter, opts export.Options) error {
	businesses, err := s.ListBusinesses(ctx, filter)
	if err != nil {
		return err
	}
	return export.WritePDF(w, businesses, opts)
}
