package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bytesized/business-boost/internal/adapters/database"
	"github.com/bytesized/business-boost/internal/application/services"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	"github.com/bytesized/business-boost/internal/export"
	"github.com/bytesized/business-boost/internal/infrastructure/clients/sqlite"
	"github.com/bytesized/business-boost/internal/infrastructure/observability"
	"github.com/bytesized/business-boost/pkg/config"
)

// Exports the catalog to CSV or PDF from the command line, applying the
// same filters the browse surface offers.
func main() {
	format := flag.String("format", "csv", "export format: csv or pdf")
	out := flag.String("out", "", "output file (default businesses.<format> in EXPORT_DIR)")
	contact := flag.Bool("contact", false, "include phone and email columns")
	deals := flag.Bool("deals", false, "include the deals column")
	category := flag.String("category", "all", "category filter")
	search := flag.String("search", "", "search term for name or description")
	minRating := flag.Float64("min-rating", 0, "minimum rating filter")
	sortBy := flag.String("sort", "name", "sort key: name, rating, or review_count")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	observability.InitLogger(cfg.App.Name, cfg.App.Environment)

	*format = strings.ToLower(*format)
	if *format != "csv" && *format != "pdf" {
		log.Fatal().Str("format", *format).Msg("unsupported export format")
	}

	path := *out
	if path == "" {
		path = filepath.Join(cfg.Export.Directory, "businesses."+*format)
	}

	client, err := sqlite.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog store")
	}
	defer client.Close()

	ctx := context.Background()

	businessRepo := database.NewBusinessAdapter(client)
	catalog := services.NewCatalogService(businessRepo, database.NewStatisticsAdapter(client))

	if _, err := businessRepo.EnsureSeedData(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}

	filter := repositories.BusinessFilter{
		Category:   *category,
		SearchTerm: *search,
		MinRating:  *minRating,
		SortBy:     repositories.SortKey(*sortBy),
	}
	opts := export.Options{
		IncludeContact: *contact,
		IncludeDeals:   *deals,
	}

	file, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to create output file")
	}
	defer file.Close()

	switch *format {
	case "csv":
		err = catalog.ExportCSV(ctx, file, filter, opts)
	case "pdf":
		err = catalog.ExportPDF(ctx, file, filter, opts)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	log.Info().Str("path", path).Str("format", *format).Msg("catalog exported")
}
