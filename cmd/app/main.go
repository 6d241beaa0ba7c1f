package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/bytesized/business-boost/internal/adapters/database"
	"github.com/bytesized/business-boost/internal/application/services"
	"github.com/bytesized/business-boost/internal/infrastructure/clients/sqlite"
	"github.com/bytesized/business-boost/internal/infrastructure/observability"
	"github.com/bytesized/business-boost/pkg/config"
)

// Bootstraps the catalog store for the desktop shell: opens the
// database, creates the schema on first run, seeds the sample catalog
// when empty, and reports a summary. The presentation layer is an
// external collaborator that drives the services from here on.
func main() {
	dbPath := flag.String("db", "", "database file path (overrides DB_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	observability.InitLogger(cfg.App.Name, cfg.App.Environment)

	client, err := sqlite.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog store")
	}
	defer client.Close()

	ctx := context.Background()

	businessRepo := database.NewBusinessAdapter(client)
	statsRepo := database.NewStatisticsAdapter(client)
	catalog := services.NewCatalogService(businessRepo, statsRepo)

	seeded, err := businessRepo.EnsureSeedData(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}
	if seeded {
		log.Info().Msg("seeded sample businesses into empty catalog")
	}

	stats, err := catalog.Statistics(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to collect statistics")
	}

	log.Info().
		Str("db", client.Path()).
		Int("businesses", stats.TotalBusinesses).
		Int("reviews", stats.TotalReviews).
		Float64("avg_rating", stats.AverageRating).
		Msg("catalog store ready")
}
