package main

import (
	"context"
	"log"
	"os"

	"github.com/bytesized/business-boost/internal/adapters/database"
	"github.com/bytesized/business-boost/internal/application/services"
	"github.com/bytesized/business-boost/internal/domain/repositories"
	"github.com/bytesized/business-boost/internal/infrastructure/clients/sqlite"
	"github.com/bytesized/business-boost/pkg/config"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

// Seeds a database with the sample catalog plus a demo account that
// already has a review and a bookmark, so a fresh checkout has
// something to browse. Run with RESET_DB=true to start from scratch.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := sqlite.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, clearing tables before seeding")
		for _, table := range []string{"bookmarks", "reviews", "users", "businesses"} {
			if _, err := client.DB().ExecContext(ctx, "DELETE FROM "+table); err != nil {
				log.Fatalf("Failed to clear %s: %v", table, err)
			}
		}
	}

	businessRepo := database.NewBusinessAdapter(client)
	userRepo := database.NewUserAdapter(client)
	reviewRepo := database.NewReviewAdapter(client)
	bookmarkRepo := database.NewBookmarkAdapter(client)

	seeded, err := businessRepo.EnsureSeedData(ctx)
	if err != nil {
		log.Fatalf("Failed to seed businesses: %v", err)
	}
	if seeded {
		log.Println("Seeded sample businesses")
	} else {
		log.Println("Businesses already present, skipping")
	}

	authService := services.NewAuthService(userRepo)
	reviewService := services.NewReviewService(reviewRepo)
	bookmarkService := services.NewBookmarkService(bookmarkRepo)

	user, err := authService.Register(ctx, "demo", "demo@example.com", "demo-pass", "demo-pass")
	if err != nil {
		if !apperrors.IsConflict(err) {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Println("Demo user already present, skipping demo activity")
		return
	}
	session := services.NewSession(user)

	businesses, err := businessRepo.List(ctx, repositories.BusinessFilter{})
	if err != nil {
		log.Fatalf("Failed to list businesses: %v", err)
	}
	if len(businesses) == 0 {
		log.Println("No businesses to review, done")
		return
	}

	if _, err := reviewService.Add(ctx, session, businesses[0].ID, 5, "Great spot, the demo account approves."); err != nil {
		log.Printf("Failed to add demo review: %v", err)
	}
	if _, err := bookmarkService.Toggle(ctx, session, businesses[0].ID); err != nil {
		log.Printf("Failed to add demo bookmark: %v", err)
	}

	log.Println("Seeding complete")
}
