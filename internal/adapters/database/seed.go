package database

import (
	"github.com/bytesized/business-boost/internal/domain/entities"
)

// sampleBusinesses is the catalog seeded into an empty store on first
// run. Ratings and review counts are pre-populated display values; no
// review rows back them.
var sampleBusinesses = []entities.Business{
	{
		Name:        "Java Junction Cafe",
		Category:    "food",
		Address:     "123 Main St, Cityville",
		Phone:       "(555) 123-4567",
		Email:       "contact@javajunction.com",
		Description: "Cozy coffee shop with artisanal brews and pastries",
		Rating:      4.5,
		ReviewCount: 128,
		Deals:       "Buy 5 coffees, get 1 free",
		Location:    entities.Location{Latitude: 40.7128, Longitude: -74.0060},
	},
	{
		Name:        "Tech Haven",
		Category:    "retail",
		Address:     "456 Tech Blvd, Cityville",
		Phone:       "(555) 987-6543",
		Email:       "support@techhaven.com",
		Description: "Electronics and computer accessories store",
		Rating:      4.2,
		ReviewCount: 89,
		Deals:       "10% off on weekends for students",
		Location:    entities.Location{Latitude: 40.7589, Longitude: -73.9851},
	},
	{
		Name:        "Green Thumb Landscaping",
		Category:    "services",
		Address:     "789 Garden Way, Cityville",
		Phone:       "(555) 456-7890",
		Email:       "service@greenthumb.com",
		Description: "Professional landscaping and garden maintenance",
		Rating:      4.8,
		ReviewCount: 67,
		Deals:       "Free consultation for first-time customers",
		Location:    entities.Location{Latitude: 40.7505, Longitude: -73.9934},
	},
}
