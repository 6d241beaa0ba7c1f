package entities

// Statistics holds catalog-wide aggregate numbers.
type Statistics struct {
	TotalBusinesses int            `json:"total_businesses"`
	ByCategory      map[string]int `json:"by_category"`
	AverageRating   float64        `json:"avg_rating"`
	TotalReviews    int            `json:"total_reviews"`
	TopRated        []TopBusiness  `json:"top_rated"`
}

// TopBusiness is one entry of the top-rated ranking.
type TopBusiness struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}
