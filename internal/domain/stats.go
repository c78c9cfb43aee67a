package domain

// RatingMin and RatingMax bound the rating scale. Values outside the scale are
// never produced by the service layer; the stores tolerate them but aggregate
// views leave them out.
const (
	RatingMin = 1
	RatingMax = 5
)

// ChartPoint is one bar of the rating distribution chart.
type ChartPoint struct {
	Value      int `json:"value"`      // Rating value 1-5
	Count      int `json:"count"`      // Ratings equal to Value
	Percentage int `json:"percentage"` // round(Count/total*100), 0 when total is 0
}

// StyleBreakdown summarizes how one style category was rated.
// Only styles with at least one rated item appear in breakdowns.
type StyleBreakdown struct {
	Style       Style `json:"style"`
	Hotness     int   `json:"hotness"`
	HighRatings int   `json:"high_ratings"` // Rated items with rating >= 4
	TotalRated  int   `json:"total_rated"`  // Rated items of this style, any rating
}

// Overview is the headline stat block for the admin dashboard.
type Overview struct {
	TotalRatings  int     `json:"total_ratings"`
	AverageRating float64 `json:"average_rating"`
	TotalComments int     `json:"total_comments"`
	OutfitLinks   int     `json:"outfit_links"` // Comments carrying an outfit link
	TotalImages   int     `json:"total_images"`
}
