package domain

import "time"

// CommentExport is the comment-store snapshot returned by export operations.
// Two exports without an intervening mutation differ only in ExportedAt.
type CommentExport struct {
	Comments      []Comment `json:"comments"`
	ExportedAt    time.Time `json:"exportedAt"`
	TotalComments int       `json:"totalComments"`
}

// ItemExport groups a catalog item with everything the visitor left on it.
type ItemExport struct {
	CatalogItem
	UserRating *int      `json:"userRating"` // nil when the item was never rated
	Comments   []Comment `json:"comments"`
}

// FullExport is the complete downloadable data snapshot.
type FullExport struct {
	Comments      []Comment      `json:"comments"`
	ExportedAt    time.Time      `json:"exportedAt"`
	TotalComments int            `json:"totalComments"`
	Ratings       map[string]int `json:"ratings"`
	TotalRatings  int            `json:"totalRatings"`
	AverageRating float64        `json:"averageRating"`
	Images        []ItemExport   `json:"images"`
}
