package domain

import "time"

// AnonymousAuthor is the author label used when a commenter leaves the name blank.
const AnonymousAuthor = "Anonymous"

// Comment is a free-text note a visitor attached to a catalog item.
// Comments are immutable after creation; they can only be deleted.
type Comment struct {
	ID        string    `json:"id"`
	ImageID   string    `json:"image_id"` // References CatalogItem.ID
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
	// OutfitLink is an optional shop link for the outfit. It is either a
	// non-empty trimmed string or absent, never "".
	OutfitLink string `json:"outfit_link,omitempty"`
}
