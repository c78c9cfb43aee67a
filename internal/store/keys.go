package store

// Top-level record keys. Each record is stored as a single JSON value.
var (
	keyRatings  = []byte("ratings")
	keyComments = []byte("comments")
)
