// Package service implements the application logic on top of the store:
// rating rules, comment handling, aggregate views, admin actions, and
// exports.
package service

import (
	"log/slog"

	"github.com/ratemyshots/ratemyshots-server/internal/catalog"
	"github.com/ratemyshots/ratemyshots-server/internal/errors"
	"github.com/ratemyshots/ratemyshots-server/internal/store"
)

// RatingService enforces the rating rules: one rating per image, values
// 1 through 5, known images only.
type RatingService struct {
	store   *store.Store
	catalog *catalog.Provider
	logger  *slog.Logger
}

// NewRatingService creates a new rating service.
func NewRatingService(store *store.Store, catalog *catalog.Provider, logger *slog.Logger) *RatingService {
	return &RatingService{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Rate records a rating for an image. The first rating wins: a second
// attempt for the same image is rejected with an already-exists error.
func (s *RatingService) Rate(imageID string, value int) error {
	if value < 1 || value > 5 {
		return errors.Validationf("rating must be between 1 and 5, got %d", value)
	}
	if !s.catalog.Current().Has(imageID) {
		return errors.NotFoundf("unknown image: %s", imageID)
	}
	if s.store.HasRating(imageID) {
		return errors.AlreadyExistsf("image %s is already rated", imageID)
	}

	s.store.SetRating(imageID, value)
	s.logger.Info("rating recorded", "image_id", imageID, "value", value)
	return nil
}

// Get returns the rating for an image, or a not-found error when the image
// is unknown or unrated.
func (s *RatingService) Get(imageID string) (int, error) {
	if !s.catalog.Current().Has(imageID) {
		return 0, errors.NotFoundf("unknown image: %s", imageID)
	}
	v, ok := s.store.GetRating(imageID)
	if !ok {
		return 0, errors.NotFoundf("image %s has no rating", imageID)
	}
	return v, nil
}

// All returns the full image-to-rating map.
func (s *RatingService) All() map[string]int {
	return s.store.Ratings()
}
