package service

import (
	"log/slog"

	"github.com/ratemyshots/ratemyshots-server/internal/errors"
	"github.com/ratemyshots/ratemyshots-server/internal/gate"
	"github.com/ratemyshots/ratemyshots-server/internal/store"
)

// AdminService owns the access gate and the destructive operations behind
// it. Every destructive call checks the gate first.
type AdminService struct {
	store  *store.Store
	gate   *gate.Gate
	logger *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(store *store.Store, gate *gate.Gate, logger *slog.Logger) *AdminService {
	return &AdminService{
		store:  store,
		gate:   gate,
		logger: logger,
	}
}

// Gate exposes the underlying access gate.
func (s *AdminService) Gate() *gate.Gate {
	return s.gate
}

// requireUnlocked guards destructive operations.
func (s *AdminService) requireUnlocked() error {
	if !s.gate.Unlocked() {
		return errors.Forbidden("admin access required")
	}
	return nil
}

// DeleteComment removes a single comment.
func (s *AdminService) DeleteComment(id string) error {
	if err := s.requireUnlocked(); err != nil {
		return err
	}
	if !s.store.DeleteComment(id) {
		return errors.NotFoundf("unknown comment: %s", id)
	}
	s.logger.Info("comment deleted by admin", "comment_id", id)
	return nil
}

// DeleteAllComments wipes the comment store. Returns the number removed.
func (s *AdminService) DeleteAllComments() (int, error) {
	if err := s.requireUnlocked(); err != nil {
		return 0, err
	}
	n := s.store.DeleteAllComments()
	s.logger.Info("all comments deleted by admin", "removed", n)
	return n, nil
}

// DeleteRating removes the rating for one image.
func (s *AdminService) DeleteRating(imageID string) error {
	if err := s.requireUnlocked(); err != nil {
		return err
	}
	if !s.store.DeleteRating(imageID) {
		return errors.NotFoundf("image %s has no rating", imageID)
	}
	s.logger.Info("rating deleted by admin", "image_id", imageID)
	return nil
}

// DeleteAllRatings wipes the rating store. Returns the number removed.
func (s *AdminService) DeleteAllRatings() (int, error) {
	if err := s.requireUnlocked(); err != nil {
		return 0, err
	}
	n := s.store.DeleteAllRatings()
	s.logger.Info("all ratings deleted by admin", "removed", n)
	return n, nil
}
