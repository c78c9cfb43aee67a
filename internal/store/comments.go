package store

import (
	"slices"

	"github.com/ratemyshots/ratemyshots-server/internal/domain"
)

// loadComments reads the persisted comments record into memory.
func (s *Store) loadComments() {
	var comments []domain.Comment
	s.load(keyComments, &comments)
	s.comments = comments
}

// Comments returns a copy of all comments, newest first.
func (s *Store) Comments() []domain.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.comments)
}

// CommentsForImage returns the comments for one image, newest first.
func (s *Store) CommentsForImage(imageID string) []domain.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Comment
	for _, c := range s.comments {
		if c.ImageID == imageID {
			out = append(out, c)
		}
	}
	return out
}

// GetComment returns a comment by id, if it exists.
func (s *Store) GetComment(id string) (domain.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.comments {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Comment{}, false
}

// CommentCount returns the total number of comments.
func (s *Store) CommentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comments)
}

// AddComment prepends a comment, keeping newest-first order, and persists
// the record.
func (s *Store) AddComment(c domain.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments = append([]domain.Comment{c}, s.comments...)
	s.persist(keyComments, s.comments)
}

// DeleteComment removes a comment by id. Returns whether it was present.
func (s *Store) DeleteComment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.comments {
		if c.ID == id {
			s.comments = slices.Delete(s.comments, i, i+1)
			s.persist(keyComments, s.comments)
			return true
		}
	}
	return false
}

// DeleteAllComments clears every comment. Returns the number removed.
func (s *Store) DeleteAllComments() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.comments)
	s.comments = nil
	s.persist(keyComments, s.comments)
	return n
}
