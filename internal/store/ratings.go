package store

// loadRatings reads the persisted ratings record into memory.
func (s *Store) loadRatings() {
	ratings := make(map[string]int)
	s.load(keyRatings, &ratings)
	if ratings == nil {
		ratings = make(map[string]int)
	}
	s.ratings = ratings
}

// Ratings returns a copy of the full image-to-rating map.
func (s *Store) Ratings() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.ratings))
	for id, v := range s.ratings {
		out[id] = v
	}
	return out
}

// GetRating returns the rating for an image, if one exists.
func (s *Store) GetRating(imageID string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.ratings[imageID]
	return v, ok
}

// HasRating reports whether an image has been rated.
func (s *Store) HasRating(imageID string) bool {
	_, ok := s.GetRating(imageID)
	return ok
}

// RatingCount returns the number of rated images.
func (s *Store) RatingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ratings)
}

// SetRating records a rating for an image, overwriting any existing value,
// and persists the record.
func (s *Store) SetRating(imageID string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ratings[imageID] = value
	s.persist(keyRatings, s.ratings)
}

// DeleteRating removes the rating for an image. Returns whether a rating
// was present.
func (s *Store) DeleteRating(imageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ratings[imageID]; !ok {
		return false
	}
	delete(s.ratings, imageID)
	s.persist(keyRatings, s.ratings)
	return true
}

// DeleteAllRatings clears every rating. Returns the number removed.
func (s *Store) DeleteAllRatings() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.ratings)
	s.ratings = make(map[string]int)
	s.persist(keyRatings, s.ratings)
	return n
}
