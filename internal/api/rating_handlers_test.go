package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRating(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/ratings", map[string]any{
		"image_id": "bild-1",
		"value":    4,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[RatingResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "bild-1", envelope.Data.ImageID)
	assert.Equal(t, 4, envelope.Data.Value)
}

func TestCreateRatingConflict(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-1", "value": 5})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-1", "value": 2})
	require.Equal(t, http.StatusConflict, resp.Code)

	envelope := decodeEnvelope[any](t, resp.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "ALREADY_EXISTS", envelope.Code)

	// First rating untouched.
	getResp := ts.api.Get("/api/v1/ratings/bild-1")
	ratingEnvelope := decodeEnvelope[RatingResponse](t, getResp.Body.Bytes())
	assert.Equal(t, 5, ratingEnvelope.Data.Value)
}

func TestCreateRatingOutOfRange(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-1", "value": 9})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[any](t, resp.Body.Bytes())
	assert.Equal(t, "VALIDATION", envelope.Code)
}

func TestCreateRatingUnknownImage(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-99", "value": 3})
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListRatings(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("empty", func(t *testing.T) {
		resp := ts.api.Get("/api/v1/ratings")
		require.Equal(t, http.StatusOK, resp.Code)

		envelope := decodeEnvelope[ListRatingsResponse](t, resp.Body.Bytes())
		assert.Equal(t, 0, envelope.Data.Total)
	})

	t.Run("populated", func(t *testing.T) {
		ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-1", "value": 5})
		ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-3", "value": 2})

		resp := ts.api.Get("/api/v1/ratings")
		envelope := decodeEnvelope[ListRatingsResponse](t, resp.Body.Bytes())
		assert.Equal(t, 2, envelope.Data.Total)
		assert.Equal(t, map[string]int{"bild-1": 5, "bild-3": 2}, envelope.Data.Ratings)
	})
}

func TestGetRatingChart(t *testing.T) {
	ts := setupTestServer(t)

	ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-1", "value": 5})
	ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-2", "value": 5})

	resp := ts.api.Get("/api/v1/ratings/chart")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[RatingChartResponse](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Points, 5)
	assert.Equal(t, 2, envelope.Data.Points[4].Count)
	assert.Equal(t, 100, envelope.Data.Points[4].Percentage)
	assert.Equal(t, 0, envelope.Data.Points[0].Percentage)
}

func TestGetRatingNotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/ratings/bild-1")
	require.Equal(t, http.StatusNotFound, resp.Code)
}
