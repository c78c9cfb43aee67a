package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[HealthResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, 1, envelope.V)
	assert.Equal(t, "ok", envelope.Data.Status)
	assert.Equal(t, 16, envelope.Data.Images)
}

func TestListCatalog(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/catalog")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListCatalogResponse](t, resp.Body.Bytes())
	assert.True(t, envelope.Success)
	require.Equal(t, 16, envelope.Data.Total)
	assert.Equal(t, "bild-1", envelope.Data.Items[0].ID)
	assert.Equal(t, "bild-16", envelope.Data.Items[15].ID)
	for _, item := range envelope.Data.Items {
		assert.Nil(t, item.Rating)
	}
}

func TestListCatalogMergesRatings(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-3", "value": 4})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/catalog")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListCatalogResponse](t, resp.Body.Bytes())
	require.Equal(t, 16, envelope.Data.Total)
	rated := envelope.Data.Items[2]
	require.Equal(t, "bild-3", rated.ID)
	require.NotNil(t, rated.Rating)
	assert.Equal(t, 4, *rated.Rating)
	assert.Nil(t, envelope.Data.Items[0].Rating)
}

func TestGetCatalogItem(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("known image", func(t *testing.T) {
		resp := ts.api.Get("/api/v1/catalog/bild-6")
		require.Equal(t, http.StatusOK, resp.Code)

		envelope := decodeEnvelope[map[string]any](t, resp.Body.Bytes())
		assert.Equal(t, "bild-6", envelope.Data["id"])
		assert.Equal(t, float64(5), envelope.Data["hotness"])
		assert.Equal(t, "hot", envelope.Data["style"])
	})

	t.Run("unknown image", func(t *testing.T) {
		resp := ts.api.Get("/api/v1/catalog/bild-99")
		require.Equal(t, http.StatusNotFound, resp.Code)

		envelope := decodeEnvelope[any](t, resp.Body.Bytes())
		assert.False(t, envelope.Success)
		assert.Equal(t, "NOT_FOUND", envelope.Code)
	})
}

func TestListStyles(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/catalog/styles")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[ListStylesResponse](t, resp.Body.Bytes())
	require.Len(t, envelope.Data.Styles, 5)
	assert.Equal(t, 1, envelope.Data.Styles[0].Hotness)
	assert.Equal(t, 5, envelope.Data.Styles[4].Hotness)
}
