package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratemyshots/ratemyshots-server/internal/gate"
)

func TestAdminStatusStartsLocked(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/admin/status")
	require.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[gate.Status](t, resp.Body.Bytes())
	assert.False(t, envelope.Data.Unlocked)
	assert.False(t, envelope.Data.PromptOpen)
}

func TestAdminTapSequenceOpensPrompt(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/admin/access")
	envelope := decodeEnvelope[gate.Status](t, resp.Body.Bytes())
	assert.False(t, envelope.Data.PromptOpen)

	ts.api.Post("/api/v1/admin/access")
	resp = ts.api.Post("/api/v1/admin/access")
	envelope = decodeEnvelope[gate.Status](t, resp.Body.Bytes())
	assert.True(t, envelope.Data.PromptOpen)

	// Dismissing closes the prompt without unlocking.
	resp = ts.api.Post("/api/v1/admin/dismiss")
	envelope = decodeEnvelope[gate.Status](t, resp.Body.Bytes())
	assert.False(t, envelope.Data.PromptOpen)
	assert.False(t, envelope.Data.Unlocked)
}

func TestAdminUnlock(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("wrong code", func(t *testing.T) {
		resp := ts.api.Post("/api/v1/admin/unlock", map[string]any{"code": "letmein"})
		require.Equal(t, http.StatusUnauthorized, resp.Code)

		statusResp := ts.api.Get("/api/v1/admin/status")
		envelope := decodeEnvelope[gate.Status](t, statusResp.Body.Bytes())
		assert.True(t, envelope.Data.LastError)
		assert.False(t, envelope.Data.Unlocked)
	})

	t.Run("clear error", func(t *testing.T) {
		resp := ts.api.Post("/api/v1/admin/clear-error")
		envelope := decodeEnvelope[gate.Status](t, resp.Body.Bytes())
		assert.False(t, envelope.Data.LastError)
	})

	t.Run("correct code", func(t *testing.T) {
		resp := ts.api.Post("/api/v1/admin/unlock", map[string]any{"code": testAccessCode})
		require.Equal(t, http.StatusOK, resp.Code)

		envelope := decodeEnvelope[gate.Status](t, resp.Body.Bytes())
		assert.True(t, envelope.Data.Unlocked)
	})

	t.Run("lock again", func(t *testing.T) {
		resp := ts.api.Post("/api/v1/admin/lock")
		envelope := decodeEnvelope[gate.Status](t, resp.Body.Bytes())
		assert.False(t, envelope.Data.Unlocked)
	})
}

func TestAdminDeletesRequireUnlock(t *testing.T) {
	ts := setupTestServer(t)

	ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-1", "value": 4})

	resp := ts.api.Delete("/api/v1/admin/ratings/bild-1")
	require.Equal(t, http.StatusForbidden, resp.Code)

	resp = ts.api.Delete("/api/v1/admin/ratings")
	require.Equal(t, http.StatusForbidden, resp.Code)

	resp = ts.api.Delete("/api/v1/admin/comments")
	require.Equal(t, http.StatusForbidden, resp.Code)

	assert.True(t, ts.store.HasRating("bild-1"))
}

func TestAdminDeleteRating(t *testing.T) {
	ts := setupTestServer(t)
	ts.unlockAdmin(t)

	ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-1", "value": 4})

	resp := ts.api.Delete("/api/v1/admin/ratings/bild-1")
	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.False(t, ts.store.HasRating("bild-1"))

	resp = ts.api.Delete("/api/v1/admin/ratings/bild-1")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAdminWipes(t *testing.T) {
	ts := setupTestServer(t)
	ts.unlockAdmin(t)

	ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-1", "value": 4})
	ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-2", "value": 2})
	ts.api.Post("/api/v1/comments", map[string]any{"image_id": "bild-1", "text": "bye"})

	resp := ts.api.Delete("/api/v1/admin/ratings")
	require.Equal(t, http.StatusOK, resp.Code)
	envelope := decodeEnvelope[WipeResponse](t, resp.Body.Bytes())
	assert.Equal(t, 2, envelope.Data.Removed)

	resp = ts.api.Delete("/api/v1/admin/comments")
	require.Equal(t, http.StatusOK, resp.Code)
	envelope = decodeEnvelope[WipeResponse](t, resp.Body.Bytes())
	assert.Equal(t, 1, envelope.Data.Removed)

	assert.Equal(t, 0, ts.store.RatingCount())
	assert.Equal(t, 0, ts.store.CommentCount())
}

func TestAdminDeleteComment(t *testing.T) {
	ts := setupTestServer(t)
	ts.unlockAdmin(t)

	createResp := ts.api.Post("/api/v1/comments", map[string]any{"image_id": "bild-1", "text": "oops"})
	created := decodeEnvelope[map[string]any](t, createResp.Body.Bytes())
	commentID, _ := created.Data["id"].(string)
	require.NotEmpty(t, commentID)

	resp := ts.api.Delete("/api/v1/admin/comments/" + commentID)
	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, 0, ts.store.CommentCount())
}

func TestExportJSONDownload(t *testing.T) {
	ts := setupTestServer(t)

	t.Run("locked", func(t *testing.T) {
		resp := ts.api.Get("/api/v1/admin/export/json")
		require.Equal(t, http.StatusForbidden, resp.Code)
	})

	ts.unlockAdmin(t)
	ts.api.Post("/api/v1/ratings", map[string]any{"image_id": "bild-1", "value": 5})

	resp := ts.api.Get("/api/v1/admin/export/json")
	require.Equal(t, http.StatusOK, resp.Code)

	disposition := resp.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "ratemyshots-export-")
	assert.Contains(t, resp.Body.String(), `"totalRatings"`)
}

func TestExportCSVDownload(t *testing.T) {
	ts := setupTestServer(t)
	ts.unlockAdmin(t)

	ts.api.Post("/api/v1/comments", map[string]any{"image_id": "bild-1", "text": "csv me"})

	resp := ts.api.Get("/api/v1/admin/export/csv")
	require.Equal(t, http.StatusOK, resp.Code)

	disposition := resp.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "ratemyshots-comments-")

	lines := strings.Split(strings.TrimSpace(resp.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Image ID;Image Title;Author;Comment;Outfit Link;Date", lines[0])
	assert.Contains(t, lines[1], "csv me")
}
