package api

import (
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/ratemyshots/ratemyshots-server/internal/catalog"
	"github.com/ratemyshots/ratemyshots-server/internal/gate"
	"github.com/ratemyshots/ratemyshots-server/internal/service"
	"github.com/ratemyshots/ratemyshots-server/internal/store"
)

const testAccessCode = "nyancat123"

// testEnvelope mirrors the Envelope wrapper for decoding responses.
type testEnvelope[T any] struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type testServer struct {
	*Server
	api   humatest.TestAPI
	store *store.Store
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.New(t.TempDir(), logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	provider := catalog.NewProvider(catalog.Default())

	g, err := gate.New(testAccessCode, logger)
	require.NoError(t, err)

	services := &Services{
		Rating:    service.NewRatingService(st, provider, logger),
		Comment:   service.NewCommentService(st, provider, logger),
		Analytics: service.NewAnalyticsService(st, provider, logger),
		Admin:     service.NewAdminService(st, g, logger),
		Export:    service.NewExportService(st, provider, logger),
	}

	s := NewServer(services, provider, logger)

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
		store:  st,
	}
}

// decodeEnvelope unmarshals a recorded response body into an envelope.
func decodeEnvelope[T any](t *testing.T, body []byte) testEnvelope[T] {
	t.Helper()
	var envelope testEnvelope[T]
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

// unlockAdmin brings the test server's gate into the unlocked state.
func (ts *testServer) unlockAdmin(t *testing.T) {
	t.Helper()
	resp := ts.api.Post("/api/v1/admin/unlock", map[string]any{"code": testAccessCode})
	require.Equal(t, http.StatusOK, resp.Code)
}
