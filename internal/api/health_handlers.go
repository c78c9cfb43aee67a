package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status",
		Tags:        []string{"Health"},
	}, s.handleGetHealth)
}

type HealthResponse struct {
	Status string `json:"status" doc:"Server status"`
	Images int    `json:"images" doc:"Number of catalog images"`
}

type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleGetHealth(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: HealthResponse{
		Status: "ok",
		Images: s.catalog.Current().Len(),
	}}, nil
}
