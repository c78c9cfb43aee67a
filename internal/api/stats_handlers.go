package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ratemyshots/ratemyshots-server/internal/domain"
)

func (s *Server) registerStatsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getTopRated",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats/top-rated",
		Summary:     "Top rated images",
		Description: "Returns the highest-rated images, rating descending",
		Tags:        []string{"Stats"},
	}, s.handleGetTopRated)

	huma.Register(s.api, huma.Operation{
		OperationID: "getStyleBreakdown",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats/styles",
		Summary:     "Style breakdown",
		Description: "Returns per-style rating aggregation, rated styles only",
		Tags:        []string{"Stats"},
	}, s.handleGetStyleBreakdown)

	huma.Register(s.api, huma.Operation{
		OperationID: "getOverview",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats/overview",
		Summary:     "Stats overview",
		Description: "Returns the headline stat block",
		Tags:        []string{"Stats"},
	}, s.handleGetOverview)
}

// === DTOs ===

type GetTopRatedInput struct {
	Limit int `query:"limit" doc:"Number of items to return, default 3"`
}

type TopRatedResponse struct {
	Items []domain.RatedItem `json:"items" doc:"Rated images, rating descending"`
}

type TopRatedOutput struct {
	Body TopRatedResponse
}

type StyleBreakdownResponse struct {
	Styles []domain.StyleBreakdown `json:"styles" doc:"Rated styles, high ratings descending"`
}

type StyleBreakdownOutput struct {
	Body StyleBreakdownResponse
}

type OverviewOutput struct {
	Body domain.Overview
}

// === Handlers ===

func (s *Server) handleGetTopRated(_ context.Context, input *GetTopRatedInput) (*TopRatedOutput, error) {
	return &TopRatedOutput{Body: TopRatedResponse{
		Items: s.services.Analytics.TopRated(input.Limit),
	}}, nil
}

func (s *Server) handleGetStyleBreakdown(_ context.Context, _ *struct{}) (*StyleBreakdownOutput, error) {
	return &StyleBreakdownOutput{Body: StyleBreakdownResponse{
		Styles: s.services.Analytics.StyleBreakdown(),
	}}, nil
}

func (s *Server) handleGetOverview(_ context.Context, _ *struct{}) (*OverviewOutput, error) {
	return &OverviewOutput{Body: s.services.Analytics.Overview()}, nil
}
