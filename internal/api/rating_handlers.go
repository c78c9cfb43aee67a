package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ratemyshots/ratemyshots-server/internal/domain"
)

func (s *Server) registerRatingRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createRating",
		Method:      http.MethodPost,
		Path:        "/api/v1/ratings",
		Summary:     "Rate an image",
		Description: "Records a rating for an image. Each image can be rated once.",
		Tags:        []string{"Ratings"},
	}, s.handleCreateRating)

	huma.Register(s.api, huma.Operation{
		OperationID: "listRatings",
		Method:      http.MethodGet,
		Path:        "/api/v1/ratings",
		Summary:     "List ratings",
		Description: "Returns the full image-to-rating map",
		Tags:        []string{"Ratings"},
	}, s.handleListRatings)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRatingChart",
		Method:      http.MethodGet,
		Path:        "/api/v1/ratings/chart",
		Summary:     "Rating distribution",
		Description: "Returns the rating distribution with percentages",
		Tags:        []string{"Ratings"},
	}, s.handleGetRatingChart)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRating",
		Method:      http.MethodGet,
		Path:        "/api/v1/ratings/{imageId}",
		Summary:     "Get rating",
		Description: "Returns the rating for one image",
		Tags:        []string{"Ratings"},
	}, s.handleGetRating)
}

// === DTOs ===

type CreateRatingRequest struct {
	ImageID string `json:"image_id" validate:"required" doc:"Image to rate"`
	Value   int    `json:"value" validate:"gte=1,lte=5" doc:"Rating value 1-5"`
}

type CreateRatingInput struct {
	Body CreateRatingRequest
}

type RatingResponse struct {
	ImageID string `json:"image_id" doc:"Rated image"`
	Value   int    `json:"value" doc:"Rating value"`
}

type RatingOutput struct {
	Body RatingResponse
}

type ListRatingsResponse struct {
	Ratings map[string]int `json:"ratings" doc:"Image ID to rating value"`
	Total   int            `json:"total" doc:"Number of rated images"`
}

type ListRatingsOutput struct {
	Body ListRatingsResponse
}

type RatingChartResponse struct {
	Points []domain.ChartPoint `json:"points" doc:"One point per rating value"`
}

type RatingChartOutput struct {
	Body RatingChartResponse
}

type GetRatingInput struct {
	ImageID string `path:"imageId" doc:"Image ID"`
}

// === Handlers ===

func (s *Server) handleCreateRating(_ context.Context, input *CreateRatingInput) (*RatingOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	if err := s.services.Rating.Rate(input.Body.ImageID, input.Body.Value); err != nil {
		return nil, err
	}
	return &RatingOutput{Body: RatingResponse{
		ImageID: input.Body.ImageID,
		Value:   input.Body.Value,
	}}, nil
}

func (s *Server) handleListRatings(_ context.Context, _ *struct{}) (*ListRatingsOutput, error) {
	ratings := s.services.Rating.All()
	return &ListRatingsOutput{Body: ListRatingsResponse{
		Ratings: ratings,
		Total:   len(ratings),
	}}, nil
}

func (s *Server) handleGetRatingChart(_ context.Context, _ *struct{}) (*RatingChartOutput, error) {
	return &RatingChartOutput{Body: RatingChartResponse{
		Points: s.services.Analytics.ChartData(),
	}}, nil
}

func (s *Server) handleGetRating(_ context.Context, input *GetRatingInput) (*RatingOutput, error) {
	value, err := s.services.Rating.Get(input.ImageID)
	if err != nil {
		return nil, err
	}
	return &RatingOutput{Body: RatingResponse{
		ImageID: input.ImageID,
		Value:   value,
	}}, nil
}
