package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ratemyshots/ratemyshots-server/internal/color"
	"github.com/ratemyshots/ratemyshots-server/internal/domain"
	"github.com/ratemyshots/ratemyshots-server/internal/service"
)

func (s *Server) registerCommentRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createComment",
		Method:      http.MethodPost,
		Path:        "/api/v1/comments",
		Summary:     "Add comment",
		Description: "Adds a comment to an image, optionally with an outfit link",
		Tags:        []string{"Comments"},
	}, s.handleCreateComment)

	huma.Register(s.api, huma.Operation{
		OperationID: "listComments",
		Method:      http.MethodGet,
		Path:        "/api/v1/comments",
		Summary:     "List comments",
		Description: "Returns comments newest first, optionally filtered by image",
		Tags:        []string{"Comments"},
	}, s.handleListComments)
}

// === DTOs ===

type CreateCommentRequest struct {
	ImageID    string `json:"image_id" validate:"required" doc:"Image to comment on"`
	Text       string `json:"text" validate:"required,max=2000" doc:"Comment text"`
	Author     string `json:"author,omitempty" validate:"max=100" doc:"Author name, Anonymous when empty"`
	OutfitLink string `json:"outfit_link,omitempty" doc:"Optional link to the outfit, dropped when malformed"`
}

type CreateCommentInput struct {
	Body CreateCommentRequest
}

// CommentResponse is a comment plus the avatar color derived from the
// author name, so clients render the same color for a returning author.
type CommentResponse struct {
	domain.Comment
	AuthorColor string `json:"author_color" doc:"Hex avatar color derived from the author name"`
}

type CommentOutput struct {
	Body CommentResponse
}

type ListCommentsInput struct {
	ImageID string `query:"image_id" doc:"Filter by image ID"`
}

type ListCommentsResponse struct {
	Comments []CommentResponse `json:"comments" doc:"Comments newest first"`
	Total    int               `json:"total" doc:"Number of comments returned"`
}

type ListCommentsOutput struct {
	Body ListCommentsResponse
}

// === Handlers ===

func (s *Server) handleCreateComment(_ context.Context, input *CreateCommentInput) (*CommentOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	comment, err := s.services.Comment.Add(service.AddCommentInput{
		ImageID:    input.Body.ImageID,
		Text:       input.Body.Text,
		Author:     input.Body.Author,
		OutfitLink: input.Body.OutfitLink,
	})
	if err != nil {
		return nil, err
	}
	return &CommentOutput{Body: toCommentResponse(comment)}, nil
}

func (s *Server) handleListComments(_ context.Context, input *ListCommentsInput) (*ListCommentsOutput, error) {
	comments, err := s.services.Comment.List(input.ImageID)
	if err != nil {
		return nil, err
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, toCommentResponse(c))
	}
	return &ListCommentsOutput{Body: ListCommentsResponse{
		Comments: responses,
		Total:    len(responses),
	}}, nil
}

func toCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		Comment:     c,
		AuthorColor: color.ForAuthor(c.Author),
	}
}
