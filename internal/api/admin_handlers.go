package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ratemyshots/ratemyshots-server/internal/gate"
)

func (s *Server) registerAdminRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "recordAdminTap",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/access",
		Summary:     "Record access tap",
		Description: "Registers one tap on the hidden trigger. Three taps within two seconds open the access prompt.",
		Tags:        []string{"Admin"},
	}, s.handleRecordAdminTap)

	huma.Register(s.api, huma.Operation{
		OperationID: "unlockAdmin",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/unlock",
		Summary:     "Unlock admin access",
		Description: "Unlocks the admin dashboard with the shared access code",
		Tags:        []string{"Admin"},
	}, s.handleUnlockAdmin)

	huma.Register(s.api, huma.Operation{
		OperationID: "lockAdmin",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/lock",
		Summary:     "Lock admin access",
		Description: "Returns the gate to the locked state",
		Tags:        []string{"Admin"},
	}, s.handleLockAdmin)

	huma.Register(s.api, huma.Operation{
		OperationID: "dismissAdminPrompt",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/dismiss",
		Summary:     "Dismiss access prompt",
		Description: "Closes the access prompt without unlocking",
		Tags:        []string{"Admin"},
	}, s.handleDismissAdminPrompt)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearAdminError",
		Method:      http.MethodPost,
		Path:        "/api/v1/admin/clear-error",
		Summary:     "Clear unlock error",
		Description: "Clears the wrong-code error flag",
		Tags:        []string{"Admin"},
	}, s.handleClearAdminError)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAdminStatus",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/status",
		Summary:     "Gate status",
		Description: "Returns the current access gate state",
		Tags:        []string{"Admin"},
	}, s.handleGetAdminStatus)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteRating",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/ratings/{imageId}",
		Summary:     "Delete rating",
		Description: "Removes the rating for one image. Requires admin access.",
		Tags:        []string{"Admin"},
	}, s.handleDeleteRating)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteAllRatings",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/ratings",
		Summary:     "Delete all ratings",
		Description: "Wipes the rating store. Requires admin access.",
		Tags:        []string{"Admin"},
	}, s.handleDeleteAllRatings)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteComment",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/comments/{id}",
		Summary:     "Delete comment",
		Description: "Removes one comment. Requires admin access.",
		Tags:        []string{"Admin"},
	}, s.handleDeleteComment)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteAllComments",
		Method:      http.MethodDelete,
		Path:        "/api/v1/admin/comments",
		Summary:     "Delete all comments",
		Description: "Wipes the comment store. Requires admin access.",
		Tags:        []string{"Admin"},
	}, s.handleDeleteAllComments)

	huma.Register(s.api, huma.Operation{
		OperationID: "exportJSON",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/export/json",
		Summary:     "Export full data",
		Description: "Downloads the complete data snapshot as JSON. Requires admin access.",
		Tags:        []string{"Admin"},
	}, s.handleExportJSON)

	huma.Register(s.api, huma.Operation{
		OperationID: "exportCommentsCSV",
		Method:      http.MethodGet,
		Path:        "/api/v1/admin/export/csv",
		Summary:     "Export comments",
		Description: "Downloads all comments as semicolon-delimited CSV. Requires admin access.",
		Tags:        []string{"Admin"},
	}, s.handleExportCommentsCSV)
}

// === DTOs ===

type GateStatusOutput struct {
	Body gate.Status
}

type UnlockAdminRequest struct {
	Code string `json:"code" validate:"required" doc:"Shared access code"`
}

type UnlockAdminInput struct {
	Body UnlockAdminRequest
}

type DeleteRatingInput struct {
	ImageID string `path:"imageId" doc:"Image ID"`
}

type DeleteCommentInput struct {
	ID string `path:"id" doc:"Comment ID"`
}

type WipeResponse struct {
	Removed int `json:"removed" doc:"Number of records removed"`
}

type WipeOutput struct {
	Body WipeResponse
}

// === Handlers ===

func (s *Server) handleRecordAdminTap(_ context.Context, _ *struct{}) (*GateStatusOutput, error) {
	s.services.Admin.Gate().RecordTap()
	return &GateStatusOutput{Body: s.services.Admin.Gate().Status()}, nil
}

func (s *Server) handleUnlockAdmin(_ context.Context, input *UnlockAdminInput) (*GateStatusOutput, error) {
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}
	if err := s.services.Admin.Gate().Unlock(input.Body.Code); err != nil {
		return nil, err
	}
	return &GateStatusOutput{Body: s.services.Admin.Gate().Status()}, nil
}

func (s *Server) handleLockAdmin(_ context.Context, _ *struct{}) (*GateStatusOutput, error) {
	s.services.Admin.Gate().Lock()
	return &GateStatusOutput{Body: s.services.Admin.Gate().Status()}, nil
}

func (s *Server) handleDismissAdminPrompt(_ context.Context, _ *struct{}) (*GateStatusOutput, error) {
	s.services.Admin.Gate().DismissPrompt()
	return &GateStatusOutput{Body: s.services.Admin.Gate().Status()}, nil
}

func (s *Server) handleClearAdminError(_ context.Context, _ *struct{}) (*GateStatusOutput, error) {
	s.services.Admin.Gate().ClearError()
	return &GateStatusOutput{Body: s.services.Admin.Gate().Status()}, nil
}

func (s *Server) handleGetAdminStatus(_ context.Context, _ *struct{}) (*GateStatusOutput, error) {
	return &GateStatusOutput{Body: s.services.Admin.Gate().Status()}, nil
}

func (s *Server) handleDeleteRating(_ context.Context, input *DeleteRatingInput) (*struct{}, error) {
	if err := s.services.Admin.DeleteRating(input.ImageID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleDeleteAllRatings(_ context.Context, _ *struct{}) (*WipeOutput, error) {
	n, err := s.services.Admin.DeleteAllRatings()
	if err != nil {
		return nil, err
	}
	return &WipeOutput{Body: WipeResponse{Removed: n}}, nil
}

func (s *Server) handleDeleteComment(_ context.Context, input *DeleteCommentInput) (*struct{}, error) {
	if err := s.services.Admin.DeleteComment(input.ID); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

func (s *Server) handleDeleteAllComments(_ context.Context, _ *struct{}) (*WipeOutput, error) {
	n, err := s.services.Admin.DeleteAllComments()
	if err != nil {
		return nil, err
	}
	return &WipeOutput{Body: WipeResponse{Removed: n}}, nil
}

func (s *Server) handleExportJSON(_ context.Context, _ *struct{}) (*huma.StreamResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}

	data, filename, err := s.services.Export.JSON()
	if err != nil {
		return nil, err
	}

	return &huma.StreamResponse{
		Body: func(ctx huma.Context) {
			ctx.SetHeader("Content-Type", "application/json")
			ctx.SetHeader("Content-Disposition", "attachment; filename=\""+filename+"\"")
			_, _ = ctx.BodyWriter().Write(data)
		},
	}, nil
}

func (s *Server) handleExportCommentsCSV(_ context.Context, _ *struct{}) (*huma.StreamResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}

	data, filename, err := s.services.Export.CommentsCSV()
	if err != nil {
		return nil, err
	}

	return &huma.StreamResponse{
		Body: func(ctx huma.Context) {
			ctx.SetHeader("Content-Type", "text/csv; charset=utf-8")
			ctx.SetHeader("Content-Disposition", "attachment; filename=\""+filename+"\"")
			_, _ = ctx.BodyWriter().Write(data)
		},
	}, nil
}
