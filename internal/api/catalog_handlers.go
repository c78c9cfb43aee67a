package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ratemyshots/ratemyshots-server/internal/catalog"
	"github.com/ratemyshots/ratemyshots-server/internal/domain"
	"github.com/ratemyshots/ratemyshots-server/internal/errors"
)

func (s *Server) registerCatalogRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCatalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog",
		Summary:     "List catalog",
		Description: "Returns all gallery images",
		Tags:        []string{"Catalog"},
	}, s.handleListCatalog)

	huma.Register(s.api, huma.Operation{
		OperationID: "listStyles",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/styles",
		Summary:     "List styles",
		Description: "Returns all style categories in hotness order",
		Tags:        []string{"Catalog"},
	}, s.handleListStyles)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCatalogItem",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/{id}",
		Summary:     "Get catalog item",
		Description: "Returns a single gallery image by ID",
		Tags:        []string{"Catalog"},
	}, s.handleGetCatalogItem)
}

// === DTOs ===

// CatalogItemResponse is a catalog item merged with its stored rating,
// so the gallery renders rated images without a second request.
type CatalogItemResponse struct {
	domain.CatalogItem
	Rating *int `json:"rating,omitempty" doc:"Stored rating, absent when unrated"`
}

type ListCatalogResponse struct {
	Items []CatalogItemResponse `json:"items" doc:"Gallery images in catalog order"`
	Total int                   `json:"total" doc:"Number of images"`
}

type ListCatalogOutput struct {
	Body ListCatalogResponse
}

type ListStylesResponse struct {
	Styles []catalog.StyleInfo `json:"styles" doc:"Style categories in hotness order"`
}

type ListStylesOutput struct {
	Body ListStylesResponse
}

type GetCatalogItemInput struct {
	ID string `path:"id" doc:"Image ID"`
}

type CatalogItemOutput struct {
	Body CatalogItemResponse
}

// === Handlers ===

func (s *Server) handleListCatalog(_ context.Context, _ *struct{}) (*ListCatalogOutput, error) {
	items := s.catalog.Current().Items()
	ratings := s.services.Rating.All()

	responses := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, mergeRating(item, ratings))
	}
	return &ListCatalogOutput{Body: ListCatalogResponse{
		Items: responses,
		Total: len(responses),
	}}, nil
}

func (s *Server) handleListStyles(_ context.Context, _ *struct{}) (*ListStylesOutput, error) {
	return &ListStylesOutput{Body: ListStylesResponse{Styles: catalog.Styles()}}, nil
}

func (s *Server) handleGetCatalogItem(_ context.Context, input *GetCatalogItemInput) (*CatalogItemOutput, error) {
	item, ok := s.catalog.Current().Get(input.ID)
	if !ok {
		return nil, errors.NotFoundf("unknown image: %s", input.ID)
	}
	return &CatalogItemOutput{Body: mergeRating(item, s.services.Rating.All())}, nil
}

func mergeRating(item domain.CatalogItem, ratings map[string]int) CatalogItemResponse {
	resp := CatalogItemResponse{CatalogItem: item}
	if v, ok := ratings[item.ID]; ok {
		resp.Rating = &v
	}
	return resp
}
