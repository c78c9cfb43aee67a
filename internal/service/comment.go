package service

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/ratemyshots/ratemyshots-server/internal/catalog"
	"github.com/ratemyshots/ratemyshots-server/internal/domain"
	"github.com/ratemyshots/ratemyshots-server/internal/errors"
	"github.com/ratemyshots/ratemyshots-server/internal/id"
	"github.com/ratemyshots/ratemyshots-server/internal/store"
)

// CommentService handles comment creation and retrieval.
type CommentService struct {
	store   *store.Store
	catalog *catalog.Provider
	logger  *slog.Logger
	now     func() time.Time
}

// NewCommentService creates a new comment service.
func NewCommentService(store *store.Store, catalog *catalog.Provider, logger *slog.Logger) *CommentService {
	return &CommentService{
		store:   store,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// AddCommentInput is the raw input for creating a comment.
type AddCommentInput struct {
	ImageID    string
	Text       string
	Author     string
	OutfitLink string
}

// Add creates a comment on an image. Text is required; a blank author
// becomes Anonymous; the outfit link is trimmed and kept only when it
// parses as an absolute URL. A malformed link is dropped, not rejected.
func (s *CommentService) Add(input AddCommentInput) (domain.Comment, error) {
	if !s.catalog.Current().Has(input.ImageID) {
		return domain.Comment{}, errors.NotFoundf("unknown image: %s", input.ImageID)
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return domain.Comment{}, errors.Validation("comment text is required")
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = domain.AnonymousAuthor
	}

	commentID, err := id.Generate(id.PrefixComment)
	if err != nil {
		return domain.Comment{}, errors.Wrap(err, errors.CodeInternal, "failed to generate comment id")
	}

	comment := domain.Comment{
		ID:         commentID,
		ImageID:    input.ImageID,
		Text:       text,
		Author:     author,
		Timestamp:  s.now(),
		OutfitLink: normalizeLink(input.OutfitLink),
	}

	s.store.AddComment(comment)
	s.logger.Info("comment added",
		"comment_id", comment.ID,
		"image_id", comment.ImageID,
		"has_outfit_link", comment.OutfitLink != "")
	return comment, nil
}

// List returns comments newest first. With an imageID it returns only that
// image's comments; the image must exist.
func (s *CommentService) List(imageID string) ([]domain.Comment, error) {
	if imageID == "" {
		return s.store.Comments(), nil
	}
	if !s.catalog.Current().Has(imageID) {
		return nil, errors.NotFoundf("unknown image: %s", imageID)
	}
	return s.store.CommentsForImage(imageID), nil
}

// normalizeLink trims the link and drops anything that does not parse as
// an absolute URL. Malformed links become absent, never an error.
func normalizeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return link
}
