package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"time"

	"github.com/ratemyshots/ratemyshots-server/internal/catalog"
	"github.com/ratemyshots/ratemyshots-server/internal/domain"
	"github.com/ratemyshots/ratemyshots-server/internal/errors"
	"github.com/ratemyshots/ratemyshots-server/internal/stats"
	"github.com/ratemyshots/ratemyshots-server/internal/store"
)

// csvDateFormat renders comment timestamps the way the dashboard shows
// them: day.month.year hours:minutes.
const csvDateFormat = "02.01.2006 15:04"

// ExportService builds downloadable snapshots of the session state.
// Exports read and never mutate: two exports without an intervening
// change differ only in their timestamp.
type ExportService struct {
	store   *store.Store
	catalog *catalog.Provider
	logger  *slog.Logger
	now     func() time.Time
}

// NewExportService creates a new export service.
func NewExportService(store *store.Store, catalog *catalog.Provider, logger *slog.Logger) *ExportService {
	return &ExportService{
		store:   store,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// Snapshot assembles the full export structure from the current state.
func (s *ExportService) Snapshot() domain.FullExport {
	items := s.catalog.Current().Items()
	ratings := s.store.Ratings()
	comments := s.store.Comments()

	images := make([]domain.ItemExport, 0, len(items))
	for _, item := range items {
		entry := domain.ItemExport{
			CatalogItem: item,
			Comments:    s.store.CommentsForImage(item.ID),
		}
		if v, ok := ratings[item.ID]; ok {
			entry.UserRating = &v
		}
		images = append(images, entry)
	}

	return domain.FullExport{
		Comments:      comments,
		ExportedAt:    s.now(),
		TotalComments: len(comments),
		Ratings:       ratings,
		TotalRatings:  len(ratings),
		AverageRating: stats.Average(ratings),
		Images:        images,
	}
}

// JSON renders the full export as JSON and returns the payload with its
// download filename. Map keys are serialized deterministically so repeated
// exports of the same state produce identical payloads.
func (s *ExportService) JSON() ([]byte, string, error) {
	snapshot := s.Snapshot()

	data, err := json.Marshal(snapshot, json.Deterministic(true))
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CodeInternal, "failed to marshal export")
	}

	filename := fmt.Sprintf("ratemyshots-export-%s.json", s.now().Format("2006-01-02"))
	s.logger.Info("full export generated",
		"ratings", snapshot.TotalRatings,
		"comments", snapshot.TotalComments)
	return data, filename, nil
}

// CommentsCSV renders all comments as a semicolon-delimited CSV and
// returns the payload with its download filename.
func (s *ExportService) CommentsCSV() ([]byte, string, error) {
	comments := s.store.Comments()
	cat := s.catalog.Current()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	header := []string{"Image ID", "Image Title", "Author", "Comment", "Outfit Link", "Date"}
	if err := w.Write(header); err != nil {
		return nil, "", errors.Wrap(err, errors.CodeInternal, "failed to write csv header")
	}

	for _, c := range comments {
		title := ""
		if item, ok := cat.Get(c.ImageID); ok {
			title = item.Title
		}
		record := []string{
			c.ImageID,
			title,
			c.Author,
			c.Text,
			c.OutfitLink,
			c.Timestamp.Format(csvDateFormat),
		}
		if err := w.Write(record); err != nil {
			return nil, "", errors.Wrap(err, errors.CodeInternal, "failed to write csv record")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", errors.Wrap(err, errors.CodeInternal, "failed to flush csv")
	}

	filename := fmt.Sprintf("ratemyshots-comments-%s.csv", s.now().Format("2006-01-02"))
	s.logger.Info("comments export generated", "comments", len(comments))
	return buf.Bytes(), filename, nil
}
