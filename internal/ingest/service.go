package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"gamerank/backend/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Report summarizes the outcome of one feed during an ingestion run.
type Report struct {
	Feed     string `json:"feed"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Error    string `json:"error,omitempty"`
}

// Service fetches the configured feeds and inserts new games into the
// catalog. Feeds run in a fixed order; a failing feed is reported and
// logged but never stops the feeds after it.
type Service struct {
	db      *gorm.DB
	client  *http.Client
	feeds   []Feed
	timeout time.Duration

	mu           sync.Mutex
	lastRun      time.Time
	refreshEvery time.Duration
}

// NewService creates an ingestion service writing through the given
// database handle.
func NewService(db *gorm.DB, feeds []Feed, timeout, refreshEvery time.Duration) *Service {
	return &Service{
		db:           db,
		client:       &http.Client{},
		feeds:        feeds,
		timeout:      timeout,
		refreshEvery: refreshEvery,
	}
}

// Run ingests every feed once and returns a per-feed report. Rerunning
// with unchanged feeds is a no-op because already-present titles are
// skipped.
func (s *Service) Run(ctx context.Context) []Report {
	reports := make([]Report, 0, len(s.feeds))
	for _, feed := range s.feeds {
		report := s.runFeed(ctx, feed)
		if report.Error != "" {
			log.WithField("feed", feed.Name).Warnf("feed ingestion failed: %s", report.Error)
		} else {
			log.WithFields(log.Fields{
				"feed":     feed.Name,
				"imported": report.Imported,
				"skipped":  report.Skipped,
			}).Info("feed ingested")
		}
		reports = append(reports, report)
	}
	return reports
}

// RefreshIfStale runs ingestion unless a run happened within the refresh
// interval. Catalog listings call this so the first request after startup
// (or after the interval) repopulates the catalog.
func (s *Service) RefreshIfStale(ctx context.Context) {
	s.mu.Lock()
	if time.Since(s.lastRun) < s.refreshEvery {
		s.mu.Unlock()
		return
	}
	s.lastRun = time.Now()
	s.mu.Unlock()

	s.Run(ctx)
}

func (s *Service) runFeed(ctx context.Context, feed Feed) Report {
	report := Report{Feed: feed.Name}

	records, err := s.fetch(ctx, feed)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	for _, rec := range records {
		exists, err := titleExists(s.db, rec.Title)
		if err != nil {
			report.Error = err.Error()
			return report
		}
		if exists {
			report.Skipped++
			continue
		}

		game := models.Game{
			SourceID:    rec.SourceID,
			Title:       rec.Title,
			Thumbnail:   rec.Thumbnail,
			Genre:       rec.Genre,
			Platform:    rec.Platform,
			Developer:   rec.Developer,
			Publisher:   rec.Publisher,
			ReleaseDate: rec.ReleaseDate,
			Description: rec.Description,
			URL:         rec.URL,
		}
		if err := s.db.Create(&game).Error; err != nil {
			report.Error = err.Error()
			return report
		}
		report.Imported++
	}
	return report
}

func (s *Service) fetch(ctx context.Context, feed Feed) ([]Record, error) {
	fctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}

	return feed.Parse(body, feed.Prefix)
}

// titleExists reports whether the catalog already holds a game with the
// same title under case-insensitive comparison. This is the dedup gate:
// feeds are not guaranteed disjoint, and first seen wins.
func titleExists(db *gorm.DB, title string) (bool, error) {
	var count int64
	err := db.Model(&models.Game{}).
		Where("LOWER(title) = LOWER(?)", title).
		Count(&count).Error
	return count > 0, err
}
