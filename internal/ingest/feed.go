package ingest

import (
	"encoding/xml"
	"fmt"

	"gamerank/backend/internal/config"

	json "github.com/goccy/go-json"
)

// Record is the normalized shape every feed adapter produces. Optional
// fields (developer, publisher, release date) stay empty when the feed
// omits them.
type Record struct {
	SourceID    string
	Title       string
	Thumbnail   string
	Genre       string
	Platform    string
	Developer   string
	Publisher   string
	ReleaseDate string
	Description string
	URL         string
}

// Feed describes one external source: where to fetch it, the prefix to
// stamp onto native IDs, and the adapter that parses its payload.
type Feed struct {
	Name   string
	URL    string
	Prefix string
	Parse  func(data []byte, prefix string) ([]Record, error)
}

// DefaultFeeds returns the configured feeds in their fixed ingestion order.
func DefaultFeeds(cfg *config.Config) []Feed {
	return []Feed{
		{Name: "listado1-xml", URL: cfg.FeedXMLURL, Prefix: "LIS1-", Parse: ParseXMLFeed},
		{Name: "freetogame", URL: cfg.FeedFreeToGameURL, Prefix: "LIS2-", Parse: ParseJSONFeed},
		{Name: "mmobomb", URL: cfg.FeedMMOBombURL, Prefix: "LIS3-", Parse: ParseJSONFeed},
	}
}

type xmlGame struct {
	ID               string `xml:"id"`
	Title            string `xml:"title"`
	ShortDescription string `xml:"short_description"`
	Platform         string `xml:"platform"`
	Genre            string `xml:"genre"`
	Thumbnail        string `xml:"thumbnail"`
	GameURL          string `xml:"game_url"`
	Developer        string `xml:"developer"`
	Publisher        string `xml:"publisher"`
	ReleaseDate      string `xml:"release_date"`
}

type xmlFeed struct {
	XMLName xml.Name  `xml:"games"`
	Games   []xmlGame `xml:"game"`
}

// ParseXMLFeed parses an XML game listing (<games><game>...</game></games>)
// into normalized records.
func ParseXMLFeed(data []byte, prefix string) ([]Record, error) {
	var feed xmlFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parse xml feed: %w", err)
	}

	records := make([]Record, 0, len(feed.Games))
	for _, g := range feed.Games {
		records = append(records, Record{
			SourceID:    prefix + g.ID,
			Title:       g.Title,
			Thumbnail:   g.Thumbnail,
			Genre:       g.Genre,
			Platform:    g.Platform,
			Developer:   g.Developer,
			Publisher:   g.Publisher,
			ReleaseDate: g.ReleaseDate,
			Description: g.ShortDescription,
			URL:         g.GameURL,
		})
	}
	return records, nil
}

type jsonGame struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	Platform         string `json:"platform"`
	Genre            string `json:"genre"`
	Thumbnail        string `json:"thumbnail"`
	GameURL          string `json:"game_url"`
	Developer        string `json:"developer"`
	Publisher        string `json:"publisher"`
	ReleaseDate      string `json:"release_date"`
}

// ParseJSONFeed parses a JSON array of games in the freetogame/mmobomb
// schema into normalized records.
func ParseJSONFeed(data []byte, prefix string) ([]Record, error) {
	var games []jsonGame
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parse json feed: %w", err)
	}

	records := make([]Record, 0, len(games))
	for _, g := range games {
		records = append(records, Record{
			SourceID:    fmt.Sprintf("%s%d", prefix, g.ID),
			Title:       g.Title,
			Thumbnail:   g.Thumbnail,
			Genre:       g.Genre,
			Platform:    g.Platform,
			Developer:   g.Developer,
			Publisher:   g.Publisher,
			ReleaseDate: g.ReleaseDate,
			Description: g.ShortDescription,
			URL:         g.GameURL,
		})
	}
	return records, nil
}
