package collector

import "context"

// RawItem is one feed entry before normalization. Fields mirror the item
// shape returned by the RSS-to-JSON conversion service; the site scraper
// assembles the same form so everything downstream sees a single shape.
type RawItem struct {
	Title       string
	Description string
	Content     string
	Thumbnail   string
	Enclosure   string
	PubDate     string
	Author      string
	Link        string
}

// Fetcher abstracts one configured news source.
type Fetcher interface {
	// Name is the human-readable publisher name attached to every article
	// produced from this source.
	Name() string
	Fetch(ctx context.Context) ([]RawItem, error)
}
