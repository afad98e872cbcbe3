package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultEndpoint is the public RSS-to-JSON conversion service.
	DefaultEndpoint = "https://api.rss2json.com/v1/api.json"

	// FeedTimeout bounds a single feed fetch. Enforced per feed, so the
	// slowest source caps total wall-clock time for a whole round.
	FeedTimeout = 12 * time.Second

	maxResponseBytes = 2 << 20 // 2MB
)

// RSSFetcher retrieves one feed through the conversion service. A non-"ok"
// converter status is a recoverable condition and yields an empty result,
// not an error; transport and parse failures surface as errors for the
// caller to isolate.
type RSSFetcher struct {
	SourceName string
	FeedURL    string
	Endpoint   string       // defaults to DefaultEndpoint
	Client     *http.Client // defaults to a FeedTimeout-bounded client
}

type convertedFeed struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Items   []convertedItem `json:"items"`
}

type convertedItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail"`
	Enclosure   struct {
		Link string `json:"link"`
	} `json:"enclosure"`
	PubDate string `json:"pubDate"`
	Author  string `json:"author"`
	Link    string `json:"link"`
}

func (f *RSSFetcher) Name() string {
	return f.SourceName
}

func (f *RSSFetcher) Fetch(ctx context.Context) ([]RawItem, error) {
	endpoint := f.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: FeedTimeout}
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s: parse endpoint: %w", f.SourceName, err)
	}
	q := u.Query()
	q.Set("rss_url", f.FeedURL)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", f.SourceName, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch feed: %w", f.SourceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", f.SourceName, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", f.SourceName, err)
	}

	var feed convertedFeed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("%s: unmarshal response: %w", f.SourceName, err)
	}

	if feed.Status != "ok" {
		log.Printf("[%s] converter status %q: %s", f.SourceName, feed.Status, feed.Message)
		return nil, nil
	}

	items := make([]RawItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		items = append(items, RawItem{
			Title:       it.Title,
			Description: it.Description,
			Content:     it.Content,
			Thumbnail:   it.Thumbnail,
			Enclosure:   it.Enclosure.Link,
			PubDate:     it.PubDate,
			Author:      it.Author,
			Link:        it.Link,
		})
	}
	return items, nil
}
