package collector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FeedConfig describes one configured source. Adding or removing entries
// changes the aggregation's source set without touching pipeline code.
type FeedConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// Kind selects the fetcher: "rss" (default) goes through the
	// conversion service, "site" scrapes a headline list page.
	Kind      string        `yaml:"kind"`
	Selectors SiteSelectors `yaml:"selectors"`
}

// DefaultFeeds is the built-in Butuan City source table.
func DefaultFeeds() []FeedConfig {
	return []FeedConfig{
		{Name: "Bombo Radyo Butuan", URL: "https://butuan.bomboradyo.com/feed/"},
		{Name: "MindaNews", URL: "https://mindanews.com/tag/butuan-city-news/feed/"},
		{Name: "Gold Star Daily", URL: "https://mindanaogoldstardaily.com/archives/category/butuan/feed/"},
		{Name: "Brigada News", URL: "https://www.brigadanews.ph/bnfm-butuan/feed/"},
		{Name: "Google News", URL: "https://news.google.com/rss/search?q=Butuan+City+Philippines&hl=en-PH&gl=PH&ceid=PH:en"},
		{Name: "Google News", URL: `https://news.google.com/rss/search?q="Butuan+City"&hl=en-PH&gl=PH&ceid=PH:en`},
		{Name: "RMN News", URL: "https://rmn.ph/rmn-news-nationwide/feed/"},
	}
}

// LoadFeeds reads a YAML feed table. An empty path yields the built-in
// defaults.
func LoadFeeds(path string) ([]FeedConfig, error) {
	if path == "" {
		return DefaultFeeds(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}
	var feeds []FeedConfig
	if err := yaml.Unmarshal(data, &feeds); err != nil {
		return nil, fmt.Errorf("parse feeds file: %w", err)
	}
	if len(feeds) == 0 {
		return nil, fmt.Errorf("feeds file %s lists no sources", path)
	}
	return feeds, nil
}

// Build turns feed configs into fetchers. The endpoint overrides the
// conversion service URL when non-empty.
func Build(feeds []FeedConfig, endpoint string) []Fetcher {
	fetchers := make([]Fetcher, 0, len(feeds))
	for _, f := range feeds {
		if f.Kind == "site" {
			fetchers = append(fetchers, &SiteFetcher{
				SourceName: f.Name,
				PageURL:    f.URL,
				Selectors:  f.Selectors,
			})
			continue
		}
		fetchers = append(fetchers, &RSSFetcher{
			SourceName: f.Name,
			FeedURL:    f.URL,
			Endpoint:   endpoint,
		})
	}
	return fetchers
}
