package aggregator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Donnel-prog/PintigButuan/internal/collector"
	"github.com/Donnel-prog/PintigButuan/internal/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	name    string
	items   []collector.RawItem
	err     error
	panicky bool
}

func (s *stubFetcher) Name() string { return s.name }

func (s *stubFetcher) Fetch(ctx context.Context) ([]collector.RawItem, error) {
	if s.panicky {
		panic("fetcher exploded")
	}
	return s.items, s.err
}

type memCache struct {
	mu       sync.Mutex
	articles []processor.Article
	saveErr  error
	loadErr  error
	saves    int
}

func (m *memCache) SaveArticles(ctx context.Context, articles []processor.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.articles = articles
	return nil
}

func (m *memCache) LoadArticles(ctx context.Context) ([]processor.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.articles, nil
}

func stamp(hoursAgo int) string {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).
		Add(-time.Duration(hoursAgo) * time.Hour).Format(time.RFC3339)
}

func TestFetchNewsDedupsAcrossSources(t *testing.T) {
	fetchers := []collector.Fetcher{
		&stubFetcher{name: "Bombo Radyo Butuan", items: []collector.RawItem{
			{Title: "Mayor Opens New Bridge", PubDate: stamp(1)},
		}},
		&stubFetcher{name: "MindaNews", items: []collector.RawItem{
			{Title: "MAYOR OPENS NEW BRIDGE", PubDate: stamp(2)},
			{Title: "Council Approves Budget", PubDate: stamp(3)},
		}},
	}
	cache := &memCache{}
	a := New(fetchers, cache)

	out := a.FetchNews(context.Background())
	require.Len(t, out, 2)

	var bridge processor.Article
	for _, art := range out {
		if art.Title == "Mayor Opens New Bridge" {
			bridge = art
		}
	}
	assert.Equal(t, "Bombo Radyo Butuan", bridge.Source,
		"duplicate collapses to the first-seen source in configuration order")
	assert.Equal(t, 1, cache.saves, "successful run writes through the cache")
}

func TestFetchNewsSortsMostRecentFirst(t *testing.T) {
	fetchers := []collector.Fetcher{
		&stubFetcher{name: "MindaNews", items: []collector.RawItem{
			{Title: "oldest story", PubDate: stamp(3)},
			{Title: "newest story", PubDate: stamp(1)},
			{Title: "middle story", PubDate: stamp(2)},
		}},
	}
	a := New(fetchers, &memCache{})

	out := a.FetchNews(context.Background())
	require.Len(t, out, 3)
	assert.Equal(t, "newest story", out[0].Title)
	assert.Equal(t, "middle story", out[1].Title)
	assert.Equal(t, "oldest story", out[2].Title)
}

func TestFetchNewsIsolatesFailingFeeds(t *testing.T) {
	fetchers := []collector.Fetcher{
		&stubFetcher{name: "Bombo Radyo Butuan", items: []collector.RawItem{
			{Title: "Story One", PubDate: stamp(1)},
			{Title: "Story Two", PubDate: stamp(2)},
		}},
		&stubFetcher{name: "Brigada News", err: errors.New("connection refused")},
		&stubFetcher{name: "RMN News", panicky: true},
	}
	a := New(fetchers, &memCache{})

	out := a.FetchNews(context.Background())
	assert.Len(t, out, 2, "healthy feed's yield is unaffected by failing siblings")
}

func TestFetchNewsSentinelNeverAppears(t *testing.T) {
	fetchers := []collector.Fetcher{
		&stubFetcher{name: "Google News", items: []collector.RawItem{
			{Title: "[Removed]", PubDate: stamp(1)},
			{Title: "Kept Story", PubDate: stamp(2)},
		}},
	}
	a := New(fetchers, &memCache{})

	out := a.FetchNews(context.Background())
	require.Len(t, out, 1)
	assert.Equal(t, "Kept Story", out[0].Title)
}

func TestTotalFailureFallsBackToCache(t *testing.T) {
	cached := []processor.Article{
		{ID: "c1", Title: "Cached One", PublishedAt: stamp(1)},
		{ID: "c2", Title: "Cached Two", PublishedAt: stamp(2)},
	}
	cache := &memCache{articles: cached}

	a := New(nil, cache)
	a.fetchAll = func(ctx context.Context) ([]processor.Article, error) {
		return nil, errors.New("fan-out mechanism faulted")
	}

	out := a.FetchNews(context.Background())
	assert.Equal(t, cached, out, "total failure with a non-empty cache returns exactly the cached list")
}

func TestTotalFailureWithEmptyCacheReturnsMockSet(t *testing.T) {
	cache := &memCache{}
	a := New(nil, cache)
	a.fetchAll = func(ctx context.Context) ([]processor.Article, error) {
		return nil, errors.New("fan-out mechanism faulted")
	}

	out := a.FetchNews(context.Background())
	require.Len(t, out, 6)
	assert.Equal(t, "mock-1", out[0].ID)
	assert.Equal(t, 1, cache.saves, "mock fallback writes through the cache")
}

func TestTotalFailureWithCacheReadErrorReturnsMockSet(t *testing.T) {
	cache := &memCache{loadErr: errors.New("store unavailable")}
	a := New(nil, cache)
	a.fetchAll = func(ctx context.Context) ([]processor.Article, error) {
		return nil, errors.New("fan-out mechanism faulted")
	}

	out := a.FetchNews(context.Background())
	assert.Len(t, out, 6, "unreadable cache is treated as empty")
}

func TestCacheWriteFailureDoesNotAffectResult(t *testing.T) {
	fetchers := []collector.Fetcher{
		&stubFetcher{name: "MindaNews", items: []collector.RawItem{
			{Title: "Survives Write Failure", PubDate: stamp(1)},
		}},
	}
	a := New(fetchers, &memCache{saveErr: errors.New("disk full")})

	out := a.FetchNews(context.Background())
	require.Len(t, out, 1)
	assert.Equal(t, "Survives Write Failure", out[0].Title)
}

func TestFetchNewsIdempotentForUnchangedFeeds(t *testing.T) {
	fetchers := []collector.Fetcher{
		&stubFetcher{name: "MindaNews", items: []collector.RawItem{
			{Title: "Stable Story A", PubDate: stamp(1)},
			{Title: "Stable Story B", PubDate: stamp(2)},
		}},
	}
	a := New(fetchers, &memCache{})

	first := a.FetchNews(context.Background())
	second := a.FetchNews(context.Background())

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Title, second[i].Title)
	}
}

func TestFetchMockNewsWritesThrough(t *testing.T) {
	cache := &memCache{}
	a := New(nil, cache)

	out := a.FetchMockNews(context.Background())
	require.Len(t, out, 6)
	assert.Equal(t, 1, cache.saves)
	assert.Len(t, cache.articles, 6)
}
