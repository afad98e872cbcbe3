package aggregator

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Donnel-prog/PintigButuan/internal/collector"
	"github.com/Donnel-prog/PintigButuan/internal/processor"
)

// CacheGateway persists the last-known-good collection wholesale. Absence
// of cached data is not an error: Load returns an empty slice on first run.
type CacheGateway interface {
	SaveArticles(ctx context.Context, articles []processor.Article) error
	LoadArticles(ctx context.Context) ([]processor.Article, error)
}

// Aggregator fans out across every configured feed and always hands back a
// displayable collection: fresh results, the cached collection, or the
// bundled mock set, in that order.
type Aggregator struct {
	fetchers []collector.Fetcher
	cache    CacheGateway

	// mu serializes overlapping runs so cache writes never interleave.
	mu sync.Mutex

	// fetchAll is replaced in tests to fault the fan-out itself.
	fetchAll func(ctx context.Context) ([]processor.Article, error)
	now      func() time.Time
}

func New(fetchers []collector.Fetcher, cache CacheGateway) *Aggregator {
	a := &Aggregator{
		fetchers: fetchers,
		cache:    cache,
		now:      time.Now,
	}
	a.fetchAll = a.collectAll
	return a
}

// FetchNews runs the full pipeline: concurrent fetch, merge, dedup, sort,
// cache write-through. It never returns an error; per-feed failures
// contribute empty results, and a fault in the fan-out mechanism degrades
// to the cached collection, then to the mock set.
func (a *Aggregator) FetchNews(ctx context.Context) []processor.Article {
	a.mu.Lock()
	defer a.mu.Unlock()

	merged, err := a.fetchAll(ctx)
	if err != nil {
		log.Printf("news fetch failed: %v", err)
		if a.cache != nil {
			cached, cerr := a.cache.LoadArticles(ctx)
			if cerr != nil {
				log.Printf("cache read failed: %v", cerr)
			} else if len(cached) > 0 {
				return cached
			}
		}
		return a.mockNews(ctx)
	}

	unique := processor.Deduplicate(merged)
	processor.SortByRecency(unique)

	log.Printf("news: %d raw, %d unique articles", len(merged), len(unique))
	logSourceBreakdown(unique)

	if a.cache != nil {
		if err := a.cache.SaveArticles(ctx, unique); err != nil {
			log.Printf("cache write failed: %v", err)
		}
	}
	return unique
}

// FetchMockNews returns the bundled offline set and writes it through the
// cache so later fallbacks observe it.
func (a *Aggregator) FetchMockNews(ctx context.Context) []processor.Article {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mockNews(ctx)
}

func (a *Aggregator) mockNews(ctx context.Context) []processor.Article {
	articles := MockArticles(a.now())
	if a.cache != nil {
		if err := a.cache.SaveArticles(ctx, articles); err != nil {
			log.Printf("cache write failed: %v", err)
		}
	}
	return articles
}

// collectAll launches every fetcher concurrently and joins all outcomes.
// One feed's error or panic never cancels its siblings; its contribution is
// simply empty. The merged slice keeps configuration order across feeds and
// upstream order within each feed, which is what makes first-seen dedup
// deterministic.
func (a *Aggregator) collectAll(ctx context.Context) ([]processor.Article, error) {
	perFeed := make([][]processor.Article, len(a.fetchers))

	var wg sync.WaitGroup
	for i, f := range a.fetchers {
		wg.Add(1)
		go func(i int, f collector.Fetcher) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[%s] fetch panic: %v", f.Name(), r)
				}
			}()

			items, err := f.Fetch(ctx)
			if err != nil {
				log.Printf("[%s] fetch failed: %v", f.Name(), err)
				return
			}
			perFeed[i] = processor.Process(f.Name(), items, a.now())
		}(i, f)
	}
	wg.Wait()

	var merged []processor.Article
	for _, batch := range perFeed {
		merged = append(merged, batch...)
	}
	return merged, nil
}

func logSourceBreakdown(articles []processor.Article) {
	counts := make(map[string]int)
	for _, a := range articles {
		counts[a.Source]++
	}
	parts := make([]string, 0, len(counts))
	for source, n := range counts {
		parts = append(parts, fmt.Sprintf("%s=%d", source, n))
	}
	sort.Strings(parts)
	log.Printf("news sources: %s", strings.Join(parts, " "))
}
