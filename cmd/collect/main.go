package main

import (
	"context"
	"log"

	"github.com/Donnel-prog/PintigButuan/internal/aggregator"
	"github.com/Donnel-prog/PintigButuan/internal/collector"
	"github.com/Donnel-prog/PintigButuan/internal/config"
	"github.com/Donnel-prog/PintigButuan/internal/storage"
)

// One-shot aggregation run: fetch every configured feed, dedup, refresh the
// cache, and print a short summary. Handy for manual refreshes and cron
// containers.
func main() {
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	feeds, err := collector.LoadFeeds(cfg.FeedsFile)
	if err != nil {
		log.Fatalf("load feeds failed: %v", err)
	}
	fetchers := collector.Build(feeds, cfg.RSS2JSONEndpoint)

	agg := aggregator.New(fetchers, store)
	articles := agg.FetchNews(context.Background())

	log.Printf("collected %d articles", len(articles))
	for i, a := range articles {
		if i >= 10 {
			break
		}
		log.Printf("  %s  %-20s  %s", a.PublishedAt, a.Source, a.Title)
	}
}
