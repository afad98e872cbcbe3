package main

import (
	"log"

	"github.com/Donnel-prog/PintigButuan/internal/aggregator"
	"github.com/Donnel-prog/PintigButuan/internal/api"
	"github.com/Donnel-prog/PintigButuan/internal/collector"
	"github.com/Donnel-prog/PintigButuan/internal/config"
	"github.com/Donnel-prog/PintigButuan/internal/scheduler"
	"github.com/Donnel-prog/PintigButuan/internal/storage"
	"github.com/gin-gonic/gin"
)

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
	log.Printf("configured %d news sources", len(fetchers))

	agg := aggregator.New(fetchers, store)

	sched, err := scheduler.New(cfg.CronSpec, agg)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	sched.Start()

	r := gin.Default()

	var archive api.Archive
	if cfg.PostgresDSN != "" {
		archive = store
	}
	apiServer := api.NewServer(agg, store, archive)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
