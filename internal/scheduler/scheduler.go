package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/Donnel-prog/PintigButuan/internal/aggregator"
	"github.com/robfig/cron/v3"
)

// Scheduler keeps the news cache warm by running the aggregation pipeline
// on a cron spec.
type Scheduler struct {
	cron *cron.Cron
	agg  *aggregator.Aggregator
}

func New(spec string, agg *aggregator.Aggregator) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, agg: agg}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// Delay the first round so startup traffic is not competing with the
	// first API requests.
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runOnce()
	})
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce exposes a single refresh round for manual triggering.
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	log.Println("start news refresh...")
	articles := s.agg.FetchNews(context.Background())
	log.Printf("news refresh done, %d articles cached", len(articles))
}
