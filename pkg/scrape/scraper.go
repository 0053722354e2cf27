package scrape

import (
	"context"
	"fmt"

	"mustplay-go/pkg/extract"
	"mustplay-go/pkg/fetch"
	"mustplay-go/pkg/game"
	"mustplay-go/pkg/worker"
)

// Fetcher retrieves one catalog page. *fetch.Client is the production
// implementation; tests inject fakes.
type Fetcher interface {
	FetchPage(ctx context.Context, page int) (*fetch.Result, error)
}

// Config holds one scrape run's parameters.
type Config struct {
	StartPage    int
	EndPage      int
	DelaySeconds float64
	Concurrency  int
}

// Scraper runs the fetch-and-extract pipeline: pages are fetched by a
// bounded worker pool, then extracted sequentially in page order, then
// collated by rank.
type Scraper struct {
	fetcher   Fetcher
	extractor *extract.Extractor
	events    Events
	pace      func(delaySeconds float64)
}

// New creates a scraper. A nil events sink is replaced with NopEvents.
func New(fetcher Fetcher, events Events) *Scraper {
	if events == nil {
		events = NopEvents{}
	}
	return &Scraper{
		fetcher:   fetcher,
		extractor: extract.NewExtractor(fetch.CatalogOrigin),
		events:    events,
		pace:      fetch.Pace,
	}
}

// SetPace overrides the post-fetch pacing function. Tests use this to run
// without real sleeps.
func (s *Scraper) SetPace(pace func(delaySeconds float64)) {
	s.pace = pace
}

// Run fetches every page in [StartPage, EndPage] and returns the collated
// must-play records sorted ascending by numeric rank. A failed page is
// skipped, never fatal; the configured range is always attempted in full.
func (s *Scraper) Run(ctx context.Context, cfg Config) ([]game.Record, error) {
	if cfg.StartPage > cfg.EndPage {
		return nil, fmt.Errorf("invalid page range %d-%d", cfg.StartPage, cfg.EndPage)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	count := cfg.EndPage - cfg.StartPage + 1
	s.events.Started(cfg.StartPage, cfg.EndPage, cfg.Concurrency, cfg.DelaySeconds)

	// Each task writes only its own slot, so no lock is needed on the
	// accumulation slice.
	bodies := make([]string, count)
	fetched := make([]bool, count)

	pool := worker.NewPool(cfg.Concurrency, count)
	if err := pool.Start(); err != nil {
		return nil, err
	}

	for page := cfg.StartPage; page <= cfg.EndPage; page++ {
		page := page
		slot := page - cfg.StartPage
		task := worker.Task{
			ID: fmt.Sprintf("page-%d", page),
			Fn: func(taskCtx context.Context) error {
				res, err := s.fetcher.FetchPage(taskCtx, page)
				if err != nil {
					s.events.PageFailed(page, fetch.PageURL(page), err)
					return err
				}
				bodies[slot] = res.Body
				fetched[slot] = true
				s.events.PageFetched(page, res.Bytes, res.Elapsed)
				s.pace(cfg.DelaySeconds)
				return nil
			},
		}
		if err := pool.Submit(task); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to schedule page %d: %w", page, err)
		}
	}

	pool.Close()

	var records []game.Record
	for slot := 0; slot < count; slot++ {
		if !fetched[slot] {
			continue
		}
		page := cfg.StartPage + slot
		result, err := s.extractor.ExtractPage(page, bodies[slot])
		if err != nil {
			s.events.PageFailed(page, fetch.PageURL(page), err)
			continue
		}
		if len(result.Records) == 0 {
			s.events.PageEmpty(page)
			continue
		}
		s.events.PageParsed(page, result.Cards, len(result.Records))
		records = append(records, result.Records...)
	}

	game.SortByRank(records)
	s.events.Finished(len(records))
	return records, nil
}
