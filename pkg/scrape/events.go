package scrape

import (
	"time"

	"mustplay-go/pkg/logger"
)

// Events is the observability side-channel for the scrape pipeline. The
// pipeline itself never logs; it reports progress through this interface so
// the core stays independently testable.
type Events interface {
	Started(startPage, endPage, concurrency int, delaySeconds float64)
	PageFetched(page, bytes int, elapsed time.Duration)
	PageFailed(page int, url string, err error)
	PageParsed(page, cards, kept int)
	PageEmpty(page int)
	Finished(total int)
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) Started(int, int, int, float64)       {}
func (NopEvents) PageFetched(int, int, time.Duration)  {}
func (NopEvents) PageFailed(int, string, error)        {}
func (NopEvents) PageParsed(int, int, int)             {}
func (NopEvents) PageEmpty(int)                        {}
func (NopEvents) Finished(int)                         {}

// LogEvents narrates pipeline events to the structured logger.
type LogEvents struct {
	log *logger.Logger
}

// NewLogEvents creates an Events sink backed by the global logger.
func NewLogEvents() *LogEvents {
	return &LogEvents{log: logger.GetLogger().WithField("component", "scraper")}
}

func (e *LogEvents) Started(startPage, endPage, concurrency int, delaySeconds float64) {
	e.log.WithFields(map[string]interface{}{
		"start_page":  startPage,
		"end_page":    endPage,
		"concurrency": concurrency,
		"delay_s":     delaySeconds,
	}).Info("Scrape started")
}

func (e *LogEvents) PageFetched(page, bytes int, elapsed time.Duration) {
	e.log.WithFields(map[string]interface{}{
		"page":    page,
		"kb":      float64(bytes) / 1024,
		"elapsed": elapsed.Round(time.Millisecond).String(),
	}).Info("Page fetched")
}

func (e *LogEvents) PageFailed(page int, url string, err error) {
	e.log.WithFields(map[string]interface{}{
		"page": page,
		"url":  url,
	}).WithError(err).Warn("Page skipped")
}

func (e *LogEvents) PageParsed(page, cards, kept int) {
	e.log.WithFields(map[string]interface{}{
		"page":  page,
		"cards": cards,
		"kept":  kept,
	}).Info("Page parsed")
}

func (e *LogEvents) PageEmpty(page int) {
	e.log.WithField("page", page).Info("No must-play entries on page, catalog likely exhausted")
}

func (e *LogEvents) Finished(total int) {
	e.log.WithField("total", total).Info("Scrape finished")
}
