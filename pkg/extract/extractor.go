package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"mustplay-go/pkg/game"
)

// Catalog markup selectors. One anchor element per game card; only cards
// carrying the must-play badge image produce records.
const (
	cardSelector     = "a.c-finderProductCard_container"
	mustPlaySelector = `img[alt="must-play"]`
	headingSelector  = ".c-finderProductCard_titleHeading span"
	metaSelector     = ".c-finderProductCard_meta span"
	scoreSelector    = ".c-siteReviewScore span"
)

// PageResult holds the extraction outcome for one catalog page.
type PageResult struct {
	Page    int
	Cards   int
	Records []game.Record
}

// Extractor pulls must-play records out of catalog page markup.
type Extractor struct {
	origin string
}

// NewExtractor creates an extractor resolving relative links against origin.
func NewExtractor(origin string) *Extractor {
	return &Extractor{origin: origin}
}

// ExtractPage parses one page body and returns every must-play record on
// it. Cards without the must-play badge are dropped silently. Each field is
// optional: a missing sub-field degrades that field to absent, it never
// discards the whole record.
func (e *Extractor) ExtractPage(page int, body string) (*PageResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %d markup: %w", page, err)
	}

	result := &PageResult{Page: page}
	doc.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
		result.Cards++
		if card.Find(mustPlaySelector).Length() == 0 {
			return
		}
		result.Records = append(result.Records, e.extractCard(card))
	})

	return result, nil
}

func (e *Extractor) extractCard(card *goquery.Selection) game.Record {
	record := game.Record{}

	heading := card.Find(headingSelector)
	record.Rank = strings.TrimSpace(heading.Eq(0).Text())
	record.Title = strings.TrimSpace(heading.Eq(1).Text())

	if dateText := card.Find(metaSelector).Eq(0).Text(); dateText != "" {
		record.ReleaseDate = ParseReleaseDate(dateText)
	}

	if scoreText := card.Find(scoreSelector).Eq(0).Text(); scoreText != "" {
		record.Metascore = ParseMetascore(scoreText)
	}

	if href, ok := card.Attr("href"); ok {
		record.URL = AbsoluteURL(e.origin, href)
	}

	return record
}
