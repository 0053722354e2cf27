package game

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Record is one must-play catalog entry. Fields are extracted independently
// and degrade to their zero value (or nil) when the source markup is
// missing or malformed. Records are never mutated after extraction.
type Record struct {
	Rank        string     `json:"rank"`
	Title       string     `json:"title"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Metascore   *int       `json:"metascore,omitempty"`
	URL         string     `json:"url,omitempty"`
}

// Year returns the release year, or 0 when the record has no date.
func (r Record) Year() int {
	if r.ReleaseDate == nil {
		return 0
	}
	return r.ReleaseDate.Year()
}

// Score returns the metascore with absent treated as 0.
func (r Record) Score() int {
	if r.Metascore == nil {
		return 0
	}
	return *r.Metascore
}

// RankValue interprets a displayed rank ordinal numerically. Trailing
// punctuation ("1.") is stripped; anything unparsable counts as 0 so that
// malformed ranks sort to the front.
func RankValue(rank string) int {
	trimmed := strings.TrimRight(strings.TrimSpace(rank), ".")
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SortByRank orders records ascending by their numeric rank. The sort is
// stable so records with equal (or unparsable) ranks keep their page order.
func SortByRank(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return RankValue(records[i].Rank) < RankValue(records[j].Rank)
	})
}
