package stats

import (
	"sort"

	"mustplay-go/pkg/game"
)

// recentCutoff is the first year included in the recent-releases section.
const recentCutoff = 2020

// topYearLimit caps the busiest-years listing.
const topYearLimit = 5

type DecadeCount struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type ScoreCount struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// YearGroup holds one recent year's records ordered descending by
// metascore; the first entry is the year's possible game of the year.
type YearGroup struct {
	Year  int           `json:"year"`
	Games []game.Record `json:"games"`
}

// Report is an immutable statistics snapshot over a record collection.
// Records without a release date count toward Total and ScoreDistribution
// but never toward the date-derived sections.
type Report struct {
	Total             int           `json:"total"`
	ByDecade          []DecadeCount `json:"by_decade"`
	TopYears          []YearCount   `json:"top_years"`
	ScoreDistribution []ScoreCount  `json:"score_distribution"`
	Oldest            *game.Record  `json:"oldest,omitempty"`
	Newest            *game.Record  `json:"newest,omitempty"`
	Recent            []YearGroup   `json:"recent"`
}

// Compute derives a Report from records. It is a pure function: the input
// is never mutated and the result is fully recomputed on every call.
func Compute(records []game.Record) Report {
	report := Report{Total: len(records)}

	decades := make(map[int]int)
	scores := make(map[int]int)
	recent := make(map[int][]game.Record)

	// Per-year counts keep first-seen order; the top-years tie-break
	// depends on it.
	yearOrder := make([]int, 0)
	yearCounts := make(map[int]int)

	for _, r := range records {
		if r.Metascore != nil {
			scores[*r.Metascore]++
		}
		if r.ReleaseDate == nil {
			continue
		}
		year := r.ReleaseDate.Year()
		if _, seen := yearCounts[year]; !seen {
			yearOrder = append(yearOrder, year)
		}
		yearCounts[year]++
		decades[(year/10)*10]++
		if year >= recentCutoff {
			recent[year] = append(recent[year], r)
		}
	}

	for i := range records {
		r := &records[i]
		if r.ReleaseDate == nil {
			continue
		}
		if report.Oldest == nil || r.ReleaseDate.Before(*report.Oldest.ReleaseDate) {
			report.Oldest = r
		}
		if report.Newest == nil || r.ReleaseDate.After(*report.Newest.ReleaseDate) {
			report.Newest = r
		}
	}

	report.ByDecade = sortedDecades(decades)
	report.TopYears = topYears(yearOrder, yearCounts)
	report.ScoreDistribution = sortedScores(scores)
	report.Recent = recentGroups(recent)
	return report
}

func sortedDecades(decades map[int]int) []DecadeCount {
	out := make([]DecadeCount, 0, len(decades))
	for decade, count := range decades {
		out = append(out, DecadeCount{Decade: decade, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Decade < out[j].Decade })
	return out
}

func topYears(order []int, counts map[int]int) []YearCount {
	out := make([]YearCount, 0, len(order))
	for _, year := range order {
		out = append(out, YearCount{Year: year, Count: counts[year]})
	}
	// Stable sort keeps first-seen order between years with equal counts.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > topYearLimit {
		out = out[:topYearLimit]
	}
	return out
}

func sortedScores(scores map[int]int) []ScoreCount {
	out := make([]ScoreCount, 0, len(scores))
	for score, count := range scores {
		out = append(out, ScoreCount{Score: score, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

func recentGroups(recent map[int][]game.Record) []YearGroup {
	years := make([]int, 0, len(recent))
	for year := range recent {
		years = append(years, year)
	}
	sort.Ints(years)

	out := make([]YearGroup, 0, len(years))
	for _, year := range years {
		games := append([]game.Record(nil), recent[year]...)
		sort.SliceStable(games, func(i, j int) bool { return games[i].Score() > games[j].Score() })
		out = append(out, YearGroup{Year: year, Games: games})
	}
	return out
}
