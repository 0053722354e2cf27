package stats

import (
	"fmt"
	"strings"

	"mustplay-go/pkg/game"
)

// Sentinel markers delimiting the report's region inside a host document.
const (
	StartMarker = "<!-- STATS_START -->"
	EndMarker   = "<!-- STATS_END -->"
)

// GOTYMarker annotates the highest-scoring record of a recent year. It is
// a presentation rule only; records themselves are never modified.
const GOTYMarker = "🏆 possible GOTY"

// Render turns a report into the fixed-section text block spliced into the
// host document. Output is deterministic for a given report.
func Render(report Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎮 Total must-play games: %d\n", report.Total)

	b.WriteString("\n📊 Games by decade:\n")
	for _, d := range report.ByDecade {
		fmt.Fprintf(&b, "- %ds: %d\n", d.Decade, d.Count)
	}

	b.WriteString("\n📅 Top 5 years with most must-play games:\n")
	for _, y := range report.TopYears {
		fmt.Fprintf(&b, "- %d: %d\n", y.Year, y.Count)
	}

	b.WriteString("\n🏅 Metascore distribution:\n")
	for _, s := range report.ScoreDistribution {
		fmt.Fprintf(&b, "- %d: %d\n", s.Score, s.Count)
	}

	if report.Oldest != nil {
		fmt.Fprintf(&b, "\n📌 Oldest must-play game: %s\n", gameLine(*report.Oldest))
	}
	if report.Newest != nil {
		fmt.Fprintf(&b, "📌 Newest must-play game: %s\n", gameLine(*report.Newest))
	}

	recentTotal := 0
	for _, group := range report.Recent {
		recentTotal += len(group.Games)
	}
	fmt.Fprintf(&b, "\n🆕 Must-play games released since 2020: %d\n", recentTotal)

	for _, group := range report.Recent {
		fmt.Fprintf(&b, "\n%d = %d games | Avg Metascore: %.1f\n", group.Year, len(group.Games), averageScore(group.Games))
		for i, g := range group.Games {
			line := "- " + gameLine(g)
			if i == 0 {
				line += " " + GOTYMarker
			}
			b.WriteString(line + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func gameLine(g game.Record) string {
	title := g.Title
	if title == "" {
		title = "(unknown)"
	}
	date := ""
	if g.ReleaseDate != nil {
		date = g.ReleaseDate.Format("2006-01-02")
	}
	score := "?"
	if g.Metascore != nil {
		score = fmt.Sprintf("%d", *g.Metascore)
	}
	return fmt.Sprintf("%s (%s) - Metascore: %s", title, date, score)
}

func averageScore(games []game.Record) float64 {
	if len(games) == 0 {
		return 0
	}
	sum := 0
	for _, g := range games {
		sum += g.Score()
	}
	return float64(sum) / float64(len(games))
}

// Splice inserts block between the sentinel markers of doc, replacing
// whatever was there. When either marker is missing the block is appended,
// markers included, after trimming trailing whitespace. Splicing the same
// block twice yields a byte-identical document.
func Splice(doc, block string) string {
	start := strings.Index(doc, StartMarker)
	end := strings.Index(doc, EndMarker)

	if start >= 0 && end > start {
		return doc[:start+len(StartMarker)] + "\n" + block + "\n" + doc[end:]
	}

	trimmed := strings.TrimRight(doc, " \t\r\n")
	if trimmed != "" {
		trimmed += "\n\n"
	}
	return trimmed + StartMarker + "\n" + block + "\n" + EndMarker + "\n"
}
