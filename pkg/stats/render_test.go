package stats

import (
	"strings"
	"testing"
	"time"

	"mustplay-go/pkg/game"
)

func sampleReport() Report {
	return Compute([]game.Record{
		{Rank: "1.", Title: "High", ReleaseDate: datep(2023, time.July, 1), Metascore: intp(96)},
		{Rank: "2.", Title: "Low", ReleaseDate: datep(2023, time.March, 1), Metascore: intp(90)},
		{Rank: "3.", Title: "Classic", ReleaseDate: datep(1998, time.November, 23), Metascore: intp(99)},
	})
}

func TestRender_GOTYMarkerOnHighestScore(t *testing.T) {
	text := Render(sampleReport())

	lines := strings.Split(text, "\n")
	var highLine, lowLine string
	for _, line := range lines {
		if strings.Contains(line, "High") && strings.HasPrefix(line, "- ") {
			highLine = line
		}
		if strings.Contains(line, "Low") && strings.HasPrefix(line, "- ") {
			lowLine = line
		}
	}

	if highLine == "" || lowLine == "" {
		t.Fatalf("expected both 2023 games rendered, got:\n%s", text)
	}
	if !strings.Contains(highLine, GOTYMarker) {
		t.Errorf("96-score game should carry the GOTY marker: %q", highLine)
	}
	if strings.Contains(lowLine, GOTYMarker) {
		t.Errorf("90-score game must not carry the GOTY marker: %q", lowLine)
	}
}

func TestRender_Sections(t *testing.T) {
	text := Render(sampleReport())

	for _, want := range []string{
		"Total must-play games: 3",
		"Games by decade:",
		"- 1990s: 1",
		"- 2020s: 2",
		"Top 5 years",
		"Metascore distribution:",
		"Oldest must-play game: Classic (1998-11-23) - Metascore: 99",
		"Newest must-play game: High (2023-07-01) - Metascore: 96",
		"released since 2020: 2",
		"2023 = 2 games | Avg Metascore: 93.0",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	report := sampleReport()
	if Render(report) != Render(report) {
		t.Error("rendering the same report twice must produce identical text")
	}
}

func TestSplice_ReplacesBetweenMarkers(t *testing.T) {
	doc := "# My Project\n\nIntro text.\n\n" + StartMarker + "\nold stats\n" + EndMarker + "\n\nFooter.\n"

	out := Splice(doc, "new stats")

	if !strings.Contains(out, StartMarker+"\nnew stats\n"+EndMarker) {
		t.Errorf("expected block replaced between markers, got:\n%s", out)
	}
	if strings.Contains(out, "old stats") {
		t.Errorf("old content should be gone, got:\n%s", out)
	}
	if !strings.Contains(out, "Intro text.") || !strings.Contains(out, "Footer.") {
		t.Errorf("content outside the markers must survive, got:\n%s", out)
	}
}

func TestSplice_AppendsWhenMarkersMissing(t *testing.T) {
	doc := "# My Project\n\nNo markers here.\n\n\n"

	out := Splice(doc, "stats block")

	if !strings.HasSuffix(out, StartMarker+"\nstats block\n"+EndMarker+"\n") {
		t.Errorf("expected block appended with markers, got:\n%s", out)
	}
	if strings.Contains(out, "\n\n\n"+StartMarker) {
		t.Errorf("trailing whitespace should be trimmed before appending, got:\n%s", out)
	}
}

func TestSplice_Idempotent(t *testing.T) {
	block := Render(sampleReport())

	once := Splice("# Readme\n\nBody.\n", block)
	twice := Splice(once, block)

	if once != twice {
		t.Errorf("splice must be idempotent:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

func TestSplice_EmptyDocument(t *testing.T) {
	out := Splice("", "stats")
	want := StartMarker + "\nstats\n" + EndMarker + "\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}
