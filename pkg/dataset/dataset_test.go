package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mustplay-go/pkg/game"
)

func intp(n int) *int { return &n }

func datep(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.csv")
	records := []game.Record{
		{Rank: "1.", Title: "Alpha", ReleaseDate: datep(2020, time.January, 1), Metascore: intp(90), URL: "https://www.metacritic.com/game/alpha/"},
		{Rank: "not-a-rank", Title: "Beta", ReleaseDate: datep(1999, time.May, 5), Metascore: intp(95)},
		{Rank: "3.", Title: "Gamma, The \"Third\""},
	}

	if err := Write(path, records); err != nil {
		t.Fatalf("expected write to succeed, got: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got: %v", err)
	}
	if len(loaded) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(loaded))
	}

	for i, want := range records {
		got := loaded[i]
		if got.Title != want.Title {
			t.Errorf("record %d: title %q, want %q", i, got.Title, want.Title)
		}
		switch {
		case want.Metascore == nil && got.Metascore != nil:
			t.Errorf("record %d: expected absent metascore, got %d", i, *got.Metascore)
		case want.Metascore != nil && (got.Metascore == nil || *got.Metascore != *want.Metascore):
			t.Errorf("record %d: metascore mismatch", i)
		}
		switch {
		case want.ReleaseDate == nil && got.ReleaseDate != nil:
			t.Errorf("record %d: expected absent date, got %v", i, got.ReleaseDate)
		case want.ReleaseDate != nil && (got.ReleaseDate == nil || !got.ReleaseDate.Equal(*want.ReleaseDate)):
			t.Errorf("record %d: date mismatch", i)
		}
	}
}

func TestWrite_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.csv")
	records := []game.Record{
		{Rank: "1.", Title: "Alpha", ReleaseDate: datep(2020, time.January, 1), Metascore: intp(90)},
	}

	if err := Write(path, records); err != nil {
		t.Fatalf("expected write to succeed, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected to read file back, got: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (comment, header, row), got %d", len(lines))
	}
	if lines[0] != LicenseComment {
		t.Errorf("expected license comment first, got %q", lines[0])
	}
	if lines[1] != "Rank,Title,ReleaseDate,Metascore,Url" {
		t.Errorf("unexpected header: %q", lines[1])
	}
	if lines[2] != "1.,Alpha,2020-01-01,90," {
		t.Errorf("unexpected row: %q", lines[2])
	}
}

func TestLoad_ToleratesMissingAndUnknownColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.csv")
	content := "# some comment\n" +
		"Title,Metascore,Publisher\n" +
		"Alpha,90,Nobody\n" +
		"Beta,,Somebody\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("expected tolerant load, got: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "Alpha" || records[0].Metascore == nil || *records[0].Metascore != 90 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Metascore != nil {
		t.Errorf("empty metascore cell should load as absent")
	}
	if records[0].Rank != "" || records[0].URL != "" {
		t.Errorf("missing columns should load as absent fields")
	}
}

func TestLoad_UnparsableCellsDegrade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.csv")
	content := "Rank,Title,ReleaseDate,Metascore,Url\n" +
		"1.,Alpha,someday,lots,\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := Load(path)
	if err != nil {
		t.Fatalf("expected tolerant load, got: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ReleaseDate != nil || records[0].Metascore != nil {
		t.Errorf("unparsable cells should degrade to absent, got %+v", records[0])
	}
}

func TestLatest_PicksNewestByModTime(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "metacritic_must_play_2024-01-01.csv")
	newer := filepath.Join(dir, "metacritic_must_play_2024-06-01.csv")
	for _, p := range []string{older, newer} {
		if err := os.WriteFile(p, []byte("Rank,Title\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatal(err)
	}

	got, err := Latest(dir, DefaultPattern)
	if err != nil {
		t.Fatalf("expected discovery to succeed, got: %v", err)
	}
	if got != newer {
		t.Errorf("expected %s, got %s", newer, got)
	}
}

func TestLatest_NoFiles(t *testing.T) {
	_, err := Latest(t.TempDir(), DefaultPattern)
	if err != ErrNoDataset {
		t.Errorf("expected ErrNoDataset, got: %v", err)
	}
}

func TestCache_ReloadsOnModTimeChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.csv")
	if err := Write(path, []game.Record{{Rank: "1.", Title: "Alpha"}}); err != nil {
		t.Fatal(err)
	}

	cache := NewCache()
	records, err := cache.Load(path)
	if err != nil {
		t.Fatalf("expected cached load to succeed, got: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Alpha" {
		t.Fatalf("unexpected first load: %+v", records)
	}

	// Rewrite the file with a different record and a newer mod time.
	if err := Write(path, []game.Record{{Rank: "1.", Title: "Beta"}}); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	records, err = cache.Load(path)
	if err != nil {
		t.Fatalf("expected reload to succeed, got: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Beta" {
		t.Errorf("expected reloaded content, got: %+v", records)
	}
}

func TestDefaultFileName(t *testing.T) {
	now := time.Date(2025, time.August, 30, 12, 0, 0, 0, time.UTC)
	if got := DefaultFileName(now); got != "metacritic_must_play_2025-08-30.csv" {
		t.Errorf("unexpected filename: %q", got)
	}
}
