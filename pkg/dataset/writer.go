package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"mustplay-go/pkg/game"
)

// LicenseComment is the fixed provenance notice on the first line of every
// dataset file.
const LicenseComment = "# Data scraped from Metacritic. Licensed under the MIT License."

// DateLayout is the on-disk date format.
const DateLayout = "2006-01-02"

// Header lists the dataset columns in output order.
var Header = []string{"Rank", "Title", "ReleaseDate", "Metascore", "Url"}

// DefaultFileName derives the dated output filename used when the caller
// does not supply one.
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("metacritic_must_play_%s.csv", now.Format(DateLayout))
}

// Write serializes records to path as a single whole-file overwrite:
// license comment, header row, then one row per record with absent fields
// rendered empty.
func Write(path string, records []game.Record) error {
	var buf bytes.Buffer
	buf.WriteString(LicenseComment)
	buf.WriteByte('\n')

	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(recordRow(r)); err != nil {
			return fmt.Errorf("failed to write record %q: %w", r.Title, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}
	return nil
}

func recordRow(r game.Record) []string {
	date := ""
	if r.ReleaseDate != nil {
		date = r.ReleaseDate.Format(DateLayout)
	}
	score := ""
	if r.Metascore != nil {
		score = strconv.Itoa(*r.Metascore)
	}
	return []string{r.Rank, r.Title, date, score, r.URL}
}
