package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"mustplay-go/pkg/game"
)

// Load reads a dataset file back into records. The reader is tolerant:
// comment lines are skipped, columns are located by header name, unknown
// columns are ignored, short rows and unparsable cells degrade to absent
// fields instead of aborting the load.
func Load(path string) ([]game.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := columnIndex(header)

	var records []game.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, skip it and keep loading.
			continue
		}
		records = append(records, rowRecord(cols, row))
	}
	return records, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func rowRecord(cols map[string]int, row []string) game.Record {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	record := game.Record{
		Rank:  field("rank"),
		Title: field("title"),
		URL:   field("url"),
	}
	if t, err := time.Parse(DateLayout, field("releasedate")); err == nil {
		record.ReleaseDate = &t
	}
	if s := field("metascore"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			record.Metascore = &n
		}
	}
	return record
}
