package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPattern matches dated dataset files produced by the scraper.
const DefaultPattern = "metacritic_must_play_*.csv"

// ErrNoDataset is returned when discovery finds no matching file.
var ErrNoDataset = errors.New("no dataset file found")

// Latest returns the newest file in dir matching pattern, by modification
// time.
func Latest(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("bad dataset pattern %q: %w", pattern, err)
	}

	var newest string
	var newestMod int64
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = path
			newestMod = mod
		}
	}

	if newest == "" {
		return "", ErrNoDataset
	}
	return newest, nil
}
