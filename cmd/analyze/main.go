package main

import (
	"flag"
	"fmt"
	"os"

	"mustplay-go/pkg/dataset"
	"mustplay-go/pkg/logger"
	"mustplay-go/pkg/stats"
)

func main() {
	var (
		dataDir = flag.String("data", ".", "Directory searched for dataset files")
		pattern = flag.String("pattern", dataset.DefaultPattern, "Glob pattern for dataset discovery")
		readme  = flag.String("readme", "", "Document to splice the report into (optional)")
	)
	flag.Parse()

	log := logger.GetLogger().WithField("component", "analyze")

	path := flag.Arg(0)
	if path == "" {
		latest, err := dataset.Latest(*dataDir, *pattern)
		if err != nil {
			log.WithError(err).Fatal("No dataset file to analyze")
		}
		path = latest
	}

	records, err := dataset.Load(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Fatal("Failed to load dataset")
	}

	log.WithFields(map[string]interface{}{
		"path":  path,
		"total": len(records),
	}).Info("Analyzing dataset")

	report := stats.Compute(records)
	block := stats.Render(report)
	fmt.Println(block)

	if *readme == "" {
		return
	}

	// A missing splice target starts from an empty document.
	doc, err := os.ReadFile(*readme)
	if err != nil && !os.IsNotExist(err) {
		log.WithError(err).Fatal("Failed to read splice target")
	}

	spliced := stats.Splice(string(doc), block)
	if err := os.WriteFile(*readme, []byte(spliced), 0644); err != nil {
		log.WithError(err).Fatal("Failed to write splice target")
	}
	log.WithField("path", *readme).Info("Report spliced")
}
