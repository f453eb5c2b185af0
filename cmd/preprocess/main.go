package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/akeane/grantsheet/internal/config"
	"github.com/akeane/grantsheet/internal/enrich"
)

func main() {
	input := flag.String("input", "grants.csv", "Path to the raw grants CSV")
	output := flag.String("output", "grants_enriched.csv", "Path for the enriched CSV")
	configPath := flag.String("config", "", "Path to config YAML (default: embedded)")
	refDateFlag := flag.String("reference-date", "", "Reference date YYYY-MM-DD (default: config, then today)")
	quiet := flag.Bool("quiet", false, "Suppress the statistics report")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	refDate, err := cfg.ParsedReferenceDate()
	if err != nil {
		log.Fatalf("Invalid config reference date: %v", err)
	}
	if *refDateFlag != "" {
		refDate, err = time.Parse("2006-01-02", *refDateFlag)
		if err != nil {
			log.Fatalf("Invalid -reference-date %q: must be YYYY-MM-DD", *refDateFlag)
		}
	}

	pipeline := enrich.NewPipeline(refDate, cfg.RateTable())

	var statsOut io.Writer = os.Stdout
	if *quiet {
		statsOut = nil
	}

	stats, err := pipeline.Run(*input, *output, statsOut)
	if err != nil {
		log.Fatalf("Enrichment failed: %v", err)
	}

	fmt.Printf("Processed %d grants (reference date %s)\n", stats.Total, refDate.Format("2006-01-02"))
}
