package main

import (
	"flag"
	"log"
	"os"

	"github.com/akeane/grantsheet/internal/enrich"
)

func main() {
	input := flag.String("input", "grants_enriched.csv", "Path to the enriched grants CSV")
	flag.Parse()

	sheet, err := enrich.ReadSheet(*input)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *input, err)
	}

	enrich.RenderTagReport(os.Stdout, sheet)
}
