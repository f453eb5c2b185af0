package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/akeane/grantsheet/internal/ai"
	"github.com/akeane/grantsheet/internal/config"
	"github.com/akeane/grantsheet/internal/enrich"
	"github.com/akeane/grantsheet/internal/scrape"
)

// llmExtractor adapts the Ollama extraction client to the scraper, for
// sources that have no CSS selectors configured.
type llmExtractor struct {
	client *ai.OllamaClient
}

func (e *llmExtractor) ExtractGrants(ctx context.Context, pageURL, text string) ([]scrape.RawGrant, error) {
	extracted, err := e.client.ExtractGrants(ctx, pageURL, text)
	if err != nil {
		return nil, err
	}

	grants := make([]scrape.RawGrant, 0, len(extracted))
	for _, g := range extracted {
		level := g.ComplexityLevel
		if level == "not found" {
			level = ai.MapComplexityLevel(g.ApplicationComplexity)
		}
		grants = append(grants, scrape.RawGrant{
			Name:                  g.GrantName,
			AdministeringBody:     g.AdministeringBody,
			Purpose:               g.GrantPurpose,
			Deadline:              g.ApplicationDeadline,
			FundingAmount:         g.FundingAmount,
			CoContribution:        g.CoContribution,
			Eligibility:           g.EligibilityCriteria,
			AssessmentCriteria:    g.AssessmentCriteria,
			ApplicationComplexity: g.ApplicationComplexity,
			ComplexityLevel:       level,
			WebLink:               g.WebLink,
		})
	}
	return grants, nil
}

func main() {
	output := flag.String("output", "grants.csv", "Path for the raw scraped CSV")
	configPath := flag.String("config", "", "Path to config YAML (default: embedded)")
	sourceID := flag.String("source", "", "Scrape only this source id")
	timeoutMin := flag.Int("timeout-min", 30, "Overall run timeout in minutes")
	useLLM := flag.Bool("llm", false, "Use the LLM extractor for selector-less sources")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sources := cfg.Sources
	if *sourceID != "" {
		sources = nil
		for _, src := range cfg.Sources {
			if src.ID == *sourceID {
				sources = append(sources, src)
			}
		}
		if len(sources) == 0 {
			log.Fatalf("Unknown source id %q", *sourceID)
		}
	}
	if len(sources) == 0 {
		log.Fatal("No sources configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutMin)*time.Minute)
	defer cancel()

	var fetchCfg scrape.FetchConfig
	if len(sources) == 1 {
		fetchCfg = sources[0].Fetch
	}
	scraper := scrape.NewScraper(scrape.NewCollyFetcher(fetchCfg), sources)
	if *useLLM {
		scraper.Extractor = &llmExtractor{client: ai.NewOllamaClient(os.Getenv("OLLAMA_HOST"), "", "")}
	}

	sheet, err := scraper.Run(ctx)
	if err != nil {
		log.Fatalf("Scrape failed: %v", err)
	}

	if err := enrich.WriteSheet(*output, sheet); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("Wrote %d grants to %s", len(sheet.Rows), *output)
}
