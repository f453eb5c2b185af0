package scrape

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/PuerkitoBio/goquery"

	"github.com/akeane/grantsheet/internal/enrich"
)

// Extractor pulls grants out of unstructured page text when a source has
// no CSS selectors configured.
type Extractor interface {
	ExtractGrants(ctx context.Context, pageURL, text string) ([]RawGrant, error)
}

// Scraper walks a set of configured sources and produces a raw grants
// sheet ready for the enrichment pipeline. Derived columns are never
// written here; that is the parsing engine's job.
type Scraper struct {
	Fetcher   Fetcher
	Sources   []SourceConfig
	Extractor Extractor // optional
}

func NewScraper(fetcher Fetcher, sources []SourceConfig) *Scraper {
	return &Scraper{Fetcher: fetcher, Sources: sources}
}

// Run scrapes every source and returns one deduplicated sheet in the
// raw input column layout. Per-source failures are logged and skipped
// so one broken site does not sink the run.
func (s *Scraper) Run(ctx context.Context) (*enrich.Sheet, error) {
	sheet := &enrich.Sheet{Columns: rawColumns()}
	seen := make(map[string]bool)

	for _, src := range s.Sources {
		grants, err := s.scrapeSource(ctx, src)
		if err != nil {
			log.Printf("source %s: %v", src.ID, err)
			continue
		}
		log.Printf("source %s: %d grants", src.ID, len(grants))

		for _, g := range grants {
			row := rawGrantRow(g)
			hash := enrich.ContentHash(row)
			if seen[hash] {
				continue
			}
			seen[hash] = true
			sheet.Rows = append(sheet.Rows, row)
		}
	}

	if len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("no grants scraped from %d sources", len(s.Sources))
	}
	return sheet, nil
}

func (s *Scraper) scrapeSource(ctx context.Context, src SourceConfig) ([]RawGrant, error) {
	var grants []RawGrant
	for _, seed := range src.SeedURLs {
		pageGrants, err := s.scrapePage(ctx, src, seed)
		if err != nil {
			log.Printf("source %s: page %s: %v", src.ID, seed, err)
			continue
		}
		grants = append(grants, pageGrants...)
	}

	if len(src.GuidePDFs) > 0 {
		s.applyGuidelineHints(ctx, src, grants)
	}
	return grants, nil
}

func (s *Scraper) scrapePage(ctx context.Context, src SourceConfig, pageURL string) ([]RawGrant, error) {
	doc, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer doc.Body.Close()

	// Sources without selectors fall through to the LLM extractor.
	if src.Selectors.Container == "" {
		if s.Extractor == nil {
			return nil, fmt.Errorf("source %s has no selectors and no extractor is configured", src.ID)
		}
		body, err := io.ReadAll(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read page: %w", err)
		}
		grants, err := s.Extractor.ExtractGrants(ctx, pageURL, HTMLToText(string(body)))
		if err != nil {
			return nil, err
		}
		for i := range grants {
			if grants[i].AdministeringBody == "" {
				grants[i].AdministeringBody = src.Defaults["administering_body"]
			}
			if grants[i].WebLink == "" {
				grants[i].WebLink = pageURL
			}
		}
		return grants, nil
	}

	parsed, err := goquery.NewDocumentFromReader(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return ExtractGrants(parsed, src, pageURL), nil
}

// applyGuidelineHints backfills empty deadline and funding fields from
// the source's guideline PDFs. Fields scraped off the page itself win.
func (s *Scraper) applyGuidelineHints(ctx context.Context, src SourceConfig, grants []RawGrant) {
	for _, pdfURL := range src.GuidePDFs {
		hints, err := FetchGuidelineHints(ctx, s.Fetcher, pdfURL)
		if err != nil {
			log.Printf("source %s: guideline %s: %v", src.ID, pdfURL, err)
			continue
		}
		for i := range grants {
			if grants[i].Deadline == "" && hints.DeadlineSnippet != "" {
				grants[i].Deadline = hints.DeadlineSnippet
			}
			if grants[i].FundingAmount == "" && hints.FundingSnippet != "" {
				grants[i].FundingAmount = hints.FundingSnippet
			}
		}
	}
}

func rawColumns() []string {
	return []string{
		enrich.ColGrantName,
		enrich.ColAdministeringBody,
		enrich.ColGrantPurpose,
		enrich.ColApplicationDeadline,
		enrich.ColFundingAmount,
		enrich.ColCoContribution,
		enrich.ColEligibility,
		enrich.ColAssessment,
		enrich.ColComplexity,
		enrich.ColWebLink,
		enrich.ColComplexityLevel,
	}
}

func rawGrantRow(g RawGrant) enrich.Row {
	return enrich.Row{
		enrich.ColGrantName:           g.Name,
		enrich.ColAdministeringBody:   g.AdministeringBody,
		enrich.ColGrantPurpose:        g.Purpose,
		enrich.ColApplicationDeadline: g.Deadline,
		enrich.ColFundingAmount:       g.FundingAmount,
		enrich.ColCoContribution:      g.CoContribution,
		enrich.ColEligibility:         g.Eligibility,
		enrich.ColAssessment:          g.AssessmentCriteria,
		enrich.ColComplexity:          g.ApplicationComplexity,
		enrich.ColComplexityLevel:     g.ComplexityLevel,
		enrich.ColWebLink:             g.WebLink,
	}
}
