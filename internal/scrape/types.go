package scrape

import (
	"context"
	"io"
	"time"
)

// FetchedDocument is the raw result of one fetch.
type FetchedDocument struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        io.ReadCloser
	FetchedAt   time.Time
}

// Fetcher retrieves raw content from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchedDocument, error)
}

// RawGrant is the untrusted field set extracted from one page before the
// parsing engine sees it. Every field is free text; the engine is what
// turns it into typed columns.
type RawGrant struct {
	Name                  string
	AdministeringBody     string
	Purpose               string
	Deadline              string
	FundingAmount         string
	CoContribution        string
	Eligibility           string
	AssessmentCriteria    string
	ApplicationComplexity string
	ComplexityLevel       string
	WebLink               string
}

// SourceConfig describes one site the scraper walks.
type SourceConfig struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	SeedURLs  []string          `yaml:"seed_urls"`
	Selectors SelectorConfig    `yaml:"selectors,omitempty"`
	Fetch     FetchConfig       `yaml:"fetch,omitempty"`
	GuidePDFs []string          `yaml:"guideline_pdfs,omitempty"`
	Defaults  map[string]string `yaml:"defaults,omitempty"` // e.g. administering body for the whole site
}

// SelectorConfig maps CSS selectors to the raw grant fields.
type SelectorConfig struct {
	Container     string `yaml:"container,omitempty"`
	Title         string `yaml:"title,omitempty"`
	Link          string `yaml:"link,omitempty"`
	LinkAttr      string `yaml:"link_attr,omitempty"`
	Purpose       string `yaml:"purpose,omitempty"`
	Deadline      string `yaml:"deadline,omitempty"`
	FundingAmount string `yaml:"funding_amount,omitempty"`
}

// FetchConfig tunes polite fetching per source.
type FetchConfig struct {
	TimeoutSeconds int     `yaml:"timeout_seconds,omitempty"` // default 30
	MaxRetries     int     `yaml:"max_retries,omitempty"`     // default 3
	DelaySeconds   float64 `yaml:"delay_seconds,omitempty"`   // per-domain delay, default 1
}
