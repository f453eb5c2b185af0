package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akeane/grantsheet/internal/parse"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rates["USD"] != 1.52 {
		t.Errorf("USD rate = %v, want 1.52", cfg.Rates["USD"])
	}
	if len(cfg.Sources) == 0 {
		t.Error("embedded default should carry at least one source")
	}
}

func TestLoadExternalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
reference_date: "2025-12-09"
exchange_rates:
  GBP: 2.0
  AUD: 5.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ref, err := cfg.ParsedReferenceDate()
	if err != nil {
		t.Fatalf("ParsedReferenceDate: %v", err)
	}
	if !ref.Equal(time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("reference date = %v", ref)
	}

	table := cfg.RateTable()
	if got := table.RateFor(parse.GBP); got != 2.0 {
		t.Errorf("GBP rate = %v, want 2.0", got)
	}
	// The AUD anchor cannot be overridden.
	if got := table.RateFor(parse.AUD); got != 1.0 {
		t.Errorf("AUD rate = %v, want 1.0", got)
	}
}

func TestLoadMissingPathFallsBack(t *testing.T) {
	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("Load should fall back to embedded default: %v", err)
	}
	if cfg.Rates["NZD"] != 0.91 {
		t.Errorf("NZD rate = %v, want 0.91", cfg.Rates["NZD"])
	}
}

func TestParsedReferenceDateInvalid(t *testing.T) {
	cfg := &Config{ReferenceDate: "09/12/2025"}
	if _, err := cfg.ParsedReferenceDate(); err == nil {
		t.Fatal("expected error for non-ISO reference date")
	}
}

func TestRateTableEmptyFallsBack(t *testing.T) {
	cfg := &Config{}
	table := cfg.RateTable()
	if got := table.RateFor(parse.USD); got != 1.52 {
		t.Errorf("default USD rate = %v, want 1.52", got)
	}
}
