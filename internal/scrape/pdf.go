package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	rpdf "rsc.io/pdf"
)

// maxPDFBytes caps how much of a guideline PDF is read into memory.
const maxPDFBytes = 20 << 20

var deadlineHintRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s*,?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b\d{1,2}-[A-Za-z]{3}-\d{2}\b`),
}

var fundingHintRegex = regexp.MustCompile(`(?i)\$\s*[\d,]+(?:\.\d+)?(?:\s*million)?|\b\d+(?:\.\d+)?\s*million\b`)

// ExtractPDFText renders every page of a PDF to plain text. The pdf
// library panics on some malformed files, so the panic is converted to
// an error here.
func ExtractPDFText(content []byte) (text string, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("pdf parser panic: %v", recovered)
			text = ""
		}
	}()

	reader, err := rpdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		for _, fragment := range page.Content().Text {
			builder.WriteString(fragment.S)
			builder.WriteString(" ")
		}
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// GuidelineHints holds the date and amount snippets lifted out of a
// guideline PDF. They are kept verbatim so the parsing engine can grade
// them the same way it grades spreadsheet cells.
type GuidelineHints struct {
	URL             string
	DeadlineSnippet string
	FundingSnippet  string
}

// FetchGuidelineHints downloads a guideline PDF and scans its text for
// deadline and funding phrases.
func FetchGuidelineHints(ctx context.Context, fetcher Fetcher, pdfURL string) (*GuidelineHints, error) {
	doc, err := fetcher.Fetch(ctx, pdfURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guideline pdf: %w", err)
	}
	defer doc.Body.Close()

	content, err := io.ReadAll(io.LimitReader(doc.Body, maxPDFBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read guideline pdf: %w", err)
	}

	text, err := ExtractPDFText(content)
	if err != nil {
		return nil, err
	}
	return ScanGuidelineText(pdfURL, text), nil
}

// ScanGuidelineText collects the distinct date snippets and the first
// dollar phrases found in guideline text.
func ScanGuidelineText(pdfURL, text string) *GuidelineHints {
	hints := &GuidelineHints{URL: pdfURL}

	seen := make(map[string]bool)
	var dates []string
	for _, expr := range deadlineHintRegexes {
		for _, token := range expr.FindAllString(text, -1) {
			token = normalizeSpace(token)
			key := strings.ToLower(token)
			if seen[key] {
				continue
			}
			seen[key] = true
			dates = append(dates, token)
		}
	}
	hints.DeadlineSnippet = strings.Join(dates, ", ")

	amounts := fundingHintRegex.FindAllString(text, -1)
	if len(amounts) > 6 {
		amounts = amounts[:6]
	}
	for i := range amounts {
		amounts[i] = normalizeSpace(amounts[i])
	}
	hints.FundingSnippet = strings.Join(amounts, " ")

	return hints
}
