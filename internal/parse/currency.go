package parse

import "strings"

// DetectCurrency infers a currency code from symbols and codes in the
// text. Explicit codes win over bare symbols; a bare dollar sign with no
// code defaults to AUD, since unlabelled "$" in this corpus means
// Australian dollars. No indicator at all is UNKNOWN.
func DetectCurrency(text string) Currency {
	upper := strings.ToUpper(text)

	switch {
	case strings.Contains(upper, "USD") || strings.Contains(upper, "US$"):
		return USD
	case strings.Contains(upper, "NZD") || strings.Contains(upper, "NZ$"):
		return NZD
	case strings.Contains(upper, "CAD") || strings.Contains(upper, "CA$"):
		return CAD
	case strings.Contains(upper, "GBP") || strings.Contains(text, "£"):
		return GBP
	case strings.Contains(upper, "EUR") || strings.Contains(text, "€"):
		return EUR
	case strings.Contains(upper, "AUD") || strings.Contains(upper, "A$"):
		return AUD
	case strings.Contains(text, "$"):
		return AUD
	}

	return CurrencyUnknown
}

// countCurrencyMentions reports how many distinct currency codes appear
// in the text. More than one is an ambiguity signal for the confidence
// scorer.
func countCurrencyMentions(text string) int {
	upper := strings.ToUpper(text)
	count := 0
	for _, code := range []string{"AUD", "NZD", "USD", "CAD", "GBP", "EUR"} {
		if strings.Contains(upper, code) {
			count++
		}
	}
	return count
}
