package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ComplexityLevels are the only values the complexity column may hold.
var ComplexityLevels = []string{"Low", "Moderate", "Complex", "Very Complex", "Varies"}

// MapComplexityLevel collapses a free-text complexity judgement into one
// of the fixed levels. Order matters: "very high" must be checked before
// "high", and "moderate to complex" before "moderate".
func MapComplexityLevel(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	switch {
	case lower == "" || lower == "not found":
		return ""
	case strings.Contains(lower, "very high") || strings.Contains(lower, "very complex"):
		return "Very Complex"
	case strings.Contains(lower, "high"):
		return "Complex"
	case strings.Contains(lower, "moderate to complex"):
		return "Complex"
	case strings.Contains(lower, "complex"):
		return "Complex"
	case strings.Contains(lower, "moderate"):
		return "Moderate"
	case strings.Contains(lower, "low") || strings.Contains(lower, "simple"):
		return "Low"
	case strings.Contains(lower, "varies") || strings.Contains(lower, "depends"):
		return "Varies"
	}
	return ""
}

// JudgeComplexity asks the LLM for a one-sentence complexity judgement
// when the scraped page carried none. The returned level is always one
// of ComplexityLevels.
func JudgeComplexity(ctx context.Context, client *OllamaClient, name, purpose, eligibility, assessment string) (judgement, level string, err error) {
	prompt := fmt.Sprintf(`You are an expert grant analyst. Judge how complex the application process for this grant is.

GRANT NAME: %s
PURPOSE: %s
ELIGIBILITY: %s
ASSESSMENT CRITERIA: %s

Consider the likely amount, reputation, competition and documentation requirements. Write one sentence of judgement, then map it to one of: "Low", "Moderate", "Complex", "Very Complex", "Varies".

Return ONLY a JSON object:
{
  "judgement": "one sentence",
  "level": "Low" | "Moderate" | "Complex" | "Very Complex" | "Varies"
}`, name, purpose, eligibility, assessment)

	resp, err := client.GenerateCompletion(ctx, prompt, true)
	if err != nil {
		return "", "", err
	}

	var result struct {
		Judgement string `json:"judgement"`
		Level     string `json:"level"`
	}
	if err := json.Unmarshal([]byte(resp), &result); err != nil {
		return "", "", fmt.Errorf("failed to parse complexity json: %w", err)
	}

	level = canonicalLevel(result.Level)
	if level == "" {
		level = MapComplexityLevel(result.Judgement)
	}
	if level == "" {
		level = "Varies"
	}
	return strings.TrimSpace(result.Judgement), level, nil
}

func canonicalLevel(s string) string {
	s = strings.TrimSpace(s)
	for _, lvl := range ComplexityLevels {
		if strings.EqualFold(s, lvl) {
			return lvl
		}
	}
	return ""
}
