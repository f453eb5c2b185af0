package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// maxPageChars caps how much page text goes into the extraction prompt.
const maxPageChars = 50000

// ExtractedGrant is the structured output of one LLM extraction pass.
// Fields the model could not find hold "not found", matching the
// spreadsheet convention downstream.
type ExtractedGrant struct {
	GrantName             string `json:"grant_name"`
	AdministeringBody     string `json:"administering_body"`
	GrantPurpose          string `json:"grant_purpose"`
	ApplicationDeadline   string `json:"application_deadline"`
	FundingAmount         string `json:"funding_amount"`
	CoContribution        string `json:"co_contribution_requirements"`
	EligibilityCriteria   string `json:"eligibility_criteria"`
	AssessmentCriteria    string `json:"assessment_criteria"`
	ApplicationComplexity string `json:"application_complexity"`
	WebLink               string `json:"web_link"`
	ComplexityLevel       string `json:"level_of_complexity"`
}

type extractionResponse struct {
	Grants []ExtractedGrant `json:"grants"`
}

// ExtractGrants asks the LLM to pull every grant out of a page of text.
// The deadline and funding fields are kept verbatim; the deterministic
// parsing engine grades them later.
func (c *OllamaClient) ExtractGrants(ctx context.Context, pageURL, text string) ([]ExtractedGrant, error) {
	if len(text) > maxPageChars {
		text = text[:maxPageChars]
	}

	prompt := fmt.Sprintf(`You are an expert grant analyst. The text below comes from a funding webpage. List every grant it describes and extract the fields for each one.

PAGE URL: %s
PAGE TEXT:
%s

For each grant extract:
1. grant_name: the name or title of the grant.
2. administering_body: the organisation providing the grant.
3. grant_purpose: the stated purpose of the grant.
4. application_deadline: the deadline text EXACTLY as written, including any time of day or round information.
5. funding_amount: the funding amount text EXACTLY as written, including currency symbols and ranges.
6. co_contribution_requirements: any co-contribution requirements, or "none required" or "not specified".
7. eligibility_criteria: who can apply.
8. assessment_criteria: how applications are assessed.
9. application_complexity: your one-sentence judgement of how complex the application is.
10. web_link: the URL of the page the grant appears on.
11. level_of_complexity: one of "Low", "Moderate", "Complex", "Very Complex" or "Varies".

Rules:
- Do NOT invent information. If a field is not in the text, use "not found".
- Copy deadline and funding amount text verbatim. Do not reformat dates or numbers.
- Use Australian English.
- The only fields where your own judgement is allowed are application_complexity and level_of_complexity.

Respond ONLY with a JSON object: {"grants": [{...}, ...]}`, pageURL, text)

	resp, err := c.GenerateCompletion(ctx, prompt, true)
	if err == nil {
		if grants, parseErr := parseExtractionResponse(resp); parseErr == nil {
			return grants, nil
		} else {
			log.Printf("JSON mode failed parsing: %v. Retrying with text mode...", parseErr)
		}
	} else {
		log.Printf("JSON mode generation failed: %v. Retrying with text mode...", err)
	}

	resp, err = c.GenerateCompletion(ctx, prompt, false)
	if err != nil {
		return nil, err
	}

	grants, err := parseExtractionResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LLM JSON after retry: %w (response: %s)", err, resp)
	}
	return grants, nil
}

func parseExtractionResponse(resp string) ([]ExtractedGrant, error) {
	cleaned := strings.TrimSpace(resp)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	if jsonStr, ok := extractFirstJSONObject(cleaned); ok {
		cleaned = jsonStr
	}

	var parsed extractionResponse
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Grants) == 0 {
		return nil, fmt.Errorf("no grants in response")
	}

	for i := range parsed.Grants {
		fillNotFound(&parsed.Grants[i])
	}
	return parsed.Grants, nil
}

// fillNotFound normalises blank fields to the "not found" sentinel so
// every row carries the same convention.
func fillNotFound(g *ExtractedGrant) {
	fields := []*string{
		&g.GrantName, &g.AdministeringBody, &g.GrantPurpose,
		&g.ApplicationDeadline, &g.FundingAmount, &g.CoContribution,
		&g.EligibilityCriteria, &g.AssessmentCriteria,
		&g.ApplicationComplexity, &g.WebLink, &g.ComplexityLevel,
	}
	for _, f := range fields {
		if strings.TrimSpace(*f) == "" {
			*f = "not found"
		}
	}
}

// extractFirstJSONObject finds the first outermost balanced {...}
func extractFirstJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if !inString {
			if char == '{' {
				depth++
			} else if char == '}' {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}

	return "", false
}
