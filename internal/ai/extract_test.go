package ai

import "testing"

func TestParseExtractionResponse(t *testing.T) {
	resp := "```json\n" + `{"grants": [{
		"grant_name": "Regional Arts Fund",
		"administering_body": "Creative Australia",
		"application_deadline": "30 June 2026 (5pm AEST)",
		"funding_amount": "Up to $50,000",
		"level_of_complexity": "Moderate"
	}]}` + "\n```"

	grants, err := parseExtractionResponse(resp)
	if err != nil {
		t.Fatalf("parseExtractionResponse: %v", err)
	}
	if len(grants) != 1 {
		t.Fatalf("expected 1 grant, got %d", len(grants))
	}

	g := grants[0]
	if g.GrantName != "Regional Arts Fund" {
		t.Errorf("name = %q", g.GrantName)
	}
	if g.ApplicationDeadline != "30 June 2026 (5pm AEST)" {
		t.Errorf("deadline must stay verbatim, got %q", g.ApplicationDeadline)
	}
	if g.GrantPurpose != "not found" {
		t.Errorf("missing field should be %q, got %q", "not found", g.GrantPurpose)
	}
	if g.CoContribution != "not found" {
		t.Errorf("missing co-contribution should be %q, got %q", "not found", g.CoContribution)
	}
}

func TestParseExtractionResponseSurroundingText(t *testing.T) {
	resp := `Here is the extraction you asked for: {"grants": [{"grant_name": "X"}]} hope that helps`

	grants, err := parseExtractionResponse(resp)
	if err != nil {
		t.Fatalf("parseExtractionResponse: %v", err)
	}
	if grants[0].GrantName != "X" {
		t.Errorf("name = %q", grants[0].GrantName)
	}
}

func TestParseExtractionResponseEmpty(t *testing.T) {
	if _, err := parseExtractionResponse(`{"grants": []}`); err == nil {
		t.Fatal("expected error for empty grants list")
	}
	if _, err := parseExtractionResponse(`no json here`); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{`{"a": 1}`, `{"a": 1}`, true},
		{`prefix {"a": {"b": 2}} suffix`, `{"a": {"b": 2}}`, true},
		{`{"s": "brace } in string"}`, `{"s": "brace } in string"}`, true},
		{`no object`, ``, false},
		{`{"unbalanced": 1`, ``, false},
	}
	for _, tc := range cases {
		got, ok := extractFirstJSONObject(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("extractFirstJSONObject(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
