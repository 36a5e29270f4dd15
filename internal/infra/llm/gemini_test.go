// Unit tests for the Gemini structured-output parsing helpers. The SDK call
// itself needs a live API key and is exercised in integration environments.
package llm

import "testing"

func TestParseCodePayload_Plain(t *testing.T) {
	t.Parallel()

	raw := `{"code": "print('hi')", "description": "demo", "dependencies": ["numpy"]}`
	payload, err := parseCodePayload(raw)
	if err != nil {
		t.Fatalf("parseCodePayload failed: %v", err)
	}
	if payload.Code != "print('hi')" {
		t.Errorf("code = %q", payload.Code)
	}
	if len(payload.Dependencies) != 1 || payload.Dependencies[0] != "numpy" {
		t.Errorf("dependencies = %v", payload.Dependencies)
	}
}

func TestParseCodePayload_StripsMarkdownFences(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"code\": \"x = 1\", \"dependencies\": []}\n```"
	payload, err := parseCodePayload(raw)
	if err != nil {
		t.Fatalf("parseCodePayload failed: %v", err)
	}
	if payload.Code != "x = 1" {
		t.Errorf("code = %q", payload.Code)
	}
}

func TestParseCodePayload_NilDependenciesBecomesEmpty(t *testing.T) {
	t.Parallel()

	payload, err := parseCodePayload(`{"code": "pass"}`)
	if err != nil {
		t.Fatalf("parseCodePayload failed: %v", err)
	}
	if payload.Dependencies == nil {
		t.Error("expected non-nil dependencies slice")
	}
}

func TestParseCodePayload_EmptyCodeRejected(t *testing.T) {
	t.Parallel()

	if _, err := parseCodePayload(`{"code": "  ", "dependencies": []}`); err == nil {
		t.Error("expected error for empty code field")
	}
}

func TestParseCodePayload_InvalidJSONRejected(t *testing.T) {
	t.Parallel()

	if _, err := parseCodePayload("not json at all"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParsePromptList(t *testing.T) {
	t.Parallel()

	list, err := parsePromptList(`["diagram one", "  ", "diagram two"]`)
	if err != nil {
		t.Fatalf("parsePromptList failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(list))
	}
	if list[1] != "diagram two" {
		t.Errorf("prompt[1] = %q", list[1])
	}
}

func TestParsePromptList_AllBlankRejected(t *testing.T) {
	t.Parallel()

	if _, err := parsePromptList(`["", "  "]`); err == nil {
		t.Error("expected error for all-blank prompt list")
	}
}

func TestStripFences(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"plain":                        "plain",
		"```json\n{\"a\":1}\n```":      `{"a":1}`,
		"```\n[1,2]\n```":              "[1,2]",
		"  ```json\n  {} \n```  ":      "{}",
		`{"already": "unfenced"}`:      `{"already": "unfenced"}`,
	}
	for in, want := range cases {
		if got := stripFences(in); got != want {
			t.Errorf("stripFences(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestNewGeminiProvider_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := NewGeminiProvider(t.Context(), "", "m", "im", nil); err == nil {
		t.Error("expected error for missing API key")
	}
}
