package completion

import (
	"strings"
	"testing"
)

func TestSuggest(t *testing.T) {
	asst := NewAssistant()

	suggestions := asst.Suggest("fprintln", "go")
	if len(suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(suggestions))
	}
	if !strings.Contains(suggestions[0], "fmt.Printf") {
		t.Errorf("Expected a print snippet, got %q", suggestions[0])
	}
}

func TestSuggestNoMatch(t *testing.T) {
	asst := NewAssistant()

	if got := asst.Suggest("xyz", "go"); got != nil {
		t.Errorf("Expected no suggestions, got %v", got)
	}
}

func TestSuggestUnsupportedLanguage(t *testing.T) {
	asst := NewAssistant()

	if got := asst.Suggest("fmain", "python"); got != nil {
		t.Errorf("Expected no suggestions for unsupported language, got %v", got)
	}
}

func TestContextSuggestion(t *testing.T) {
	asst := NewAssistant()

	tests := []struct {
		functionName string
		contains     string
	}{
		{"main", "func main()"},
		{"runMainLoop", "func main()"},
		{"NewServer", "struct"},
		{"helper", ""},
	}

	for _, test := range tests {
		got := asst.ContextSuggestion(Context{FunctionName: test.functionName})
		if test.contains == "" {
			if got != "" {
				t.Errorf("ContextSuggestion(%q): expected empty, got %q", test.functionName, got)
			}
			continue
		}
		if !strings.Contains(got, test.contains) {
			t.Errorf("ContextSuggestion(%q): expected snippet containing %q, got %q",
				test.functionName, test.contains, got)
		}
	}
}
