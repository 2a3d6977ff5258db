// Package completion suggests code snippets from typed prefixes.
package completion

import "strings"

// snippet pairs a trigger prefix with the code it expands to. Kept as a slice
// so suggestion order is stable.
type snippet struct {
	Trigger string
	Code    string
}

var goSnippets = []snippet{
	{"fprint", "fmt.Printf(\"%v\\n\", value)"},
	{"fmain", `func main() {
	// cursor
}
`},
	{"fstruct", `type Name struct {
}

func NewName() *Name {
	return &Name{}
}
`},
	{"ferr", `if err != nil {
	return fmt.Errorf("operation failed: %w", err)
}
`},
}

// Context carries what is known about the code location being completed.
type Context struct {
	FunctionName string
	Parameters   []string
}

// Assistant provides prefix-triggered snippet suggestions.
type Assistant struct{}

func NewAssistant() *Assistant {
	return &Assistant{}
}

// Suggest returns the snippets whose trigger is a prefix of prefix.
// Only Go is supported; other languages yield nil.
func (a *Assistant) Suggest(prefix, language string) []string {
	if !strings.EqualFold(language, "go") {
		return nil
	}

	var suggestions []string
	for _, s := range goSnippets {
		if strings.HasPrefix(prefix, s.Trigger) {
			suggestions = append(suggestions, s.Code)
		}
	}
	return suggestions
}

// ContextSuggestion picks a snippet from keywords in the surrounding
// function name. Unknown contexts yield an empty string.
func (a *Assistant) ContextSuggestion(ctx Context) string {
	name := strings.ToLower(ctx.FunctionName)
	switch {
	case strings.Contains(name, "main"):
		return lookupSnippet("fmain")
	case strings.Contains(name, "new"):
		return lookupSnippet("fstruct")
	default:
		return ""
	}
}

func lookupSnippet(trigger string) string {
	for _, s := range goSnippets {
		if s.Trigger == trigger {
			return s.Code
		}
	}
	return ""
}
