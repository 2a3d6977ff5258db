package mockgen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/lizhen-jack/agent-toolkit/internal/types"
)

// DefaultPort is the port the generated server listens on.
const DefaultPort = 5000

// mockTimestamp is baked into every generated response so that emission is
// byte-for-byte deterministic. It deliberately ignores the real clock.
const mockTimestamp = "2024-01-01T00:00:00Z"

// handlerSpec is the per-endpoint view handed to the server template.
type handlerSpec struct {
	Name   string
	Method string
	Path   string
	Doc    string
}

type serverSpec struct {
	Port      int
	Timestamp string
	Handlers  []handlerSpec
}

var serverTmpl = template.Must(template.New("mockserver").Parse(`// Code generated by agent-toolkit. DO NOT EDIT.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultPort = {{.Port}}

// mockTimestamp keeps generated responses deterministic.
const mockTimestamp = "{{.Timestamp}}"
{{range .Handlers}}
// {{.Name}} handles {{.Method}} {{.Path}}.
// {{.Doc}}
func {{.Name}}(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "Mock response for {{.Method}} {{.Path}}",
		"data": map[string]any{
			"id":        "mock_id_123",
			"timestamp": mockTimestamp,
		},
	})
}
{{end}}
func main() {
	mux := http.NewServeMux()
{{- range .Handlers}}
	mux.HandleFunc("{{.Method}} {{.Path}}", {{.Name}})
{{- end}}
	fmt.Printf("Mock server starting on port %d\n", defaultPort)
	http.ListenAndServe(fmt.Sprintf(":%d", defaultPort), mux)
}
`))

// Emit renders the endpoint list into source text for a minimal net/http mock
// server: one handler per endpoint, registered under a method-qualified mux
// pattern, returning the fixed success payload. An empty list still produces
// the full preamble and entry point with zero handler blocks.
//
// The output is deterministic for a given input. No syntax validation is
// performed on the emitted text; a path that sanitizes badly is the input
// document's problem.
func Emit(endpoints []types.Endpoint) string {
	spec := serverSpec{
		Port:      DefaultPort,
		Timestamp: mockTimestamp,
	}

	used := make(map[string]int)
	for _, ep := range endpoints {
		name := handlerName(ep.Method, ep.Path)
		// Two paths can sanitize to the same identifier; disambiguate with a
		// numeric suffix in emission order instead of silently overwriting.
		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}

		doc := ep.Summary
		if doc == "" {
			doc = fmt.Sprintf("Mock endpoint for %s %s", ep.Method, ep.Path)
		}

		spec.Handlers = append(spec.Handlers, handlerSpec{
			Name:   name,
			Method: ep.Method,
			Path:   ep.Path,
			Doc:    doc,
		})
	}

	var buf bytes.Buffer
	if err := serverTmpl.Execute(&buf, spec); err != nil {
		// The template and data shape are fixed at compile time.
		panic(err)
	}
	return buf.String()
}

// handlerName derives a deterministic identifier from the method and path:
// lowercased, every non-alphanumeric character replaced with an underscore,
// prefixed with "mock_".
func handlerName(method, path string) string {
	var b strings.Builder
	b.WriteString("mock_")
	b.WriteString(strings.ToLower(method))
	for _, r := range path {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
