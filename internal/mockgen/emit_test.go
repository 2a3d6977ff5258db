package mockgen

import (
	"strings"
	"testing"

	"github.com/lizhen-jack/agent-toolkit/internal/types"
)

func TestEmitEmpty(t *testing.T) {
	out := Emit(nil)

	for _, marker := range []string{
		"package main",
		"const defaultPort = 5000",
		"func main()",
		"http.ListenAndServe",
	} {
		if !strings.Contains(out, marker) {
			t.Errorf("Expected output to contain %q", marker)
		}
	}

	if strings.Contains(out, "func mock_") {
		t.Error("Expected no handler blocks for empty endpoint list")
	}
	if strings.Contains(out, "mux.HandleFunc(\"") {
		t.Error("Expected no route registrations for empty endpoint list")
	}
}

func TestEmitSingleEndpoint(t *testing.T) {
	out := Emit([]types.Endpoint{
		{Method: "GET", Path: "/api/users", Summary: "list users"},
	})

	if n := strings.Count(out, "func mock_"); n != 1 {
		t.Fatalf("Expected exactly 1 handler block, got %d", n)
	}

	for _, marker := range []string{
		"func mock_get_api_users(w http.ResponseWriter, r *http.Request)",
		`mux.HandleFunc("GET /api/users", mock_get_api_users)`,
		"// list users",
		`"Mock response for GET /api/users"`,
		`"id":        "mock_id_123"`,
	} {
		if !strings.Contains(out, marker) {
			t.Errorf("Expected output to contain %q", marker)
		}
	}
}

func TestEmitDefaultDocForEmptySummary(t *testing.T) {
	out := Emit([]types.Endpoint{{Method: "POST", Path: "/x", Summary: ""}})

	if !strings.Contains(out, "// Mock endpoint for POST /x") {
		t.Error("Expected placeholder doc comment for empty summary")
	}
}

func TestEmitDeterministic(t *testing.T) {
	doc := mustDecode(t, `{"paths": {"/api/users": {"get": {"summary": "list users"}, "post": {}}, "/api/users/{id}": {"get": {}}}}`)

	first, err := Parse(doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := Parse(doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if Emit(first) != Emit(second) {
		t.Error("Expected byte-identical output across runs")
	}
}

func TestEmitCollisionSuffix(t *testing.T) {
	// /a-b and /a_b both sanitize to _a_b; the second gets a numeric suffix.
	out := Emit([]types.Endpoint{
		{Method: "GET", Path: "/a-b"},
		{Method: "GET", Path: "/a_b"},
	})

	if !strings.Contains(out, "func mock_get_a_b(") {
		t.Error("Expected first handler to keep the base name")
	}
	if !strings.Contains(out, "func mock_get_a_b_2(") {
		t.Error("Expected second handler to get a numeric suffix")
	}
	if !strings.Contains(out, `mux.HandleFunc("GET /a_b", mock_get_a_b_2)`) {
		t.Error("Expected suffixed handler to be registered for its own path")
	}
}

func TestHandlerName(t *testing.T) {
	tests := []struct {
		method   string
		path     string
		expected string
	}{
		{"GET", "/api/users", "mock_get_api_users"},
		{"POST", "/api/users/{id}", "mock_post_api_users__id_"},
		{"DELETE", "/API/V1", "mock_delete_api_v1"},
		{"GET", "/", "mock_get_"},
	}

	for _, test := range tests {
		if got := handlerName(test.method, test.path); got != test.expected {
			t.Errorf("handlerName(%s, %s): expected %s, got %s",
				test.method, test.path, test.expected, got)
		}
	}
}
