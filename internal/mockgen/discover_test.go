package mockgen

import (
	"testing"

	"github.com/lizhen-jack/agent-toolkit/internal/types"
)

const widgetSpec = `{
  "openapi": "3.0.3",
  "info": {"title": "widgets", "version": "1.0.0"},
  "paths": {
    "/widgets": {
      "get": {"summary": "List widgets"},
      "post": {"summary": "Create widget"}
    },
    "/widgets/{id}": {
      "get": {"summary": "Get widget"}
    }
  }
}`

func TestLoadSpec(t *testing.T) {
	endpoints, err := LoadSpec([]byte(widgetSpec))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []types.Endpoint{
		{Method: "GET", Path: "/widgets", Summary: "List widgets"},
		{Method: "POST", Path: "/widgets", Summary: "Create widget"},
		{Method: "GET", Path: "/widgets/{id}", Summary: "Get widget"},
	}
	if len(endpoints) != len(expected) {
		t.Fatalf("Expected %d endpoints, got %d", len(expected), len(endpoints))
	}
	for i, want := range expected {
		if endpoints[i] != want {
			t.Errorf("Endpoint %d: expected %+v, got %+v", i, want, endpoints[i])
		}
	}
}

func TestLoadSpecInvalid(t *testing.T) {
	if _, err := LoadSpec([]byte("not a spec")); err == nil {
		t.Error("Expected an error for a non-spec input")
	}
}

func TestLoadSpecFeedsEmitter(t *testing.T) {
	endpoints, err := LoadSpec([]byte(widgetSpec))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	out := Emit(endpoints)
	if out != Emit(endpoints) {
		t.Error("Expected deterministic output for discovered endpoints")
	}
}
