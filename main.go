package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lizhen-jack/agent-toolkit/internal/mockgen"
	"github.com/lizhen-jack/agent-toolkit/internal/types"
)

// generateMockServer reads a spec file, discovers its endpoints and writes
// the generated mock server source to outPath (or stdout).
func generateMockServer(specPath, outPath, format string) error {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return fmt.Errorf("failed to read spec file: %w", err)
	}

	log.Printf("=== GENERATING MOCK SERVER ===")
	log.Printf("Spec file: %s (%d bytes)", specPath, len(data))
	log.Printf("Spec format: %s", format)

	var endpoints []types.Endpoint
	switch format {
	case "openapi":
		endpoints, err = mockgen.LoadSpec(data)
	case "doc":
		var doc any
		doc, err = mockgen.DecodeDocument(data)
		if err == nil {
			endpoints, err = mockgen.Parse(doc)
		}
	default:
		return fmt.Errorf("unknown spec format %q (want openapi or doc)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to parse spec: %w", err)
	}

	log.Printf("Discovered %d endpoints", len(endpoints))
	for _, ep := range endpoints {
		log.Printf("  %s %s", ep.Method, ep.Path)
	}

	code := mockgen.Emit(endpoints)

	if outPath == "" {
		fmt.Print(code)
	} else {
		if err := os.WriteFile(outPath, []byte(code), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Printf("Wrote %d bytes to %s", len(code), outPath)
	}
	log.Printf("==============================")

	return nil
}

func main() {
	var specPath string
	var outPath string
	var format string
	var example bool

	// Define command-line flags
	flag.StringVar(&specPath, "spec", "", "OpenAPI spec file to generate a mock server from")
	flag.StringVar(&outPath, "out", "", "File to write the generated mock server to (default stdout)")
	flag.StringVar(&format, "format", "openapi", "Spec format: openapi (full spec) or doc (bare paths mapping)")
	flag.BoolVar(&example, "example", false, "Run example mode to show the toolkit instead of starting the server")

	// Custom usage message
	flag.Usage = func() {
		log.Printf("Usage: %s [-spec <file> [-out <file>] [-format openapi|doc]] [-example]\n", os.Args[0])
		log.Println("\nFlags:")
		flag.PrintDefaults()
		log.Println("\nExamples:")
		log.Printf("  %s -spec api.yaml -out mock_server.go\n", os.Args[0])
		log.Printf("  %s -spec paths.json -format doc\n", os.Args[0])
		log.Printf("  %s -example\n", os.Args[0])
		log.Printf("  %s              (starts the MCP server on stdio)\n", os.Args[0])
	}

	// Parse command-line flags
	flag.Parse()

	if example {
		// Run example mode
		runExample()
		return
	}

	if specPath != "" {
		if err := generateMockServer(specPath, outPath, format); err != nil {
			log.Fatalf("Failed to generate mock server: %v", err)
		}
		return
	}

	// Start the MCP server
	server := NewToolkitMCPServer()
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
