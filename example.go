package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/lizhen-jack/agent-toolkit/internal/toolkit"
)

// runExample walks through the toolkit: list the tools, optimize a prompt,
// and generate a mock server from a small inline spec.
func runExample() {
	kit := toolkit.New()

	info := kit.List()
	fmt.Printf("Toolkit with %d tools:\n", info.TotalTools)
	for _, tool := range info.Tools {
		fmt.Printf("- %s (confidence: %.2f)\n", tool.Name, tool.Confidence)
		fmt.Printf("  %s\n", tool.Description)
		fmt.Printf("  Methods: %s\n", strings.Join(tool.Methods, ", "))
	}

	// Prompt optimization
	prompt := "请帮助我  理解这段代码，  你能给出详细解释吗？"
	optimized, err := kit.Use(toolkit.ToolTokenOptimizer, "optimize_prompt",
		map[string]any{"prompt": prompt})
	if err != nil {
		log.Fatalf("optimize_prompt failed: %v", err)
	}
	tokens, err := kit.Use(toolkit.ToolTokenOptimizer, "estimate_tokens",
		map[string]any{"text": optimized})
	if err != nil {
		log.Fatalf("estimate_tokens failed: %v", err)
	}

	fmt.Printf("\nPrompt optimization:\n")
	fmt.Printf("  Original:  %s\n", prompt)
	fmt.Printf("  Optimized: %s\n", optimized)
	fmt.Printf("  Estimated tokens: %v\n", tokens)

	// Mock server generation
	spec := `{"paths": {"/api/users": {"get": {"summary": "list users"}, "post": {"summary": "create user"}}}}`
	code, err := kit.Use(toolkit.ToolAPIMockGenerator, "generate_mock_server",
		map[string]any{"spec": spec})
	if err != nil {
		log.Fatalf("generate_mock_server failed: %v", err)
	}

	fmt.Printf("\nGenerated mock server:\n%s\n", code)

	// Modality detection
	modality, err := kit.Use(toolkit.ToolMultimodalEnhancer, "detect_modality",
		map[string]any{"path": "screenshot.png"})
	if err != nil {
		log.Fatalf("detect_modality failed: %v", err)
	}
	fmt.Printf("Modality of screenshot.png: %v\n", modality)

	fmt.Println("\nTo use this as an MCP server, run the binary with no flags and")
	fmt.Println("configure your MCP client to launch it over stdio.")
}
