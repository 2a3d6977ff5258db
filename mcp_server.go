package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lizhen-jack/agent-toolkit/internal/toolkit"
)

const mcpToolPrefix = "toolkit_"

// toolRoute binds one exposed MCP tool to a (tool, method) pair in the
// toolkit registry.
type toolRoute struct {
	name        string
	tool        string
	method      string
	description string
	params      []paramSpec
}

type paramSpec struct {
	name        string
	description string
	required    bool
}

// toolRoutes is the full routing table, one entry per toolkit operation.
var toolRoutes = []toolRoute{
	{
		name:        "optimize_prompt",
		tool:        toolkit.ToolTokenOptimizer,
		method:      "optimize_prompt",
		description: "Shorten a prompt by collapsing whitespace and stripping filler phrases",
		params:      []paramSpec{{"prompt", "The prompt text to optimize", true}},
	},
	{
		name:        "estimate_tokens",
		tool:        toolkit.ToolTokenOptimizer,
		method:      "estimate_tokens",
		description: "Estimate the token count of a piece of text",
		params:      []paramSpec{{"text", "The text to estimate", true}},
	},
	{
		name:        "usage_stats",
		tool:        toolkit.ToolTokenOptimizer,
		method:      "usage_stats",
		description: "Report cumulative token usage totals",
	},
	{
		name:        "detect_modality",
		tool:        toolkit.ToolMultimodalEnhancer,
		method:      "detect_modality",
		description: "Infer the media category (image/audio/video) from a file path",
		params:      []paramSpec{{"path", "File path to classify", true}},
	},
	{
		name:        "analyze_image",
		tool:        toolkit.ToolMultimodalEnhancer,
		method:      "analyze_image",
		description: "Return a simulated analysis of an image file",
		params:      []paramSpec{{"path", "Image file path", true}},
	},
	{
		name:        "extract_audio_features",
		tool:        toolkit.ToolMultimodalEnhancer,
		method:      "extract_audio_features",
		description: "Return simulated features of an audio file",
		params:      []paramSpec{{"path", "Audio file path", true}},
	},
	{
		name:        "parse_openapi",
		tool:        toolkit.ToolAPIMockGenerator,
		method:      "parse_openapi",
		description: "Extract the endpoint list from an OpenAPI-style document",
		params:      []paramSpec{{"spec", "The spec document as JSON or YAML text", true}},
	},
	{
		name:        "generate_mock_server",
		tool:        toolkit.ToolAPIMockGenerator,
		method:      "generate_mock_server",
		description: "Generate mock server source code from an OpenAPI-style document",
		params:      []paramSpec{{"spec", "The spec document as JSON or YAML text", true}},
	},
	{
		name:        "suggest_completion",
		tool:        toolkit.ToolCodeCompletion,
		method:      "suggest_completion",
		description: "Suggest code snippets matching a typed prefix",
		params: []paramSpec{
			{"prefix", "The typed prefix to complete", true},
			{"language", "Target language (default: go)", false},
		},
	},
	{
		name:        "context_suggestion",
		tool:        toolkit.ToolCodeCompletion,
		method:      "context_suggestion",
		description: "Suggest a snippet from the surrounding function context",
		params:      []paramSpec{{"function_name", "Name of the enclosing function", true}},
	},
}

// ToolkitMCPServer exposes the toolkit registry as MCP tools over stdio.
type ToolkitMCPServer struct {
	toolkit   *toolkit.Toolkit
	mcpServer *server.MCPServer
}

// NewToolkitMCPServer creates the MCP server around a freshly built toolkit.
func NewToolkitMCPServer() *ToolkitMCPServer {
	return &ToolkitMCPServer{
		toolkit: toolkit.New(),
		mcpServer: server.NewMCPServer(
			"agent-toolkit",
			"1.0.0",
			server.WithToolCapabilities(false),
		),
	}
}

// generateTools builds the MCP tool definitions from the routing table, plus
// a list_tools tool describing the registry itself.
func (s *ToolkitMCPServer) generateTools() []mcp.Tool {
	var tools []mcp.Tool

	for _, route := range toolRoutes {
		toolOptions := []mcp.ToolOption{
			mcp.WithDescription(fmt.Sprintf("%s\nToolkit tool: %s", route.description, route.tool)),
		}
		for _, param := range route.params {
			paramOptions := []mcp.PropertyOption{mcp.Description(param.description)}
			if param.required {
				paramOptions = append(paramOptions, mcp.Required())
			}
			toolOptions = append(toolOptions, mcp.WithString(param.name, paramOptions...))
		}
		tools = append(tools, mcp.NewTool(mcpToolPrefix+route.name, toolOptions...))
	}

	tools = append(tools, mcp.NewTool(
		mcpToolPrefix+"list_tools",
		mcp.WithDescription("List the registered toolkit tools and their methods"),
	))

	return tools
}

// findRoute resolves an MCP tool name back to its routing table entry.
func findRoute(name string) (toolRoute, bool) {
	for _, route := range toolRoutes {
		if route.name == name {
			return route, true
		}
	}
	return toolRoute{}, false
}

// createToolHandler creates the shared handler for MCP tool calls.
func (s *ToolkitMCPServer) createToolHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		toolName := request.Params.Name

		if !strings.HasPrefix(toolName, mcpToolPrefix) {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid tool name: must start with %q", mcpToolPrefix)), nil
		}
		identifier := strings.TrimPrefix(toolName, mcpToolPrefix)

		if identifier == "list_tools" {
			return jsonResult(s.toolkit.List())
		}

		route, ok := findRoute(identifier)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("No toolkit operation for tool: %s", toolName)), nil
		}

		arguments := request.GetArguments()
		log.Printf("Dispatching toolkit call: %s.%s", route.tool, route.method)
		log.Printf("With arguments: %+v", arguments)

		result, err := s.toolkit.Use(route.tool, route.method, arguments)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Toolkit call failed: %s", err.Error())), nil
		}

		// Source text comes back verbatim; everything else as JSON.
		if text, ok := result.(string); ok {
			return mcp.NewToolResultText(text), nil
		}
		return jsonResult(result)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %s", err.Error())), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Start registers all tools and serves MCP over stdio.
func (s *ToolkitMCPServer) Start() error {
	handler := s.createToolHandler()

	for _, tool := range s.generateTools() {
		currentTool := tool
		s.mcpServer.AddTool(currentTool, handler)
	}

	return server.ServeStdio(s.mcpServer)
}
