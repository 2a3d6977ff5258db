// Package toolkit bundles the agent tools behind a name-keyed dispatch
// table. The tool set is closed: each tool implements a fixed method-call
// contract, so dispatch needs no reflection.
package toolkit

import (
	"fmt"
	"strings"
)

// Tool is the contract every registered tool implements. Call dispatches a
// named method with loosely-typed arguments and returns a JSON-encodable
// result.
type Tool interface {
	Name() string
	Description() string
	Call(method string, args map[string]any) (any, error)
}

// ToolInfo describes one registered tool for listings.
type ToolInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Confidence  float64  `json:"confidence"`
	Methods     []string `json:"methods"`
}

// Info summarizes the whole registry.
type Info struct {
	TotalTools int        `json:"total_tools"`
	Tools      []ToolInfo `json:"tools"`
}

// Toolkit is the registry of named tools, constructed once at startup.
type Toolkit struct {
	tools map[string]Tool
	order []string
}

// New builds the registry with the full tool set.
func New() *Toolkit {
	t := &Toolkit{tools: make(map[string]Tool)}
	t.register(newOptimizerTool())
	t.register(newEnhancerTool())
	t.register(newMockGeneratorTool())
	t.register(newCompletionTool())
	return t
}

func (t *Toolkit) register(tool Tool) {
	t.tools[tool.Name()] = tool
	t.order = append(t.order, tool.Name())
}

// Use dispatches a method call to the named tool.
func (t *Toolkit) Use(name, method string, args map[string]any) (any, error) {
	tool, ok := t.tools[name]
	if !ok {
		return nil, fmt.Errorf("tool %q not found, available: %s", name, strings.Join(t.order, ", "))
	}
	return tool.Call(method, args)
}

// Names returns the tool names in registration order.
func (t *Toolkit) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// List describes every registered tool in registration order.
func (t *Toolkit) List() Info {
	info := Info{TotalTools: len(t.order)}
	for _, name := range t.order {
		tool := t.tools[name]
		info.Tools = append(info.Tools, ToolInfo{
			Name:        tool.Name(),
			Description: tool.Description(),
			Confidence:  toolConfidence[name],
			Methods:     toolMethods[name],
		})
	}
	return info
}

func errUnknownMethod(tool, method string) error {
	return fmt.Errorf("tool %q has no method %q, available: %s",
		tool, method, strings.Join(toolMethods[tool], ", "))
}
