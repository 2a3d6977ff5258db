// Package mockgen turns an API description into source text for a minimal
// mock HTTP server: parse the paths mapping into a flat endpoint list, then
// emit one canned handler per endpoint.
package mockgen

import (
	"errors"
	"strings"

	"github.com/lizhen-jack/agent-toolkit/internal/types"
)

// ErrInvalidDocument is returned when the input is not shaped as a mapping.
var ErrInvalidDocument = errors.New("document is not a mapping")

// httpVerbs is the closed set of method keys recognized under a path.
// Anything else (metadata keys, TRACE, ...) is skipped silently.
var httpVerbs = map[string]bool{
	"GET":     true,
	"POST":    true,
	"PUT":     true,
	"DELETE":  true,
	"PATCH":   true,
	"HEAD":    true,
	"OPTIONS": true,
}

// Parse extracts the ordered endpoint list from a decoded API document.
//
// The document must be an ordered mapping (see DecodeDocument); anything else
// fails with ErrInvalidDocument. A missing or empty paths mapping yields no
// endpoints and no error, and malformed nested content is ignored rather than
// rejected. Output order follows the document: outer paths order, then each
// path's method order.
func Parse(doc any) ([]types.Endpoint, error) {
	root, ok := doc.(Document)
	if !ok || root == nil {
		return nil, ErrInvalidDocument
	}

	pathsVal, ok := root.Get("paths")
	if !ok {
		return nil, nil
	}
	paths, ok := pathsVal.(Document)
	if !ok || paths == nil {
		return nil, nil
	}

	var endpoints []types.Endpoint
	for pathPair := paths.Oldest(); pathPair != nil; pathPair = pathPair.Next() {
		methods, ok := pathPair.Value.(Document)
		if !ok || methods == nil {
			continue
		}

		for methodPair := methods.Oldest(); methodPair != nil; methodPair = methodPair.Next() {
			verb := strings.ToUpper(methodPair.Key)
			if !httpVerbs[verb] {
				continue
			}

			summary := ""
			if operation, ok := methodPair.Value.(Document); ok && operation != nil {
				if v, ok := operation.Get("summary"); ok {
					if s, ok := v.(string); ok {
						summary = s
					}
				}
			}

			endpoints = append(endpoints, types.Endpoint{
				Method:  verb,
				Path:    pathPair.Key,
				Summary: summary,
			})
		}
	}

	return endpoints, nil
}
