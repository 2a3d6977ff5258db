package mockgen

import (
	"fmt"
	"strings"

	"github.com/pb33f/libopenapi"
	v3high "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/lizhen-jack/agent-toolkit/internal/types"
)

// LoadSpec parses a full OpenAPI 3 document and discovers its endpoints.
//
// This is the file-facing companion to Parse: real specs carry version and
// info sections the toy document shape omits, so they go through libopenapi
// instead of the plain mapping decoder. Discovery order follows the document:
// path definition order, then operation definition order within each path.
func LoadSpec(data []byte) ([]types.Endpoint, error) {
	document, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create openapi document: %w", err)
	}

	model, buildErrs := document.BuildV3Model()
	if model == nil {
		return nil, fmt.Errorf("failed to build openapi v3 model: %v", buildErrs)
	}

	return discoverEndpoints(&model.Model), nil
}

// discoverEndpoints walks the model's ordered path items and collects one
// endpoint per recognized operation.
func discoverEndpoints(model *v3high.Document) []types.Endpoint {
	if model == nil || model.Paths == nil {
		return nil
	}

	var endpoints []types.Endpoint
	for pathPair := model.Paths.PathItems.First(); pathPair != nil; pathPair = pathPair.Next() {
		path := pathPair.Key()
		pathItem := pathPair.Value()

		for opPair := pathItem.GetOperations().First(); opPair != nil; opPair = opPair.Next() {
			verb := strings.ToUpper(opPair.Key())
			if !httpVerbs[verb] {
				continue
			}

			endpoints = append(endpoints, types.Endpoint{
				Method:  verb,
				Path:    path,
				Summary: opPair.Value().Summary,
			})
		}
	}

	return endpoints
}
