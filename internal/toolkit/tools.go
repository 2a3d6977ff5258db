package toolkit

import (
	"github.com/spf13/cast"

	"github.com/lizhen-jack/agent-toolkit/internal/completion"
	"github.com/lizhen-jack/agent-toolkit/internal/mockgen"
	"github.com/lizhen-jack/agent-toolkit/internal/multimodal"
	"github.com/lizhen-jack/agent-toolkit/internal/tokenopt"
	"github.com/lizhen-jack/agent-toolkit/internal/types"
)

// Tool and method names exposed through the registry.
const (
	ToolTokenOptimizer     = "token_optimizer"
	ToolMultimodalEnhancer = "multimodal_enhancer"
	ToolAPIMockGenerator   = "api_mock_generator"
	ToolCodeCompletion     = "code_completion"
)

var toolConfidence = map[string]float64{
	ToolTokenOptimizer:     0.92,
	ToolMultimodalEnhancer: 0.88,
	ToolAPIMockGenerator:   0.87,
	ToolCodeCompletion:     0.86,
}

var toolMethods = map[string][]string{
	ToolTokenOptimizer:     {"optimize_prompt", "estimate_tokens", "usage_stats"},
	ToolMultimodalEnhancer: {"detect_modality", "analyze_image", "extract_audio_features"},
	ToolAPIMockGenerator:   {"parse_openapi", "generate_mock_server"},
	ToolCodeCompletion:     {"suggest_completion", "context_suggestion"},
}

// optimizerTool adapts tokenopt.Optimizer to the Tool contract.
type optimizerTool struct {
	opt *tokenopt.Optimizer
}

func newOptimizerTool() *optimizerTool {
	return &optimizerTool{opt: tokenopt.NewOptimizer()}
}

func (t *optimizerTool) Name() string { return ToolTokenOptimizer }

func (t *optimizerTool) Description() string {
	return "Shortens prompts and estimates their token cost"
}

func (t *optimizerTool) Call(method string, args map[string]any) (any, error) {
	switch method {
	case "optimize_prompt":
		return t.opt.OptimizePrompt(cast.ToString(args["prompt"])), nil
	case "estimate_tokens":
		return t.opt.EstimateTokens(cast.ToString(args["text"])), nil
	case "usage_stats":
		return t.opt.Stats(), nil
	default:
		return nil, errUnknownMethod(t.Name(), method)
	}
}

// enhancerTool adapts multimodal.Enhancer to the Tool contract.
type enhancerTool struct {
	enh *multimodal.Enhancer
}

func newEnhancerTool() *enhancerTool {
	return &enhancerTool{enh: multimodal.NewEnhancer()}
}

func (t *enhancerTool) Name() string { return ToolMultimodalEnhancer }

func (t *enhancerTool) Description() string {
	return "Classifies files by media category and returns simulated analyses"
}

func (t *enhancerTool) Call(method string, args map[string]any) (any, error) {
	path := cast.ToString(args["path"])
	switch method {
	case "detect_modality":
		modality, supported := t.enh.DetectModality(path)
		return map[string]any{
			"modality":  string(modality),
			"supported": supported,
		}, nil
	case "analyze_image":
		return t.enh.AnalyzeImage(path), nil
	case "extract_audio_features":
		return t.enh.ExtractAudioFeatures(path), nil
	default:
		return nil, errUnknownMethod(t.Name(), method)
	}
}

// mockGeneratorTool adapts the mockgen parse/emit pipeline to the Tool
// contract. The spec argument is the raw JSON or YAML document text; a
// pre-decoded mapping can be passed as document instead.
type mockGeneratorTool struct{}

func newMockGeneratorTool() *mockGeneratorTool {
	return &mockGeneratorTool{}
}

func (t *mockGeneratorTool) Name() string { return ToolAPIMockGenerator }

func (t *mockGeneratorTool) Description() string {
	return "Generates mock server source code from an OpenAPI-style spec"
}

func (t *mockGeneratorTool) Call(method string, args map[string]any) (any, error) {
	switch method {
	case "parse_openapi":
		endpoints, err := t.parse(args)
		if err != nil {
			return nil, err
		}
		return endpoints, nil
	case "generate_mock_server":
		endpoints, err := t.parse(args)
		if err != nil {
			return nil, err
		}
		return mockgen.Emit(endpoints), nil
	default:
		return nil, errUnknownMethod(t.Name(), method)
	}
}

func (t *mockGeneratorTool) parse(args map[string]any) ([]types.Endpoint, error) {
	doc, ok := args["document"]
	if !ok {
		decoded, err := mockgen.DecodeDocument([]byte(cast.ToString(args["spec"])))
		if err != nil {
			return nil, err
		}
		doc = decoded
	}
	return mockgen.Parse(doc)
}

// completionTool adapts completion.Assistant to the Tool contract.
type completionTool struct {
	asst *completion.Assistant
}

func newCompletionTool() *completionTool {
	return &completionTool{asst: completion.NewAssistant()}
}

func (t *completionTool) Name() string { return ToolCodeCompletion }

func (t *completionTool) Description() string {
	return "Suggests code snippets from typed prefixes"
}

func (t *completionTool) Call(method string, args map[string]any) (any, error) {
	switch method {
	case "suggest_completion":
		language := cast.ToString(args["language"])
		if language == "" {
			language = "go"
		}
		return t.asst.Suggest(cast.ToString(args["prefix"]), language), nil
	case "context_suggestion":
		return t.asst.ContextSuggestion(completion.Context{
			FunctionName: cast.ToString(args["function_name"]),
			Parameters:   cast.ToStringSlice(args["parameters"]),
		}), nil
	default:
		return nil, errUnknownMethod(t.Name(), method)
	}
}
