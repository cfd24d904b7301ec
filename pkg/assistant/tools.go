package assistant

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openai/openai-go"
)

// Capability tags accepted in Descriptor.Tools.
const (
	ToolCodeInterpreter = "code_interpreter"
	ToolFileSearch      = "file_search"
)

type capability func() openai.AssistantToolUnionParam

// Registry maps capability tags to API tool definitions.
type Registry struct {
	registry map[string]capability
}

// NewRegistry builds a registry with the built-in capabilities.
func NewRegistry() *Registry {
	r := &Registry{registry: make(map[string]capability)}
	r.register(ToolCodeInterpreter, func() openai.AssistantToolUnionParam {
		return openai.AssistantToolUnionParam{OfCodeInterpreter: &openai.CodeInterpreterToolParam{}}
	})
	r.register(ToolFileSearch, func() openai.AssistantToolUnionParam {
		return openai.AssistantToolUnionParam{OfFileSearch: &openai.FileSearchToolParam{}}
	})
	return r
}

func (r *Registry) register(tag string, c capability) {
	r.registry[tag] = c
}

// Names lists the supported tags in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.registry))
	for name := range r.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions resolves tags into tool params. Unknown tags are an error.
func (r *Registry) Definitions(tags []string) ([]openai.AssistantToolUnionParam, error) {
	params := make([]openai.AssistantToolUnionParam, 0, len(tags))
	for _, tag := range tags {
		c, ok := r.registry[strings.ToLower(strings.TrimSpace(tag))]
		if !ok {
			return nil, fmt.Errorf("unknown tool %q (supported: %s)", tag, strings.Join(r.Names(), ", "))
		}
		params = append(params, c())
	}
	return params, nil
}
