package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

// Handler executes one tool against a freshly built backend client and
// returns the raw result or a failure.
type Handler func(ctx context.Context, gs *geoserver.Client, args Args) (Result, error)

// Descriptor binds a tool name to its parameter contract and handler.
// Descriptors are registered once at process start and immutable
// thereafter.
type Descriptor struct {
	Name    string
	Summary string
	// Field is the envelope key the payload is returned under. Empty
	// means the handler's content is itself the payload object.
	Field   string
	Params  []Param
	Handler Handler
}

// Registry is the append-only catalog of registered tools. Registration
// happens before the transport accepts invocations; lookups afterwards
// are read-only and safe for concurrent use.
type Registry struct {
	order  []string
	byName map[string]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register adds a descriptor. A duplicate or unnamed tool is a
// programming error in the catalog, so it panics (mirroring
// http.ServeMux on duplicate patterns).
func (r *Registry) Register(d Descriptor) {
	if d.Name == "" {
		panic("tools: descriptor with empty name")
	}
	if d.Handler == nil {
		panic(fmt.Sprintf("tools: descriptor %s has no handler", d.Name))
	}
	if _, exists := r.byName[d.Name]; exists {
		panic(fmt.Sprintf("tools: duplicate tool name %s", d.Name))
	}
	desc := d
	r.byName[d.Name] = &desc
	r.order = append(r.order, d.Name)
}

// Resolve looks up a descriptor by name.
func (r *Registry) Resolve(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

// ToolInfo is the transport-facing description of one tool.
type ToolInfo struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// List renders the catalog for tools/list, in registration order.
func (r *Registry) List() []ToolInfo {
	out := make([]ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		d := r.byName[name]
		out = append(out, ToolInfo{
			Name:        d.Name,
			Description: d.Summary,
			InputSchema: renderSchema(d.Params),
		})
	}
	return out
}

// renderSchema produces the JSON schema for a parameter list.
func renderSchema(params []Param) json.RawMessage {
	properties := make(map[string]any, len(params))
	var required []string

	for _, p := range params {
		prop := map[string]any{}
		switch p.Type {
		case TypeString:
			prop["type"] = "string"
		case TypeInt:
			prop["type"] = "integer"
		case TypeBool:
			prop["type"] = "boolean"
		case TypeStringList:
			prop["type"] = "array"
			prop["items"] = map[string]any{"type": "string"}
		case TypeObject:
			prop["type"] = "object"
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		properties[p.Name] = prop

		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	data, err := json.Marshal(schema)
	if err != nil {
		// Parameter declarations are static data; this cannot fail.
		panic(fmt.Sprintf("tools: render schema: %v", err))
	}
	return data
}
