package tools

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
)

// ParamType is the semantic type of a tool parameter.
type ParamType string

const (
	TypeString     ParamType = "string"
	TypeInt        ParamType = "integer"
	TypeBool       ParamType = "boolean"
	TypeStringList ParamType = "string_list"
	TypeObject     ParamType = "object"
)

// Param declares one named tool parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	Default     any   // bound when the argument is absent; nil = no default
	Enum        []any // allowed values; empty = unrestricted
}

// Args holds bound, validated arguments. Absent optional parameters
// without defaults are simply missing from the map.
type Args map[string]any

// Has reports whether the argument was bound.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns a string argument, or "" when absent.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns an integer argument, or 0 when absent.
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Bool returns a boolean argument, or false when absent.
func (a Args) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// StringList returns a string-list argument, or nil when absent.
func (a Args) StringList(name string) []string {
	v, _ := a[name].([]string)
	return v
}

// Object returns an object argument, or nil when absent.
func (a Args) Object(name string) map[string]any {
	v, _ := a[name].(map[string]any)
	return v
}

// Bind validates raw JSON arguments against a parameter schema.
// Required parameters must be present, types must match, unknown extra
// arguments are rejected, and absent optional parameters take their
// declared default. All failures are validation errors: they are
// detected before any backend call is attempted.
func Bind(params []Param, raw json.RawMessage) (Args, *Error) {
	provided := make(map[string]json.RawMessage)
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &provided); err != nil {
			return nil, validationError("arguments must be a JSON object: %v", err)
		}
	}

	known := make(map[string]bool, len(params))
	for _, p := range params {
		known[p.Name] = true
	}
	var extras []string
	for name := range provided {
		if !known[name] {
			extras = append(extras, name)
		}
	}
	if len(extras) > 0 {
		sort.Strings(extras)
		return nil, validationError("unknown argument(s): %s", strings.Join(extras, ", "))
	}

	bound := make(Args, len(params))
	for _, p := range params {
		rawVal, ok := provided[p.Name]
		if !ok || string(rawVal) == "null" {
			if p.Required {
				return nil, validationError("missing required argument: %s", p.Name)
			}
			if p.Default != nil {
				bound[p.Name] = p.Default
			}
			continue
		}

		val, err := coerce(p, rawVal)
		if err != nil {
			return nil, err
		}
		bound[p.Name] = val
	}
	return bound, nil
}

func coerce(p Param, raw json.RawMessage) (any, *Error) {
	var val any
	switch p.Type {
	case TypeString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, typeMismatch(p, "string")
		}
		val = s

	case TypeInt:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, typeMismatch(p, "integer")
		}
		if f != math.Trunc(f) {
			return nil, typeMismatch(p, "integer")
		}
		val = int(f)

	case TypeBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, typeMismatch(p, "boolean")
		}
		val = b

	case TypeStringList:
		var l []string
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, typeMismatch(p, "list of strings")
		}
		val = l

	case TypeObject:
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, typeMismatch(p, "object")
		}
		val = m

	default:
		return nil, validationError("argument %s has unsupported type %q", p.Name, p.Type)
	}

	if len(p.Enum) > 0 && !enumContains(p.Enum, val) {
		return nil, validationError("argument %s must be one of %v", p.Name, p.Enum)
	}
	return val, nil
}

func typeMismatch(p Param, want string) *Error {
	return validationError("argument %s: expected %s", p.Name, want)
}

func enumContains(enum []any, val any) bool {
	for _, e := range enum {
		if e == val {
			return true
		}
	}
	return false
}
