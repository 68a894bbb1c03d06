package llmcli

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/invopop/jsonschema"
)

// SchemaDescriptor is the structural description of the expected output
// shape. It serves both ends of the pipeline: serialized into the augmented
// prompt, and applied to the extracted value before materialization. It is
// never persisted.
type SchemaDescriptor struct {
	raw        json.RawMessage
	required   []string
	properties map[string]propertySpec
}

type propertySpec struct {
	// Type is a string for the common case; JSON Schema also permits an
	// array of types, which we treat as unconstrained here.
	Type any `json:"type"`
}

// SchemaFor reflects a descriptor from a Go struct type. One set of json
// struct tags drives both the instructions sent to the tool and the
// validation applied to its answer.
func SchemaFor[T any]() (*SchemaDescriptor, error) {
	reflector := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	var zero T
	schema := reflector.Reflect(&zero)
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal reflected schema: %w", err)
	}
	return SchemaFromJSON(data)
}

// SchemaFromJSON builds a descriptor from a raw JSON Schema document, e.g. one
// loaded from a file by the ask command.
func SchemaFromJSON(data []byte) (*SchemaDescriptor, error) {
	var doc struct {
		Properties map[string]propertySpec `json:"properties"`
		Required   []string                `json:"required"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid schema document: %w", err)
	}
	return &SchemaDescriptor{
		raw:        data,
		required:   doc.Required,
		properties: doc.Properties,
	}, nil
}

// JSON returns the serialized schema document embedded in prompts.
func (d *SchemaDescriptor) JSON() string {
	return string(d.raw)
}

// Validate checks structural conformance of an extracted value: every
// required field present, top-level types matching the schema. It returns a
// *SchemaError describing the first violation.
func (d *SchemaDescriptor) Validate(value map[string]any) error {
	for _, field := range d.required {
		if _, ok := value[field]; !ok {
			return &SchemaError{Detail: fmt.Sprintf("required field %q missing", field)}
		}
	}
	for field, got := range value {
		spec, ok := d.properties[field]
		if !ok {
			continue
		}
		want, ok := spec.Type.(string)
		if !ok {
			continue
		}
		if !typeConforms(want, got) {
			return &SchemaError{Detail: fmt.Sprintf("field %q: expected %s, got %T", field, want, got)}
		}
	}
	return nil
}

// typeConforms compares a JSON Schema primitive type name against the dynamic
// type encoding/json produced. Unknown type names are not rejected.
func typeConforms(schemaType string, v any) bool {
	if v == nil {
		return true
	}
	switch schemaType {
	case "string":
		_, ok := v.(string)
		return ok
	case "number":
		_, ok := v.(float64)
		return ok
	case "integer":
		f, ok := v.(float64)
		return ok && f == math.Trunc(f)
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "array":
		_, ok := v.([]any)
		return ok
	case "object":
		_, ok := v.(map[string]any)
		return ok
	default:
		return true
	}
}
