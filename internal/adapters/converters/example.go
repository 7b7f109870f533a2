package converters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/stueynz/openapi-to-postman/internal/domain"
)

// maxExampleDepth bounds how deep generated examples nest.
const maxExampleDepth = 8

var formatPlaceholders = map[string]string{
	"int32":     "<integer>",
	"int64":     "<long>",
	"float":     "<float>",
	"double":    "<double>",
	"byte":      "<byte>",
	"binary":    "<binary>",
	"date":      "<date>",
	"date-time": "<dateTime>",
	"password":  "<password>",
	"email":     "<email>",
	"uuid":      "<uuid>",
	"uri":       "<uri>",
	"hostname":  "<hostname>",
	"ipv4":      "<ipv4>",
	"ipv6":      "<ipv6>",
}

// schemaExample builds an example value for a schema. It returns nil for an
// empty schema.
func schemaExample(s domain.Schema, depth int) any {
	switch {
	case s.Example != nil:
		return s.Example
	case s.Default != nil:
		return s.Default
	case len(s.Enum) > 0:
		return s.Enum[0]
	case s.Circular || depth > maxExampleDepth:
		return map[string]any{}
	}

	switch s.Type {
	case "object":
		return objectExample(s, depth)
	case "array":
		if s.Items == nil {
			return []any{}
		}

		return []any{schemaExample(*s.Items, depth+1)}
	case "":
		switch {
		case len(s.Properties) > 0:
			return objectExample(s, depth)
		case s.Items != nil:
			return []any{schemaExample(*s.Items, depth+1)}
		case s.Format != "":
			return placeholder(s)
		default:
			return nil
		}
	default:
		return placeholder(s)
	}
}

func objectExample(s domain.Schema, depth int) map[string]any {
	obj := make(map[string]any, len(s.Properties))
	for name, prop := range s.Properties {
		obj[name] = schemaExample(prop, depth+1)
	}

	return obj
}

func placeholder(s domain.Schema) string {
	if p, ok := formatPlaceholders[s.Format]; ok {
		return p
	}

	if s.Type == "" {
		return "<string>"
	}

	return "<" + s.Type + ">"
}

// parameterExample returns the explicit example of a parameter or one built
// from its schema.
func parameterExample(p domain.Parameter) any {
	if p.Example != nil {
		return p.Example
	}

	if v := schemaExample(p.Schema, 0); v != nil {
		return v
	}

	return "<string>"
}

// mediaExample prefers the media type example, then the alphabetically first
// named example, then the schema.
func mediaExample(media domain.MediaType) any {
	if media.Example != nil {
		return media.Example
	}

	if len(media.Examples) > 0 {
		names := make([]string, 0, len(media.Examples))
		for name := range media.Examples {
			names = append(names, name)
		}
		sort.Strings(names)

		return media.Examples[names[0]]
	}

	return schemaExample(media.Schema, 0)
}

// exampleString renders an example as a single-line parameter value.
func exampleString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, exampleString(item))
		}

		return strings.Join(parts, ",")
	}

	data, err := encodeExample(v, "")
	if err != nil {
		return fmt.Sprint(v)
	}

	return data
}

// formatExample renders an example as a body for the given media type.
func formatExample(mediaType string, v any) string {
	if v == nil {
		return ""
	}

	if !isJSON(mediaType) {
		return exampleString(v)
	}

	data, err := encodeExample(v, "  ")
	if err != nil {
		return fmt.Sprint(v)
	}

	return data
}

// encodeExample marshals v without HTML escaping so placeholders such as
// <string> survive.
func encodeExample(v any, indent string) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(v); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
