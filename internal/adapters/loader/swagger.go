package loader

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"gopkg.in/yaml.v3"

	"github.com/stueynz/openapi-to-postman/internal/domain"
)

// upgradeSwagger converts a Swagger 2.0 document (YAML or JSON) into
// OpenAPI 3 JSON.
func upgradeSwagger(data []byte) ([]byte, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, domain.NewOpenAPIError("Invalid format. Input must be in YAML or JSON format.",
			map[string]any{"error": err.Error()})
	}

	tree = stringKeys(tree)
	if root, ok := tree.(map[string]any); ok {
		// An unquoted 2.0 decodes as a number.
		root["swagger"] = "2.0"
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode swagger document: %w", err)
	}

	var doc2 openapi2.T
	if err := json.Unmarshal(raw, &doc2); err != nil {
		return nil, domain.NewOpenAPIError("Failed to parse Swagger specification: "+err.Error(),
			map[string]any{"error": err.Error()})
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, domain.NewOpenAPIError("Failed to convert Swagger 2.0 specification: "+err.Error(),
			map[string]any{"error": err.Error()})
	}

	out, err := json.Marshal(doc3)
	if err != nil {
		return nil, fmt.Errorf("failed to encode converted specification: %w", err)
	}

	return out, nil
}

// stringKeys rewrites YAML mappings with non-string keys (such as unquoted
// response codes) into JSON-compatible maps.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = stringKeys(item)
		}

		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, item := range t {
			m[fmt.Sprint(k)] = stringKeys(item)
		}

		return m
	case []any:
		for i, item := range t {
			t[i] = stringKeys(item)
		}

		return t
	default:
		return v
	}
}
