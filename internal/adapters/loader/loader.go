// Package loader parses OpenAPI and Swagger documents into the domain model.
package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/stueynz/openapi-to-postman/internal/domain"
)

// versionHeader holds the fields that identify the specification flavour.
type versionHeader struct {
	OpenAPI string `yaml:"openapi"`
	Swagger string `yaml:"swagger"`
}

// Load parses spec text (YAML or JSON, OpenAPI 3.x or Swagger 2.0) and maps it
// into a domain document. Problems with the document itself are reported as
// *domain.OpenAPIError.
func Load(ctx context.Context, data []byte) (*domain.OpenAPIDocument, error) {
	var header versionHeader
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, domain.NewOpenAPIError("Invalid format. Input must be in YAML or JSON format.",
			map[string]any{"error": err.Error()})
	}

	switch {
	case strings.HasPrefix(header.OpenAPI, "3."):
		return loadV3(ctx, data)
	case header.Swagger == "2.0":
		upgraded, err := upgradeSwagger(data)
		if err != nil {
			return nil, err
		}

		return loadV3(ctx, upgraded)
	case header.OpenAPI != "":
		return nil, domain.NewOpenAPIError(fmt.Sprintf("Unsupported OpenAPI version: %s", header.OpenAPI),
			map[string]any{"version": header.OpenAPI})
	case header.Swagger != "":
		return nil, domain.NewOpenAPIError(fmt.Sprintf("Unsupported Swagger version: %s", header.Swagger),
			map[string]any{"version": header.Swagger})
	default:
		return nil, domain.NewOpenAPIError("Specification must contain a semantic version number of the OAS specification", nil)
	}
}

func loadV3(ctx context.Context, data []byte) (*domain.OpenAPIDocument, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	loader.IsExternalRefsAllowed = false

	spec, err := loader.LoadFromData(data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, domain.NewOpenAPIError("Failed to parse OpenAPI specification: "+err.Error(),
			map[string]any{"error": err.Error()})
	}

	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, domain.NewOpenAPIError("Invalid OpenAPI specification: "+err.Error(),
			map[string]any{"error": err.Error()})
	}

	if spec.Info == nil {
		return nil, domain.NewOpenAPIError("Specification must contain an Info Object for the meta-data of the API", nil)
	}

	return newMapper().document(spec), nil
}
