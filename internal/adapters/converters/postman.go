// Package converters provides implementations for converting OpenAPI documents to Postman collections.
package converters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stueynz/openapi-to-postman/internal/adapters/loader"
	"github.com/stueynz/openapi-to-postman/internal/domain"
)

const defaultCollectionName = "OpenAPI Collection"

// PostmanConverter converts OpenAPI documents to Postman Collection v2.1.
type PostmanConverter struct{}

var _ domain.Converter = (*PostmanConverter)(nil)

// NewPostmanConverter creates a new Postman converter.
func NewPostmanConverter() *PostmanConverter {
	return &PostmanConverter{}
}

// Convert transforms the input specification into a single collection output.
func (c *PostmanConverter) Convert(ctx context.Context, input domain.Input, opts domain.Options) (*domain.Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if input.Type != domain.InputTypeString {
		return rejected(fmt.Sprintf("Invalid input type (%s). Type must be string.", input.Type)), nil
	}

	if strings.TrimSpace(input.Data) == "" {
		return rejected("Input not provided"), nil
	}

	doc, err := loader.Load(ctx, []byte(input.Data))
	if err != nil {
		var specErr *domain.OpenAPIError
		if errors.As(err, &specErr) {
			return rejected(specErr.Message), nil
		}

		return nil, fmt.Errorf("failed to load specification: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := newCollectionBuilder(doc, opts)
	collection := b.build()
	collection.Info.PostmanID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(input.Data)).String()

	return &domain.Status{
		Result: true,
		Output: []domain.Output{{
			Type: domain.OutputTypeCollection,
			Data: collection,
		}},
	}, nil
}

func rejected(reason string) *domain.Status {
	return &domain.Status{Result: false, Reason: reason}
}
