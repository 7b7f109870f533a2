package domain

import "context"

// InputType identifies how Input.Data should be interpreted.
type InputType string

// InputTypeString means Input.Data holds the raw specification text.
const InputTypeString InputType = "string"

// Input is the specification handed to a Converter.
type Input struct {
	Type InputType
	Data string
}

// Options tune how a collection is generated.
type Options struct {
	// DisableQueryParams marks every generated query parameter as disabled.
	DisableQueryParams bool
	// DisableHeaderParams marks every generated header parameter as disabled.
	DisableHeaderParams bool
	// AccessToken is used as the token value of generated OAuth2 auth blocks.
	AccessToken string
}

// Status is the outcome of a conversion that ran to completion.
// When Result is false the input could not be converted and Reason says why.
type Status struct {
	Result bool
	Reason string
	Output []Output
}

// Output is a single artifact produced by a conversion.
type Output struct {
	Type string
	Data *Collection
}

// OutputTypeCollection tags an Output holding a Postman collection.
const OutputTypeCollection = "collection"

// Converter defines the interface for specification converters.
type Converter interface {
	// Convert transforms the input specification. A non-nil error means the
	// conversion itself failed; an unconvertible input is reported through
	// Status.Result instead.
	Convert(ctx context.Context, input Input, opts Options) (*Status, error)
}
