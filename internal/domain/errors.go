package domain

import "errors"

// ErrOpenAPI matches any *OpenAPIError through errors.Is.
var ErrOpenAPI = errors.New("openapi error")

// OpenAPIError reports a specification that cannot be converted, as opposed
// to a failure of the conversion machinery itself.
type OpenAPIError struct {
	Message string
	Data    map[string]any
}

// NewOpenAPIError creates an OpenAPIError. A nil data map is replaced by an
// empty one.
func NewOpenAPIError(message string, data map[string]any) *OpenAPIError {
	if data == nil {
		data = map[string]any{}
	}

	return &OpenAPIError{Message: message, Data: data}
}

// Error returns the message.
func (e *OpenAPIError) Error() string {
	return e.Message
}

// Is reports whether target is ErrOpenAPI.
func (e *OpenAPIError) Is(target error) bool {
	return target == ErrOpenAPI
}
