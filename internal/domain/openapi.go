// Package domain provides core business models and interfaces for the OpenAPI to Postman converter.
package domain

// OpenAPIDocument represents a parsed OpenAPI specification.
type OpenAPIDocument struct {
	Title           string
	Version         string
	Description     string
	Servers         []Server
	Tags            []Tag
	Paths           []Path // sorted by Path
	SecuritySchemes map[string]SecurityScheme
	Security        []SecurityRequirement
}

// SecurityRequirement maps security scheme names to required scopes.
type SecurityRequirement map[string][]string

// SecurityScheme represents a security scheme.
type SecurityScheme struct {
	Type         string // apiKey, http, oauth2, openIdConnect
	Name         string
	Description  string
	In           string
	Scheme       string
	BearerFormat string
	AuthURL      string
	TokenURL     string
	Scopes       []string
}

// Server represents an API server.
type Server struct {
	URL         string
	Description string
	Variables   map[string]ServerVariable
}

// ServerVariable is a substitution variable in a server URL template.
type ServerVariable struct {
	Default     string
	Enum        []string
	Description string
}

// Tag represents an OpenAPI tag.
type Tag struct {
	Name        string
	Description string
}

// Path represents an API endpoint path.
type Path struct {
	Path       string
	Operations []Operation // in MethodOrder
}

// MethodOrder is the order in which operations of a path are emitted.
var MethodOrder = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH", "TRACE"}

// Operation represents an HTTP operation on a path.
type Operation struct {
	Method      string
	Summary     string
	Description string
	OperationID string
	Deprecated  bool
	Tags        []string
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   []Response // sorted by StatusCode
	// Security is nil when the operation inherits the document requirements.
	Security []SecurityRequirement
}

// Parameter represents a request parameter.
type Parameter struct {
	Name        string
	In          string // query, path, header, cookie
	Description string
	Required    bool
	Schema      Schema
	Example     any
}

// RequestBody represents a request body.
type RequestBody struct {
	Description string
	Required    bool
	Content     map[string]MediaType
}

// MediaType represents the content type and schema.
type MediaType struct {
	Schema   Schema
	Example  any
	Examples map[string]any
}

// Response represents an API response.
type Response struct {
	StatusCode  string
	Description string
	Content     map[string]MediaType
}

// Schema represents a JSON schema for request/response bodies.
// Composition keywords are flattened when the document is loaded.
type Schema struct {
	Type        string
	Format      string
	Description string
	Properties  map[string]Schema
	Items       *Schema
	Ref         string
	Required    []string
	Enum        []any
	Example     any
	Default     any
	// Circular is set when the schema refers back to one of its ancestors.
	Circular bool
}
