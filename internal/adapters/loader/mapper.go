package loader

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/stueynz/openapi-to-postman/internal/domain"
)

// mapper converts a kin-openapi document into the domain model.
type mapper struct {
	// visiting holds the schemas on the current conversion path.
	visiting map[*openapi3.Schema]bool
}

func newMapper() *mapper {
	return &mapper{visiting: make(map[*openapi3.Schema]bool)}
}

func (m *mapper) document(spec *openapi3.T) *domain.OpenAPIDocument {
	doc := &domain.OpenAPIDocument{
		Title:           spec.Info.Title,
		Version:         spec.Info.Version,
		Description:     spec.Info.Description,
		SecuritySchemes: make(map[string]domain.SecurityScheme),
		Security:        securityRequirements(spec.Security),
	}

	for _, server := range spec.Servers {
		if server == nil {
			continue
		}

		doc.Servers = append(doc.Servers, serverOf(server))
	}

	for _, tag := range spec.Tags {
		if tag != nil {
			doc.Tags = append(doc.Tags, domain.Tag{
				Name:        tag.Name,
				Description: tag.Description,
			})
		}
	}

	if spec.Paths != nil {
		paths := spec.Paths.Map()
		names := make([]string, 0, len(paths))
		for name := range paths {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			item := paths[name]
			if item == nil {
				continue
			}

			doc.Paths = append(doc.Paths, domain.Path{
				Path:       name,
				Operations: m.operations(item),
			})
		}
	}

	if spec.Components != nil {
		for name, ref := range spec.Components.SecuritySchemes {
			if ref == nil || ref.Value == nil {
				continue
			}

			doc.SecuritySchemes[name] = securityScheme(ref.Value)
		}
	}

	return doc
}

func serverOf(server *openapi3.Server) domain.Server {
	s := domain.Server{
		URL:         server.URL,
		Description: server.Description,
	}

	if len(server.Variables) > 0 {
		s.Variables = make(map[string]domain.ServerVariable, len(server.Variables))
		for name, v := range server.Variables {
			if v == nil {
				continue
			}

			s.Variables[name] = domain.ServerVariable{
				Default:     v.Default,
				Enum:        v.Enum,
				Description: v.Description,
			}
		}
	}

	return s
}

func securityScheme(scheme *openapi3.SecurityScheme) domain.SecurityScheme {
	s := domain.SecurityScheme{
		Type:         scheme.Type,
		Name:         scheme.Name,
		Description:  scheme.Description,
		In:           scheme.In,
		Scheme:       strings.ToLower(scheme.Scheme),
		BearerFormat: scheme.BearerFormat,
	}

	if scheme.Type == "openIdConnect" {
		s.AuthURL = scheme.OpenIdConnectUrl
	}

	if flows := scheme.Flows; flows != nil {
		for _, flow := range []*openapi3.OAuthFlow{flows.AuthorizationCode, flows.Implicit, flows.Password, flows.ClientCredentials} {
			if flow == nil {
				continue
			}

			s.AuthURL = flow.AuthorizationURL
			s.TokenURL = flow.TokenURL
			for scope := range flow.Scopes {
				s.Scopes = append(s.Scopes, scope)
			}
			sort.Strings(s.Scopes)

			break
		}
	}

	return s
}

func securityRequirements(reqs openapi3.SecurityRequirements) []domain.SecurityRequirement {
	if reqs == nil {
		return nil
	}

	result := make([]domain.SecurityRequirement, 0, len(reqs))
	for _, req := range reqs {
		r := make(domain.SecurityRequirement, len(req))
		for name, scopes := range req {
			r[name] = scopes
		}
		result = append(result, r)
	}

	return result
}

func (m *mapper) operations(item *openapi3.PathItem) []domain.Operation {
	var operations []domain.Operation

	methods := map[string]*openapi3.Operation{
		"GET":     item.Get,
		"PUT":     item.Put,
		"POST":    item.Post,
		"DELETE":  item.Delete,
		"OPTIONS": item.Options,
		"HEAD":    item.Head,
		"PATCH":   item.Patch,
		"TRACE":   item.Trace,
	}

	for _, method := range domain.MethodOrder {
		op := methods[method]
		if op == nil {
			continue
		}

		operation := domain.Operation{
			Method:      method,
			Summary:     op.Summary,
			Description: op.Description,
			OperationID: op.OperationID,
			Deprecated:  op.Deprecated,
			Tags:        op.Tags,
			Parameters:  m.parameters(item.Parameters, op.Parameters),
		}

		if op.Security != nil {
			operation.Security = securityRequirements(*op.Security)
			if operation.Security == nil {
				operation.Security = []domain.SecurityRequirement{}
			}
		}

		if op.RequestBody != nil && op.RequestBody.Value != nil {
			operation.RequestBody = &domain.RequestBody{
				Description: op.RequestBody.Value.Description,
				Required:    op.RequestBody.Value.Required,
				Content:     m.content(op.RequestBody.Value.Content),
			}
		}

		if op.Responses != nil {
			responses := op.Responses.Map()
			codes := make([]string, 0, len(responses))
			for code := range responses {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			for _, code := range codes {
				response := responses[code]
				if response == nil || response.Value == nil {
					continue
				}

				resp := domain.Response{
					StatusCode: code,
					Content:    m.content(response.Value.Content),
				}

				if response.Value.Description != nil {
					resp.Description = *response.Value.Description
				}

				operation.Responses = append(operation.Responses, resp)
			}
		}

		operations = append(operations, operation)
	}

	return operations
}

// parameters merges path-level and operation-level parameters. An operation
// parameter replaces a path parameter with the same location and name.
func (m *mapper) parameters(shared, own openapi3.Parameters) []domain.Parameter {
	var result []domain.Parameter

	index := make(map[string]int)
	for _, list := range []openapi3.Parameters{shared, own} {
		for _, ref := range list {
			if ref == nil || ref.Value == nil {
				continue
			}

			p := m.parameter(ref.Value)
			key := p.In + "\x00" + p.Name
			if i, ok := index[key]; ok {
				result[i] = p
				continue
			}

			index[key] = len(result)
			result = append(result, p)
		}
	}

	return result
}

func (m *mapper) parameter(param *openapi3.Parameter) domain.Parameter {
	p := domain.Parameter{
		Name:        param.Name,
		In:          param.In,
		Description: param.Description,
		Required:    param.Required,
		Example:     param.Example,
	}

	if p.Example == nil {
		p.Example = firstExample(param.Examples)
	}

	if param.Schema != nil {
		p.Schema = m.schema(param.Schema)
	} else {
		for _, media := range param.Content {
			if media != nil {
				p.Schema = m.schema(media.Schema)
				break
			}
		}
	}

	return p
}

func (m *mapper) content(content openapi3.Content) map[string]domain.MediaType {
	result := make(map[string]domain.MediaType)

	for mediaType, item := range content {
		if item == nil {
			continue
		}

		mt := domain.MediaType{
			Schema:  m.schema(item.Schema),
			Example: item.Example,
		}

		if len(item.Examples) > 0 {
			mt.Examples = make(map[string]any, len(item.Examples))
			for name, ex := range item.Examples {
				if ex != nil && ex.Value != nil {
					mt.Examples[name] = ex.Value.Value
				}
			}
		}

		result[mediaType] = mt
	}

	return result
}

// firstExample returns the value of the alphabetically first named example.
func firstExample(examples openapi3.Examples) any {
	names := make([]string, 0, len(examples))
	for name, ex := range examples {
		if ex != nil && ex.Value != nil {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	return examples[names[0]].Value.Value
}

func (m *mapper) schema(ref *openapi3.SchemaRef) domain.Schema {
	if ref == nil {
		return domain.Schema{}
	}

	schema := domain.Schema{
		Ref: ref.Ref,
	}

	src := ref.Value
	if src == nil {
		return schema
	}

	if m.visiting[src] {
		schema.Circular = true
		return schema
	}
	m.visiting[src] = true
	defer delete(m.visiting, src)

	types := src.Type.Slice()
	if len(types) > 0 {
		schema.Type = types[0]
	}
	schema.Format = src.Format
	schema.Description = src.Description
	schema.Example = src.Example
	schema.Default = src.Default

	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}

	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]domain.Schema, len(src.Properties))
		for name, prop := range src.Properties {
			schema.Properties[name] = m.schema(prop)
		}
	}

	if src.Items != nil {
		items := m.schema(src.Items)
		schema.Items = &items
	}

	for _, part := range src.AllOf {
		mergeSchema(&schema, m.schema(part))
	}

	if schema.Type == "" && len(schema.Properties) == 0 {
		for _, branches := range []openapi3.SchemaRefs{src.OneOf, src.AnyOf} {
			if len(branches) > 0 {
				mergeSchema(&schema, m.schema(branches[0]))
				break
			}
		}
	}

	return schema
}

// mergeSchema folds part into dst, keeping values dst already has.
func mergeSchema(dst *domain.Schema, part domain.Schema) {
	if dst.Type == "" {
		dst.Type = part.Type
	}
	if dst.Format == "" {
		dst.Format = part.Format
	}
	if dst.Description == "" {
		dst.Description = part.Description
	}
	if dst.Example == nil {
		dst.Example = part.Example
	}
	if dst.Default == nil {
		dst.Default = part.Default
	}
	if len(dst.Enum) == 0 {
		dst.Enum = part.Enum
	}
	if dst.Items == nil {
		dst.Items = part.Items
	}
	if len(part.Properties) > 0 {
		if dst.Properties == nil {
			dst.Properties = make(map[string]domain.Schema, len(part.Properties))
		}
		for name, prop := range part.Properties {
			if _, ok := dst.Properties[name]; !ok {
				dst.Properties[name] = prop
			}
		}
	}

	dst.Required = append(dst.Required, part.Required...)

	if part.Circular && dst.Type == "" && len(dst.Properties) == 0 {
		dst.Circular = true
	}
}
