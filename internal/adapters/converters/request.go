package converters

import (
	"net/http"
	"regexp"
	"sort"
	"strings"

	"github.com/stueynz/openapi-to-postman/internal/domain"
)

var pathParamPattern = regexp.MustCompile(`\{([^{}/]+)\}`)

// reservedHeaders are header parameters OpenAPI says must be ignored.
var reservedHeaders = map[string]bool{
	"accept":        true,
	"content-type":  true,
	"authorization": true,
}

func (b *collectionBuilder) request(path string, op domain.Operation) *domain.Request {
	req := &domain.Request{
		Method:      formatMethod(op.Method),
		Header:      []domain.Param{},
		URL:         b.url(path, op.Parameters),
		Description: formatDescription(op),
	}

	var cookies []string
	for _, p := range op.Parameters {
		switch p.In {
		case "header":
			if reservedHeaders[strings.ToLower(p.Name)] {
				continue
			}

			req.Header = append(req.Header, domain.Param{
				Key:         p.Name,
				Value:       exampleString(parameterExample(p)),
				Description: formatParamDescription(p),
				Disabled:    b.opts.DisableHeaderParams,
			})
		case "cookie":
			cookies = append(cookies, p.Name+"="+exampleString(parameterExample(p)))
		}
	}

	if len(cookies) > 0 {
		req.Header = append(req.Header, domain.Param{
			Key:      "Cookie",
			Value:    strings.Join(cookies, "; "),
			Disabled: b.opts.DisableHeaderParams,
		})
	}

	if op.RequestBody != nil {
		if mediaType, ok := preferredMediaType(op.RequestBody.Content); ok {
			req.Header = append(req.Header, domain.Param{Key: "Content-Type", Value: mediaType})
			req.Body = requestBody(mediaType, op.RequestBody.Content[mediaType])
		}
	}

	if accept := acceptType(op.Responses); accept != "" {
		req.Header = append(req.Header, domain.Param{Key: "Accept", Value: accept})
	}

	return req
}

func (b *collectionBuilder) url(path string, params []domain.Parameter) domain.URL {
	postmanPath := pathParamPattern.ReplaceAllString(path, ":$1")

	u := domain.URL{
		Host: []string{"{{" + baseURLVariable + "}}"},
		Path: []string{},
	}

	for _, segment := range strings.Split(postmanPath, "/") {
		if segment != "" {
			u.Path = append(u.Path, segment)
		}
	}

	var query []string
	for _, p := range params {
		switch p.In {
		case "path":
			u.Variable = append(u.Variable, domain.Variable{
				Key:         p.Name,
				Value:       exampleString(parameterExample(p)),
				Description: formatParamDescription(p),
			})
		case "query":
			value := exampleString(parameterExample(p))
			u.Query = append(u.Query, domain.Param{
				Key:         p.Name,
				Value:       value,
				Description: formatParamDescription(p),
				Disabled:    b.opts.DisableQueryParams,
			})
			if !b.opts.DisableQueryParams {
				query = append(query, p.Name+"="+value)
			}
		}
	}

	u.Raw = "{{" + baseURLVariable + "}}/" + strings.Join(u.Path, "/")
	if len(query) > 0 {
		u.Raw += "?" + strings.Join(query, "&")
	}

	return u
}

func requestBody(mediaType string, media domain.MediaType) *domain.Body {
	switch baseMediaType(mediaType) {
	case "application/x-www-form-urlencoded":
		return &domain.Body{Mode: domain.BodyModeURLEncoded, URLEncoded: formParams(media, false)}
	case "multipart/form-data":
		return &domain.Body{Mode: domain.BodyModeFormData, FormData: formParams(media, true)}
	}

	body := &domain.Body{
		Mode: domain.BodyModeRaw,
		Raw:  formatExample(mediaType, mediaExample(media)),
	}

	if lang := previewLanguage(mediaType); lang != "text" {
		body.Options = &domain.BodyOptions{Raw: domain.RawOptions{Language: lang}}
	}

	return body
}

// formParams lists one field per schema property, using values from the
// media example when it is an object.
func formParams(media domain.MediaType, multipart bool) []domain.Param {
	values, _ := mediaExample(media).(map[string]any)

	names := make([]string, 0, len(media.Schema.Properties))
	for name := range media.Schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]domain.Param, 0, len(names))
	for _, name := range names {
		prop := media.Schema.Properties[name]
		p := domain.Param{
			Key:         name,
			Value:       exampleString(values[name]),
			Description: prop.Description,
		}

		if multipart {
			p.Type = "text"
			if prop.Format == "binary" {
				p.Type = "file"
				p.Value = ""
			}
		}

		params = append(params, p)
	}

	return params
}

// acceptType is the media type of the first successful response with content.
func acceptType(responses []domain.Response) string {
	var fallback string

	for _, resp := range responses {
		mediaType, ok := preferredMediaType(resp.Content)
		if !ok {
			continue
		}

		if strings.HasPrefix(resp.StatusCode, "2") {
			return mediaType
		}

		if fallback == "" {
			fallback = mediaType
		}
	}

	return fallback
}

func (b *collectionBuilder) responses(op domain.Operation, req *domain.Request) []*domain.ResponseExample {
	var responses []*domain.ResponseExample

	for _, resp := range op.Responses {
		code := statusCode(resp.StatusCode)

		r := &domain.ResponseExample{
			Name:            resp.Description,
			OriginalRequest: req,
			Code:            code,
			Header:          []domain.Param{},
		}

		// The catch-all response has no real status.
		if resp.StatusCode != defaultResponseKey {
			r.Status = http.StatusText(code)
		}

		if r.Name == "" {
			r.Name = r.Status
		}
		if r.Name == "" {
			r.Name = resp.StatusCode
		}

		if mediaType, ok := preferredMediaType(resp.Content); ok {
			r.Header = append(r.Header, domain.Param{Key: "Content-Type", Value: mediaType})
			r.Body = formatExample(mediaType, mediaExample(resp.Content[mediaType]))
			r.PreviewLanguage = previewLanguage(mediaType)
		}

		responses = append(responses, r)
	}

	return responses
}
