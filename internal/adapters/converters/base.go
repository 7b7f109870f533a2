package converters

import (
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/stueynz/openapi-to-postman/internal/domain"
)

// formatMethod returns a normalized method string.
func formatMethod(method string) string {
	return strings.ToUpper(method)
}

// requestName picks the display name of an operation.
func requestName(path string, op domain.Operation) string {
	switch {
	case op.Summary != "":
		return op.Summary
	case op.OperationID != "":
		return op.OperationID
	default:
		return formatMethod(op.Method) + " " + path
	}
}

// formatDescription returns the request description.
func formatDescription(op domain.Operation) string {
	if op.Deprecated {
		return strings.TrimSpace("[DEPRECATED] " + op.Description)
	}

	return op.Description
}

// formatParamDescription prefixes required parameters.
func formatParamDescription(p domain.Parameter) string {
	if p.Required {
		return strings.TrimSpace("(Required) " + p.Description)
	}

	return p.Description
}

// defaultResponseKey is the catch-all entry of an OpenAPI responses object.
const defaultResponseKey = "default"

// statusCode maps an OpenAPI response key to an HTTP status code.
func statusCode(key string) int {
	if code, err := strconv.Atoi(key); err == nil {
		return code
	}

	if len(key) == 3 && strings.HasSuffix(strings.ToUpper(key), "XX") {
		if class, err := strconv.Atoi(key[:1]); err == nil {
			return class * 100
		}
	}

	return http.StatusInternalServerError
}

// baseMediaType strips parameters such as charset and lowercases the type.
func baseMediaType(mediaType string) string {
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		return parsed
	}

	base, _, _ := strings.Cut(mediaType, ";")

	return strings.ToLower(strings.TrimSpace(base))
}

// preferredMediaType picks the media type used for examples. The returned
// value is the content key as written in the document.
func preferredMediaType(content map[string]domain.MediaType) (string, bool) {
	if len(content) == 0 {
		return "", false
	}

	types := make([]string, 0, len(content))
	for t := range content {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		if baseMediaType(t) == "application/json" {
			return t, true
		}
	}

	for _, t := range types {
		if isJSON(t) {
			return t, true
		}
	}

	for _, want := range []string{"application/x-www-form-urlencoded", "multipart/form-data"} {
		for _, t := range types {
			if baseMediaType(t) == want {
				return t, true
			}
		}
	}

	return types[0], true
}

func isJSON(mediaType string) bool {
	base := baseMediaType(mediaType)

	return base == "application/json" || strings.HasSuffix(base, "+json")
}

func previewLanguage(mediaType string) string {
	switch {
	case isJSON(mediaType):
		return "json"
	case strings.Contains(baseMediaType(mediaType), "xml"):
		return "xml"
	case strings.Contains(baseMediaType(mediaType), "html"):
		return "html"
	default:
		return "text"
	}
}
