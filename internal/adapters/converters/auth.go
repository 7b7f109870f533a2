package converters

import (
	"sort"
	"strings"

	"github.com/stueynz/openapi-to-postman/internal/domain"
)

const defaultAccessToken = "<access-token>"

// schemeFor returns the first known scheme named by the requirements, or ""
// when none applies.
func (b *collectionBuilder) schemeFor(reqs []domain.SecurityRequirement) string {
	for _, req := range reqs {
		names := make([]string, 0, len(req))
		for name := range req {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if _, ok := b.doc.SecuritySchemes[name]; ok {
				return name
			}
		}
	}

	return ""
}

// auth builds the auth block for a named scheme. An empty name, or a scheme
// Postman cannot express, yields noauth.
func (b *collectionBuilder) auth(name string) *domain.Auth {
	scheme, ok := b.doc.SecuritySchemes[name]
	if !ok {
		return &domain.Auth{Type: domain.AuthNoAuth}
	}

	switch scheme.Type {
	case "http":
		switch scheme.Scheme {
		case "basic":
			return &domain.Auth{Type: domain.AuthBasic, Basic: []domain.AuthParam{
				stringParam("username", "{{username}}"),
				stringParam("password", "{{password}}"),
			}}
		case "bearer":
			return &domain.Auth{Type: domain.AuthBearer, Bearer: []domain.AuthParam{
				stringParam("token", "{{bearerToken}}"),
			}}
		}
	case "apiKey":
		in := strings.ToLower(scheme.In)
		if in != "header" && in != "query" {
			break
		}

		return &domain.Auth{Type: domain.AuthAPIKey, APIKey: []domain.AuthParam{
			stringParam("key", scheme.Name),
			stringParam("value", "{{apiKey}}"),
			stringParam("in", in),
		}}
	case "oauth2", "openIdConnect":
		return b.oauth2(scheme)
	}

	return &domain.Auth{Type: domain.AuthNoAuth}
}

func (b *collectionBuilder) oauth2(scheme domain.SecurityScheme) *domain.Auth {
	token := b.opts.AccessToken
	if token == "" {
		token = defaultAccessToken
	}

	params := []domain.AuthParam{
		stringParam("accessToken", token),
		stringParam("tokenType", "bearer"),
		stringParam("addTokenTo", "header"),
	}

	if scheme.AuthURL != "" {
		params = append(params, stringParam("authUrl", scheme.AuthURL))
	}
	if scheme.TokenURL != "" {
		params = append(params, stringParam("accessTokenUrl", scheme.TokenURL))
	}
	if len(scheme.Scopes) > 0 {
		params = append(params, stringParam("scope", strings.Join(scheme.Scopes, " ")))
	}

	return &domain.Auth{Type: domain.AuthOAuth2, OAuth2: params}
}

func stringParam(key, value string) domain.AuthParam {
	return domain.AuthParam{Key: key, Value: value, Type: "string"}
}
