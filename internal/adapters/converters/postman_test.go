package converters

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stueynz/openapi-to-postman/internal/domain"
	"github.com/stueynz/openapi-to-postman/internal/samples"
)

func convertSample(t *testing.T, opts domain.Options) *domain.Collection {
	t.Helper()

	status, err := NewPostmanConverter().Convert(context.Background(), domain.Input{
		Type: domain.InputTypeString,
		Data: samples.Spec(),
	}, opts)
	require.NoError(t, err)
	require.True(t, status.Result, status.Reason)
	require.Len(t, status.Output, 1)
	assert.Equal(t, domain.OutputTypeCollection, status.Output[0].Type)

	return status.Output[0].Data
}

func findItem(t *testing.T, items []*domain.Item, name string) *domain.Item {
	t.Helper()

	for _, item := range items {
		if item.Name == name {
			return item
		}
	}

	require.Failf(t, "item not found", "no item named %q", name)

	return nil
}

func findParam(params []domain.Param, key string) (domain.Param, bool) {
	for _, p := range params {
		if p.Key == key {
			return p, true
		}
	}

	return domain.Param{}, false
}

func authValue(params []domain.AuthParam, key string) string {
	for _, p := range params {
		if p.Key == key {
			return p.Value
		}
	}

	return ""
}

func TestConvertSampleCollection(t *testing.T) {
	c := convertSample(t, domain.Options{})

	assert.Equal(t, "Swagger Petstore", c.Info.Name)
	assert.Equal(t, domain.CollectionSchemaURL, c.Info.Schema)
	assert.NotEmpty(t, c.Info.PostmanID)

	assert.Equal(t, []domain.Variable{
		{Key: "baseUrl", Value: "{{scheme}}://petstore.swagger.io/v1", Type: "string"},
		{Key: "scheme", Value: "https", Type: "string", Description: "Transfer protocol"},
	}, c.Variable)

	require.Len(t, c.Item, 3)
	assert.Equal(t, "pets", c.Item[0].Name)
	assert.Equal(t, "Everything about your pets", c.Item[0].Description)
	assert.Equal(t, "store", c.Item[1].Name)
	assert.Equal(t, "health", c.Item[2].Name)
	assert.NotNil(t, c.Item[2].Request)

	var names []string
	for _, item := range c.Item[0].Item {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"List all pets", "Create a pet", "Info for a specific pet"}, names)
}

func TestConvertIsDeterministic(t *testing.T) {
	first := convertSample(t, domain.Options{})
	second := convertSample(t, domain.Options{})

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)

	assert.JSONEq(t, string(a), string(b))
}

func TestConvertRequestParameters(t *testing.T) {
	c := convertSample(t, domain.Options{})
	list := findItem(t, c.Item[0].Item, "List all pets").Request

	assert.Equal(t, "GET", list.Method)
	assert.Equal(t, "{{baseUrl}}/pets?limit=20", list.URL.Raw)
	assert.Equal(t, []string{"{{baseUrl}}"}, list.URL.Host)
	assert.Equal(t, []string{"pets"}, list.URL.Path)

	limit, ok := findParam(list.URL.Query, "limit")
	require.True(t, ok)
	assert.Equal(t, "20", limit.Value)
	assert.False(t, limit.Disabled)

	requestID, ok := findParam(list.Header, "X-Request-ID")
	require.True(t, ok)
	assert.Equal(t, "<uuid>", requestID.Value)
	assert.False(t, requestID.Disabled)

	accept, ok := findParam(list.Header, "Accept")
	require.True(t, ok)
	assert.Equal(t, "application/json", accept.Value)

	byID := findItem(t, c.Item[0].Item, "Info for a specific pet").Request
	assert.Equal(t, "{{baseUrl}}/pets/:petId", byID.URL.Raw)
	assert.Equal(t, []string{"pets", ":petId"}, byID.URL.Path)
	require.Len(t, byID.URL.Variable, 1)
	assert.Equal(t, "petId", byID.URL.Variable[0].Key)
	assert.Equal(t, "<string>", byID.URL.Variable[0].Value)
	assert.Equal(t, "(Required) The id of the pet to retrieve", byID.URL.Variable[0].Description)
}

func TestConvertDisabledParameters(t *testing.T) {
	c := convertSample(t, domain.Options{DisableQueryParams: true, DisableHeaderParams: true})
	list := findItem(t, c.Item[0].Item, "List all pets").Request

	assert.Equal(t, "{{baseUrl}}/pets", list.URL.Raw)

	limit, ok := findParam(list.URL.Query, "limit")
	require.True(t, ok)
	assert.True(t, limit.Disabled)

	requestID, ok := findParam(list.Header, "X-Request-ID")
	require.True(t, ok)
	assert.True(t, requestID.Disabled)

	accept, ok := findParam(list.Header, "Accept")
	require.True(t, ok)
	assert.False(t, accept.Disabled)
}

func TestConvertRequestBody(t *testing.T) {
	c := convertSample(t, domain.Options{})
	create := findItem(t, c.Item[0].Item, "Create a pet").Request

	contentType, ok := findParam(create.Header, "Content-Type")
	require.True(t, ok)
	assert.Equal(t, "application/json", contentType.Value)

	require.NotNil(t, create.Body)
	assert.Equal(t, domain.BodyModeRaw, create.Body.Mode)
	require.NotNil(t, create.Body.Options)
	assert.Equal(t, "json", create.Body.Options.Raw.Language)
	assert.JSONEq(t, `{"name": "doggie", "tag": "<string>"}`, create.Body.Raw)
	assert.Contains(t, create.Body.Raw, `"<string>"`)
	assert.NotContains(t, create.Body.Raw, `\u003c`)
}

func TestConvertResponses(t *testing.T) {
	c := convertSample(t, domain.Options{})
	list := findItem(t, c.Item[0].Item, "List all pets")

	require.Len(t, list.Response, 2)

	ok := list.Response[0]
	assert.Equal(t, "A paged array of pets", ok.Name)
	assert.Equal(t, 200, ok.Code)
	assert.Equal(t, "OK", ok.Status)
	assert.Equal(t, "json", ok.PreviewLanguage)
	assert.JSONEq(t, `[{"id": "<long>", "name": "doggie", "tag": "<string>"}]`, ok.Body)
	assert.Contains(t, ok.Body, `"<long>"`)

	fallback := list.Response[1]
	assert.Equal(t, "unexpected error", fallback.Name)
	assert.Equal(t, 500, fallback.Code)
	assert.Empty(t, fallback.Status)
	assert.JSONEq(t, `{"code": "<integer>", "message": "<string>"}`, fallback.Body)

	health := c.Item[2]
	require.Len(t, health.Response, 1)
	assert.Equal(t, "OK", health.Response[0].Body)
	assert.Equal(t, "text", health.Response[0].PreviewLanguage)
}

func TestConvertAuth(t *testing.T) {
	c := convertSample(t, domain.Options{})

	require.NotNil(t, c.Auth)
	assert.Equal(t, domain.AuthOAuth2, c.Auth.Type)
	assert.Equal(t, defaultAccessToken, authValue(c.Auth.OAuth2, "accessToken"))
	assert.Equal(t, "https://petstore.swagger.io/oauth/authorize", authValue(c.Auth.OAuth2, "authUrl"))
	assert.Equal(t, "read:pets write:pets", authValue(c.Auth.OAuth2, "scope"))

	list := findItem(t, c.Item[0].Item, "List all pets").Request
	assert.Nil(t, list.Auth)

	inventory := c.Item[1].Item[0].Request
	require.NotNil(t, inventory.Auth)
	assert.Equal(t, domain.AuthAPIKey, inventory.Auth.Type)
	assert.Equal(t, "api_key", authValue(inventory.Auth.APIKey, "key"))
	assert.Equal(t, "header", authValue(inventory.Auth.APIKey, "in"))

	health := c.Item[2].Request
	require.NotNil(t, health.Auth)
	assert.Equal(t, domain.AuthNoAuth, health.Auth.Type)
}

func TestConvertAccessToken(t *testing.T) {
	c := convertSample(t, domain.Options{AccessToken: "secret-token"})

	require.NotNil(t, c.Auth)
	assert.Equal(t, "secret-token", authValue(c.Auth.OAuth2, "accessToken"))
}

func TestConvertRejectsInput(t *testing.T) {
	tests := []struct {
		name   string
		input  domain.Input
		reason string
	}{
		{
			name:   "empty",
			input:  domain.Input{Type: domain.InputTypeString, Data: "  \n"},
			reason: "Input not provided",
		},
		{
			name:   "wrong type",
			input:  domain.Input{Type: "file", Data: "openapi: 3.0.0"},
			reason: "Invalid input type (file). Type must be string.",
		},
		{
			name:   "no version",
			input:  domain.Input{Type: domain.InputTypeString, Data: "foo: bar\n"},
			reason: "Specification must contain a semantic version number of the OAS specification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := NewPostmanConverter().Convert(context.Background(), tt.input, domain.Options{})
			require.NoError(t, err)
			assert.False(t, status.Result)
			assert.Equal(t, tt.reason, status.Reason)
			assert.Empty(t, status.Output)
		})
	}
}

func TestConvertCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPostmanConverter().Convert(ctx, domain.Input{
		Type: domain.InputTypeString,
		Data: samples.Spec(),
	}, domain.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

const charsetSpec = `openapi: 3.0.0
info:
  title: Forms
  version: 1.0.0
paths:
  /login:
    post:
      requestBody:
        content:
          application/x-www-form-urlencoded; charset=utf-8:
            schema:
              type: object
              properties:
                user:
                  type: string
      responses:
        "200":
          description: ok
          content:
            application/json; charset=utf-8:
              schema:
                type: object
                properties:
                  token:
                    type: string
`

func TestConvertMediaTypeParameters(t *testing.T) {
	status, err := NewPostmanConverter().Convert(context.Background(), domain.Input{
		Type: domain.InputTypeString,
		Data: charsetSpec,
	}, domain.Options{})
	require.NoError(t, err)
	require.True(t, status.Result, status.Reason)

	item := status.Output[0].Data.Item[0]
	require.NotNil(t, item.Request.Body)
	assert.Equal(t, domain.BodyModeURLEncoded, item.Request.Body.Mode)
	assert.Equal(t, []domain.Param{{Key: "user", Value: "<string>"}}, item.Request.Body.URLEncoded)
	assert.Empty(t, item.Request.Body.Raw)

	require.Len(t, item.Response, 1)
	assert.Equal(t, "json", item.Response[0].PreviewLanguage)
	assert.JSONEq(t, `{"token": "<string>"}`, item.Response[0].Body)
}
