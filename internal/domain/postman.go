package domain

// CollectionSchemaURL identifies the Postman Collection v2.1 format.
const CollectionSchemaURL = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// Collection is a Postman Collection v2.1 document.
type Collection struct {
	Info     Info       `json:"info"`
	Item     []*Item    `json:"item"`
	Auth     *Auth      `json:"auth,omitempty"`
	Variable []Variable `json:"variable,omitempty"`
}

// Info holds collection metadata.
type Info struct {
	PostmanID   string `json:"_postman_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Schema      string `json:"schema"`
}

// Item is either a folder (Item set) or a request (Request set).
type Item struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Item        []*Item            `json:"item,omitempty"`
	Request     *Request           `json:"request,omitempty"`
	Response    []*ResponseExample `json:"response,omitempty"`
}

// Request describes one HTTP request.
type Request struct {
	Method      string  `json:"method"`
	Header      []Param `json:"header"`
	Body        *Body   `json:"body,omitempty"`
	URL         URL     `json:"url"`
	Auth        *Auth   `json:"auth,omitempty"`
	Description string  `json:"description,omitempty"`
}

// URL is a structured request URL.
type URL struct {
	Raw      string     `json:"raw"`
	Host     []string   `json:"host"`
	Path     []string   `json:"path"`
	Query    []Param    `json:"query,omitempty"`
	Variable []Variable `json:"variable,omitempty"`
}

// Param is a key/value pair used for headers, query parameters and form fields.
type Param struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// Variable is a collection or path variable.
type Variable struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Body modes.
const (
	BodyModeRaw        = "raw"
	BodyModeURLEncoded = "urlencoded"
	BodyModeFormData   = "formdata"
)

// Body is a request body.
type Body struct {
	Mode       string       `json:"mode"`
	Raw        string       `json:"raw,omitempty"`
	URLEncoded []Param      `json:"urlencoded,omitempty"`
	FormData   []Param      `json:"formdata,omitempty"`
	Options    *BodyOptions `json:"options,omitempty"`
}

// BodyOptions carries editor hints for raw bodies.
type BodyOptions struct {
	Raw RawOptions `json:"raw"`
}

// RawOptions names the language of a raw body.
type RawOptions struct {
	Language string `json:"language"`
}

// Auth types.
const (
	AuthNoAuth = "noauth"
	AuthBasic  = "basic"
	AuthBearer = "bearer"
	AuthAPIKey = "apikey"
	AuthOAuth2 = "oauth2"
)

// Auth is a request or collection authorization block.
type Auth struct {
	Type   string      `json:"type"`
	Basic  []AuthParam `json:"basic,omitempty"`
	Bearer []AuthParam `json:"bearer,omitempty"`
	APIKey []AuthParam `json:"apikey,omitempty"`
	OAuth2 []AuthParam `json:"oauth2,omitempty"`
}

// AuthParam is one attribute of an auth block.
type AuthParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// ResponseExample is a saved example response.
type ResponseExample struct {
	Name            string   `json:"name"`
	OriginalRequest *Request `json:"originalRequest,omitempty"`
	Status          string   `json:"status"`
	Code            int      `json:"code"`
	Header          []Param  `json:"header"`
	Body            string   `json:"body"`
	PreviewLanguage string   `json:"_postman_previewlanguage,omitempty"`
}
