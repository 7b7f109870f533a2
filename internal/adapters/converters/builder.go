package converters

import (
	"regexp"
	"sort"
	"strings"

	"github.com/stueynz/openapi-to-postman/internal/domain"
)

const baseURLVariable = "baseUrl"

var serverVariablePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// collectionBuilder assembles one collection from one document.
type collectionBuilder struct {
	doc  *domain.OpenAPIDocument
	opts domain.Options
	// docScheme is the security scheme applied at collection level.
	docScheme string
}

func newCollectionBuilder(doc *domain.OpenAPIDocument, opts domain.Options) *collectionBuilder {
	b := &collectionBuilder{doc: doc, opts: opts}
	b.docScheme = b.schemeFor(doc.Security)

	return b
}

func (b *collectionBuilder) build() *domain.Collection {
	name := b.doc.Title
	if strings.TrimSpace(name) == "" {
		name = defaultCollectionName
	}

	collection := &domain.Collection{
		Info: domain.Info{
			Name:        name,
			Description: b.doc.Description,
			Schema:      domain.CollectionSchemaURL,
		},
		Item:     []*domain.Item{},
		Variable: b.variables(),
	}

	if b.docScheme != "" {
		collection.Auth = b.auth(b.docScheme)
	}

	folders := make(map[string]*domain.Item)
	var root []*domain.Item

	for _, path := range b.doc.Paths {
		for _, op := range path.Operations {
			item := b.requestItem(path.Path, op)

			if len(op.Tags) == 0 {
				root = append(root, item)
				continue
			}

			tag := op.Tags[0]
			folder, ok := folders[tag]
			if !ok {
				folder = &domain.Item{Name: tag, Description: b.tagDescription(tag)}
				folders[tag] = folder
			}
			folder.Item = append(folder.Item, item)
		}
	}

	tags := make([]string, 0, len(folders))
	for tag := range folders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		collection.Item = append(collection.Item, folders[tag])
	}
	collection.Item = append(collection.Item, root...)

	return collection
}

func (b *collectionBuilder) tagDescription(name string) string {
	for _, tag := range b.doc.Tags {
		if tag.Name == name {
			return tag.Description
		}
	}

	return ""
}

// variables returns the collection variables: baseUrl plus any server
// template variables it refers to.
func (b *collectionBuilder) variables() []domain.Variable {
	if len(b.doc.Servers) == 0 {
		return []domain.Variable{{Key: baseURLVariable, Value: "/", Type: "string"}}
	}

	server := b.doc.Servers[0]
	base := strings.TrimSuffix(serverVariablePattern.ReplaceAllString(server.URL, "{{$1}}"), "/")
	if base == "" {
		base = "/"
	}

	vars := []domain.Variable{{Key: baseURLVariable, Value: base, Type: "string"}}

	names := make([]string, 0, len(server.Variables))
	for name := range server.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := server.Variables[name]
		vars = append(vars, domain.Variable{
			Key:         name,
			Value:       v.Default,
			Type:        "string",
			Description: v.Description,
		})
	}

	return vars
}

func (b *collectionBuilder) requestItem(path string, op domain.Operation) *domain.Item {
	req := b.request(path, op)

	if op.Security != nil {
		if scheme := b.schemeFor(op.Security); scheme != b.docScheme {
			req.Auth = b.auth(scheme)
		}
	}

	return &domain.Item{
		Name:     requestName(path, op),
		Request:  req,
		Response: b.responses(op, req),
	}
}
