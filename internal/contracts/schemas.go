package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"catalog-service/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ключ и версия события объявления, попадают в заголовки сообщения
const (
	ListingChangedEventName    = "ListingChangedEvent"
	ListingChangedEventVersion = "1.0.0"
)

// Registry - скомпилированные схемы по ключу "<EventName>/<version>"
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

// LoadRegistry компилирует все схемы из fsys/events
func LoadRegistry(fsys fs.FS) (*Registry, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	// Сначала ресурсы, чтобы схемы могли ссылаться друг на друга через $ref
	err := fs.WalkDir(fsys, "events", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking schema resources: %w", err)
	}

	r := &Registry{schemas: make(map[string]*jsonschema.Schema, len(paths))}
	for _, path := range paths {
		key := generateKeyFromPath(path)
		if key == "" {
			continue
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		r.schemas[key] = schema
	}
	return r, nil
}

// DefaultRegistry - схемы, встроенные в бинарник
func DefaultRegistry() (*Registry, error) {
	return LoadRegistry(schemas.SchemasFS)
}

// generateKeyFromPath: "events/listing-changed/v1.json" -> "ListingChangedEvent/1.0.0"
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "events/"), ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[1], "v") {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString("Event")

	return fmt.Sprintf("%s/%s.0.0", name.String(), strings.TrimPrefix(parts[1], "v"))
}

// Has - есть ли схема для события и версии
func (r *Registry) Has(eventName, version string) bool {
	_, ok := r.schemas[eventName+"/"+version]
	return ok
}

// ValidateEvent проверяет тело сообщения по схеме события
func (r *Registry) ValidateEvent(eventName, version string, body []byte) error {
	schema, ok := r.schemas[eventName+"/"+version]
	if !ok {
		return fmt.Errorf("schema for event '%s' version '%s' not found", eventName, version)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
