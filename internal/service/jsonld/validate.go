package jsonld

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrUnknownType is returned when no schema is registered for a document's @type.
var ErrUnknownType = errors.New("no schema for json-ld type")

// ValidationError lists the schema violations of a document.
type ValidationError struct {
	Type     string
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s json-ld failed validation: %s", e.Type, strings.Join(e.Problems, "; "))
}

var (
	schemasOnce sync.Once
	schemas     map[string]*gojsonschema.Schema
	schemasErr  error
)

func loadSchemas() (map[string]*gojsonschema.Schema, error) {
	schemasOnce.Do(func() {
		entries, err := schemaFS.ReadDir("schemas")
		if err != nil {
			schemasErr = fmt.Errorf("read embedded schemas: %w", err)
			return
		}
		compiled := make(map[string]*gojsonschema.Schema, len(entries))
		for _, entry := range entries {
			raw, err := schemaFS.ReadFile("schemas/" + entry.Name())
			if err != nil {
				schemasErr = fmt.Errorf("read schema %s: %w", entry.Name(), err)
				return
			}
			schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
			if err != nil {
				schemasErr = fmt.Errorf("compile schema %s: %w", entry.Name(), err)
				return
			}
			compiled[strings.TrimSuffix(entry.Name(), ".json")] = schema
		}
		schemas = compiled
	})
	return schemas, schemasErr
}

// Validate checks obj against the embedded JSON Schema for its @type. Documents
// typed as several LocalBusiness subtypes are checked as LocalBusiness.
func Validate(obj Object) error {
	compiled, err := loadSchemas()
	if err != nil {
		return err
	}

	schemaType := resolveType(obj["@type"], compiled)
	schema, ok := compiled[schemaType]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownType, obj["@type"])
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(obj))
	if err != nil {
		return fmt.Errorf("validate %s: %w", schemaType, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		problems[i] = desc.String()
	}
	return &ValidationError{Type: schemaType, Problems: problems}
}

// localBusinessTypes are the schema.org LocalBusiness subtypes a practice may declare.
var localBusinessTypes = map[string]bool{
	TypeLocalBusiness:         true,
	"MedicalBusiness":         true,
	"HealthAndBeautyBusiness": true,
	"DaySpa":                  true,
	"MedicalClinic":           true,
	"Physician":               true,
}

func resolveType(raw any, compiled map[string]*gojsonschema.Schema) string {
	var types []string
	switch v := raw.(type) {
	case string:
		types = []string{v}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				types = append(types, s)
			}
		}
	}
	for _, t := range types {
		if localBusinessTypes[t] {
			return TypeLocalBusiness
		}
	}
	for _, t := range types {
		if _, ok := compiled[t]; ok {
			return t
		}
	}
	return ""
}
