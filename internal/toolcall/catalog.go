package toolcall

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaFiles holds the JSON Schemas for the globe tool vocabulary.
//
//go:embed schemas/*.json
var schemaFiles embed.FS

// Catalog validates tool-call arguments against per-tool JSON Schemas.
// Catalog checks are advisory: headline evaluation metrics never depend
// on them.
type Catalog struct {
	schemas map[string]*jsonschema.Schema
}

// LoadCatalog compiles the embedded tool schemas into a catalog.
func LoadCatalog() (*Catalog, error) {
	entries, err := fs.ReadDir(schemaFiles, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read schema dir: %w", err)
	}
	catalog := &Catalog{schemas: map[string]*jsonschema.Schema{}}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".json")
		data, err := schemaFiles.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", entry.Name(), err)
		}
		compiler := jsonschema.NewCompiler()
		url := "globebench://tools/" + entry.Name()
		if err := compiler.AddResource(url, strings.NewReader(string(data))); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", entry.Name(), err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", entry.Name(), err)
		}
		catalog.schemas[name] = schema
	}
	return catalog, nil
}

// Tools returns the known tool names in lexicographic order.
func (c *Catalog) Tools() []string {
	names := make([]string, 0, len(c.schemas))
	for name := range c.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether the catalog has a schema for the tool.
func (c *Catalog) Known(tool string) bool {
	_, ok := c.schemas[tool]
	return ok
}

// Validate checks a record's arguments against the schema for its tool.
// Unknown tools and records without a resolvable tool validate as false
// with an explanatory message.
func (c *Catalog) Validate(record Record) (bool, []string) {
	if !record.ToolPresent {
		return false, []string{"record has no resolvable tool"}
	}
	schema, ok := c.schemas[record.Tool]
	if !ok {
		return false, []string{fmt.Sprintf("unknown tool %q", record.Tool)}
	}
	args := make(map[string]interface{}, len(record.Arguments))
	for key, value := range record.Arguments {
		args[key] = value.ToInterface()
	}
	if err := schema.Validate(args); err != nil {
		return false, []string{err.Error()}
	}
	return true, nil
}
