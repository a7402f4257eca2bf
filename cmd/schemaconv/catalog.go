package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/viant/schemaconv/schema"
	"gopkg.in/yaml.v3"
)

// Catalog maps schema names to schemas
type Catalog map[string]*schema.Schema

// Lookup returns named schema
func (c Catalog) Lookup(name string) (*schema.Schema, error) {
	ret, ok := c[name]
	if !ok || ret == nil {
		return nil, fmt.Errorf("schema %q not found in catalog, available: %v", name, c.Names())
	}
	return ret, nil
}

// Names returns sorted schema names
func (c Catalog) Names() []string {
	ret := make([]string, 0, len(c))
	for name := range c {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

func decodeCatalog(data []byte) (Catalog, error) {
	ret := Catalog{}
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return nil, fmt.Errorf("invalid schema catalog: %w", err)
	}
	return ret, nil
}

func loadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema catalog: %w", err)
	}
	ret, err := decodeCatalog(data)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d schema(s) from %s", len(ret), path)
	return ret, nil
}
