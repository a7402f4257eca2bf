package conv

import (
	"sort"

	"github.com/viant/schemaconv/schema"
)

// Key identifies a handler: primitive type and logical name
type Key struct {
	Type        schema.Type
	LogicalName string
}

// KeyOf derives a key from schema
func KeyOf(s *schema.Schema) Key {
	return Key{Type: s.Type, LogicalName: s.Name}
}

// Less orders keys by type, then logical name
func (k Key) Less(o Key) bool {
	if k.Type != o.Type {
		return k.Type < o.Type
	}
	return k.LogicalName < o.LogicalName
}

func (k Key) String() string {
	if k.LogicalName == "" {
		return k.Type.String()
	}
	return k.Type.String() + "/" + k.LogicalName
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}
