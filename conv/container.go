package conv

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/viant/schemaconv/node"
	"github.com/viant/schemaconv/schema"
)

func parseDocument(text string) (node.Node, error) {
	return node.Parse([]byte(text))
}

// ArrayHandler converts array nodes element by element with the schema value schema
type ArrayHandler struct {
	registry *Registry
}

func (h *ArrayHandler) ExpectedType() string {
	return "[]interface {}"
}

func (h *ArrayHandler) ParseString(s *schema.Schema, text string) (interface{}, error) {
	doc, err := parseDocument(text)
	if err != nil {
		return nil, err
	}
	return h.ParseNode(s, doc)
}

func (h *ArrayHandler) ParseNode(s *schema.Schema, n node.Node) (interface{}, error) {
	if n.Kind() != node.Array {
		return nil, unexpectedKind(n, node.Array)
	}
	if s.Value == nil {
		return nil, errors.New("array schema has no value schema")
	}
	ret := make([]interface{}, n.Len())
	for i := range ret {
		value, err := h.registry.ConvertNode(s.Value, n.Index(i))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		ret[i] = value
	}
	return ret, nil
}

// MapHandler converts object nodes, keys are converted from text with the schema key schema
type MapHandler struct {
	registry *Registry
}

func (h *MapHandler) ExpectedType() string {
	return "map[interface {}]interface {}"
}

func (h *MapHandler) ParseString(s *schema.Schema, text string) (interface{}, error) {
	doc, err := parseDocument(text)
	if err != nil {
		return nil, err
	}
	return h.ParseNode(s, doc)
}

func (h *MapHandler) ParseNode(s *schema.Schema, n node.Node) (interface{}, error) {
	if n.Kind() != node.Object {
		return nil, unexpectedKind(n, node.Object)
	}
	if s.Key == nil || s.Value == nil {
		return nil, errors.New("map schema requires key and value schemas")
	}
	keys := n.Keys()
	ret := make(map[interface{}]interface{}, len(keys))
	for _, k := range keys {
		key, err := h.registry.ParseString(s.Key, k)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		child, _ := n.Get(k)
		value, err := h.registry.ConvertNode(s.Value, child)
		if err != nil {
			return nil, fmt.Errorf("value of %q: %w", k, err)
		}
		ret[mapKey(key, k)] = value
	}
	return ret, nil
}

// mapKey returns a hashable form of a converted key: bytes become a string,
// other non comparable values (arrays, maps, structs) keep their object key text
func mapKey(key interface{}, text string) interface{} {
	switch actual := key.(type) {
	case nil:
		return nil
	case []byte:
		return string(actual)
	}
	if !reflect.ValueOf(key).Comparable() {
		return text
	}
	return key
}

// StructHandler converts object nodes field by field; a missing field is treated as null
type StructHandler struct {
	registry *Registry
}

func (h *StructHandler) ExpectedType() string {
	return "map[string]interface {}"
}

func (h *StructHandler) ParseString(s *schema.Schema, text string) (interface{}, error) {
	doc, err := parseDocument(text)
	if err != nil {
		return nil, err
	}
	return h.ParseNode(s, doc)
}

func (h *StructHandler) ParseNode(s *schema.Schema, n node.Node) (interface{}, error) {
	if n.Kind() != node.Object {
		return nil, unexpectedKind(n, node.Object)
	}
	ret := make(map[string]interface{}, len(s.Fields))
	for _, field := range s.Fields {
		if field == nil || field.Schema == nil {
			return nil, errors.New("struct schema has a field without schema")
		}
		child, _ := n.Get(field.Name)
		value, err := h.registry.ConvertNode(field.Schema, child)
		if err != nil {
			return nil, fmt.Errorf("field %v: %w", field.Name, err)
		}
		ret[field.Name] = value
	}
	return ret, nil
}
