package conv

import (
	"errors"
	"fmt"

	"github.com/viant/schemaconv/node"
	"github.com/viant/schemaconv/schema"
)

// Registry maps schema keys to handlers and enforces optionality rules.
// Register is a setup time operation: it must not race with conversions.
// Conversions are safe for concurrent use.
type Registry struct {
	options  Options
	handlers map[Key]Handler
	scales   *ScaleCache
}

// New creates a registry populated with default handlers
func New(opts ...Option) (*Registry, error) {
	options := resolveOptions(opts)
	ret := &Registry{
		options:  options,
		handlers: map[Key]Handler{},
		scales:   newScaleCache(options.ScaleTTL, options.now),
	}
	if err := ret.registerDefaults(); err != nil {
		return nil, err
	}
	return ret, nil
}

// MustNew creates a registry or panics
func MustNew(opts ...Option) *Registry {
	ret, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return ret
}

func (r *Registry) registerDefaults() error {
	r.Register(schema.Bool(), &BooleanHandler{})
	r.Register(schema.I8(), &IntHandler{Bits: 8})
	r.Register(schema.I16(), &IntHandler{Bits: 16})
	r.Register(schema.I32(), &IntHandler{Bits: 32})
	r.Register(schema.I64(), &IntHandler{Bits: 64})
	r.Register(schema.F32(), &FloatHandler{Bits: 32})
	r.Register(schema.F64(), &FloatHandler{Bits: 64})
	r.Register(schema.Text(), &StringHandler{})
	r.Register(schema.Binary(), &BytesHandler{})
	r.Register(schema.New(schema.Array), &ArrayHandler{registry: r})
	r.Register(schema.New(schema.Map), &MapHandler{registry: r})
	r.Register(schema.New(schema.Struct), &StructHandler{registry: r})
	r.Register(schema.DecimalOf(0), NewDecimalHandler(r.scales, r.options.DecimalRounding))

	temporals := []struct {
		shape    *schema.Schema
		patterns []string
	}{
		{schema.DateOf(), r.options.DatePatterns},
		{schema.TimeOf(), r.options.TimePatterns},
		{schema.TimestampOf(), r.options.TimestampPatterns},
	}
	for _, temporal := range temporals {
		handler, err := NewTemporalHandler(temporal.shape.Name, r.options.Location, temporal.patterns...)
		if err != nil {
			return err
		}
		r.Register(temporal.shape, handler)
	}
	return nil
}

// Register binds handler to the key derived from shape, replacing any previous binding
func (r *Registry) Register(shape *schema.Schema, handler Handler) {
	key := KeyOf(shape)
	if _, ok := r.handlers[key]; ok {
		log.Debugf("conv: replacing %v handler with %T", key, handler)
	}
	r.handlers[key] = handler
}

// Lookup returns handler for the schema
func (r *Registry) Lookup(s *schema.Schema) (Handler, error) {
	key := KeyOf(s)
	handler, ok := r.handlers[key]
	if !ok {
		return nil, &UnsupportedSchemaError{Type: key.Type, LogicalName: key.LogicalName}
	}
	return handler, nil
}

// Keys returns registered keys in order
func (r *Registry) Keys() []Key {
	ret := make([]Key, 0, len(r.handlers))
	for key := range r.handlers {
		ret = append(ret, key)
	}
	sortKeys(ret)
	return ret
}

// Scales returns derived decimal scale cache
func (r *Registry) Scales() *ScaleCache {
	return r.scales
}

// Options returns registry options
func (r *Registry) Options() Options {
	return r.options
}

func nullValue(s *schema.Schema) (interface{}, error) {
	if s.Optional {
		return nil, nil
	}
	return nil, &NullNotAllowedError{Schema: s}
}

func (r *Registry) wrap(handler Handler, input string, err error) error {
	if isSchemaDefect(err) {
		return err
	}
	return &ParseError{Input: input, ExpectedType: handler.ExpectedType(), Err: err}
}

// result enforces that a required schema never yields nil, input is only rendered on failure
func (r *Registry) result(s *schema.Schema, handler Handler, input fmt.Stringer, value interface{}, err error) (interface{}, error) {
	if err == nil && value == nil && !s.Optional {
		err = errors.New("handler produced no value")
	}
	if err != nil {
		return nil, r.wrap(handler, input.String(), err)
	}
	return value, nil
}

type rawInput string

func (t rawInput) String() string {
	return string(t)
}

// ConvertString converts text, a nil text represents null
func (r *Registry) ConvertString(s *schema.Schema, input *string) (interface{}, error) {
	if input == nil {
		return nullValue(s)
	}
	handler, err := r.Lookup(s)
	if err != nil {
		return nil, err
	}
	value, err := handler.ParseString(s, *input)
	return r.result(s, handler, rawInput(*input), value, err)
}

// ParseString converts non null text
func (r *Registry) ParseString(s *schema.Schema, input string) (interface{}, error) {
	return r.ConvertString(s, &input)
}

// ConvertNode converts JSON-like node, a nil or null node represents null
func (r *Registry) ConvertNode(s *schema.Schema, n node.Node) (interface{}, error) {
	if node.IsNull(n) {
		return nullValue(s)
	}
	handler, err := r.Lookup(s)
	if err != nil {
		return nil, err
	}
	value, err := handler.ParseNode(s, n)
	return r.result(s, handler, n, value, err)
}

// ConvertJSON converts JSON document
func (r *Registry) ConvertJSON(s *schema.Schema, data []byte) (interface{}, error) {
	doc, err := node.Parse(data)
	if err != nil {
		handler, lookupErr := r.Lookup(s)
		if lookupErr != nil {
			return nil, lookupErr
		}
		return nil, r.wrap(handler, string(data), err)
	}
	return r.ConvertNode(s, doc)
}

// ConvertValue converts a decoded Go value: strings and *string use the text path, anything else the node path
func (r *Registry) ConvertValue(s *schema.Schema, value interface{}) (interface{}, error) {
	switch actual := value.(type) {
	case string:
		return r.ConvertString(s, &actual)
	case *string:
		return r.ConvertString(s, actual)
	case node.Node:
		return r.ConvertNode(s, actual)
	case nil:
		return nullValue(s)
	}
	n := node.Of(value)
	if n.Kind() == node.Null {
		handler, err := r.Lookup(s)
		if err != nil {
			return nil, err
		}
		return nil, r.wrap(handler, fmt.Sprintf("%v", value), fmt.Errorf("unsupported value type %T", value))
	}
	return r.ConvertNode(s, n)
}
