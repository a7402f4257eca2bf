package schema

import (
	"sort"
	"strconv"
	"strings"
)

// Logical type names
const (
	Decimal   = "decimal"
	Date      = "date"
	Time      = "time"
	Timestamp = "timestamp"
)

// ScaleParameter is the decimal scale parameter name
const ScaleParameter = "scale"

type (
	// Schema describes how an external value should be interpreted.
	// Schemas are owned by the caller; builder methods return modified copies.
	Schema struct {
		Type       Type              `json:"type" yaml:"type"`
		Name       string            `json:"name,omitempty" yaml:"name,omitempty"`
		Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
		Optional   bool              `json:"optional,omitempty" yaml:"optional,omitempty"`
		Key        *Schema           `json:"key,omitempty" yaml:"key,omitempty"`
		Value      *Schema           `json:"value,omitempty" yaml:"value,omitempty"`
		Fields     []*Field          `json:"fields,omitempty" yaml:"fields,omitempty"`
	}

	//Field represents struct field
	Field struct {
		Name   string  `json:"name" yaml:"name"`
		Schema *Schema `json:"schema" yaml:"schema"`
	}
)

// Parameter returns parameter value
func (s *Schema) Parameter(name string) (string, bool) {
	if s == nil || s.Parameters == nil {
		return "", false
	}
	value, ok := s.Parameters[name]
	return value, ok
}

// Field returns struct field by name
func (s *Schema) Field(name string) *Field {
	for _, field := range s.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// Clone returns a shallow copy with its own parameters map
func (s *Schema) Clone() *Schema {
	ret := *s
	if s.Parameters != nil {
		ret.Parameters = make(map[string]string, len(s.Parameters))
		for k, v := range s.Parameters {
			ret.Parameters[k] = v
		}
	}
	if s.Fields != nil {
		ret.Fields = append([]*Field{}, s.Fields...)
	}
	return &ret
}

// AsOptional returns an optional copy
func (s *Schema) AsOptional() *Schema {
	ret := s.Clone()
	ret.Optional = true
	return ret
}

// AsRequired returns a required copy
func (s *Schema) AsRequired() *Schema {
	ret := s.Clone()
	ret.Optional = false
	return ret
}

// WithName returns a copy with logical name
func (s *Schema) WithName(name string) *Schema {
	ret := s.Clone()
	ret.Name = name
	return ret
}

// WithParameter returns a copy with a parameter set
func (s *Schema) WithParameter(name, value string) *Schema {
	ret := s.Clone()
	if ret.Parameters == nil {
		ret.Parameters = map[string]string{}
	}
	ret.Parameters[name] = value
	return ret
}

// Fingerprint returns canonical identity of type, logical name and parameters.
// Schemas sharing a fingerprint are interchangeable for dispatch and derived parameters.
func (s *Schema) Fingerprint() string {
	builder := strings.Builder{}
	builder.WriteString(strconv.Itoa(int(s.Type)))
	builder.WriteByte('|')
	builder.WriteString(s.Name)
	if len(s.Parameters) == 0 {
		return builder.String()
	}
	keys := make([]string, 0, len(s.Parameters))
	for k := range s.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		builder.WriteByte('|')
		builder.WriteString(strconv.Quote(k))
		builder.WriteByte('=')
		builder.WriteString(strconv.Quote(s.Parameters[k]))
	}
	return builder.String()
}

// String returns schema description
func (s *Schema) String() string {
	if s == nil {
		return "<nil>"
	}
	ret := s.Type.String()
	if s.Name != "" {
		ret += "(" + s.Name + ")"
	}
	if s.Optional {
		ret += "?"
	}
	return ret
}
