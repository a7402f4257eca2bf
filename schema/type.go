package schema

import (
	"fmt"
	"strings"
)

// Type represents a primitive schema type
type Type int

const (
	Boolean Type = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	String
	Bytes
	Array
	Map
	Struct
)

var typeNames = [...]string{
	Boolean: "boolean",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
	String:  "string",
	Bytes:   "bytes",
	Array:   "array",
	Map:     "map",
	Struct:  "struct",
}

// String returns lower case type name
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typeNames[t]
}

// IsPrimitive returns true for non container types
func (t Type) IsPrimitive() bool {
	return t < Array
}

// ParseType parses type name, it accepts a few common aliases
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boolean", "bool":
		return Boolean, nil
	case "int8", "byte":
		return Int8, nil
	case "int16", "short":
		return Int16, nil
	case "int32", "int":
		return Int32, nil
	case "int64", "long":
		return Int64, nil
	case "float32", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	case "string":
		return String, nil
	case "bytes":
		return Bytes, nil
	case "array":
		return Array, nil
	case "map":
		return Map, nil
	case "struct":
		return Struct, nil
	}
	return 0, fmt.Errorf("unknown schema type: %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
