package schema

import "strconv"

// New creates a required schema for supplied type
func New(t Type) *Schema {
	return &Schema{Type: t}
}

func Bool() *Schema { return New(Boolean) }
func I8() *Schema { return New(Int8) }
func I16() *Schema { return New(Int16) }
func I32() *Schema { return New(Int32) }
func I64() *Schema { return New(Int64) }
func F32() *Schema { return New(Float32) }
func F64() *Schema { return New(Float64) }
func Text() *Schema { return New(String) }
func Binary() *Schema { return New(Bytes) }

// DecimalOf creates a decimal logical schema with the scale parameter
func DecimalOf(scale int) *Schema {
	return &Schema{
		Type:       Bytes,
		Name:       Decimal,
		Parameters: map[string]string{ScaleParameter: strconv.Itoa(scale)},
	}
}

// DateOf creates a date logical schema
func DateOf() *Schema {
	return &Schema{Type: Int32, Name: Date}
}

// TimeOf creates a time logical schema
func TimeOf() *Schema {
	return &Schema{Type: Int32, Name: Time}
}

// TimestampOf creates a timestamp logical schema
func TimestampOf() *Schema {
	return &Schema{Type: Int64, Name: Timestamp}
}

// ArrayOf creates an array schema
func ArrayOf(elem *Schema) *Schema {
	return &Schema{Type: Array, Value: elem}
}

// MapOf creates a map schema
func MapOf(key, value *Schema) *Schema {
	return &Schema{Type: Map, Key: key, Value: value}
}

// StructOf creates a struct schema
func StructOf(fields ...*Field) *Schema {
	return &Schema{Type: Struct, Fields: fields}
}

// NewField creates a struct field
func NewField(name string, schema *Schema) *Field {
	return &Field{Name: name, Schema: schema}
}
