package conv

import (
	"errors"
	"fmt"

	"github.com/viant/schemaconv/schema"
)

var (
	// ErrNullNotAllowed is reported when a required schema receives a null input
	ErrNullNotAllowed = errors.New("null not allowed")
	// ErrUnsupportedSchema is reported when no handler is registered for a schema key
	ErrUnsupportedSchema = errors.New("unsupported schema")
	// ErrInvalidDecimalSchema is reported when a decimal schema has a missing or malformed scale
	ErrInvalidDecimalSchema = errors.New("invalid decimal schema")
	// ErrParseFailure is reported when a handler could not convert an input
	ErrParseFailure = errors.New("parse failure")
	// ErrTemporalParse is reported by temporal handlers when no pattern matched
	ErrTemporalParse = errors.New("could not parse to temporal value")
)

// NullNotAllowedError represents a null input for a required schema
type NullNotAllowedError struct {
	Schema *schema.Schema
}

func (e *NullNotAllowedError) Error() string {
	return fmt.Sprintf("%v: schema %v is not optional", ErrNullNotAllowed, e.Schema)
}

func (e *NullNotAllowedError) Is(target error) bool {
	return target == ErrNullNotAllowed
}

// UnsupportedSchemaError represents a schema without registered handler
type UnsupportedSchemaError struct {
	Type        schema.Type
	LogicalName string
}

func (e *UnsupportedSchemaError) Error() string {
	return fmt.Sprintf("%v: type: %v, logical name: %q", ErrUnsupportedSchema, e.Type, e.LogicalName)
}

func (e *UnsupportedSchemaError) Is(target error) bool {
	return target == ErrUnsupportedSchema
}

// InvalidDecimalSchemaError represents decimal schema with missing or malformed scale
type InvalidDecimalSchemaError struct {
	Schema *schema.Schema
	//Value is the raw scale parameter, empty if missing
	Value string
	Err   error
}

func (e *InvalidDecimalSchemaError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %v has no %q parameter", ErrInvalidDecimalSchema, e.Schema, schema.ScaleParameter)
	}
	return fmt.Sprintf("%v: %v has invalid %q parameter %q: %v", ErrInvalidDecimalSchema, e.Schema, schema.ScaleParameter, e.Value, e.Err)
}

func (e *InvalidDecimalSchemaError) Is(target error) bool {
	return target == ErrInvalidDecimalSchema
}

func (e *InvalidDecimalSchemaError) Unwrap() error {
	return e.Err
}

// ParseError represents a handler failure for an input
type ParseError struct {
	Input        string
	ExpectedType string
	Err          error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: could not parse %q to %v: %v", ErrParseFailure, e.Input, e.ExpectedType, e.Err)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailure
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// isSchemaDefect returns true for errors describing schema configuration rather than input
func isSchemaDefect(err error) bool {
	return errors.Is(err, ErrInvalidDecimalSchema) || errors.Is(err, ErrUnsupportedSchema)
}
