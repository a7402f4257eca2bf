package conv

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/schemaconv/schema"
)

func TestArrayHandler(t *testing.T) {
	registry := MustNew()
	var testCases = []struct {
		description string
		schema      *schema.Schema
		input       string
		expect      []interface{}
		hasError    bool
		nullError   bool
	}{
		{description: "int32 elements", schema: schema.ArrayOf(schema.I32()), input: `[1, 2, 3]`, expect: []interface{}{int32(1), int32(2), int32(3)}},
		{description: "empty", schema: schema.ArrayOf(schema.Text()), input: `[]`, expect: []interface{}{}},
		{description: "optional elements", schema: schema.ArrayOf(schema.Text().AsOptional()), input: `["a", null]`, expect: []interface{}{"a", nil}},
		{description: "required element null", schema: schema.ArrayOf(schema.Text()), input: `["a", null]`, hasError: true, nullError: true},
		{description: "nested", schema: schema.ArrayOf(schema.ArrayOf(schema.Bool())), input: `[[true], [false, true]]`, expect: []interface{}{[]interface{}{true}, []interface{}{false, true}}},
		{description: "element mismatch", schema: schema.ArrayOf(schema.I32()), input: `[1, "x"]`, hasError: true},
		{description: "not an array", schema: schema.ArrayOf(schema.I32()), input: `{"a":1}`, hasError: true},
		{description: "no value schema", schema: schema.New(schema.Array), input: `[1]`, hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := registry.ConvertJSON(testCase.schema, []byte(testCase.input))
		if testCase.hasError {
			require.Error(t, err, testCase.description)
			if testCase.nullError {
				assert.ErrorIs(t, err, ErrNullNotAllowed, testCase.description)
			} else {
				assert.ErrorIs(t, err, ErrParseFailure, testCase.description)
			}
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestMapHandler(t *testing.T) {
	registry := MustNew()
	aSchema := schema.MapOf(schema.I64(), schema.F64().AsOptional())
	actual, err := registry.ConvertJSON(aSchema, []byte(`{"1": 1.5, "2": null}`))
	require.NoError(t, err)
	assert.Equal(t, map[interface{}]interface{}{int64(1): 1.5, int64(2): nil}, actual)

	actual, err = registry.ParseString(schema.MapOf(schema.Text(), schema.Bool()), `{"a": true}`)
	require.NoError(t, err)
	assert.Equal(t, map[interface{}]interface{}{"a": true}, actual)

	_, err = registry.ConvertJSON(aSchema, []byte(`{"one": 1}`))
	assert.ErrorIs(t, err, ErrParseFailure)
	assert.Contains(t, err.Error(), "one")

	_, err = registry.ConvertJSON(schema.New(schema.Map), []byte(`{}`))
	assert.ErrorIs(t, err, ErrParseFailure)

	_, err = registry.ConvertJSON(schema.MapOf(schema.Text(), schema.DecimalOf(2).WithParameter(schema.ScaleParameter, "")), []byte(`{"a": 1}`))
	assert.ErrorIs(t, err, ErrInvalidDecimalSchema)
}

func TestStructHandler(t *testing.T) {
	registry := MustNew()
	aSchema := schema.StructOf(
		schema.NewField("id", schema.I64()),
		schema.NewField("name", schema.Text().AsOptional()),
		schema.NewField("tags", schema.ArrayOf(schema.Text()).AsOptional()),
	)
	var testCases = []struct {
		description string
		input       string
		expect      map[string]interface{}
		hasError    bool
		nullError   bool
	}{
		{description: "all fields", input: `{"id": 7, "name": "x", "tags": ["a"]}`, expect: map[string]interface{}{"id": int64(7), "name": "x", "tags": []interface{}{"a"}}},
		{description: "missing optional", input: `{"id": 7}`, expect: map[string]interface{}{"id": int64(7), "name": nil, "tags": nil}},
		{description: "unknown fields ignored", input: `{"id": 7, "extra": true}`, expect: map[string]interface{}{"id": int64(7), "name": nil, "tags": nil}},
		{description: "missing required", input: `{"name": "x"}`, hasError: true, nullError: true},
		{description: "null required", input: `{"id": null}`, hasError: true, nullError: true},
		{description: "field mismatch", input: `{"id": "7"}`, hasError: true},
		{description: "not an object", input: `[7]`, hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := registry.ParseString(aSchema, testCase.input)
		if testCase.hasError {
			require.Error(t, err, testCase.description)
			if testCase.nullError {
				assert.ErrorIs(t, err, ErrNullNotAllowed, testCase.description)
				assert.Contains(t, err.Error(), "id", testCase.description)
			} else {
				assert.ErrorIs(t, err, ErrParseFailure, testCase.description)
			}
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestContainer_MalformedText(t *testing.T) {
	registry := MustNew()
	for _, aSchema := range []*schema.Schema{
		schema.ArrayOf(schema.I32()),
		schema.MapOf(schema.Text(), schema.I32()),
		schema.StructOf(schema.NewField("a", schema.I32())),
	} {
		_, err := registry.ParseString(aSchema, `[1,`)
		assert.ErrorIs(t, err, ErrParseFailure, aSchema.String())
	}
}

func TestMapHandler_KeySchemas(t *testing.T) {
	registry := MustNew()
	var testCases = []struct {
		description string
		schema      *schema.Schema
		input       string
		expect      map[interface{}]interface{}
	}{
		{description: "bytes key", schema: schema.MapOf(schema.Binary(), schema.I32()), input: `{"AQI=": 1}`, expect: map[interface{}]interface{}{"\x01\x02": int32(1)}},
		{description: "array key", schema: schema.MapOf(schema.ArrayOf(schema.I32()), schema.I32()), input: `{"[1,2]": 3}`, expect: map[interface{}]interface{}{"[1,2]": int32(3)}},
		{description: "map key", schema: schema.MapOf(schema.MapOf(schema.Text(), schema.Bool()), schema.Text()), input: `{"{\"a\":true}": "x"}`, expect: map[interface{}]interface{}{`{"a":true}`: "x"}},
		{description: "struct key", schema: schema.MapOf(schema.StructOf(schema.NewField("id", schema.I64())), schema.Bool()), input: `{"{\"id\":1}": false}`, expect: map[interface{}]interface{}{`{"id":1}`: false}},
		{description: "date key", schema: schema.MapOf(schema.DateOf(), schema.I32()), input: `{"2001-07-04": 1}`, expect: map[interface{}]interface{}{time.Date(2001, 7, 4, 0, 0, 0, 0, time.UTC): int32(1)}},
	}
	for _, testCase := range testCases {
		var actual interface{}
		var err error
		require.NotPanics(t, func() {
			actual, err = registry.ConvertJSON(testCase.schema, []byte(testCase.input))
		}, testCase.description)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}

	_, err := registry.ConvertJSON(schema.MapOf(schema.ArrayOf(schema.I32()), schema.I32()), []byte(`{"[1,": 3}`))
	assert.ErrorIs(t, err, ErrParseFailure)
}

func TestContainer_Large(t *testing.T) {
	registry := MustNew()
	const size = 50000

	elements := make([]string, size)
	fields := make([]*schema.Field, size)
	members := make([]string, size)
	for i := range elements {
		elements[i] = strconv.Itoa(i)
		name := fmt.Sprintf("f%d", i)
		fields[i] = schema.NewField(name, schema.I32())
		members[i] = fmt.Sprintf("%q:%d", name, i)
	}
	var testCases = []struct {
		description string
		schema      *schema.Schema
		input       string
	}{
		{description: "array", schema: schema.ArrayOf(schema.I32()), input: "[" + strings.Join(elements, ",") + "]"},
		{description: "struct", schema: schema.StructOf(fields...), input: "{" + strings.Join(members, ",") + "}"},
		{description: "map", schema: schema.MapOf(schema.Text(), schema.I32()), input: "{" + strings.Join(members, ",") + "}"},
	}
	for _, testCase := range testCases {
		started := time.Now()
		actual, err := registry.ConvertJSON(testCase.schema, []byte(testCase.input))
		elapsed := time.Since(started)
		require.NoError(t, err, testCase.description)
		assert.Less(t, elapsed, 10*time.Second, testCase.description)
		switch values := actual.(type) {
		case []interface{}:
			require.Len(t, values, size)
			assert.Equal(t, int32(size-1), values[size-1])
		case map[string]interface{}:
			require.Len(t, values, size)
			assert.Equal(t, int32(size-1), values[fmt.Sprintf("f%d", size-1)])
		case map[interface{}]interface{}:
			require.Len(t, values, size)
			assert.Equal(t, int32(7), values["f7"])
		default:
			t.Fatalf("%v: unexpected %T", testCase.description, actual)
		}
	}
}
