package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSchema_Fingerprint(t *testing.T) {
	var testCases = []struct {
		description string
		left        *Schema
		right       *Schema
		same        bool
	}{
		{
			description: "equal decimals",
			left:        DecimalOf(2),
			right:       DecimalOf(2),
			same:        true,
		},
		{
			description: "optionality is not part of identity",
			left:        DecimalOf(2),
			right:       DecimalOf(2).AsOptional(),
			same:        true,
		},
		{
			description: "different scale",
			left:        DecimalOf(2),
			right:       DecimalOf(3),
		},
		{
			description: "parameter order",
			left:        Text().WithParameter("a", "1").WithParameter("b", "2"),
			right:       Text().WithParameter("b", "2").WithParameter("a", "1"),
			same:        true,
		},
		{
			description: "logical name",
			left:        I32(),
			right:       DateOf(),
		},
		{
			description: "separator in parameter value",
			left:        Text().WithParameter("a", "1|b=2"),
			right:       Text().WithParameter("a", "1").WithParameter("b", "2"),
		},
	}
	for _, testCase := range testCases {
		actual := testCase.left.Fingerprint() == testCase.right.Fingerprint()
		assert.EqualValues(t, testCase.same, actual, testCase.description)
	}
}

func TestSchema_BuildersDoNotMutate(t *testing.T) {
	base := Text()
	optional := base.AsOptional()
	named := base.WithParameter("k", "v")
	assert.False(t, base.Optional)
	assert.True(t, optional.Optional)
	assert.Nil(t, base.Parameters)
	value, ok := named.Parameter("k")
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestParseType(t *testing.T) {
	for _, name := range typeNames {
		actual, err := ParseType(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, actual.String())
	}
	_, err := ParseType("uuid")
	assert.Error(t, err)
	assert.Equal(t, "type(42)", Type(42).String())
}

func TestSchema_YAML(t *testing.T) {
	document := `
type: struct
fields:
  - name: id
    schema:
      type: int64
  - name: amount
    schema:
      type: bytes
      name: decimal
      optional: true
      parameters:
        scale: "2"
  - name: tags
    schema:
      type: array
      value:
        type: string
`
	actual := &Schema{}
	require.NoError(t, yaml.Unmarshal([]byte(document), actual))
	assert.Equal(t, Struct, actual.Type)
	require.Len(t, actual.Fields, 3)
	assert.Equal(t, Int64, actual.Field("id").Schema.Type)
	amount := actual.Field("amount").Schema
	assert.Equal(t, DecimalOf(2).AsOptional().Fingerprint(), amount.Fingerprint())
	assert.True(t, amount.Optional)
	assert.Equal(t, String, actual.Field("tags").Schema.Value.Type)
	assert.Nil(t, actual.Field("missing"))
}
