package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternToLayout(t *testing.T) {
	var testCases = []struct {
		description string
		pattern     string
		expect      string
		hasError    bool
	}{
		{description: "iso date", pattern: "yyyy-MM-dd", expect: "2006-01-02"},
		{description: "slashed date", pattern: "yyyy/MM/dd", expect: "2006/01/02"},
		{description: "short year", pattern: "dd.MM.yy", expect: "02.01.06"},
		{description: "quoted T", pattern: "yyyy-MM-dd'T'HH:mm:ss.SSSXXX", expect: "2006-01-02T15:04:05.000Z07:00"},
		{description: "rfc822 zone", pattern: "HH:mm:ssZ", expect: "15:04:05-0700"},
		{description: "month names", pattern: "EEE, d MMM yyyy", expect: "Mon, 2 Jan 2006"},
		{description: "12 hour clock", pattern: "hh:mm a", expect: "03:04 PM"},
		{description: "escaped quote", pattern: "HH'h'''", expect: "15h'"},
		{description: "go layout passthrough", pattern: time.RFC3339, expect: time.RFC3339},
		{description: "fraction without separator", pattern: "ssSSS", hasError: true},
		{description: "unsupported letter", pattern: "yyyy-ww", hasError: true},
		{description: "unterminated quote", pattern: "yyyy'T", hasError: true},
		{description: "digits in literal", pattern: "yyyy'1'", hasError: true},
		{description: "empty", pattern: "", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := PatternToLayout(testCase.pattern)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestParse(t *testing.T) {
	layouts, err := Compile("yyyy-MM-dd", "yyyy/MM/dd")
	require.NoError(t, err)

	var testCases = []struct {
		description string
		input       string
		index       int
		hasError    bool
	}{
		{description: "first pattern", input: "2001-07-04", index: 0},
		{description: "second pattern", input: "2001/07/04", index: 1},
		{description: "no pattern", input: "not-a-date", index: -1, hasError: true},
	}
	expect := time.Date(2001, 7, 4, 0, 0, 0, 0, time.UTC)
	for _, testCase := range testCases {
		ts, index, err := Parse(layouts, testCase.input, nil)
		assert.Equal(t, testCase.index, index, testCase.description)
		if testCase.hasError {
			assert.ErrorIs(t, err, ErrNoMatch, testCase.description)
			assert.Contains(t, err.Error(), testCase.input, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.True(t, expect.Equal(ts), testCase.description)
	}
}

func TestParse_FirstMatchWins(t *testing.T) {
	layouts, err := Compile("yyyy-MM-dd HH:mm", "yyyy-MM-dd HH:mm")
	require.NoError(t, err)
	_, index, err := Parse(layouts, "2020-02-29 10:15", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 0, index)
}

func TestParse_Location(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	layouts, err := Compile("yyyy-MM-dd HH:mm", "yyyy-MM-dd'T'HH:mmXXX")
	require.NoError(t, err)

	local, _, err := Parse(layouts, "2020-01-01 10:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC).Unix(), local.Unix())

	zoned, index, err := Parse(layouts, "2020-01-01T10:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC).Unix(), zoned.Unix())
	assert.Equal(t, loc, zoned.Location())
}

func TestCompile_Empty(t *testing.T) {
	_, err := Compile()
	assert.Error(t, err)
}
