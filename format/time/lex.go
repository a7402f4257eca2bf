package time

import (
	"github.com/viant/parsly"
)

const (
	letterRunToken = iota
	quotedToken
	literalToken
)

var (
	letterRunMatcher = parsly.NewToken(letterRunToken, "letters", &letterRun{})
	quotedMatcher    = parsly.NewToken(quotedToken, "' .... '", &quoted{})
	literalMatcher   = parsly.NewToken(literalToken, "literal", &literal{})
)

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// letterRun matches a run of the same pattern letter, i.e. yyyy or SSS
type letterRun struct{}

func (m *letterRun) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	if len(input) == 0 || !isLetter(input[0]) {
		return 0
	}
	i := 1
	for i < len(input) && input[i] == input[0] {
		i++
	}
	return i
}

// quoted matches a quoted literal, two consecutive quotes represent a single quote
type quoted struct{}

func (m *quoted) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	if len(input) < 2 || input[0] != '\'' {
		return 0
	}
	for i := 1; i < len(input); i++ {
		if input[i] != '\'' {
			continue
		}
		if i+1 < len(input) && input[i+1] == '\'' && i > 1 {
			i++
			continue
		}
		return i + 1
	}
	return 0
}

// literal matches anything that is neither a letter nor a quote
type literal struct{}

func (m *literal) Match(cursor *parsly.Cursor) int {
	input := cursor.Input[cursor.Pos:]
	i := 0
	for i < len(input) && !isLetter(input[i]) && input[i] != '\'' {
		i++
	}
	return i
}
