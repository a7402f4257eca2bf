package time

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/viant/parsly"
)

// ErrNoMatch is returned when none of the layouts parses the value
var ErrNoMatch = errors.New("no layout matched")

// Layout represents a compiled date pattern
type Layout struct {
	Pattern string
	Layout  string
}

// IsLayout returns true if the pattern is already expressed with Go reference time elements
func IsLayout(pattern string) bool {
	return strings.Contains(pattern, "2006") || strings.Contains(pattern, "15:04")
}

// PatternToLayout converts SimpleDateFormat style pattern (yyyy-MM-dd'T'HH:mm:ss.SSSXXX) to Go time layout
func PatternToLayout(pattern string) (string, error) {
	if pattern == "" {
		return "", errors.New("empty date pattern")
	}
	if IsLayout(pattern) {
		return pattern, nil
	}
	builder := strings.Builder{}
	cursor := parsly.NewCursor("", []byte(pattern), 0)
	for cursor.Pos < len(cursor.Input) {
		pos := cursor.Pos
		match := cursor.MatchAny(letterRunMatcher, quotedMatcher, literalMatcher)
		switch match.Code {
		case letterRunToken:
			element, err := patternElement(match.Text(cursor), builder.String())
			if err != nil {
				return "", fmt.Errorf("invalid date pattern %q: %w", pattern, err)
			}
			builder.WriteString(element)
		case quotedToken, literalToken:
			text := match.Text(cursor)
			if match.Code == quotedToken {
				text = unquote(text)
			}
			if err := checkLiteral(text); err != nil {
				return "", fmt.Errorf("invalid date pattern %q: %w", pattern, err)
			}
			builder.WriteString(text)
		default:
			return "", fmt.Errorf("invalid date pattern %q: unterminated quote at %d", pattern, pos)
		}
	}
	return builder.String(), nil
}

func unquote(text string) string {
	if text == "''" {
		return "'"
	}
	text = text[1 : len(text)-1]
	return strings.ReplaceAll(text, "''", "'")
}

var reservedLiterals = []string{"Jan", "Mon", "MST", "PM", "pm", "Z07"}

func checkLiteral(text string) error {
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			return fmt.Errorf("literal %q contains digits", text)
		}
	}
	for _, reserved := range reservedLiterals {
		if strings.Contains(text, reserved) {
			return fmt.Errorf("literal %q conflicts with layout element %v", text, reserved)
		}
	}
	return nil
}

func patternElement(run string, prefix string) (string, error) {
	size := len(run)
	switch run[0] {
	case 'y', 'u':
		if size == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M', 'L':
		switch size {
		case 1:
			return "1", nil
		case 2:
			return "01", nil
		case 3:
			return "Jan", nil
		}
		return "January", nil
	case 'd':
		if size == 1 {
			return "2", nil
		}
		return "02", nil
	case 'D':
		if size < 3 {
			return "__2", nil
		}
		return "002", nil
	case 'E':
		if size >= 4 {
			return "Monday", nil
		}
		return "Mon", nil
	case 'H':
		return "15", nil
	case 'h':
		if size == 1 {
			return "3", nil
		}
		return "03", nil
	case 'm':
		if size == 1 {
			return "4", nil
		}
		return "04", nil
	case 's':
		if size == 1 {
			return "5", nil
		}
		return "05", nil
	case 'S':
		if !strings.HasSuffix(prefix, ".") && !strings.HasSuffix(prefix, ",") {
			return "", fmt.Errorf("fraction %v has to follow '.' or ','", run)
		}
		return strings.Repeat("0", size), nil
	case 'a':
		return "PM", nil
	case 'z':
		return "MST", nil
	case 'Z':
		if size >= 5 {
			return "-07:00", nil
		}
		return "-0700", nil
	case 'X':
		switch size {
		case 1:
			return "Z07", nil
		case 2:
			return "Z0700", nil
		}
		return "Z07:00", nil
	case 'x':
		switch size {
		case 1:
			return "-07", nil
		case 2:
			return "-0700", nil
		}
		return "-07:00", nil
	}
	return "", fmt.Errorf("unsupported pattern letter %q", run)
}

// Compile compiles patterns preserving their order
func Compile(patterns ...string) ([]Layout, error) {
	if len(patterns) == 0 {
		return nil, errors.New("at least one date pattern is required")
	}
	ret := make([]Layout, 0, len(patterns))
	for _, pattern := range patterns {
		layout, err := PatternToLayout(pattern)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Layout{Pattern: pattern, Layout: layout})
	}
	return ret, nil
}

// Parse parses value with the first layout that succeeds, it returns the index of that layout.
// Values without zone information are interpreted in loc.
func Parse(layouts []Layout, value string, loc *time.Location) (time.Time, int, error) {
	if loc == nil {
		loc = time.UTC
	}
	for i := range layouts {
		ts, err := time.ParseInLocation(layouts[i].Layout, value, loc)
		if err == nil {
			return ts.In(loc), i, nil
		}
	}
	return time.Time{}, -1, fmt.Errorf("%w: %q", ErrNoMatch, value)
}
