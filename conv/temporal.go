package conv

import (
	"fmt"
	"time"

	ftime "github.com/viant/schemaconv/format/time"
	"github.com/viant/schemaconv/node"
	"github.com/viant/schemaconv/schema"
)

// TemporalHandler handles date, time and timestamp logical schemas.
// Text is parsed with the first matching pattern; numeric nodes are epoch milliseconds.
// Both paths truncate dates to midnight and anchor times at 1970-01-01.
type TemporalHandler struct {
	logicalName string
	location    *time.Location
	layouts     []ftime.Layout
	epochMillis *IntHandler
}

// NewTemporalHandler creates a temporal handler with ordered patterns, see ftime.PatternToLayout.
func NewTemporalHandler(logicalName string, loc *time.Location, patterns ...string) (*TemporalHandler, error) {
	layouts, err := ftime.Compile(patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to create %v handler: %w", logicalName, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &TemporalHandler{
		logicalName: logicalName,
		location:    loc,
		layouts:     layouts,
		epochMillis: &IntHandler{Bits: 64},
	}, nil
}

func (h *TemporalHandler) ExpectedType() string {
	return "time.Time"
}

// Patterns returns configured patterns in order
func (h *TemporalHandler) Patterns() []string {
	ret := make([]string, len(h.layouts))
	for i, layout := range h.layouts {
		ret[i] = layout.Pattern
	}
	return ret
}

func (h *TemporalHandler) ParseString(_ *schema.Schema, text string) (interface{}, error) {
	ts, _, err := ftime.Parse(h.layouts, text, h.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemporalParse, text)
	}
	return h.normalize(ts), nil
}

// normalize truncates dates to midnight and anchors times at 1970-01-01, both in the handler location
func (h *TemporalHandler) normalize(ts time.Time) time.Time {
	ts = ts.In(h.location)
	switch h.logicalName {
	case schema.Date:
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, h.location)
	case schema.Time:
		return time.Date(1970, time.January, 1, ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), h.location)
	}
	return ts
}

func (h *TemporalHandler) ParseNode(s *schema.Schema, n node.Node) (interface{}, error) {
	switch n.Kind() {
	case node.Number:
		millis, err := h.epochMillis.ParseNode(s, n)
		if err != nil {
			return nil, fmt.Errorf("invalid epoch milliseconds: %w", err)
		}
		return h.normalize(time.UnixMilli(millis.(int64))), nil
	case node.Text:
		return h.ParseString(s, n.Text())
	}
	return nil, unexpectedKind(n, node.Number, node.Text)
}
