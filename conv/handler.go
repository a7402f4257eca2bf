package conv

import (
	"errors"

	"github.com/viant/schemaconv/node"
	"github.com/viant/schemaconv/schema"
)

// Handler converts external representation to a native value for schemas sharing one Key.
// The schema is supplied on every call since logical types carry per schema parameters.
type Handler interface {
	//ExpectedType returns produced value type name used in diagnostics
	ExpectedType() string
	ParseString(s *schema.Schema, text string) (interface{}, error)
	ParseNode(s *schema.Schema, n node.Node) (interface{}, error)
}

// Funcs adapts functions to Handler; a nil Node function routes text nodes to String
type Funcs struct {
	Expected string
	String   func(s *schema.Schema, text string) (interface{}, error)
	Node     func(s *schema.Schema, n node.Node) (interface{}, error)
}

func (f *Funcs) ExpectedType() string {
	return f.Expected
}

func (f *Funcs) ParseString(s *schema.Schema, text string) (interface{}, error) {
	if f.String == nil {
		return nil, errors.New("text input is not supported")
	}
	return f.String(s, text)
}

func (f *Funcs) ParseNode(s *schema.Schema, n node.Node) (interface{}, error) {
	if f.Node != nil {
		return f.Node(s, n)
	}
	if n.Kind() != node.Text {
		return nil, unexpectedKind(n, node.Text)
	}
	return f.ParseString(s, n.Text())
}
