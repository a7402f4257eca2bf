// Package node defines a JSON-like value tree consumed by schema conversion.
// A node is a scalar (null, boolean, number, text) or a container (array, object).
// Numbers are exposed as literals so that callers can decide on width and precision.
package node

import "fmt"

// Kind represents node kind
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	Text
	Array
	Object
)

var kindNames = [...]string{
	Null:   "null",
	Bool:   "boolean",
	Number: "number",
	Text:   "text",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Node represents JSON-like value
type Node interface {
	Kind() Kind
	//Bool returns boolean value, false for non boolean nodes
	Bool() bool
	//Number returns numeric literal, empty for non numeric nodes
	Number() string
	//Text returns textual value, empty for non text nodes
	Text() string
	//Len returns number of array elements or object keys
	Len() int
	Index(i int) Node
	//Keys returns object keys in document order
	Keys() []string
	Get(key string) (Node, bool)
	//String returns raw representation
	String() string
}

// IsNull returns true if node is absent or null
func IsNull(n Node) bool {
	return n == nil || n.Kind() == Null
}
