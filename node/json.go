package node

import (
	"errors"
	"sync"

	"github.com/tidwall/gjson"
)

type jsonNode struct {
	result gjson.Result

	once     sync.Once
	elements []gjson.Result
	keys     []string
	values   []gjson.Result
	index    map[string]int
}

// Parse parses JSON document
func Parse(data []byte) (Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json document")
	}
	return FromResult(gjson.ParseBytes(data)), nil
}

// FromResult wraps gjson result
func FromResult(result gjson.Result) Node {
	return &jsonNode{result: result}
}

func (n *jsonNode) Kind() Kind {
	switch n.result.Type {
	case gjson.True, gjson.False:
		return Bool
	case gjson.Number:
		return Number
	case gjson.String:
		return Text
	case gjson.JSON:
		if n.result.IsArray() {
			return Array
		}
		return Object
	}
	return Null
}

func (n *jsonNode) Bool() bool {
	return n.result.Type == gjson.True
}

func (n *jsonNode) Number() string {
	if n.result.Type != gjson.Number {
		return ""
	}
	return n.result.Raw
}

func (n *jsonNode) Text() string {
	if n.result.Type != gjson.String {
		return ""
	}
	return n.result.Str
}

// children parses container members once, on first access; the first of duplicate keys wins
func (n *jsonNode) children() {
	n.once.Do(func() {
		switch n.Kind() {
		case Array:
			n.elements = n.result.Array()
		case Object:
			n.index = map[string]int{}
			n.result.ForEach(func(key, value gjson.Result) bool {
				k := key.String()
				if _, ok := n.index[k]; ok {
					return true
				}
				n.index[k] = len(n.keys)
				n.keys = append(n.keys, k)
				n.values = append(n.values, value)
				return true
			})
		}
	})
}

func (n *jsonNode) Len() int {
	n.children()
	switch n.Kind() {
	case Array:
		return len(n.elements)
	case Object:
		return len(n.keys)
	}
	return 0
}

func (n *jsonNode) Index(i int) Node {
	n.children()
	if i < 0 || i >= len(n.elements) {
		return nil
	}
	return FromResult(n.elements[i])
}

func (n *jsonNode) Keys() []string {
	n.children()
	if len(n.keys) == 0 {
		return nil
	}
	ret := make([]string, len(n.keys))
	copy(ret, n.keys)
	return ret
}

func (n *jsonNode) Get(key string) (Node, bool) {
	n.children()
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return FromResult(n.values[i]), true
}

func (n *jsonNode) String() string {
	if n.result.Raw == "" {
		return "null"
	}
	return n.result.Raw
}
