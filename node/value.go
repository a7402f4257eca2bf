package node

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

type valueNode struct {
	value interface{}
}

// Of wraps a decoded Go value: nil, bool, string, json.Number, integers, floats,
// []interface{} and map[string]interface{}. Map keys are exposed in sorted order.
func Of(value interface{}) Node {
	if n, ok := value.(Node); ok {
		return n
	}
	return &valueNode{value: value}
}

func (n *valueNode) Kind() Kind {
	switch n.value.(type) {
	case nil:
		return Null
	case bool:
		return Bool
	case string:
		return Text
	case json.Number, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return Number
	case []interface{}:
		return Array
	case map[string]interface{}:
		return Object
	}
	return Null
}

func (n *valueNode) Bool() bool {
	ret, _ := n.value.(bool)
	return ret
}

func (n *valueNode) Number() string {
	switch actual := n.value.(type) {
	case json.Number:
		return actual.String()
	case int:
		return strconv.Itoa(actual)
	case int8:
		return strconv.FormatInt(int64(actual), 10)
	case int16:
		return strconv.FormatInt(int64(actual), 10)
	case int32:
		return strconv.FormatInt(int64(actual), 10)
	case int64:
		return strconv.FormatInt(actual, 10)
	case uint:
		return strconv.FormatUint(uint64(actual), 10)
	case uint8:
		return strconv.FormatUint(uint64(actual), 10)
	case uint16:
		return strconv.FormatUint(uint64(actual), 10)
	case uint32:
		return strconv.FormatUint(uint64(actual), 10)
	case uint64:
		return strconv.FormatUint(actual, 10)
	case float32:
		return strconv.FormatFloat(float64(actual), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(actual, 'g', -1, 64)
	}
	return ""
}

func (n *valueNode) Text() string {
	ret, _ := n.value.(string)
	return ret
}

func (n *valueNode) Len() int {
	switch actual := n.value.(type) {
	case []interface{}:
		return len(actual)
	case map[string]interface{}:
		return len(actual)
	}
	return 0
}

func (n *valueNode) Index(i int) Node {
	elements, ok := n.value.([]interface{})
	if !ok || i < 0 || i >= len(elements) {
		return nil
	}
	return Of(elements[i])
}

func (n *valueNode) Keys() []string {
	fields, ok := n.value.(map[string]interface{})
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (n *valueNode) Get(key string) (Node, bool) {
	fields, ok := n.value.(map[string]interface{})
	if !ok {
		return nil, false
	}
	value, ok := fields[key]
	if !ok {
		return nil, false
	}
	return Of(value), true
}

func (n *valueNode) String() string {
	switch n.Kind() {
	case Null:
		return "null"
	case Number:
		return n.Number()
	case Text:
		return strconv.Quote(n.Text())
	}
	if data, err := json.Marshal(n.value); err == nil {
		return string(data)
	}
	return fmt.Sprintf("%v", n.value)
}
