package conv

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/viant/schemaconv/node"
	"github.com/viant/schemaconv/schema"
)

func unexpectedKind(n node.Node, expected ...node.Kind) error {
	if len(expected) == 1 {
		return fmt.Errorf("expected %v node, but had %v", expected[0], n.Kind())
	}
	return fmt.Errorf("expected one of %v nodes, but had %v", expected, n.Kind())
}

// BooleanHandler handles boolean schemas
type BooleanHandler struct{}

func (h *BooleanHandler) ExpectedType() string {
	return "bool"
}

func (h *BooleanHandler) ParseString(_ *schema.Schema, text string) (interface{}, error) {
	switch {
	case strings.EqualFold(text, "true"):
		return true, nil
	case strings.EqualFold(text, "false"):
		return false, nil
	}
	return nil, fmt.Errorf("invalid boolean literal %q", text)
}

func (h *BooleanHandler) ParseNode(_ *schema.Schema, n node.Node) (interface{}, error) {
	if n.Kind() != node.Bool {
		return nil, unexpectedKind(n, node.Bool)
	}
	return n.Bool(), nil
}

// IntHandler handles fixed width signed integer schemas
type IntHandler struct {
	Bits int
}

func (h *IntHandler) ExpectedType() string {
	return "int" + strconv.Itoa(h.Bits)
}

func (h *IntHandler) ParseString(_ *schema.Schema, text string) (interface{}, error) {
	value, err := strconv.ParseInt(text, 10, h.Bits)
	if err != nil {
		return nil, err
	}
	return h.sized(value), nil
}

// ParseNode accepts integral literals only, 1.0 and 1e3 are accepted while 1.5 is rejected.
func (h *IntHandler) ParseNode(_ *schema.Schema, n node.Node) (interface{}, error) {
	if n.Kind() != node.Number {
		return nil, unexpectedKind(n, node.Number)
	}
	literal := n.Number()
	value, err := strconv.ParseInt(literal, 10, h.Bits)
	if err == nil {
		return h.sized(value), nil
	}
	rat, ok := new(big.Rat).SetString(literal)
	if !ok {
		return nil, fmt.Errorf("invalid numeric literal %q", literal)
	}
	if !rat.IsInt() {
		return nil, fmt.Errorf("%v is not integral", literal)
	}
	numerator := rat.Num()
	if !numerator.IsInt64() {
		return nil, fmt.Errorf("%v overflows %v", literal, h.ExpectedType())
	}
	value = numerator.Int64()
	limit := int64(1) << (h.Bits - 1)
	if h.Bits < 64 && (value < -limit || value >= limit) {
		return nil, fmt.Errorf("%v overflows %v", literal, h.ExpectedType())
	}
	return h.sized(value), nil
}

func (h *IntHandler) sized(value int64) interface{} {
	switch h.Bits {
	case 8:
		return int8(value)
	case 16:
		return int16(value)
	case 32:
		return int32(value)
	}
	return value
}

// FloatHandler handles float32 and float64 schemas
type FloatHandler struct {
	Bits int
}

func (h *FloatHandler) ExpectedType() string {
	return "float" + strconv.Itoa(h.Bits)
}

func (h *FloatHandler) ParseString(_ *schema.Schema, text string) (interface{}, error) {
	value, err := strconv.ParseFloat(text, h.Bits)
	if err != nil {
		return nil, err
	}
	return h.sized(value), nil
}

func (h *FloatHandler) ParseNode(s *schema.Schema, n node.Node) (interface{}, error) {
	if n.Kind() != node.Number {
		return nil, unexpectedKind(n, node.Number)
	}
	return h.ParseString(s, n.Number())
}

func (h *FloatHandler) sized(value float64) interface{} {
	if h.Bits == 32 {
		return float32(value)
	}
	return value
}

// StringHandler handles string schemas
type StringHandler struct{}

func (h *StringHandler) ExpectedType() string {
	return "string"
}

func (h *StringHandler) ParseString(_ *schema.Schema, text string) (interface{}, error) {
	return text, nil
}

func (h *StringHandler) ParseNode(_ *schema.Schema, n node.Node) (interface{}, error) {
	if n.Kind() != node.Text {
		return nil, unexpectedKind(n, node.Text)
	}
	return n.Text(), nil
}

// BytesHandler handles bytes schemas, text is standard base64 encoded
type BytesHandler struct{}

func (h *BytesHandler) ExpectedType() string {
	return "[]byte"
}

func (h *BytesHandler) ParseString(_ *schema.Schema, text string) (interface{}, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (h *BytesHandler) ParseNode(s *schema.Schema, n node.Node) (interface{}, error) {
	if n.Kind() != node.Text {
		return nil, unexpectedKind(n, node.Text)
	}
	return h.ParseString(s, n.Text())
}
