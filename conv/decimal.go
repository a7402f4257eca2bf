package conv

import (
	"fmt"

	"github.com/ericlagergren/decimal"
	"github.com/viant/schemaconv/node"
	"github.com/viant/schemaconv/schema"
)

// maxIntegerDigits bounds the integer part of a literal, 1e100000000 would otherwise expand to 10^8 digits
const maxIntegerDigits = 1 << 20

// DecimalHandler handles decimal logical schemas, values are *decimal.Big with the schema scale.
// Without a rounding mode, a rescale that would drop non zero digits fails.
type DecimalHandler struct {
	scales   *ScaleCache
	rounding *decimal.RoundingMode
}

// NewDecimalHandler creates a decimal handler; a nil rounding mode requires exact rescaling
func NewDecimalHandler(scales *ScaleCache, rounding *decimal.RoundingMode) *DecimalHandler {
	return &DecimalHandler{scales: scales, rounding: rounding}
}

func (h *DecimalHandler) ExpectedType() string {
	return "*decimal.Big"
}

func (h *DecimalHandler) context(precision int) decimal.Context {
	if precision < 1 {
		precision = 1
	}
	ret := decimal.Context{Precision: precision, RoundingMode: decimal.ToNearestEven}
	if h.rounding != nil {
		ret.RoundingMode = *h.rounding
	}
	return ret
}

func (h *DecimalHandler) ParseString(s *schema.Schema, text string) (interface{}, error) {
	scale, err := h.scales.ScaleOf(s)
	if err != nil {
		return nil, err
	}
	return h.parse(text, scale)
}

func (h *DecimalHandler) ParseNode(s *schema.Schema, n node.Node) (interface{}, error) {
	switch n.Kind() {
	case node.Number:
		scale, err := h.scales.ScaleOf(s)
		if err != nil {
			return nil, err
		}
		return h.parse(n.Number(), scale)
	case node.Text:
		return h.ParseString(s, n.Text())
	}
	return nil, unexpectedKind(n, node.Number, node.Text)
}

func (h *DecimalHandler) parse(literal string, scale int) (*decimal.Big, error) {
	value := decimal.WithContext(h.context(len(literal)))
	if _, ok := value.SetString(literal); !ok || !value.IsFinite() {
		return nil, fmt.Errorf("invalid decimal literal %q", literal)
	}
	integerDigits := value.Precision() - value.Scale()
	if integerDigits > maxIntegerDigits {
		return nil, fmt.Errorf("%q exceeds %d integer digits", literal, maxIntegerDigits)
	}
	if integerDigits < 0 {
		integerDigits = 0
	}
	// one extra digit absorbs a rounding carry, i.e. 9.96 to 10.0
	ctx := h.context(integerDigits + scale + 1)
	rescaled := decimal.WithContext(ctx)
	rescaled.Copy(value)
	rescaled.Context = ctx
	rescaled.Quantize(scale)
	if !rescaled.IsFinite() {
		return nil, fmt.Errorf("%q can not be represented with scale %d", literal, scale)
	}
	if h.rounding == nil && rescaled.Cmp(value) != 0 {
		return nil, fmt.Errorf("%q requires rounding to fit scale %d", literal, scale)
	}
	return rescaled, nil
}
