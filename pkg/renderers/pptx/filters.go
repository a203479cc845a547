package pptx

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goliatone/go-deckgen/pkg/deck"
	gotemplate "github.com/goliatone/go-deckgen/pkg/render/template/gotemplate"
)

// Filters converts the float values of a deck into the integer units OOXML
// expects: "emu" (inches), "pt" (hundredths of a point) and "pct"
// (thousandths of a percent, for line spacing multiples).
func Filters() map[string]gotemplate.FilterFunc {
	return map[string]gotemplate.FilterFunc{
		"emu": scaled(deck.EMUPerInch),
		"pt":  scaled(100),
		"pct": scaled(100000),
	}
}

func scaled(factor float64) gotemplate.FilterFunc {
	return func(input any, _ any) (any, error) {
		value, err := toFloat(input)
		if err != nil {
			return nil, err
		}
		return strconv.FormatInt(int64(math.Round(value*factor)), 10), nil
	}
}

func toFloat(input any) (float64, error) {
	switch v := input.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		if v == "" {
			return 0, nil
		}
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("pptx: cannot convert %T to a number", input)
	}
}
