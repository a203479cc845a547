package content

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ErrInvalidContent marks content that is not valid JSON or does not fit the
// schema shape.
var ErrInvalidContent = errors.New("content: invalid content")

// Parse decodes raw JSON into a Schema. Text is kept as given. Every failure
// wraps ErrInvalidContent.
func Parse(raw []byte) (Schema, error) {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Schema{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	fields, ok := payload.(map[string]any)
	if !ok {
		return Schema{}, fmt.Errorf("%w: top-level value must be an object", ErrInvalidContent)
	}
	return Decode(fields)
}

// Decode maps an already parsed JSON object onto a Schema. Scalars are coerced
// to strings and a single bullet string is accepted in place of a list.
func Decode(fields map[string]any) (Schema, error) {
	var schema Schema
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &schema,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return Schema{}, fmt.Errorf("content: configure decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return Schema{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	return schema, nil
}
