package content

import _ "embed"

//go:embed example.json
var exampleJSON []byte

// ExampleJSON returns a sample content document that uses every slide type.
func ExampleJSON() []byte {
	out := make([]byte, len(exampleJSON))
	copy(out, exampleJSON)
	return out
}
