package deck

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// NormalizeColor parses a CSS style hex color ("#1e88e5", "1E88E5", "#fff")
// and returns it as upper-case RRGGBB. Unparseable input yields fallback,
// which is normalised the same way.
func NormalizeColor(value, fallback string) string {
	if hex, ok := parseHex(value); ok {
		return hex
	}
	if hex, ok := parseHex(fallback); ok {
		return hex
	}
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(fallback), "#"))
}

func parseHex(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}
	c, err := colorful.Hex(trimmed)
	if err != nil {
		return "", false
	}
	return strings.ToUpper(strings.TrimPrefix(c.Hex(), "#")), true
}
