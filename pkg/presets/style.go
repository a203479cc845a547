package presets

import (
	"sort"
	"strings"
)

// DefaultFont is used for any heading or body face a style does not resolve.
const DefaultFont = "Inter"

// DefaultPalette is used when a style's palette lookup misses.
var DefaultPalette = []string{"#111217", "#ffffff"}

// Style is a catalog style with its palette and font references resolved.
type Style struct {
	Key     string   `json:"key"`
	Palette []string `json:"palette"`
	Fonts   FontPair `json:"fonts"`
	Tone    []string `json:"tone,omitempty"`
}

// ResolveStyle looks up key and its palette and fonts. Misses never fail: an
// unknown style resolves to an empty definition, an unknown palette to
// DefaultPalette and unknown fonts to DefaultFont for both faces.
func ResolveStyle(cfg *Config, key string) Style {
	var def StyleDef
	if cfg != nil {
		def = cfg.Styles[key]
	}

	style := Style{
		Key:     key,
		Palette: append([]string(nil), DefaultPalette...),
		Fonts:   FontPair{Heading: DefaultFont, Body: DefaultFont},
		Tone:    append([]string(nil), def.Tone...),
	}
	if cfg == nil {
		return style
	}
	if palette, ok := cfg.Palettes[def.Palette]; ok {
		style.Palette = append([]string(nil), palette...)
	}
	if fonts, ok := cfg.Fonts[def.Fonts]; ok {
		style.Fonts = fonts
	}
	return style
}

// Color returns palette entry idx, or fallback when the palette is shorter or
// the entry is blank.
func (s Style) Color(idx int, fallback string) string {
	if idx < 0 || idx >= len(s.Palette) {
		return fallback
	}
	if value := strings.TrimSpace(s.Palette[idx]); value != "" {
		return value
	}
	return fallback
}

// HeadingFont returns the heading face or DefaultFont.
func (s Style) HeadingFont() string {
	if strings.TrimSpace(s.Fonts.Heading) == "" {
		return DefaultFont
	}
	return s.Fonts.Heading
}

// BodyFont returns the body face or DefaultFont.
func (s Style) BodyFont() string {
	if strings.TrimSpace(s.Fonts.Body) == "" {
		return DefaultFont
	}
	return s.Fonts.Body
}

// ResolveAll resolves every catalog style, sorted by key.
func (c *Config) ResolveAll() []Style {
	names := c.StyleNames()
	out := make([]Style, 0, len(names))
	for _, name := range names {
		out = append(out, ResolveStyle(c, name))
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
