package presets

import (
	"sort"
	"strings"
)

// Config is the parsed presets catalog. It is safe for concurrent readers when
// treated as immutable after Parse returns.
type Config struct {
	Palettes   map[string][]string `json:"palettes" yaml:"palettes"`
	Fonts      map[string]FontPair `json:"fonts" yaml:"fonts"`
	Styles     map[string]StyleDef `json:"styles" yaml:"styles"`
	Templates  []Template          `json:"templates" yaml:"templates"`
	AutoSelect AutoSelect          `json:"auto_select" yaml:"auto_select"`
}

// FontPair names the heading and body typefaces of a style.
type FontPair struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

// StyleDef is a catalog style entry before palette and font lookups.
type StyleDef struct {
	Palette string   `json:"palette" yaml:"palette"`
	Fonts   string   `json:"fonts" yaml:"fonts"`
	Tone    []string `json:"tone,omitempty" yaml:"tone,omitempty"`
}

// Template associates a style with the audience, purpose and tag metadata the
// matcher filters on. Keys the catalog defines beyond the known ones are kept
// in Extra.
type Template struct {
	ID          string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Style       string         `json:"style" yaml:"style"`
	Audience    []string       `json:"audience,omitempty" yaml:"audience,omitempty"`
	Purpose     string         `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Extra       map[string]any `json:"extra,omitempty" yaml:",inline"`
}

// Label returns the most descriptive identifier available for the template.
func (t Template) Label() string {
	switch {
	case strings.TrimSpace(t.Name) != "":
		return t.Name
	case strings.TrimSpace(t.ID) != "":
		return t.ID
	default:
		return t.Style
	}
}

// AutoSelect holds the keyword driven style suggestions.
type AutoSelect struct {
	// TagStyleMap maps a purpose keyword to the styles it suggests.
	TagStyleMap map[string][]string `json:"tag_style_map" yaml:"tag_style_map"`
}

// StyleNames returns the catalog style keys in sorted order.
func (c *Config) StyleNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Audiences returns every audience value mentioned by a template, sorted and
// de-duplicated.
func (c *Config) Audiences() []string {
	if c == nil {
		return nil
	}
	var values []string
	for _, tpl := range c.Templates {
		values = append(values, tpl.Audience...)
	}
	return uniqueSorted(values)
}

// Tags returns every tag mentioned by a template, sorted and de-duplicated.
func (c *Config) Tags() []string {
	if c == nil {
		return nil
	}
	var values []string
	for _, tpl := range c.Templates {
		values = append(values, tpl.Tags...)
	}
	return uniqueSorted(values)
}

// Template returns the first template whose ID or Name equals key.
func (c *Config) Template(key string) (Template, bool) {
	if c == nil {
		return Template{}, false
	}
	key = strings.TrimSpace(key)
	for _, tpl := range c.Templates {
		if tpl.ID == key || tpl.Name == key {
			return tpl, true
		}
	}
	return Template{}, false
}

func uniqueSorted(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	sort.Strings(out)
	return out
}
