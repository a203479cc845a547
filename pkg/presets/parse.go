package presets

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a presets document. JSON payloads are accepted since JSON is
// valid YAML.
func Parse(doc Document) (*Config, error) {
	return ParseBytes(doc.raw, doc.Location())
}

// ParseBytes decodes raw presets data; source only labels error messages.
func ParseBytes(data []byte, source string) (*Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("presets: parse %s: %w", source, ErrEmptyDocument)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("presets: parse %s: %w", source, err)
	}
	normalise(&cfg)
	return &cfg, nil
}

func normalise(cfg *Config) {
	if cfg.Palettes == nil {
		cfg.Palettes = map[string][]string{}
	}
	if cfg.Fonts == nil {
		cfg.Fonts = map[string]FontPair{}
	}
	if cfg.Styles == nil {
		cfg.Styles = map[string]StyleDef{}
	}
	if cfg.AutoSelect.TagStyleMap == nil {
		cfg.AutoSelect.TagStyleMap = map[string][]string{}
	}
	for i := range cfg.Templates {
		tpl := &cfg.Templates[i]
		tpl.Style = strings.TrimSpace(tpl.Style)
		if len(tpl.Extra) == 0 {
			tpl.Extra = nil
		}
	}
}

// Validate reports references the catalog cannot resolve: styles naming
// unknown palettes or font pairs, templates naming unknown styles, and keyword
// map entries pointing at unknown styles. Lookups that miss still resolve to
// fallback values, so these are warnings for catalog authors rather than
// load failures.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("presets: config is nil")
	}
	var errs []error
	for _, name := range c.StyleNames() {
		style := c.Styles[name]
		if _, ok := c.Palettes[style.Palette]; !ok {
			errs = append(errs, fmt.Errorf("style %q: unknown palette %q", name, style.Palette))
		}
		if _, ok := c.Fonts[style.Fonts]; !ok {
			errs = append(errs, fmt.Errorf("style %q: unknown fonts %q", name, style.Fonts))
		}
	}
	for idx, tpl := range c.Templates {
		if _, ok := c.Styles[tpl.Style]; !ok {
			errs = append(errs, fmt.Errorf("template %d (%s): unknown style %q", idx, tpl.Label(), tpl.Style))
		}
	}
	for _, keyword := range sortedKeys(c.AutoSelect.TagStyleMap) {
		for _, style := range c.AutoSelect.TagStyleMap[keyword] {
			if _, ok := c.Styles[style]; !ok {
				errs = append(errs, fmt.Errorf("auto_select keyword %q: unknown style %q", keyword, style))
			}
		}
	}
	return errors.Join(errs...)
}
