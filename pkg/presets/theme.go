package presets

import (
	"fmt"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ManifestVersion stamps the go-theme manifests derived from catalog styles.
const ManifestVersion = "1.0.0"

const (
	tokenPalettePrefix = "palette."
	tokenHeadingFont   = "font.heading"
	tokenBodyFont      = "font.body"
	tokenTone          = "tone"
)

// Manifest expresses the resolved style as a go-theme manifest. Palette
// entries become palette.<n> tokens, fonts become font.heading and font.body.
func (s Style) Manifest() *theme.Manifest {
	tokens := make(map[string]string, len(s.Palette)+3)
	for idx, color := range s.Palette {
		tokens[tokenPalettePrefix+strconv.Itoa(idx)] = color
	}
	tokens[tokenHeadingFont] = s.Fonts.Heading
	tokens[tokenBodyFont] = s.Fonts.Body
	if len(s.Tone) > 0 {
		tokens[tokenTone] = strings.Join(s.Tone, ",")
	}
	return &theme.Manifest{
		Name:    s.Key,
		Version: ManifestVersion,
		Tokens:  tokens,
	}
}

// StyleFromManifest reverses Style.Manifest. Missing palette tokens resolve to
// DefaultPalette and missing font tokens to DefaultFont.
func StyleFromManifest(manifest *theme.Manifest) Style {
	style := Style{
		Palette: append([]string(nil), DefaultPalette...),
		Fonts:   FontPair{Heading: DefaultFont, Body: DefaultFont},
	}
	if manifest == nil {
		return style
	}
	style.Key = manifest.Name

	var palette []string
	for idx := 0; ; idx++ {
		color, ok := manifest.Tokens[tokenPalettePrefix+strconv.Itoa(idx)]
		if !ok {
			break
		}
		palette = append(palette, color)
	}
	if len(palette) > 0 {
		style.Palette = palette
	}
	if heading := manifest.Tokens[tokenHeadingFont]; heading != "" {
		style.Fonts.Heading = heading
	}
	if body := manifest.Tokens[tokenBodyFont]; body != "" {
		style.Fonts.Body = body
	}
	if tone := manifest.Tokens[tokenTone]; tone != "" {
		style.Tone = strings.Split(tone, ",")
	}
	return style
}

// Manifests returns one go-theme manifest per catalog style, sorted by key.
func (c *Config) Manifests() []*theme.Manifest {
	styles := c.ResolveAll()
	out := make([]*theme.Manifest, 0, len(styles))
	for _, style := range styles {
		out = append(out, style.Manifest())
	}
	return out
}

// ThemeProvider registers every catalog style with a go-theme registry so the
// catalog can be handed to theme-aware consumers.
func (c *Config) ThemeProvider() (theme.ThemeProvider, error) {
	registry := theme.NewRegistry()
	for _, manifest := range c.Manifests() {
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("presets: register style %q: %w", manifest.Name, err)
		}
	}
	return registry, nil
}

// Selector resolves catalog styles through the go-theme selector contract.
type Selector struct {
	cfg *Config
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector returns a selector backed by cfg. A nil cfg resolves every name
// to the fallback style.
func NewSelector(cfg *Config) *Selector {
	return &Selector{cfg: cfg}
}

// Select resolves name as a style key. Unknown names are not an error; they
// select the fallback palette and fonts, matching ResolveStyle.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	var cfg *Config
	if s != nil {
		cfg = s.cfg
	}
	style := ResolveStyle(cfg, name)
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: style.Manifest(),
	}, nil
}
