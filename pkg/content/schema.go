package content

// SlideType tags a slide descriptor with the layout it asks for.
type SlideType string

const (
	SlideSection   SlideType = "section"
	SlideBullets   SlideType = "bullets"
	SlideTwoColumn SlideType = "two_column"
	SlideQuote     SlideType = "quote"
	SlideClosing   SlideType = "closing"
)

// Known reports whether the type has a dedicated layout.
func (t SlideType) Known() bool {
	switch t {
	case SlideSection, SlideBullets, SlideTwoColumn, SlideQuote, SlideClosing:
		return true
	default:
		return false
	}
}

// Schema is the structured description of a deck.
type Schema struct {
	Title    string  `json:"title" mapstructure:"title"`
	Subtitle string  `json:"subtitle,omitempty" mapstructure:"subtitle"`
	FileName string  `json:"fileName,omitempty" mapstructure:"fileName"`
	Slides   []Slide `json:"slides,omitempty" mapstructure:"slides"`

	Extra map[string]any `json:"-" mapstructure:",remain"`
}

// Slide is one slide descriptor. Which fields are read depends on Type.
type Slide struct {
	Type      SlideType `json:"type" mapstructure:"type"`
	Title     string    `json:"title,omitempty" mapstructure:"title"`
	Bullets   []string  `json:"bullets,omitempty" mapstructure:"bullets"`
	ColLeft   string    `json:"col_left,omitempty" mapstructure:"col_left"`
	ColRight  string    `json:"col_right,omitempty" mapstructure:"col_right"`
	QuoteText string    `json:"quote_text,omitempty" mapstructure:"quote_text"`
	Author    string    `json:"author,omitempty" mapstructure:"author"`
	CTA       string    `json:"cta,omitempty" mapstructure:"cta"`

	Extra map[string]any `json:"-" mapstructure:",remain"`
}
