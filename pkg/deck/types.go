package deck

import "strings"

// EMUPerInch converts inches to the English Metric Units used by OOXML.
const EMUPerInch = 914400

// Page geometry of the "16x9" layout, in inches.
const (
	LayoutWide  = "16x9"
	SlideWidth  = 10.0
	SlideHeight = 5.625
)

// Presentation is a laid out deck ready for rendering.
type Presentation struct {
	Layout string  `json:"layout"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Title  string  `json:"title"`
	Theme  Theme   `json:"theme"`
	Slides []Slide `json:"slides"`
}

// Theme carries the style information renderers embed at document level.
type Theme struct {
	Name        string   `json:"name"`
	HeadingFont string   `json:"headingFont"`
	BodyFont    string   `json:"bodyFont"`
	Palette     []string `json:"palette"`
}

// Slide is one page. Kind is "cover" for the title page and the descriptor
// type otherwise.
type Slide struct {
	Kind       string    `json:"kind"`
	Title      string    `json:"title,omitempty"`
	Background string    `json:"background"`
	Elements   []Element `json:"elements,omitempty"`
}

// ElementKind distinguishes text boxes from filled shapes.
type ElementKind string

const (
	ElementText ElementKind = "text"
	ElementRect ElementKind = "rect"
)

// Align is the horizontal paragraph alignment of a text box.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// Box is a position and size in inches.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Element is a positioned shape. Text fields are ignored for rects and Fill
// is ignored for text boxes.
type Element struct {
	Kind ElementKind `json:"kind"`
	Box  Box         `json:"box"`
	Fill string      `json:"fill,omitempty"`

	Paragraphs  []string `json:"paragraphs,omitempty"`
	Font        string   `json:"font,omitempty"`
	Size        float64  `json:"size,omitempty"`
	Bold        bool     `json:"bold,omitempty"`
	Italic      bool     `json:"italic,omitempty"`
	Color       string   `json:"color,omitempty"`
	Align       Align    `json:"align,omitempty"`
	LineSpacing float64  `json:"lineSpacing,omitempty"`
}

// Text returns the paragraphs joined by newlines.
func (e Element) Text() string {
	return strings.Join(e.Paragraphs, "\n")
}

// Texts returns the text elements of the slide in placement order.
func (s Slide) Texts() []Element {
	var out []Element
	for _, el := range s.Elements {
		if el.Kind == ElementText {
			out = append(out, el)
		}
	}
	return out
}

// EMU converts inches to EMUs, rounding to the nearest unit.
func EMU(inches float64) int64 {
	if inches < 0 {
		return -int64(-inches*EMUPerInch + 0.5)
	}
	return int64(inches*EMUPerInch + 0.5)
}
