package content

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips markup from s and returns plain text. Entities are
// decoded since slide text is not HTML. Anything that parses as a tag is
// dropped, so "a <b> c" loses "<b>"; callers opt in to it for content pasted
// from HTML sources.
func SanitizeText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// Sanitize returns a copy of schema with every text field passed through
// SanitizeText.
func Sanitize(schema Schema) Schema {
	out := schema
	out.Title = SanitizeText(schema.Title)
	out.Subtitle = SanitizeText(schema.Subtitle)
	out.FileName = SanitizeText(schema.FileName)
	if len(schema.Slides) > 0 {
		out.Slides = make([]Slide, len(schema.Slides))
		for i, slide := range schema.Slides {
			out.Slides[i] = sanitizeSlide(slide)
		}
	}
	return out
}

func sanitizeSlide(slide Slide) Slide {
	out := slide
	out.Type = SlideType(strings.TrimSpace(string(slide.Type)))
	out.Title = SanitizeText(slide.Title)
	out.ColLeft = SanitizeText(slide.ColLeft)
	out.ColRight = SanitizeText(slide.ColRight)
	out.QuoteText = SanitizeText(slide.QuoteText)
	out.Author = SanitizeText(slide.Author)
	out.CTA = SanitizeText(slide.CTA)
	if len(slide.Bullets) > 0 {
		out.Bullets = make([]string, len(slide.Bullets))
		for i, bullet := range slide.Bullets {
			out.Bullets[i] = SanitizeText(bullet)
		}
	}
	return out
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
