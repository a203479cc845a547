package presets

import "strings"

// MaxResults caps how many templates FindTemplates returns.
const MaxResults = 3

// Criteria are the selection inputs a user supplies when looking for a
// template.
type Criteria struct {
	Audience []string `json:"audience,omitempty"`
	Purpose  string   `json:"purpose,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Empty reports whether no criterion carries a value.
func (c Criteria) Empty() bool {
	return len(c.Audience) == 0 && len(c.Tags) == 0 && strings.TrimSpace(c.Purpose) == ""
}

// FindTemplates returns up to MaxResults templates, in catalog order, that
// match at least one criterion. An empty result is not an error.
func FindTemplates(cfg *Config, criteria Criteria) []Template {
	if cfg == nil {
		return nil
	}
	var out []Template
	for _, tpl := range cfg.Templates {
		if !cfg.Matches(tpl, criteria) {
			continue
		}
		out = append(out, tpl)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}

// Matches reports whether tpl satisfies criteria: the audiences overlap, the
// tags overlap, or a tag_style_map keyword found in the purpose suggests the
// template's style.
func (c *Config) Matches(tpl Template, criteria Criteria) bool {
	if overlaps(criteria.Audience, tpl.Audience) {
		return true
	}
	if overlaps(criteria.Tags, tpl.Tags) {
		return true
	}
	return c.purposeSuggests(criteria.Purpose, tpl.Style)
}

// SuggestedStyles lists the styles whose keywords appear in purpose, ordered
// by keyword and de-duplicated.
func (c *Config) SuggestedStyles(purpose string) []string {
	if c == nil {
		return nil
	}
	var out []string
	seen := map[string]struct{}{}
	for _, keyword := range sortedKeys(c.AutoSelect.TagStyleMap) {
		if !purposeContains(purpose, keyword) {
			continue
		}
		for _, style := range c.AutoSelect.TagStyleMap[keyword] {
			if _, ok := seen[style]; ok {
				continue
			}
			seen[style] = struct{}{}
			out = append(out, style)
		}
	}
	return out
}

func (c *Config) purposeSuggests(purpose, style string) bool {
	if c == nil || strings.TrimSpace(purpose) == "" {
		return false
	}
	for keyword, styles := range c.AutoSelect.TagStyleMap {
		if !purposeContains(purpose, keyword) {
			continue
		}
		if contains(styles, style) {
			return true
		}
	}
	return false
}

func purposeContains(purpose, keyword string) bool {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return false
	}
	return strings.Contains(strings.ToLower(purpose), strings.ToLower(keyword))
}

func overlaps(wanted, have []string) bool {
	for _, value := range wanted {
		if contains(have, value) {
			return true
		}
	}
	return false
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
