package render

import "time"

// RenderOptions describe per-request document metadata renderers can embed
// without changing the laid out presentation.
type RenderOptions struct {
	// Author is written to the document properties when set.
	Author string
	// Subject and Keywords populate the matching document properties.
	Subject  string
	Keywords []string
	// Created stamps the document; the zero value means "now" at render time.
	Created time.Time
}

// CreatedOrNow returns Created, or the current UTC time when unset.
func (o RenderOptions) CreatedOrNow() time.Time {
	if o.Created.IsZero() {
		return time.Now().UTC()
	}
	return o.Created.UTC()
}
