// Package deck turns a content schema and a resolved style into a
// renderer-neutral presentation: a list of slides, each a list of absolutely
// positioned text boxes and shapes measured in inches on a 16:9 page.
package deck
