// Package template defines the template engine contract renderers rely on and
// ships a pongo2-backed implementation in the gotemplate subpackage.
package template
