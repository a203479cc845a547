// Package content decodes the user supplied description of a deck: a title,
// an optional subtitle and file name, and an ordered list of typed slide
// descriptors. Decoding is lenient. Unknown fields are kept in Extra and scalar
// values are coerced to strings. Text is never rewritten by Parse; Sanitize
// strips markup for callers that ask for it.
package content
