// Package presets loads the deck style catalog (palettes, font pairs, styles,
// templates and the auto-select keyword map) and answers the two questions the
// rest of deckgen asks of it: which templates fit a set of criteria, and what
// a style key resolves to once palettes and fonts are looked up.
//
// The catalog is plain YAML. Loading is split the same way across sources:
// a Source says where the document lives (file, fs.FS entry, URL), a Loader
// fetches the bytes, and Parse turns a Document into a read-only Config.
package presets
