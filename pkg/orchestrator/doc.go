// Package orchestrator wires the presets loader, style resolution, deck layout
// and renderer registry into a single Generator, and routes content and
// generation failures to an Alerter instead of returning them.
package orchestrator
