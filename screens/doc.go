// Package screens contains the bubbletea screens stacked by core.Model.
//
// Allowed here:
// - root picker screens (time, date/time, colour) that own a core picker
// - overlays (entry, history, presets, command palette) that talk to the root through messages
// - pointer mapping from terminal cells onto a picker face
//
// Not allowed here:
// - picker rules and geometry, which belong to core
// - low-level widget/layout primitives
package screens
