// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (clock face, title line, colour row, tab bar,
//   calendar, box chrome, stacks, popup overlay compositor)
// - hit testing of what was drawn, in cell coordinates
//
// Not allowed here:
// - key handling, picker state transitions or imports of core
package widgets
