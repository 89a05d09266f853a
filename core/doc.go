// Package core contains the picker state machines and app-wide contracts.
//
// Allowed here:
// - time value types, parsing and the allowed-value chain
// - the clock face, title, RGBA row and date/time pickers as pure state
//   machines: input plus state in, new state plus events out
// - screen stack, key registry and message contracts for the terminal host
//
// Not allowed here:
// - concrete screen rendering (screens) or drawing primitives (widgets)
// - storage and configuration (internal/...)
package core
