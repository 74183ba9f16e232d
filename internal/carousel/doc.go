// Package carousel contains the card carousel state machine.
//
// Allowed here:
// - the Controller (single owner of index, drag, view mode and autoplay state)
// - gesture interpretation, the autoplay scheduler, scroll offset math, progress
// - listener fan-out of immutable state snapshots
//
// Not allowed here:
// - terminal rendering, key bindings, or catalogue storage
package carousel
