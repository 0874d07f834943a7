// Package viz draws planet populations in the terminal.
//
// The package implements a live view using the Bubble Tea framework:
//
//   - [Model]: steps a population once per frame and renders it
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - Theme selection with 5 built-in color schemes
//
// Planets are drawn as circles in the unit square with y pointing down and
// coloured by the magnitude of their momentum, see [MomentumColor].
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial population
//	G     - Toggle gravity
//	C     - Toggle collisions
//	W     - Toggle walls
//	+/-   - Double/halve dt
//	T     - Cycle color themes
//	Q     - Quit
package viz
