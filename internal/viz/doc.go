// Package viz renders a running sandbox in the terminal.
//
// The live view uses Bubble Tea and draws bodies onto a braille
// [Canvas], two by four dots per character cell:
//
//   - [Model]: steps a scene against the wall clock at 60 Hz
//   - [NewInteractiveApp]: preset picker that launches the live view
//   - [Recorder]: GIF capture of canvas frames
//
// # Key Bindings
//
//	Space - Pause/Resume
//	D     - Toggle force lines
//	R     - Rebuild the scene from its config
//	S     - Spawn a body (a particle in particle mode)
//	A     - Randomize attraction (particle mode)
//	G     - Toggle GIF recording to sandbox.gif
//	T     - Cycle colour themes
//	?     - Show help overlay
package viz
