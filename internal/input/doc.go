// Package input produces bus events from a terminal.
//
// A Source wraps a tcell screen and turns raw terminal events into
// event.Event values: key presses become TypeKeyPressed with a Key
// payload, size changes become TypeWindowResized with a Resize
// payload, and focus changes become TypeFocusGained/TypeFocusLost.
//
// Terminals do not report key release, so a Source never produces
// TypeKeyReleased.
package input
