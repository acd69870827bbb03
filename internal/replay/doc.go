// Package replay drives a spin button from a textual script.
//
// A script is a list of whitespace-separated steps:
//
//	up, down          arrow key press and release
//	hold-up:N         pointer down on the increment button, N repeat firings, pointer up
//	hold-down:N       the same on the decrement button
//	type:TEXT         focus the field and replace its text
//	blur, focus       move focus out of or into the field
//	enter, esc        commit or revert the text
//	release           pointer up
//
// Repeat ticks are fed back to the widget as soon as they are scheduled, so
// replaying never waits on the clock. Run returns the final value, the spin
// direction, the last valid value and the state after every step.
package replay
