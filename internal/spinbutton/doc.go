// Package spinbutton implements a numeric spin button for Bubble Tea programs.
//
// A spin button shows a bounded number in a text field with two arrow
// buttons beside it. The value changes by:
//   - Up/Down arrow keys (one step per key press)
//   - Holding the left mouse button on an arrow (one step, then a step every
//     RepeatDelay until release or until the pointer leaves the button)
//   - Typing into the field; the text is validated and clamped on blur
//
// # Usage
//
//	cfg := spinbutton.DefaultConfig()
//	cfg.Label = "Volume"
//	cfg.DefaultValue = "30"
//	sb := spinbutton.New(cfg)
//	cmd := sb.Focus()
//
//	// in the host's Update:
//	sb, cmd = sb.Update(msg)
//
//	// in the host's View:
//	sb.View()
//
// Mouse events must be translated into widget-local coordinates by the host
// before they are forwarded. Repeat and release ticks carry the widget ID, so
// a host can forward every message to every spin button it owns.
//
// # Value Policy
//
// Validation and stepping go through a ValuePolicy chosen once by New.
// A widget seeded with DefaultValue uses ClampPolicy. Otherwise the
// OnValidate, OnIncrement and OnDecrement overrides from Config apply,
// with ClampPolicy standing in for any override that is nil. Overrides
// return ok=false to leave the value untouched, which is how custom
// formats such as "42%" are supported (see UnitOverrides).
//
// # Stopping
//
// Every way a spin can end (pointer release, pointer leaving the button,
// key release, focus, disable) goes through the same stop transition. Stop
// invalidates the pending repeat before anything else, so a tick that was
// already in flight is ignored when it arrives.
package spinbutton
