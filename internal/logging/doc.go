// Package logging provides structured logging for the spin button CLI and widget.
//
// This package wraps a zap logger with convenience functions. Logging is
// silent unless a level is configured, so the terminal UI is never disturbed
// by stray output.
//
// # Log Levels
//
//   - Debug: Widget transitions and repeat timer activity
//   - Info: Command lifecycle (presets loaded, program started)
//   - Warn: Non-fatal configuration problems (value and defaultValue both set)
//   - Error: Failures reported by the CLI
//
// # Configuration
//
// Initialize logging once at startup:
//
//	if err := logging.Initialize("debug", "/tmp/spinbutton.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Empty arguments fall back to SPINBUTTON_LOG_LEVEL and SPINBUTTON_LOG_FILE.
// Interactive sessions should always log to a file.
//
// # Specialized Logging
//
//	logging.LogTransition(id, "key_up_arrow", "5", "up")
//	logging.LogRepeat(id, "fired", tag)
//	logging.LogConfigWarning(id, "Volume", "value and defaultValue are mutually exclusive")
package logging
