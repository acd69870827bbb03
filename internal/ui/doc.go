// Package ui renders styled output for the non-interactive spinbutton
// commands (simulate, presets, version).
//
// These components follow a "print once and exit" pattern: they render
// output with Lipgloss but take no input. The interactive form lives in
// package demo.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, warning or failure box with ordered details
//   - Trace: aligned table of replay steps
//
// Printer ties them to an io.Writer and the detected terminal width:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Simulate", "spinbutton simulate",
//	    ui.Field{Key: "Preset", Value: "volume"})
//	p.PrintSuccess("Replay complete",
//	    ui.Field{Key: "Value", Value: "35"})
//
// # Logging Integration
//
// Logging is controlled by SPINBUTTON_LOG_LEVEL. When it is unset, zap is
// silent so the styled output is not interleaved with log lines.
package ui
