// Package config manages spin button presets and program settings.
//
// Presets are named spin button configurations stored in a YAML file. The
// demo form shows them and the simulate command replays scripts against
// them. Settings (log level, preset path, mouse support) come from flags,
// SPINBUTTON_* environment variables and an optional settings.toml.
//
// # File Locations
//
// Both files live in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/spinbutton or $HOME/.config/spinbutton
//   - macOS: $HOME/.config/spinbutton
//   - Windows: %LOCALAPPDATA%\spinbutton
//
// A missing preset file is not an error; the built-in presets are used.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, err := registry.GetPreset("volume").ToConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sb := spinbutton.New(cfg)
//
// # Formats
//
// A preset with format "percent" or "unit" shows a suffixed value such as
// "80%" or "14 pt". Suffixed values go through value overrides, so those
// presets must set value rather than default_value.
//
// Registries export to YAML, TOML and JSON, and Decode reads all three.
//
// # Thread Safety
//
// Save holds a mutex and writes through a temporary file and rename.
package config
