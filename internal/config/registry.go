package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName     = "spinbutton"
	presetsFile = "presets.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/spinbutton or $HOME/.config/spinbutton
//   - macOS: $HOME/.config/spinbutton (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\spinbutton
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetPresetsPath returns the full path to the default preset file.
func GetPresetsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, presetsFile), nil
}

// resolvePath returns path, or the default preset path when path is empty.
func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return GetPresetsPath()
}

// LoadRegistry loads the preset registry from path, or from the default
// location when path is empty. A missing file yields the built-in presets.
func LoadRegistry(path string) (*Registry, error) {
	presetsPath, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get presets path: %w", err)
	}

	if _, err := os.Stat(presetsPath); os.IsNotExist(err) {
		return defaultRegistry(), nil
	}

	data, err := os.ReadFile(presetsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	registry, err := Decode(data, ExportYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", presetsPath, err)
	}
	return registry, nil
}

// normalize checks the version and fills in missing sections.
func (r *Registry) normalize() error {
	if r.Version != CurrentVersion {
		return fmt.Errorf("unsupported presets version: %d (expected %d)", r.Version, CurrentVersion)
	}
	if r.Presets == nil {
		r.Presets = make(map[string]*Preset)
	}
	if r.Form == nil {
		r.Form = NewRegistry().Form
	}
	for name, p := range r.Presets {
		if p == nil {
			return fmt.Errorf("preset %q is empty", name)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return nil
}

// Save writes the registry to path, or to the default location when path is
// empty. Performs an atomic write to prevent corruption on crash.
func (r *Registry) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	presetsPath, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("failed to get presets path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(presetsPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	header := []byte(`# Spin button presets
# Each preset configures one spin button. Use "value" together with
# "format: percent" or "format: unit" for suffixed values; "default_value"
# always clamps to min/max.
#
# Location: ` + presetsPath + `

`)
	data = append(header, data...)

	tmpPath := presetsPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary presets file: %w", err)
	}

	if err := os.Rename(tmpPath, presetsPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save presets file: %w", err)
	}

	return nil
}

// CreateDefault writes the built-in presets to path (or the default
// location). An existing file is left alone unless force is set.
func CreateDefault(path string, force bool) (string, error) {
	presetsPath, err := resolvePath(path)
	if err != nil {
		return "", fmt.Errorf("failed to get presets path: %w", err)
	}

	if !force {
		if _, err := os.Stat(presetsPath); err == nil {
			return presetsPath, fmt.Errorf("presets file already exists: %s", presetsPath)
		}
	}

	return presetsPath, defaultRegistry().Save(presetsPath)
}

// defaultRegistry holds the built-in presets in display order.
func defaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Presets = DefaultPresets()
	registry.Form.Presets = []string{"volume", "opacity", "font-size", "temperature", "locked"}
	return registry
}
