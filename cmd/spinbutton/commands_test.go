package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/muurk/spinbutton/internal/config"
	"github.com/muurk/spinbutton/internal/logging"
	"github.com/muurk/spinbutton/internal/replay"
	"github.com/muurk/spinbutton/internal/spinbutton"
)

// execute runs the root command against a preset file in a temp dir.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	scriptFile, quietTrace, forceInit = "", false, false
	exportFormat, exportOutput = "", ""
	require.NoError(t, simulateCmd.Flags().Set("preset", "volume"))
	require.NoError(t, rootCmd.PersistentFlags().Set("log-level", ""))
	require.NoError(t, rootCmd.PersistentFlags().Set("log-file", ""))
	t.Cleanup(func() { logging.SetLogger(nil) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return ansi.Strip(out.String()), err
}

func TestSimulateQuiet(t *testing.T) {
	presets := filepath.Join(t.TempDir(), "presets.yaml")

	out, err := execute(t, "simulate", "--presets", presets, "--preset", "volume", "--quiet", "hold-up:4", "down")
	require.NoError(t, err)
	require.Equal(t, "50\n", out)
}

func TestSimulateTrace(t *testing.T) {
	presets := filepath.Join(t.TempDir(), "presets.yaml")

	out, err := execute(t, "simulate", "--presets", presets, "--preset", "opacity", "type:250", "blur")
	require.NoError(t, err)
	require.Contains(t, out, "type:250")
	require.Contains(t, out, "100%")
	require.Contains(t, out, "Simulation complete")
}

func TestSimulateScriptFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "steps.txt")
	require.NoError(t, os.WriteFile(script, []byte("# warm up\nup up\ndown\n"), 0o600))

	out, err := execute(t, "simulate", "--presets", filepath.Join(dir, "presets.yaml"),
		"--preset", "temperature", "--quiet", "--file", script)
	require.NoError(t, err)
	require.Equal(t, "22\n", out)
}

func TestSimulateErrors(t *testing.T) {
	presets := filepath.Join(t.TempDir(), "presets.yaml")

	_, err := execute(t, "simulate", "--presets", presets)
	require.ErrorContains(t, err, "no steps")

	_, err = execute(t, "simulate", "--presets", presets, "--preset", "missing", "up")
	require.ErrorContains(t, err, `"missing" not found`)

	out, err := execute(t, "simulate", "--presets", presets, "jump")
	require.Error(t, err)
	require.Contains(t, out, "Invalid script")
}

func TestSimulateWarnsOnce(t *testing.T) {
	dir := t.TempDir()
	presets := filepath.Join(dir, "presets.yaml")
	logFile := filepath.Join(dir, "spin.log")
	require.NoError(t, os.WriteFile(presets, []byte(`version: 1
presets:
  inverted:
    min: 10
    max: 0
    step: 1
    default_value: "5"
`), 0o600))

	out, err := execute(t, "simulate", "--presets", presets, "--preset", "inverted",
		"--log-level", "warn", "--log-file", logFile, "up")
	require.NoError(t, err)
	require.Contains(t, out, "Simulation complete")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), "min (10) is greater than max (0)"))
}

func TestBadSettingsAreLogged(t *testing.T) {
	dir := t.TempDir()
	settingsFile := filepath.Join(dir, "settings.toml")
	logFile := filepath.Join(dir, "spin.log")
	require.NoError(t, os.WriteFile(settingsFile, []byte("log_level = [unclosed"), 0o600))

	t.Setenv(config.SettingsEnvVar, settingsFile)
	t.Setenv(logging.LogLevelEnvVar, "error")
	t.Setenv(logging.LogFileEnvVar, logFile)

	saved := v
	v = config.NewViper()
	bindFlags(v, rootCmd.PersistentFlags())
	t.Cleanup(func() {
		v = saved
		logging.SetLogger(nil)
	})

	require.Error(t, loadSettings(rootCmd, nil))
	logging.Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "Failed to load settings")
}

func TestPresetsInitAndExport(t *testing.T) {
	dir := t.TempDir()
	presets := filepath.Join(dir, "presets.yaml")

	out, err := execute(t, "presets", "init", "--presets", presets)
	require.NoError(t, err)
	require.Contains(t, out, "Preset file created")
	require.FileExists(t, presets)

	_, err = execute(t, "presets", "init", "--presets", presets)
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, "presets", "init", "--presets", presets, "--force")
	require.NoError(t, err)

	out, err = execute(t, "presets", "export", "--presets", presets, "--format", "toml")
	require.NoError(t, err)
	require.Contains(t, out, "[presets.volume]")

	jsonPath := filepath.Join(dir, "out.json")
	_, err = execute(t, "presets", "export", "--presets", presets, "-o", jsonPath)
	require.NoError(t, err)
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "{"))
}

func TestPresetsListAndShow(t *testing.T) {
	presets := filepath.Join(t.TempDir(), "presets.yaml")

	out, err := execute(t, "presets", "list", "--presets", presets)
	require.NoError(t, err)
	require.Contains(t, out, "5 presets")
	require.Contains(t, out, "font-size")

	out, err = execute(t, "presets", "show", "--presets", presets, "locked")
	require.NoError(t, err)
	require.Contains(t, out, "spinbutton")
	require.Contains(t, out, "true")

	out, err = execute(t, "presets", "show", "--presets", presets, "font-size")
	require.NoError(t, err)
	require.Contains(t, out, "Editor font size")
}

func TestTraceRowsMarkChanges(t *testing.T) {
	trace := []replay.TraceEntry{
		{Step: replay.Step{Kind: replay.StepUp}, Value: "1", Direction: spinbutton.Up},
		{Step: replay.Step{Kind: replay.StepFocus}, Value: "1"},
	}
	rows := traceRows("0", trace)
	require.Len(t, rows, 2)
	require.True(t, rows[0].Changed)
	require.False(t, rows[1].Changed)
	require.Equal(t, "up", rows[0].Direction)
}

func TestConfigKey(t *testing.T) {
	require.Equal(t, "log_level", configKey("log-level"))
	require.Equal(t, "mouse", configKey("mouse"))
}
