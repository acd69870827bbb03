// Spinbutton is a terminal demo of the spin button widget.
//
// It shows a form of spin buttons built from a preset file, replays scripted
// interactions against a single preset, and manages the preset file.
//
// Usage:
//
//	spinbutton [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'spinbutton --help' for available commands.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/muurk/spinbutton/internal/config"
	"github.com/muurk/spinbutton/internal/demo"
	"github.com/muurk/spinbutton/internal/logging"
	"github.com/muurk/spinbutton/internal/version"
)

// Loaded in PersistentPreRunE, before any command runs.
var (
	v        = config.NewViper()
	settings config.Settings
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spinbutton",
	Short: "Spin button widget demo",
	Long: `A terminal demo of a numeric spin button widget.

The form shows one spin button per preset. Use the arrow keys or hold the
mouse on the arrow buttons to change a value, type a number directly, and
press tab to move between fields.

If no command is specified, the interactive form will launch automatically.`,
	Version:           version.Full(),
	PersistentPreRunE: loadSettings,
	RunE:              runDemo,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "Log level (debug, info, warn, error); empty disables logging")
	flags.String("log-file", "", "Write logs to this file instead of stdout")
	flags.String("presets", "", "Preset file (default is presets.yaml in the config directory)")
	flags.Bool("mouse", true, "Enable mouse support in the interactive form")

	bindFlags(v, flags)

	rootCmd.AddCommand(versionCmd)
}

// bindFlags binds every flag to the viper key of the same name with dashes
// turned into underscores.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// BindPFlag only fails on a nil flag.
		_ = v.BindPFlag(configKey(f.Name), f)
	})
}

func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings(v)
	if err != nil {
		// No usable settings, so the environment alone decides where this goes.
		if logErr := logging.InitializeFromEnv(); logErr == nil {
			logging.Error("Failed to load settings", zap.Error(err))
		}
		return err
	}
	settings = s

	if err := logging.Initialize(settings.LogLevel, settings.LogFile); err != nil {
		return err
	}
	logging.Debug("Settings loaded")
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	reg, err := config.LoadRegistry(settings.Presets)
	if err != nil {
		return err
	}

	app, err := demo.FromRegistry(reg)
	if err != nil {
		return err
	}

	logging.Info("Starting demo",
		zap.Int("fields", len(app.Fields)),
		zap.Bool("mouse", settings.Mouse),
	)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if settings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("spinbutton %s\n", version.Full())
	},
}
