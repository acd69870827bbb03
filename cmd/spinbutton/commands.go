package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/spinbutton/internal/config"
	"github.com/muurk/spinbutton/internal/replay"
	"github.com/muurk/spinbutton/internal/spinbutton"
	"github.com/muurk/spinbutton/internal/ui"
)

// Command flags
var (
	scriptFile   string
	quietTrace   bool
	forceInit    bool
	exportFormat string
	exportOutput string
)

func init() {
	simulateCmd.Flags().String("preset", "volume", "Preset to simulate")
	simulateCmd.Flags().StringVar(&scriptFile, "file", "", "Read the script from a file ('-' for stdin)")
	simulateCmd.Flags().BoolVar(&quietTrace, "quiet", false, "Print only the final value")
	_ = v.BindPFlag("preset", simulateCmd.Flags().Lookup("preset"))

	presetsInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing preset file")
	presetsExportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format (yaml, toml, json); default from --output or yaml")
	presetsExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")

	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)
	presetsCmd.AddCommand(presetsInitCmd)
	presetsCmd.AddCommand(presetsExportCmd)

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(presetsCmd)
}

// simulateCmd replays a script of interactions against one preset
var simulateCmd = &cobra.Command{
	Use:   "simulate [steps...]",
	Short: "Replay scripted interactions against a preset",
	Long: `Replay a script of key and pointer interactions against a spin button
built from a preset, and print the value after every step.

Steps are separated by whitespace or newlines; '#' starts a comment.

  up, down          press and release an arrow key
  hold-up:N         press the up button, repeat N times, release
  hold-down:N       press the down button, repeat N times, release
  release           release the pointer
  type:TEXT         type TEXT into the field (empty TEXT clears it)
  focus, blur       move focus into or out of the field
  enter, esc        commit or cancel the typed text

Repeat ticks are delivered instantly, so a run takes no time.`,
	Example: `  # Hold the up button for four repeats, then step down once
  spinbutton simulate hold-up:4 down

  # Type past the maximum and leave the field
  spinbutton simulate --preset opacity type:250 blur

  # Read a script file
  spinbutton simulate --preset temperature --file steps.txt`,
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	src, err := readScript(cmd, args)
	if err != nil {
		return err
	}

	reg, err := config.LoadRegistry(settings.Presets)
	if err != nil {
		return err
	}
	name := v.GetString("preset")
	preset := reg.GetPreset(name)
	if preset == nil {
		return fmt.Errorf("preset %q not found (see 'spinbutton presets list')", name)
	}
	cfg, err := preset.ToConfig()
	if err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}

	out := ui.NewPrinter(cmd.OutOrStdout())

	script, err := replay.Parse(src)
	if err != nil {
		var scriptErr *replay.ScriptError
		if errors.As(err, &scriptErr) {
			out.PrintError("Invalid script", err,
				"Check the step name and its argument",
				"Run 'spinbutton simulate --help' for the list of steps",
			)
			return errors.New("invalid script")
		}
		return err
	}

	initial := spinbutton.New(cfg)
	result := replay.RunModel(initial, script)
	if quietTrace {
		out.Println(result.Value)
		return nil
	}

	out.PrintHeader("Simulation", "simulate",
		ui.Field{Key: "Preset", Value: name},
		ui.Field{Key: "Range", Value: describeRange(cfg)},
		ui.Field{Key: "Initial", Value: initial.Value()},
	)
	out.PrintTrace(traceRows(initial.Value(), result.Trace))
	out.Newline()
	out.PrintSuccess("Simulation complete",
		ui.Field{Key: "Value", Value: result.Value},
		ui.Field{Key: "Last valid", Value: result.LastValid},
		ui.Field{Key: "Direction", Value: result.Direction.String()},
		ui.Field{Key: "Steps", Value: fmt.Sprint(len(script))},
	)
	return nil
}

// readScript takes the script from --file, or else from the arguments.
func readScript(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case scriptFile == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read script from stdin: %w", err)
		}
		return string(data), nil

	case scriptFile != "":
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return "", fmt.Errorf("failed to read script: %w", err)
		}
		return string(data), nil

	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	return "", errors.New("no steps given (pass them as arguments or use --file)")
}

func traceRows(initial string, trace []replay.TraceEntry) []ui.TraceRow {
	rows := make([]ui.TraceRow, 0, len(trace))
	prev := initial
	for _, e := range trace {
		rows = append(rows, ui.TraceRow{
			Step:      e.Step.String(),
			Value:     e.Value,
			Direction: e.Direction.String(),
			LastValid: e.LastValid,
			Changed:   e.Value != prev,
		})
		prev = e.Value
	}
	return rows
}

func describeRange(cfg spinbutton.Config) string {
	return fmt.Sprintf("%s to %s, step %s",
		spinbutton.FormatNumber(cfg.Min),
		spinbutton.FormatNumber(cfg.Max),
		spinbutton.FormatNumber(cfg.Step),
	)
}

// presetsCmd groups the preset file commands
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage spin button presets",
	Long: `List, inspect, create and export the preset file.

The preset file lives at presets.yaml in the configuration directory unless
--presets or SPINBUTTON_PRESETS names another file. Without a preset file
the built-in presets are used.`,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets in form order",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := config.LoadRegistry(settings.Presets)
		if err != nil {
			return err
		}

		out := ui.NewPrinter(cmd.OutOrStdout())
		names := reg.Names()
		if len(names) == 0 {
			out.PrintWarning("No presets defined",
				ui.Field{Key: "Hint", Value: "run 'spinbutton presets init'"},
			)
			return nil
		}

		details := make([]ui.Field, 0, len(names))
		for _, name := range names {
			details = append(details, ui.Field{Key: name, Value: describePreset(reg.GetPreset(name))})
		}
		out.PrintSuccess(fmt.Sprintf("%d presets", len(names)), details...)
		return nil
	},
}

func describePreset(p *config.Preset) string {
	parts := []string{fmt.Sprintf("%s to %s step %s",
		spinbutton.FormatNumber(p.Min),
		spinbutton.FormatNumber(p.Max),
		spinbutton.FormatNumber(p.Step),
	)}
	if p.Label != "" {
		parts = append(parts, fmt.Sprintf("%q", p.Label))
	}
	if p.Format != "" {
		parts = append(parts, p.Format)
	}
	if p.Disabled {
		parts = append(parts, "disabled")
	}
	return strings.Join(parts, ", ")
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one preset and the widget it produces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := config.LoadRegistry(settings.Presets)
		if err != nil {
			return err
		}
		p := reg.GetPreset(args[0])
		if p == nil {
			return fmt.Errorf("preset %q not found", args[0])
		}
		cfg, err := p.ToConfig()
		if err != nil {
			return fmt.Errorf("preset %q: %w", args[0], err)
		}

		m := spinbutton.New(cfg)
		out := ui.NewPrinter(cmd.OutOrStdout())
		out.PrintHeader("Preset "+args[0], "presets show")
		out.Println(m.View())
		out.Newline()

		s := m.Semantics()
		res := ui.NewSuccessResult("Accessibility",
			ui.Field{Key: "Role", Value: s.Role},
			ui.Field{Key: "Label", Value: s.Label},
		)
		if s.AriaLabel != "" {
			res.AddDetail("Aria label", s.AriaLabel)
		}
		if s.Title != "" {
			res.AddDetail("Title", s.Title)
		}
		res.AddDetail("Value", s.ValueNow).
			AddDetail("Min", s.ValueMin).
			AddDetail("Max", s.ValueMax).
			AddDetail("Disabled", fmt.Sprint(s.Disabled))
		out.PrintResult(res)
		return nil
	},
}

var presetsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in presets to the preset file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault(settings.Presets, forceInit)
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Preset file created",
			ui.Field{Key: "Path", Value: path},
		)
		return nil
	},
}

var presetsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the presets as YAML, TOML or JSON",
	Example: `  # TOML to stdout
  spinbutton presets export --format toml

  # Format taken from the file extension
  spinbutton presets export -o presets.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := config.FormatForPath(exportOutput)
		if exportFormat != "" {
			f, err := config.ParseExportFormat(exportFormat)
			if err != nil {
				return err
			}
			format = f
		}

		reg, err := config.LoadRegistry(settings.Presets)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return reg.Export(cmd.OutOrStdout(), format)
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		if err := reg.Export(f, format); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}
