package replay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muurk/spinbutton/internal/spinbutton"
)

func mustParse(t *testing.T, src string) Script {
	t.Helper()
	script, err := Parse(src)
	require.NoError(t, err)
	return script
}

func TestParse(t *testing.T) {
	script := mustParse(t, `
		hold-up:4   # press plus four repeats
		release FOCUS down
		type:42% type: blur enter esc hold-down:0 up
	`)

	require.Len(t, script, 11)
	require.Equal(t, Step{Kind: StepHoldUp, Count: 4, Line: 2}, script[0])
	require.Equal(t, StepRelease, script[1].Kind)
	require.Equal(t, StepFocus, script[2].Kind)
	require.Equal(t, 3, script[2].Line)
	require.Equal(t, Step{Kind: StepType, Text: "42%", Line: 4}, script[4])
	require.Equal(t, Step{Kind: StepType, Text: "", Line: 4}, script[5])
	require.Equal(t, Step{Kind: StepHoldDown, Count: 0, Line: 4}, script[9])
}

func TestParseEmpty(t *testing.T) {
	script := mustParse(t, "  \n # nothing here\n")
	require.Empty(t, script)
}

func TestParseRoundTrip(t *testing.T) {
	src := "up down hold-up:3 hold-down:1 type:abc blur focus enter esc release"
	script := mustParse(t, src)
	require.Equal(t, src, script.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		line   int
		token  string
		reason ErrorReason
	}{
		{"unknown step", "up sideways", 1, "sideways", ReasonUnknownStep},
		{"unknown step on later line", "up\n# comment\nwiggle", 3, "wiggle", ReasonUnknownStep},
		{"hold without count", "hold-up", 1, "hold-up", ReasonMissingArgument},
		{"hold with empty count", "hold-down:", 1, "hold-down:", ReasonMissingArgument},
		{"hold with text count", "hold-up:many", 1, "hold-up:many", ReasonBadCount},
		{"hold with negative count", "hold-up:-2", 1, "hold-up:-2", ReasonBadCount},
		{"type without colon", "type", 1, "type", ReasonMissingArgument},
		{"argument on plain step", "blur:now", 1, "blur:now", ReasonUnexpectedArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)

			var scriptErr *ScriptError
			require.True(t, errors.As(err, &scriptErr))
			require.Equal(t, tt.line, scriptErr.Line)
			require.Equal(t, tt.token, scriptErr.Token)
			require.Equal(t, tt.reason, scriptErr.Reason)
			require.Contains(t, err.Error(), tt.reason.String())
		})
	}
}

func TestParseBadCountWrapsCause(t *testing.T) {
	_, err := Parse("hold-up:x")
	var scriptErr *ScriptError
	require.True(t, errors.As(err, &scriptErr))
	require.Error(t, errors.Unwrap(err))
}

func TestRunRepeatThenDecrement(t *testing.T) {
	cfg := spinbutton.DefaultConfig()
	cfg.Value = "0"

	res := Run(cfg, mustParse(t, "hold-up:4 focus down"))

	require.Equal(t, "4", res.Value)
	require.Equal(t, "4", res.LastValid)
	require.Len(t, res.Trace, 3)
	require.Equal(t, "5", res.Trace[0].Value)
	require.Equal(t, spinbutton.NotSpinning, res.Trace[0].Direction)
	require.True(t, res.Trace[1].Focused)
}

func TestRunTypedValues(t *testing.T) {
	tests := []struct {
		name      string
		script    string
		value     string
		lastValid string
	}{
		{"above max clamps on blur", "type:150 blur", "100", "100"},
		{"below min clamps on blur", "type:-4 blur", "0", "0"},
		{"garbage reverts on blur", "type:abc blur", "20", "20"},
		{"enter commits", "type:33.5 enter", "33.5", "33.5"},
		{"esc restores last valid", "up type:55 esc", "21", "21"},
		{"cleared field is left empty", "type: blur", "", "20"},
		{"second type replaces the first", "type:12 type:5", "5", "20"},
		{"empty type clears typed text", "type:12 type:", "", "20"},
		{"type after arrow replaces", "up type:7 blur", "7", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := spinbutton.DefaultConfig()
			cfg.DefaultValue = "20"

			res := Run(cfg, mustParse(t, tt.script))
			require.Equal(t, tt.value, res.Value)
			require.Equal(t, tt.lastValid, res.LastValid)
		})
	}
}

func TestRunClampsAtBounds(t *testing.T) {
	cfg := spinbutton.DefaultConfig()
	cfg.Min = -2
	cfg.Max = 2
	cfg.DefaultValue = "0"

	res := Run(cfg, mustParse(t, "hold-up:10"))
	require.Equal(t, "2", res.Value)

	res = Run(cfg, mustParse(t, "hold-down:10 down down"))
	require.Equal(t, "-2", res.Value)
}

func TestRunDisabled(t *testing.T) {
	cfg := spinbutton.DefaultConfig()
	cfg.DefaultValue = "10"
	cfg.Disabled = true

	res := Run(cfg, mustParse(t, "up hold-up:3 type:99 blur"))
	require.Equal(t, "10", res.Value)
	for _, entry := range res.Trace {
		require.Equal(t, spinbutton.NotSpinning, entry.Direction, "step %s", entry.Step)
	}
}

func TestRunKeyStepLeavesDirectionIdle(t *testing.T) {
	cfg := spinbutton.DefaultConfig()
	cfg.DefaultValue = "1"

	res := Run(cfg, mustParse(t, "up up down"))
	require.Equal(t, "2", res.Value)
	require.Equal(t, spinbutton.NotSpinning, res.Direction)
}

func TestRunUnitFormat(t *testing.T) {
	cfg := spinbutton.DefaultConfig()
	cfg.Value = "50%"
	cfg.Step = 10
	cfg.OnValidate, cfg.OnIncrement, cfg.OnDecrement = spinbutton.UnitOverrides("%",
		spinbutton.Range{Min: cfg.Min, Max: cfg.Max, Step: cfg.Step})

	res := Run(cfg, mustParse(t, "hold-up:1 down type:250 blur"))
	require.Equal(t, "100%", res.Value)
	require.Equal(t, "60%", res.Trace[1].Value)
}

func TestRunnerStepByStep(t *testing.T) {
	r := NewRunner(spinbutton.New(spinbutton.DefaultConfig()))
	for _, step := range mustParse(t, "up up up") {
		r.Apply(step)
	}
	require.Equal(t, "3", r.Model().Value())
}
