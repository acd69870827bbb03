package replay

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the action a step performs
type Kind int

const (
	StepUp Kind = iota
	StepDown
	StepHoldUp
	StepHoldDown
	StepType
	StepBlur
	StepFocus
	StepEnter
	StepEsc
	StepRelease
)

var kindNames = map[Kind]string{
	StepUp:       "up",
	StepDown:     "down",
	StepHoldUp:   "hold-up",
	StepHoldDown: "hold-down",
	StepType:     "type",
	StepBlur:     "blur",
	StepFocus:    "focus",
	StepEnter:    "enter",
	StepEsc:      "esc",
	StepRelease:  "release",
}

// String returns the keyword used for the step in scripts
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func lookupKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Step is one parsed script action
type Step struct {
	Kind  Kind
	Count int    // repeat firings for hold steps
	Text  string // text for type steps
	Line  int
}

// String renders the step back into script syntax
func (s Step) String() string {
	switch s.Kind {
	case StepHoldUp, StepHoldDown:
		return fmt.Sprintf("%s:%d", s.Kind, s.Count)
	case StepType:
		return "type:" + s.Text
	default:
		return s.Kind.String()
	}
}

// Script is an ordered list of steps
type Script []Step

// String renders the script on one line
func (s Script) String() string {
	parts := make([]string, len(s))
	for i, step := range s {
		parts[i] = step.String()
	}
	return strings.Join(parts, " ")
}

// Parse reads a script. Steps are separated by whitespace; a '#' starts a
// comment that runs to the end of the line.
//
//	hold-up:4      # five increments in total
//	release focus down
//	type:150 blur
//
// The first malformed token is reported as a *ScriptError.
func Parse(src string) (Script, error) {
	var script Script

	for i, line := range strings.Split(src, "\n") {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		for _, token := range strings.Fields(line) {
			step, err := parseStep(token, i+1)
			if err != nil {
				return nil, err
			}
			script = append(script, step)
		}
	}

	return script, nil
}

func parseStep(token string, line int) (Step, error) {
	name, arg, hasArg := strings.Cut(token, ":")
	kind, ok := lookupKind(strings.ToLower(name))
	if !ok {
		return Step{}, &ScriptError{Line: line, Token: token, Reason: ReasonUnknownStep}
	}

	step := Step{Kind: kind, Line: line}

	switch kind {
	case StepHoldUp, StepHoldDown:
		if !hasArg || arg == "" {
			return Step{}, &ScriptError{Line: line, Token: token, Reason: ReasonMissingArgument}
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Step{}, &ScriptError{Line: line, Token: token, Reason: ReasonBadCount, Err: err}
		}
		if n < 0 {
			return Step{}, &ScriptError{Line: line, Token: token, Reason: ReasonBadCount}
		}
		step.Count = n

	case StepType:
		if !hasArg {
			return Step{}, &ScriptError{Line: line, Token: token, Reason: ReasonMissingArgument}
		}
		// "type:" with nothing after it clears the field.
		step.Text = arg

	default:
		if hasArg {
			return Step{}, &ScriptError{Line: line, Token: token, Reason: ReasonUnexpectedArgument}
		}
	}

	return step, nil
}
