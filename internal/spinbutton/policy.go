package spinbutton

import (
	"math"
	"strconv"
	"strings"
)

// Range carries the numeric bounds a policy works against, plus the last
// value known to have passed validation.
type Range struct {
	Min       float64
	Max       float64
	Step      float64
	LastValid string
}

// ValuePolicy decides how text in the field is validated and stepped.
// Every operation returns ok=false to signal "no change"; the widget then
// leaves its state untouched.
type ValuePolicy interface {
	Validate(value string, r Range) (string, bool)
	Increment(value string, r Range) (string, bool)
	Decrement(value string, r Range) (string, bool)
}

// Func is a caller-supplied override for one of the policy operations.
type Func func(value string) (string, bool)

// ClampPolicy is the default policy: plain numbers, clamped into range and
// stepped by Range.Step.
type ClampPolicy struct{}

// Validate parses value and clamps it into [Min, Max]. Text that is not a
// number falls back to the last valid value.
func (ClampPolicy) Validate(value string, r Range) (string, bool) {
	n, ok := ParseNumber(value)
	if !ok {
		return r.LastValid, r.LastValid != ""
	}
	return FormatNumber(Clamp(n, r.Min, r.Max)), true
}

// Increment adds Step and caps the result at Max.
func (ClampPolicy) Increment(value string, r Range) (string, bool) {
	n, ok := stepBase(value, r)
	if !ok {
		return "", false
	}
	return FormatNumber(math.Min(n+r.Step, r.Max)), true
}

// Decrement subtracts Step and floors the result at Min.
func (ClampPolicy) Decrement(value string, r Range) (string, bool) {
	n, ok := stepBase(value, r)
	if !ok {
		return "", false
	}
	return FormatNumber(math.Max(n-r.Step, r.Min)), true
}

// stepBase resolves the number a step starts from. Free text that never
// validated steps from the last valid value instead.
func stepBase(value string, r Range) (float64, bool) {
	if n, ok := ParseNumber(value); ok {
		return n, true
	}
	return ParseNumber(r.LastValid)
}

// overridePolicy routes each operation to a caller override, using
// ClampPolicy for any override left nil.
type overridePolicy struct {
	validate  Func
	increment Func
	decrement Func
}

func (p overridePolicy) Validate(value string, r Range) (string, bool) {
	if p.validate == nil {
		return ClampPolicy{}.Validate(value, r)
	}
	return p.validate(value)
}

func (p overridePolicy) Increment(value string, r Range) (string, bool) {
	if p.increment == nil {
		return ClampPolicy{}.Increment(value, r)
	}
	return p.increment(value)
}

func (p overridePolicy) Decrement(value string, r Range) (string, bool) {
	if p.decrement == nil {
		return ClampPolicy{}.Decrement(value, r)
	}
	return p.decrement(value)
}

// policyFor selects the policy once, at construction. An uncontrolled widget
// (DefaultValue supplied) always uses ClampPolicy; otherwise the overrides
// from the configuration apply.
func policyFor(cfg Config) ValuePolicy {
	if cfg.DefaultValue != "" {
		return ClampPolicy{}
	}
	return overridePolicy{
		validate:  cfg.OnValidate,
		increment: cfg.OnIncrement,
		decrement: cfg.OnDecrement,
	}
}

// UnitOverrides builds override functions for values shown with a unit
// suffix, e.g. "42%" or "12 px". Text without a parsable number is left
// alone on validate.
func UnitOverrides(unit string, r Range) (validate, increment, decrement Func) {
	strip := func(value string) (float64, bool) {
		return ParseNumber(strings.TrimSuffix(strings.TrimSpace(value), strings.TrimSpace(unit)))
	}
	format := func(n float64) string {
		return FormatNumber(n) + unit
	}

	validate = func(value string) (string, bool) {
		n, ok := strip(value)
		if !ok {
			return "", false
		}
		return format(Clamp(n, r.Min, r.Max)), true
	}
	increment = func(value string) (string, bool) {
		n, ok := strip(value)
		if !ok {
			return "", false
		}
		return format(math.Min(n+r.Step, r.Max)), true
	}
	decrement = func(value string) (string, bool) {
		n, ok := strip(value)
		if !ok {
			return "", false
		}
		return format(math.Max(n-r.Step, r.Min)), true
	}
	return validate, increment, decrement
}

// Clamp bounds n to [lo, hi]. When lo > hi the upper bound wins.
func Clamp(n, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, n))
}

// ParseNumber reads field text as a number. Surrounding whitespace is
// ignored, empty text is zero, hex/octal/binary integer prefixes and the
// literal "Infinity" are accepted. NaN is never returned.
func ParseNumber(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, true
	}

	switch t {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	lower := strings.ToLower(t)
	if len(lower) > 2 && lower[0] == '0' {
		base := 0
		switch lower[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(lower[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(u), true
		}
	}

	// strconv accepts inf/nan spellings, digit separators and hex floats
	// that field text must not parse as.
	if strings.ContainsAny(lower, "inpx_") {
		return 0, false
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// FormatNumber renders n the way a value is shown in the field: the
// shortest decimal form, exponent notation only for very large or very
// small magnitudes.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		// Go pads the exponent to two digits.
		s = strings.Replace(s, "e-0", "e-", 1)
		s = strings.Replace(s, "e+0", "e+", 1)
		return s
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
