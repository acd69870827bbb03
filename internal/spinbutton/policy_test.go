package spinbutton

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"integer", "42", 42, true},
		{"surrounding whitespace", "  42\t", 42, true},
		{"empty is zero", "", 0, true},
		{"blank is zero", "   ", 0, true},
		{"negative decimal", "-3.25", -3.25, true},
		{"leading plus", "+7", 7, true},
		{"leading dot", ".5", 0.5, true},
		{"exponent", "1e3", 1000, true},
		{"hex", "0x1F", 31, true},
		{"binary", "0b101", 5, true},
		{"octal", "0o17", 15, true},
		{"infinity", "Infinity", math.Inf(1), true},
		{"negative infinity", "-Infinity", math.Inf(-1), true},
		{"letters", "abc", 0, false},
		{"trailing garbage", "12px", 0, false},
		{"lowercase inf", "inf", 0, false},
		{"nan", "NaN", 0, false},
		{"digit separator", "1_000", 0, false},
		{"hex float", "0x1p3", 0, false},
		{"bad hex", "0xZZ", 0, false},
		{"two numbers", "1 2", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{5, "5"},
		{-5, "-5"},
		{0.5, "0.5"},
		{123.456, "123.456"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.input); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClampPolicyValidate(t *testing.T) {
	r := Range{Min: 0, Max: 100, Step: 1, LastValid: "25"}
	p := ClampPolicy{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"in range", "42", "42"},
		{"above max", "150", "100"},
		{"below min", "-3", "0"},
		{"not a number", "abc", "25"},
		{"normalizes", " 007 ", "7"},
		{"empty is zero", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Validate(tt.input, r)
			if !ok {
				t.Fatalf("Validate(%q) returned no change", tt.input)
			}
			if got != tt.want {
				t.Errorf("Validate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampPolicyValidateIdempotentInRange(t *testing.T) {
	r := Range{Min: -10, Max: 10, Step: 0.5, LastValid: "0"}
	p := ClampPolicy{}

	for v := -10.0; v <= 10.0; v += 0.5 {
		s := FormatNumber(v)
		got, ok := p.Validate(s, r)
		if !ok || got != s {
			t.Errorf("Validate(%q) = %q, %v; want %q", s, got, ok, s)
		}
		again, _ := p.Validate(got, r)
		if again != got {
			t.Errorf("Validate is not idempotent: %q -> %q -> %q", s, got, again)
		}
	}
}

func TestClampPolicyValidateAlwaysInRange(t *testing.T) {
	r := Range{Min: 5, Max: 50, Step: 5, LastValid: "10"}
	p := ClampPolicy{}

	inputs := []string{"", "0", "5", "49.9", "50", "51", "-1e9", "1e300", "Infinity", "-Infinity", "abc", "0xff", "  17  ", "12px"}
	for _, in := range inputs {
		got, ok := p.Validate(in, r)
		if !ok {
			t.Errorf("Validate(%q) returned no change", in)
			continue
		}
		n, parsed := ParseNumber(got)
		if !parsed {
			t.Errorf("Validate(%q) = %q, not a number", in, got)
			continue
		}
		if n < r.Min || n > r.Max {
			t.Errorf("Validate(%q) = %q, outside [%v, %v]", in, got, r.Min, r.Max)
		}
	}
}

func TestClampPolicyStepBounds(t *testing.T) {
	r := Range{Min: 0, Max: 10, Step: 3, LastValid: "0"}
	p := ClampPolicy{}

	value := "0"
	for i := 0; i < 10; i++ {
		value, _ = p.Increment(value, r)
		if n, _ := ParseNumber(value); n > r.Max {
			t.Fatalf("Increment exceeded max: %q", value)
		}
	}
	if value != "10" {
		t.Errorf("repeated Increment = %q, want 10", value)
	}

	for i := 0; i < 10; i++ {
		value, _ = p.Decrement(value, r)
		if n, _ := ParseNumber(value); n < r.Min {
			t.Fatalf("Decrement went below min: %q", value)
		}
	}
	if value != "0" {
		t.Errorf("repeated Decrement = %q, want 0", value)
	}
}

func TestClampPolicyRoundTrip(t *testing.T) {
	r := Range{Min: 0, Max: 100, Step: 5}
	p := ClampPolicy{}

	for v := 5; v < 100; v += 5 {
		s := FormatNumber(float64(v))
		up, _ := p.Increment(s, r)
		back, _ := p.Decrement(up, r)
		if back != s {
			t.Errorf("Increment/Decrement round trip of %q gave %q (via %q)", s, back, up)
		}
	}
}

func TestClampPolicyStepFromLastValid(t *testing.T) {
	r := Range{Min: 0, Max: 100, Step: 1, LastValid: "9"}
	p := ClampPolicy{}

	got, ok := p.Increment("oops", r)
	if !ok || got != "10" {
		t.Errorf("Increment(oops) = %q, %v; want 10 from last valid value", got, ok)
	}

	r.LastValid = "also bad"
	if got, ok := p.Decrement("oops", r); ok {
		t.Errorf("Decrement with no parsable base = %q, want no change", got)
	}
}

func TestPolicyForSelection(t *testing.T) {
	bang := func(v string) (string, bool) { return v + "!", true }

	controlled := DefaultConfig()
	controlled.Value = "1"
	controlled.OnIncrement = bang

	got, _ := policyFor(controlled).Increment("1", Range{Max: 100, Step: 1})
	if got != "1!" {
		t.Errorf("controlled widget should use override, got %q", got)
	}
	got, _ = policyFor(controlled).Decrement("1", Range{Max: 100, Step: 1})
	if got != "0" {
		t.Errorf("nil override should fall back to clamp, got %q", got)
	}

	uncontrolled := controlled
	uncontrolled.Value = ""
	uncontrolled.DefaultValue = "1"
	got, _ = policyFor(uncontrolled).Increment("1", Range{Max: 100, Step: 1})
	if got != "2" {
		t.Errorf("uncontrolled widget should ignore overrides, got %q", got)
	}
}

func TestUnitOverrides(t *testing.T) {
	validate, increment, decrement := UnitOverrides("%", Range{Min: 0, Max: 100, Step: 10})

	tests := []struct {
		name   string
		fn     Func
		input  string
		want   string
		wantOK bool
	}{
		{"validate plain", validate, "42", "42%", true},
		{"validate suffixed", validate, "42%", "42%", true},
		{"validate clamps", validate, "142%", "100%", true},
		{"validate rejects text", validate, "lots", "", false},
		{"increment", increment, "95%", "100%", true},
		{"decrement", decrement, "5%", "0%", true},
		{"decrement rejects text", decrement, "x%", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}

	validate, _, _ = UnitOverrides(" px", Range{Min: 0, Max: 64, Step: 2})
	if got, _ := validate("12 px"); got != "12 px" {
		t.Errorf("validate(12 px) = %q", got)
	}
}

func TestConfigWarnings(t *testing.T) {
	cfg := DefaultConfig()
	if w := cfg.Warnings(); len(w) != 0 {
		t.Errorf("DefaultConfig() warnings = %v, want none", w)
	}

	cfg.Value = "1"
	cfg.DefaultValue = "2"
	cfg.Step = 0
	cfg.Min = 10
	cfg.Max = 1
	if w := cfg.Warnings(); len(w) != 3 {
		t.Errorf("Warnings() = %v, want 3 entries", w)
	}
}

func TestParseLabelPosition(t *testing.T) {
	for _, pos := range []LabelPosition{LabelStart, LabelEnd, LabelTop, LabelBottom} {
		got, err := ParseLabelPosition(pos.String())
		if err != nil || got != pos {
			t.Errorf("ParseLabelPosition(%q) = %v, %v", pos.String(), got, err)
		}
	}
	if got, err := ParseLabelPosition(""); err != nil || got != LabelStart {
		t.Errorf("ParseLabelPosition(\"\") = %v, %v; want start", got, err)
	}
	if _, err := ParseLabelPosition("left"); err == nil {
		t.Error("ParseLabelPosition(left) should fail")
	}
}
