package resistor

import "testing"

func TestFormatResistance(t *testing.T) {
	tests := []struct {
		name     string
		ohms     float64
		expected string
	}{
		{name: "base unit", ohms: 999, expected: "999 Ω"},
		{name: "kilo tier", ohms: 4700, expected: "4.7 kΩ"},
		{name: "mega tier", ohms: 2500000, expected: "2.5 MΩ"},
		{name: "kilo boundary", ohms: 1000, expected: "1 kΩ"},
		{name: "mega boundary", ohms: 1e6, expected: "1 MΩ"},
		{name: "just below kilo", ohms: 999.9, expected: "999.9 Ω"},
		{name: "four significant digits", ohms: 123456, expected: "123.5 kΩ"},
		{name: "fractional ohms", ohms: 0.47, expected: "0.47 Ω"},
		{name: "giga range in mega", ohms: 47e9, expected: "4.7e+04 MΩ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatResistance(tt.ohms); got != tt.expected {
				t.Errorf("FormatResistance(%g) = %q, want %q", tt.ohms, got, tt.expected)
			}
		})
	}
}

func TestBandTables(t *testing.T) {
	if got := DigitColor(0); got != "Black" {
		t.Errorf("DigitColor(0) = %q, want Black", got)
	}
	if got := DigitColor(9); got != "White" {
		t.Errorf("DigitColor(9) = %q, want White", got)
	}
	if got := MultiplierValue(3); got != 1e3 {
		t.Errorf("MultiplierValue(3) = %g, want 1000", got)
	}
	// The fractional bands are exceptions to the power-of-ten rule.
	if got := MultiplierValue(10); got != 0.1 {
		t.Errorf("MultiplierValue(10) = %g, want 0.1", got)
	}
	if got := MultiplierValue(11); got != 0.01 {
		t.Errorf("MultiplierValue(11) = %g, want 0.01", got)
	}
	if got := MultiplierColor(10); got != "Gold" {
		t.Errorf("MultiplierColor(10) = %q, want Gold", got)
	}
	if got := ToleranceText(6); got != "±5%" {
		t.Errorf("ToleranceText(6) = %q, want ±5%%", got)
	}
	if got := ToleranceColor(7); got != "Silver" {
		t.Errorf("ToleranceColor(7) = %q, want Silver", got)
	}

	// Powers of ten hold for indices 0-9.
	want := 1.0
	for i := 0; i < 10; i++ {
		if got := MultiplierValue(i); got != want {
			t.Errorf("MultiplierValue(%d) = %g, want %g", i, got, want)
		}
		want *= 10
	}
}
