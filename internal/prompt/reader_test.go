package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadInt(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		min, max   int
		expected   int
		diagnostic string
	}{
		{
			name:     "valid first try",
			input:    "5\n",
			min:      0,
			max:      9,
			expected: 5,
		},
		{
			name:       "malformed then valid",
			input:      "abc\n5\n",
			min:        0,
			max:        9,
			expected:   5,
			diagnostic: "Please enter an integer.",
		},
		{
			name:       "out of range then valid",
			input:      "15\n5\n",
			min:        0,
			max:        9,
			expected:   5,
			diagnostic: "Value must be between 0 and 9.",
		},
		{
			name:       "trailing garbage then valid",
			input:      "5x\n5\n",
			min:        0,
			max:        9,
			expected:   5,
			diagnostic: "Unexpected characters. Try again.",
		},
		{
			name:     "surrounding whitespace accepted",
			input:    "  7  \n",
			min:      0,
			max:      9,
			expected: 7,
		},
		{
			name:     "negative bound",
			input:    "-3\n",
			min:      -5,
			max:      5,
			expected: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := New(strings.NewReader(tt.input), &out)

			got := r.ReadInt("n: ", tt.min, tt.max)
			if got != tt.expected {
				t.Errorf("ReadInt() = %d, want %d", got, tt.expected)
			}
			if tt.diagnostic != "" && !strings.Contains(out.String(), tt.diagnostic) {
				t.Errorf("output %q missing diagnostic %q", out.String(), tt.diagnostic)
			}
		})
	}
}

func TestReadIntRejectsUntilValid(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader("abc\n15\n5\n"), &out)

	if got := r.ReadInt("n: ", 0, 9); got != 5 {
		t.Fatalf("ReadInt() = %d, want 5", got)
	}
	// Three prompts: two rejected attempts plus the accepted one.
	if got := strings.Count(out.String(), "n: "); got != 3 {
		t.Errorf("prompt printed %d times, want 3", got)
	}
}

func TestReadPositiveFloat(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   float64
		diagnostic string
	}{
		{
			name:     "valid first try",
			input:    "4.7\n",
			expected: 4.7,
		},
		{
			name:       "zero rejected",
			input:      "0\n1.5\n",
			expected:   1.5,
			diagnostic: "Value must be > 0.",
		},
		{
			name:       "negative rejected",
			input:      "-3\n2\n",
			expected:   2,
			diagnostic: "Value must be > 0.",
		},
		{
			name:       "malformed rejected",
			input:      "xyz\n10\n",
			expected:   10,
			diagnostic: "Enter a valid number.",
		},
		{
			name:       "trailing garbage rejected",
			input:      "2.5ohm\n2.5\n",
			expected:   2.5,
			diagnostic: "Invalid characters. Try again.",
		},
		{
			name:     "scientific notation",
			input:    "4.7e3\n",
			expected: 4700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := New(strings.NewReader(tt.input), &out)

			got := r.ReadPositiveFloat("R: ")
			if got != tt.expected {
				t.Errorf("ReadPositiveFloat() = %g, want %g", got, tt.expected)
			}
			if tt.diagnostic != "" && !strings.Contains(out.String(), tt.diagnostic) {
				t.Errorf("output %q missing diagnostic %q", out.String(), tt.diagnostic)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "lowercase y", input: "y\n", expected: true},
		{name: "uppercase y", input: "Y\n", expected: true},
		{name: "yes", input: "yes\n", expected: true},
		{name: "n", input: "n\n", expected: false},
		{name: "empty line", input: "\n", expected: false},
		{name: "end of input", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := New(strings.NewReader(tt.input), &out)

			if got := r.Confirm("Save? (y/n): "); got != tt.expected {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReadIntExitsOnStreamFailure(t *testing.T) {
	var out bytes.Buffer
	r := New(strings.NewReader(""), &out)

	exitCode := -1
	r.exit = func(code int) {
		exitCode = code
		panic("exit") // unwind the retry loop like os.Exit would
	}

	func() {
		defer func() { _ = recover() }()
		r.ReadInt("n: ", 0, 9)
	}()

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(out.String(), "Input error") {
		t.Errorf("output %q missing stream failure diagnostic", out.String())
	}
}
