package toolbox

import (
	"fmt"

	"github.com/ELEC2645/eetoolbox/internal/circuit"
)

func (t *Toolbox) signalMenu() {
	t.section("==== Signal Generation / Analysis ====")

	for {
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, "1. Given f → T & ω")
		fmt.Fprintln(t.out, "2. Generate sine samples")
		fmt.Fprintln(t.out, "0. Back")

		switch t.in.ReadInt("Select: ", 0, 2) {
		case 0:
			return
		case 1:
			t.frequencyInfo()
		case 2:
			t.sineSamples()
		}
	}
}

// frequencyInfo derives period and angular frequency from f.
func (t *Toolbox) frequencyInfo() {
	f := t.in.ReadPositiveFloat("Enter f (Hz): ")
	period := circuit.Period(f)
	omega := circuit.AngularFreq(f)

	t.section("--- Result ---")
	fmt.Fprintf(t.out, "Period T = %.6g s\n", period)
	fmt.Fprintf(t.out, "Angular freq ω = %.6g rad/s\n", omega)

	summary := fmt.Sprintf("Signal: f=%.6g Hz, T=%.6g s, ω=%.6g rad/s", f, period, omega)
	t.offerSave(summary)
}

// sineSamples prints a discrete sine wave as an n / t / x[n] table.
func (t *Toolbox) sineSamples() {
	fmt.Fprintln(t.out, "\nSignal: x(t) = A sin(2πft)")
	f := t.in.ReadPositiveFloat("Frequency f (Hz): ")
	amp := t.in.ReadPositiveFloat("Amplitude A: ")
	fs := t.in.ReadPositiveFloat("Sampling freq fs (Hz): ")
	n := t.in.ReadInt("Number of samples (1-100): ", 1, 100)

	fmt.Fprintln(t.out, "\nn\t t(s)\t\t x[n]")
	for _, s := range circuit.SineSamples(f, amp, fs, n) {
		fmt.Fprintf(t.out, "%d\t %.6g\t %.6g\n", s.N, s.T, s.X)
	}

	summary := fmt.Sprintf("Sine: f=%.6g Hz, A=%.6g, fs=%.6g Hz, N=%d", f, amp, fs, n)
	t.offerSave(summary)
}
