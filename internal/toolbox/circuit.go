package toolbox

import (
	"fmt"

	"github.com/ELEC2645/eetoolbox/internal/circuit"
	"github.com/ELEC2645/eetoolbox/internal/resistor"
)

// seriesParallel combines up to ten resistors in series or parallel.
func (t *Toolbox) seriesParallel() {
	t.section("==== Series / Parallel Resistors ====")

	n := t.in.ReadInt("Number of resistors (1-10): ", 1, 10)

	resistors := make([]float64, n)
	for i := range resistors {
		resistors[i] = t.in.ReadPositiveFloat(fmt.Sprintf("Enter R%d (Ω): ", i+1))
	}

	fmt.Fprintln(t.out, "\nConnection Type:")
	fmt.Fprintln(t.out, "1. Series")
	fmt.Fprintln(t.out, "2. Parallel")
	mode := t.in.ReadInt("Select: ", 1, 2)

	var total float64
	var modeName string
	if mode == 1 {
		total = circuit.Series(resistors)
		modeName = "series"
		t.section("--- Series Result ---")
	} else {
		var err error
		total, err = circuit.Parallel(resistors)
		if err != nil {
			// Unreachable with validated positive inputs.
			fmt.Fprintln(t.out, "Math error.")
			return
		}
		modeName = "parallel"
		t.section("--- Parallel Result ---")
	}

	fmt.Fprintf(t.out, "Approx resistance: %s\n", resultStyle.Render(resistor.FormatResistance(total)))

	summary := fmt.Sprintf("Series/Parallel: n=%d, mode=%s → %.6g Ω", n, modeName, total)
	t.offerSave(summary)
}

// rcTransient evaluates the RC charging or discharging curve at one instant.
func (t *Toolbox) rcTransient() {
	t.section("==== RC Charging/Discharging ====")
	fmt.Fprintln(t.out, hintStyle.Render("Use SI units: R(Ω), C(F), t(s)"))
	fmt.Fprintln(t.out)

	r := t.in.ReadPositiveFloat("Enter R (Ω): ")
	c := t.in.ReadPositiveFloat("Enter C (F): ")
	tau := circuit.TimeConstant(r, c)

	fmt.Fprintf(t.out, "\nTime constant τ = %.6g s\n", tau)

	fmt.Fprintln(t.out, "\nCalculation mode:")
	fmt.Fprintln(t.out, "1. Charging: Vc(t) = V(1 - e^(-t/RC))")
	fmt.Fprintln(t.out, "2. Discharging: Vc(t) = V0 e^(-t/RC)")
	mode := t.in.ReadInt("Select: ", 1, 2)

	elapsed := t.in.ReadPositiveFloat("Enter time t (s): ")

	var summary string
	if mode == 1 {
		v := t.in.ReadPositiveFloat("Enter supply voltage V (V): ")
		vc := circuit.RCCharge(r, c, v, elapsed)
		t.section("--- Charging Result ---")
		fmt.Fprintf(t.out, "Vc(t = %.6g s) = %s\n", elapsed,
			resultStyle.Render(fmt.Sprintf("%.6g V", vc)))
		summary = fmt.Sprintf("RC charge: R=%.6g, C=%.6g, V=%.6g, t=%.6g → %.6g V",
			r, c, v, elapsed, vc)
	} else {
		v0 := t.in.ReadPositiveFloat("Enter initial voltage V0 (V): ")
		vc := circuit.RCDischarge(r, c, v0, elapsed)
		t.section("--- Discharging Result ---")
		fmt.Fprintf(t.out, "Vc(t = %.6g s) = %s\n", elapsed,
			resultStyle.Render(fmt.Sprintf("%.6g V", vc)))
		summary = fmt.Sprintf("RC discharge: R=%.6g, C=%.6g, V0=%.6g, t=%.6g → %.6g V",
			r, c, v0, elapsed, vc)
	}

	t.offerSave(summary)
}

// ohmAndPower solves V, I, R, and P from any known pair.
func (t *Toolbox) ohmAndPower() {
	t.section("==== Ohm's Law / Power ====")
	fmt.Fprintln(t.out, "Choose known quantities:")
	fmt.Fprintln(t.out, "1. V & R")
	fmt.Fprintln(t.out, "2. V & I")
	fmt.Fprintln(t.out, "3. V & P")
	fmt.Fprintln(t.out, "4. I & R")
	fmt.Fprintln(t.out, "5. I & P")
	fmt.Fprintln(t.out, "6. R & P")

	var point circuit.OhmPoint
	switch t.in.ReadInt("Select: ", 1, 6) {
	case 1:
		point = circuit.FromVR(
			t.in.ReadPositiveFloat("V(V): "),
			t.in.ReadPositiveFloat("R(Ω): "))
	case 2:
		point = circuit.FromVI(
			t.in.ReadPositiveFloat("V(V): "),
			t.in.ReadPositiveFloat("I(A): "))
	case 3:
		point = circuit.FromVP(
			t.in.ReadPositiveFloat("V(V): "),
			t.in.ReadPositiveFloat("P(W): "))
	case 4:
		point = circuit.FromIR(
			t.in.ReadPositiveFloat("I(A): "),
			t.in.ReadPositiveFloat("R(Ω): "))
	case 5:
		point = circuit.FromIP(
			t.in.ReadPositiveFloat("I(A): "),
			t.in.ReadPositiveFloat("P(W): "))
	case 6:
		point = circuit.FromRP(
			t.in.ReadPositiveFloat("R(Ω): "),
			t.in.ReadPositiveFloat("P(W): "))
	}

	t.section("--- Result ---")
	fmt.Fprintf(t.out, "Voltage  V = %.6g V\n", point.V)
	fmt.Fprintf(t.out, "Current  I = %.6g A\n", point.I)
	fmt.Fprintf(t.out, "Resistance R = %.6g Ω\n", point.R)
	fmt.Fprintf(t.out, "Power     P = %.6g W\n", point.P)

	summary := fmt.Sprintf("Ohm/Power: V=%.6g, I=%.6g, R=%.6g, P=%.6g",
		point.V, point.I, point.R, point.P)
	t.offerSave(summary)
}
