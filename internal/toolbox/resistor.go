package toolbox

import (
	"fmt"
	"io"

	"github.com/ELEC2645/eetoolbox/internal/resistor"
)

func (t *Toolbox) resistorMenu() {
	for {
		t.section("== Resistor Color Code Tool ==")
		fmt.Fprintln(t.out, "1. Color → Resistance")
		fmt.Fprintln(t.out, "2. Resistance → Color")
		fmt.Fprintln(t.out, "3. Show Tables")
		fmt.Fprintln(t.out, "0. Back")

		switch t.in.ReadInt("Select: ", 0, 3) {
		case 0:
			return
		case 1:
			t.colorToResistance()
		case 2:
			t.resistanceToColor()
		case 3:
			t.section("=== Resistor Color Code Tables ===")
			WriteTables(t.out)
		}
	}
}

// colorToResistance reads a 4-band selection and reports the encoded value.
func (t *Toolbox) colorToResistance() {
	t.section("=== Color → Resistance (4-band) ===")

	writeDigitTable(t.out)
	b1 := t.in.ReadInt("Select Band 1 (0-9): ", 0, 9)
	b2 := t.in.ReadInt("Select Band 2 (0-9): ", 0, 9)

	writeMultiplierTable(t.out)
	m := t.in.ReadInt("Select Multiplier (0-11): ", 0, 11)

	writeToleranceTable(t.out)
	tol := t.in.ReadInt("Select Tolerance (0-7): ", 0, 7)

	reading := resistor.Reading{Digit1: b1, Digit2: b2, Multiplier: m, Tolerance: tol}
	ohms := reading.Resistance()

	t.section("--- Result ---")
	fmt.Fprintf(t.out, "Bands: %s | %s | %s %s | %s %s\n",
		styleBand(resistor.DigitColor(b1)), styleBand(resistor.DigitColor(b2)),
		styleBand(resistor.MultiplierColor(m)), resistor.MultiplierScale(m),
		styleBand(resistor.ToleranceColor(tol)), reading.ToleranceLabel())
	fmt.Fprintf(t.out, "Approx resistance: %s\n", resultStyle.Render(resistor.FormatResistance(ohms)))
	fmt.Fprintf(t.out, "Tolerance: %s\n", reading.ToleranceLabel())

	summary := fmt.Sprintf("[Color→Resistance] (%d,%d,m=%d,t=%d) = %.6g Ω, tol %s",
		b1, b2, m, tol, ohms, reading.ToleranceLabel())
	t.offerSave(summary)
}

// resistanceToColor reads a resistance and suggests the nearest 4-band code.
func (t *Toolbox) resistanceToColor() {
	t.section("=== Resistance → Color (approx) ===")
	fmt.Fprintln(t.out, hintStyle.Render("Uses two significant digits."))

	ohms := t.in.ReadPositiveFloat("Enter resistance (Ω): ")
	d1, d2, exp := resistor.Decode(ohms)

	t.section("--- Suggested Colors ---")
	fmt.Fprintf(t.out, "Approx resistance: %s\n", resultStyle.Render(resistor.FormatResistance(ohms)))
	fmt.Fprintf(t.out, "Band 1: %s\n", styleBand(resistor.DigitColor(d1)))
	fmt.Fprintf(t.out, "Band 2: %s\n", styleBand(resistor.DigitColor(d2)))
	fmt.Fprintf(t.out, "Band 3: %s %s\n",
		styleBand(resistor.MultiplierColor(exp)), resistor.MultiplierScale(exp))
	fmt.Fprintln(t.out, "Band 4: (choose based on component tolerance)")

	summary := fmt.Sprintf("[Resistance→Color] R=%.6g → (%d,%d,m=%d)", ohms, d1, d2, exp)
	t.offerSave(summary)
}

// WriteTables prints all three band tables, for the submenu and the tables
// subcommand.
func WriteTables(w io.Writer) {
	writeDigitTable(w)
	writeMultiplierTable(w)
	writeToleranceTable(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "4-band meaning:")
	fmt.Fprintln(w, "  Band 1: 1st digit")
	fmt.Fprintln(w, "  Band 2: 2nd digit")
	fmt.Fprintln(w, "  Band 3: multiplier")
	fmt.Fprintln(w, "  Band 4: tolerance")
}

func writeDigitTable(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("== Digit Color Table (Band 1 & 2) =="))
	for i := 0; i < resistor.DigitCount; i++ {
		fmt.Fprintf(w, "%2d  %s\n", i, styleBand(resistor.DigitColor(i)))
	}
}

func writeMultiplierTable(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("== Multiplier Color Table (Band 3) =="))
	for i := 0; i < resistor.MultiplierCount; i++ {
		fmt.Fprintf(w, "%2d  %s %s\n", i,
			styleBand(resistor.MultiplierColor(i)), resistor.MultiplierScale(i))
	}
}

func writeToleranceTable(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, sectionStyle.Render("== Tolerance Color Table (Band 4) =="))
	for i := 0; i < resistor.ToleranceCount; i++ {
		fmt.Fprintf(w, "%2d  %s %s\n", i,
			styleBand(resistor.ToleranceColor(i)), resistor.ToleranceText(i))
	}
}
