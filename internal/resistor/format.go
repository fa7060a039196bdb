package resistor

import "fmt"

// FormatResistance renders a resistance with the most readable unit prefix.
// Values of 1 MΩ and up display in MΩ, 1 kΩ and up in kΩ, everything else in
// plain Ω, always with 4 significant digits. The domain never produces
// sub-unit resistances, so there are no fractional tiers.
func FormatResistance(ohms float64) string {
	disp, unit := ohms, "Ω"
	switch {
	case ohms >= 1e6 || ohms <= -1e6:
		disp, unit = ohms/1e6, "MΩ"
	case ohms >= 1e3 || ohms <= -1e3:
		disp, unit = ohms/1e3, "kΩ"
	}
	return fmt.Sprintf("%.4g %s", disp, unit)
}
