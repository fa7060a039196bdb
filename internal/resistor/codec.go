package resistor

// Reading is one 4-band selection: two digit bands, a multiplier band, and a
// tolerance band, each as a table index.
type Reading struct {
	Digit1     int // [0, 9]
	Digit2     int // [0, 9]
	Multiplier int // [0, 11]
	Tolerance  int // [0, 7]
}

// Resistance returns the encoded resistance in ohms.
func (r Reading) Resistance() float64 {
	base := float64(r.Digit1*10 + r.Digit2)
	return base * MultiplierValue(r.Multiplier)
}

// ToleranceLabel returns the display tolerance of the reading, e.g. "±5%".
func (r Reading) ToleranceLabel() string {
	return ToleranceText(r.Tolerance)
}

// Decode approximates a positive resistance as two significant digits and a
// multiplier exponent.
//
// The value is normalized into [10, 100) while tracking the decade, then
// rounded half-up. Rounding can push the two digits into three (99.6 rounds
// to 100); that case carries into the next decade and reads as 10 instead.
// The exponent is clamped to MaxExponent on the way up: resistances beyond
// the table's top decade keep exponent 9 and simply lose significance, they
// do not fail.
func Decode(ohms float64) (digit1, digit2, exponent int) {
	base := ohms
	for base >= 100 && exponent < MaxExponent {
		base /= 10
		exponent++
	}
	for base < 10 && exponent > 0 {
		base *= 10
		exponent--
	}

	rounded := int(base + 0.5)
	if rounded >= 100 {
		rounded = 10
		exponent++
	}

	return rounded / 10, rounded % 10, exponent
}
