// Package resistor converts between 4-band resistor color codes and
// resistance values.
package resistor

// Band counts for a 4-band code.
const (
	DigitCount      = 10
	MultiplierCount = 12
	ToleranceCount  = 8
)

// MaxExponent is the largest power-of-ten multiplier in the table (×1G).
// Decoding clamps at this decade rather than failing.
const MaxExponent = 9

// digitColors maps a digit value to its band color. Bands 1 and 2 each
// encode one of these.
var digitColors = [DigitCount]string{
	"Black", "Brown", "Red", "Orange", "Yellow",
	"Green", "Blue", "Violet", "Grey", "White",
}

type multiplierBand struct {
	color string
	scale string
	value float64
}

// multiplierBands is index-addressed, not value-ordered: indices 0-9 are the
// powers of ten, indices 10 and 11 are the fractional gold and silver bands.
// The two fractional values are literals on purpose, never derived from the
// index.
var multiplierBands = [MultiplierCount]multiplierBand{
	{"Black", "x1", 1},
	{"Brown", "x10", 10},
	{"Red", "x100", 100},
	{"Orange", "x1k", 1e3},
	{"Yellow", "x10k", 1e4},
	{"Green", "x100k", 1e5},
	{"Blue", "x1M", 1e6},
	{"Violet", "x10M", 1e7},
	{"Grey", "x100M", 1e8},
	{"White", "x1G", 1e9},
	{"Gold", "x0.1", 0.1},
	{"Silver", "x0.01", 0.01},
}

type toleranceBand struct {
	color string
	text  string
}

// toleranceBands carries display text only; tolerance is never computed with.
var toleranceBands = [ToleranceCount]toleranceBand{
	{"Brown", "±1%"},
	{"Red", "±2%"},
	{"Green", "±0.5%"},
	{"Blue", "±0.25%"},
	{"Violet", "±0.1%"},
	{"Grey", "±0.05%"},
	{"Gold", "±5%"},
	{"Silver", "±10%"},
}

// DigitColor returns the band color for digit i in [0, 9].
func DigitColor(i int) string {
	return digitColors[i]
}

// MultiplierColor returns the band color for multiplier index i in [0, 11].
func MultiplierColor(i int) string {
	return multiplierBands[i].color
}

// MultiplierScale returns the display scale for multiplier index i,
// e.g. "x10k".
func MultiplierScale(i int) string {
	return multiplierBands[i].scale
}

// MultiplierValue returns the numeric scale factor for multiplier index i.
func MultiplierValue(i int) float64 {
	return multiplierBands[i].value
}

// ToleranceColor returns the band color for tolerance index i in [0, 7].
func ToleranceColor(i int) string {
	return toleranceBands[i].color
}

// ToleranceText returns the display tolerance for index i, e.g. "±5%".
func ToleranceText(i int) string {
	return toleranceBands[i].text
}
