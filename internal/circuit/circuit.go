// Package circuit implements the toolbox's basic circuit formulas: resistor
// combination, RC transients, and Ohm's law / power solving. All functions
// are pure and expect strictly positive inputs, which the interactive layer
// guarantees.
package circuit

import (
	"errors"
	"math"
)

// ErrDegenerate is returned when a combination has no finite result. With
// positive inputs this cannot happen; the guard exists for direct callers.
var ErrDegenerate = errors.New("circuit: degenerate combination")

// Series returns the equivalent resistance of resistors in series.
func Series(resistors []float64) float64 {
	total := 0.0
	for _, r := range resistors {
		total += r
	}
	return total
}

// Parallel returns the equivalent resistance of resistors in parallel.
func Parallel(resistors []float64) (float64, error) {
	invSum := 0.0
	for _, r := range resistors {
		invSum += 1 / r
	}
	if invSum == 0 {
		return 0, ErrDegenerate
	}
	return 1 / invSum, nil
}

// TimeConstant returns τ = R·C.
func TimeConstant(r, c float64) float64 {
	return r * c
}

// RCCharge returns the capacitor voltage at time t while charging toward the
// supply voltage v: Vc(t) = V(1 - e^(-t/RC)).
func RCCharge(r, c, v, t float64) float64 {
	return v * (1 - math.Exp(-t/(r*c)))
}

// RCDischarge returns the capacitor voltage at time t while discharging from
// the initial voltage v0: Vc(t) = V0·e^(-t/RC).
func RCDischarge(r, c, v0, t float64) float64 {
	return v0 * math.Exp(-t/(r*c))
}

// OhmPoint is a fully solved operating point: any two quantities determine
// the other two.
type OhmPoint struct {
	V float64 // volts
	I float64 // amperes
	R float64 // ohms
	P float64 // watts
}

// FromVR solves the operating point from voltage and resistance.
func FromVR(v, r float64) OhmPoint {
	i := v / r
	return OhmPoint{V: v, I: i, R: r, P: v * i}
}

// FromVI solves the operating point from voltage and current.
func FromVI(v, i float64) OhmPoint {
	return OhmPoint{V: v, I: i, R: v / i, P: v * i}
}

// FromVP solves the operating point from voltage and power.
func FromVP(v, p float64) OhmPoint {
	i := p / v
	return OhmPoint{V: v, I: i, R: v / i, P: p}
}

// FromIR solves the operating point from current and resistance.
func FromIR(i, r float64) OhmPoint {
	v := i * r
	return OhmPoint{V: v, I: i, R: r, P: v * i}
}

// FromIP solves the operating point from current and power.
func FromIP(i, p float64) OhmPoint {
	v := p / i
	return OhmPoint{V: v, I: i, R: v / i, P: p}
}

// FromRP solves the operating point from resistance and power.
func FromRP(r, p float64) OhmPoint {
	v := math.Sqrt(p * r)
	return OhmPoint{V: v, I: v / r, R: r, P: p}
}
