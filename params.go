package main

import (
	"fmt"
	"math"
)

// formatAngle formats a rotation angle, using pi notation when it lands on a
// common fraction. Angles are normalized into [0, 2*pi) first since the
// optimizer wanders freely over the periodic landscape.
func formatAngle(val float64) string {
	val = math.Mod(val, 2*math.Pi)
	if val < 0 {
		val += 2 * math.Pi
	}

	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}
	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-6 {
			return pf.display
		}
	}

	return fmt.Sprintf("%.4f", val)
}
