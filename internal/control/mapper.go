// Package control maps websocket control messages onto input injection.
package control

import (
	"math"

	"github.com/frudas24/inputkit/internal/display"
)

// NormToAbs maps normalized [0..1] coordinates inside d to absolute screen coords.
func NormToAbs(xn, yn float64, d display.Display) (int, int) {
	xn = clamp01(xn)
	yn = clamp01(yn)
	return d.Bounds.X + normToPixels(xn, d.Bounds.W), d.Bounds.Y + normToPixels(yn, d.Bounds.H)
}

func normToPixels(norm float64, span int) int {
	if span <= 1 {
		return 0
	}
	return int(math.Round(norm * float64(span-1)))
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
