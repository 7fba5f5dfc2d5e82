package chatcard

import "math"

// ColorTolerance is the largest per-channel difference at which two colors
// still compare equal.
const ColorTolerance = 1e-5

// Color is an RGBA color with channels conventionally in [0, 1].
type Color struct {
	Red   *float64
	Green *float64
	Blue  *float64
	Alpha *float64
	Extra Extras
}

// RGBA returns a Color with all four channels set.
func RGBA(r, g, b, a float64) *Color {
	return &Color{Red: &r, Green: &g, Blue: &b, Alpha: &a}
}

// Equal reports whether every channel of c and o differs by at most
// ColorTolerance. Absent channels count as 0 and a nil Color equals only
// another nil Color. Extras are not compared.
func (c *Color) Equal(o *Color) bool {
	if c == nil || o == nil {
		return c == o
	}
	return closeEnough(c.Red, o.Red) &&
		closeEnough(c.Green, o.Green) &&
		closeEnough(c.Blue, o.Blue) &&
		closeEnough(c.Alpha, o.Alpha)
}

func closeEnough(a, b *float64) bool {
	return math.Abs(channel(a)-channel(b)) <= ColorTolerance
}

func channel(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
