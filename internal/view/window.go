// Package view holds the visible window over the coordinate plane and the
// pan/zoom operations that move it.
package view

import "math"

// MinSpan is the smallest width or height a window may have.
const MinSpan = 1e-9

// Coord is a position in data space (x=lon, y=lat).
type Coord struct {
	X float64
	Y float64
}

// Window is the visible extent of the plane.
type Window struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

func (w Window) Width() float64  { return w.XMax - w.XMin }
func (w Window) Height() float64 { return w.YMax - w.YMin }

// Center returns the middle of the window.
func (w Window) Center() Coord {
	return Coord{X: (w.XMin + w.XMax) / 2, Y: (w.YMin + w.YMax) / 2}
}

// Valid reports whether both axes are finite, ordered and at least MinSpan wide.
func (w Window) Valid() bool {
	for _, v := range [4]float64{w.XMin, w.XMax, w.YMin, w.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return w.XMin < w.XMax && w.YMin < w.YMax && w.Width() >= MinSpan && w.Height() >= MinSpan
}

// Shift moves the window by dx, dy without resizing it.
func (w Window) Shift(dx, dy float64) Window {
	return Window{XMin: w.XMin + dx, XMax: w.XMax + dx, YMin: w.YMin + dy, YMax: w.YMax + dy}
}

// Contains reports whether c lies inside w, edges included.
func (w Window) Contains(c Coord) bool {
	return c.X >= w.XMin && c.X <= w.XMax && c.Y >= w.YMin && c.Y <= w.YMax
}

// Fraction returns where c sits in w on each axis, 0 at the minimum and 1 at the maximum.
func (w Window) Fraction(c Coord) (fx, fy float64) {
	return (c.X - w.XMin) / w.Width(), (c.Y - w.YMin) / w.Height()
}

// Fit returns a window around the given extent with margin (a fraction of
// the span) added on every side. A zero span on an axis is widened to one unit.
func Fit(minX, minY, maxX, maxY, margin float64) Window {
	pad := func(lo, hi float64) (float64, float64) {
		span := hi - lo
		if span <= 0 {
			return lo - 0.5, hi + 0.5
		}
		return lo - span*margin, hi + span*margin
	}
	w := Window{}
	w.XMin, w.XMax = pad(minX, maxX)
	w.YMin, w.YMax = pad(minY, maxY)
	return w
}
