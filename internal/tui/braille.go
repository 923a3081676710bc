package tui

import (
	"math"
	"sort"
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// microSize is the canvas size in micro-pixels (2x4 per cell).
func (b *brailleBuf) microSize() (int, int) { return b.w * 2, b.h * 4 }

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawSegment clips a projected segment to the canvas and rasterizes it.
// Vertices far outside the window are common once zoomed in.
func (b *brailleBuf) drawSegment(p, q [2]float64) {
	wMic, hMic := b.microSize()
	x0, y0, x1, y1, ok := clipSegment(p[0], p[1], q[0], q[1], float64(wMic-1), float64(hMic-1))
	if !ok {
		return
	}
	b.drawLineMicro(round(x0), round(y0), round(x1), round(y1))
}

// drawPath draws consecutive segments, joining the ends when closed.
func (b *brailleBuf) drawPath(pts [][2]float64, closed bool) {
	for i := 0; i+1 < len(pts); i++ {
		b.drawSegment(pts[i], pts[i+1])
	}
	if closed && len(pts) > 2 {
		b.drawSegment(pts[len(pts)-1], pts[0])
	}
}

// drawDashed draws a closed path skipping every other run of dash segments.
func (b *brailleBuf) drawDashed(pts [][2]float64, dash int) {
	if dash < 1 {
		dash = 1
	}
	for i := range pts {
		if (i/dash)%2 == 1 {
			continue
		}
		b.drawSegment(pts[i], pts[(i+1)%len(pts)])
	}
}

// fillStipple fills a ring with the even-odd rule, setting one micro-pixel
// in four so outlines and other layers stay readable through the fill.
func (b *brailleBuf) fillStipple(ring [][2]float64) {
	if len(ring) < 3 {
		return
	}
	wMic, hMic := b.microSize()
	var xs []float64
	for yMic := 0; yMic < hMic; yMic += 2 {
		y := float64(yMic)
		xs = xs[:0]
		for i := range ring {
			a := ring[i]
			c := ring[(i+1)%len(ring)]
			if a[1] == c[1] { // horizontal edge: skip
				continue
			}
			if (y >= a[1] && y < c[1]) || (y >= c[1] && y < a[1]) {
				t := (y - a[1]) / (c[1] - a[1])
				xs = append(xs, a[0]+t*(c[0]-a[0]))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start := int(math.Ceil(math.Max(0, xs[i])))
			end := int(math.Floor(math.Min(float64(wMic-1), xs[i+1])))
			for xMic := start + start%2; xMic <= end; xMic += 2 {
				b.setPixel(xMic, yMic)
			}
		}
	}
}

// cell returns the braille rune for a cell, or a space when empty.
func (b *brailleBuf) cell(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

// clipSegment clips p0-p1 to [0,maxX]x[0,maxY] (Liang-Barsky).
func clipSegment(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0, maxX - x0, y0, maxY - y0}
	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func round(v float64) int { return int(math.Round(v)) }
