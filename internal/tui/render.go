package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vnmap/internal/geom"
	"vnmap/internal/view"
)

// project maps a data coordinate into the micro-pixel space (2x4 per cell)
// of a w x h cell canvas showing win. Results may fall outside the canvas.
func project(win view.Window, x, y float64, w, h int) [2]float64 {
	fx := (x - win.XMin) / win.Width()
	fy := (y - win.YMin) / win.Height()
	return [2]float64{fx * float64(w*2-1), (1 - fy) * float64(h*4-1)}
}

// cellToData converts a canvas cell to the data coordinate under its centre.
func cellToData(win view.Window, cx, cy, w, h int) view.Coord {
	fx := (float64(cx*2) + 0.5) / float64(w*2-1)
	fy := 1 - (float64(cy*4)+1.5)/float64(h*4-1)
	return view.Coord{X: win.XMin + fx*win.Width(), Y: win.YMin + fy*win.Height()}
}

func projectPath(win view.Window, path []geom.GeoPoint, w, h int) [][2]float64 {
	out := make([][2]float64, len(path))
	for i, p := range path {
		out[i] = project(win, p.Lon, p.Lat, w, h)
	}
	return out
}

// canvas composites one braille buffer per layer plus text labels.
type canvas struct {
	w, h   int
	bufs   [numLayers]*brailleBuf
	glyphs [][]glyph
}

type glyph struct {
	r  rune
	st *lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, glyphs: make([][]glyph, h)}
	for y := range c.glyphs {
		c.glyphs[y] = make([]glyph, w)
	}
	return c
}

func (c *canvas) buf(l layer) *brailleBuf {
	if c.bufs[l] == nil {
		c.bufs[l] = newBrailleBuf(c.w, c.h)
	}
	return c.bufs[l]
}

// text writes s starting at cell (cx, cy); with alignRight it ends just
// before cx instead, like a label sitting left of its point.
func (c *canvas) text(cx, cy int, s string, st *lipgloss.Style, alignRight bool) {
	if cy < 0 || cy >= c.h {
		return
	}
	rs := []rune(s)
	if alignRight {
		cx -= len(rs)
	}
	for i, r := range rs {
		x := cx + i
		if x < 0 || x >= c.w {
			continue
		}
		c.glyphs[cy][x] = glyph{r: r, st: st}
	}
}

// label places s at the cell holding micro-pixel p. Anchors left of or
// above the canvas land on negative cells and are clipped by text.
func (c *canvas) label(p [2]float64, s string, st *lipgloss.Style, alignRight bool) {
	cx, cy := cellOf(p)
	c.text(cx, cy, s, st, alignRight)
}

// cellOf floors a micro-pixel position to its cell.
func cellOf(p [2]float64) (int, int) {
	return int(math.Floor(math.Round(p[0]) / 2)), int(math.Floor(math.Round(p[1]) / 4))
}

// render flattens layers bottom-up, then labels, into styled rows.
func (c *canvas) render() string {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if c.glyphs[y][x].r != 0 {
				continue
			}
			c.glyphs[y][x] = glyph{r: ' '}
			for l := numLayers - 1; l >= 0; l-- {
				b := c.bufs[l]
				if b == nil || b.m[y][x] == 0 {
					continue
				}
				c.glyphs[y][x] = glyph{r: b.cell(x, y), st: &layerStyles[l]}
				break
			}
		}
	}
	lines := make([]string, c.h)
	var sb strings.Builder
	for y, row := range c.glyphs {
		sb.Reset()
		for x := 0; x < len(row); {
			st := row[x].st
			run := []rune{}
			for ; x < len(row) && row[x].st == st; x++ {
				run = append(run, row[x].r)
			}
			if st == nil {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(st.Render(string(run)))
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// renderMap draws the visible layers of the scene into a w x h block.
func (m Model) renderMap(w, h int) string {
	win := m.view.Window()
	c := newCanvas(w, h)

	if m.visible[layerGrid] {
		m.drawGrid(c, win)
	}
	if m.visible[layerBoundary] && len(m.scene.Boundary) > 0 {
		b := c.buf(layerBoundary)
		pts := projectPath(win, m.scene.Boundary, w, h)
		b.fillStipple(pts)
		b.drawPath(pts, true)
	}
	if m.visible[layerZone] && len(m.scene.Zone) > 0 {
		b := c.buf(layerZone)
		pts := projectPath(win, m.scene.Zone, w, h)
		b.fillStipple(pts)
		b.drawPath(pts, true)
		for i, p := range pts {
			b.setPixel(round(p[0]), round(p[1]))
			c.label(p, strconv.Itoa(i+1), &indexStyle, true)
		}
	}
	if m.visible[layerOverlay] && len(m.overlay) > 0 {
		c.buf(layerOverlay).drawPath(projectPath(win, m.overlay, w, h), len(m.overlay) > 2)
	}
	if m.visible[layerCircles] {
		b := c.buf(layerCircles)
		for _, ci := range m.scene.Circles {
			const steps = 96
			ring := make([][2]float64, steps)
			for i := range ring {
				a := 2 * math.Pi * float64(i) / steps
				ring[i] = project(win, ci.Lon+ci.Radius*math.Cos(a), ci.Lat+ci.Radius*math.Sin(a), w, h)
			}
			b.drawDashed(ring, 3)
			p := project(win, ci.Lon, ci.Lat, w, h)
			b.setPixel(round(p[0]), round(p[1]))
			c.label(p, ci.Name, &labelStyle, true)
		}
	}
	if m.visible[layerLandmarks] {
		b := c.buf(layerLandmarks)
		for _, lm := range m.scene.Landmarks {
			p := project(win, lm.Lon, lm.Lat, w, h)
			b.setPixel(round(p[0]), round(p[1]))
			c.label(p, lm.Name, &labelStyle, true)
		}
	}

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering && m.hoverVertex {
		c.text(m.hoverMicX/2, m.hoverMicY/4, "◯", &hoverStyle, false)
	}
	return c.render()
}

// drawGrid draws dotted graticule lines with their values along the top
// and left edges.
func (m Model) drawGrid(c *canvas, win view.Window) {
	b := c.buf(layerGrid)
	wMic, hMic := b.microSize()
	st := &layerStyles[layerGrid]
	if step := niceStep(win.Width()); step > 0 {
		for x := math.Ceil(win.XMin/step) * step; x <= win.XMax; x += step {
			mx := round(project(win, x, win.YMin, c.w, c.h)[0])
			for my := 0; my < hMic; my += 4 {
				b.setPixel(mx, my)
			}
			c.text(mx/2+1, 0, formatTick(x, step), st, false)
		}
	}
	if step := niceStep(win.Height()); step > 0 {
		for y := math.Ceil(win.YMin/step) * step; y <= win.YMax; y += step {
			my := round(project(win, win.XMin, y, c.w, c.h)[1])
			for mx := 0; mx < wMic; mx += 4 {
				b.setPixel(mx, my)
			}
			c.text(0, my/4, formatTick(y, step), st, false)
		}
	}
}

// nearestVertex finds the drawn vertex closest to a micro-pixel position.
func (m Model) nearestVertex(hx, hy, w, h int) (int, int, bool) {
	win := m.view.Window()
	best := math.MaxFloat64
	var bx, by int
	found := false
	consider := func(p geom.GeoPoint) {
		q := project(win, p.Lon, p.Lat, w, h)
		dx := q[0] - float64(hx)
		dy := q[1] - float64(hy)
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = round(q[0]), round(q[1])
			found = true
		}
	}
	if m.visible[layerBoundary] {
		for _, p := range m.scene.Boundary {
			consider(p)
		}
	}
	if m.visible[layerZone] {
		for _, p := range m.scene.Zone {
			consider(p)
		}
	}
	if m.visible[layerOverlay] {
		for _, p := range m.overlay {
			consider(p)
		}
	}
	if m.visible[layerLandmarks] {
		for _, p := range m.scene.Landmarks {
			consider(p.GeoPoint)
		}
	}
	// snap only within three cells (12 micro rows) of the pointer
	const reach = 12
	if !found || best > reach*reach {
		return 0, 0, false
	}
	return bx, by, true
}
