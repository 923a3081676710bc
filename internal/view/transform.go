package view

import (
	"errors"
	"fmt"
)

// ZoomBase is the factor applied per zoom step.
const ZoomBase = 1.2

// ErrDegenerateWindow is returned when an operation would leave an empty,
// inverted or non-finite window. The window is left unchanged.
var ErrDegenerateWindow = errors.New("view: degenerate window")

// Direction of a zoom step.
type Direction int

const (
	ZoomIn Direction = iota + 1
	ZoomOut
)

func (d Direction) String() string {
	switch d {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// anchor is captured when a drag starts.
type anchor struct {
	pointer Coord
	window  Window
}

// Transform owns the current window and the state of an active drag. It is
// not safe for concurrent use; the event loop calls it from one goroutine.
type Transform struct {
	window  Window
	initial Window
	drag    *anchor
}

// New returns a Transform showing w.
func New(w Window) (*Transform, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrDegenerateWindow, w)
	}
	return &Transform{window: w, initial: w}, nil
}

// Window returns the current visible extent.
func (t *Transform) Window() Window { return t.window }

// Panning reports whether a drag is in progress.
func (t *Transform) Panning() bool { return t.drag != nil }

// Frame is the window pointer positions must be converted in while a drag
// is active: the one captured at drag start. Otherwise it is the current window.
func (t *Transform) Frame() Window {
	if t.drag != nil {
		return t.drag.window
	}
	return t.window
}

// BeginPan starts a drag at the pointer's data position. It does nothing if
// a drag is already active.
func (t *Transform) BeginPan(pointer Coord) {
	if t.drag != nil {
		return
	}
	t.drag = &anchor{pointer: pointer, window: t.window}
}

// UpdatePan moves the window so the anchored data position follows the
// pointer. defined is false when the pointer is outside the data area.
// It reports whether the window changed.
func (t *Transform) UpdatePan(pointer Coord, defined bool) bool {
	if t.drag == nil || !defined {
		return false
	}
	dx := t.drag.pointer.X - pointer.X
	dy := t.drag.pointer.Y - pointer.Y
	next := t.drag.window.Shift(dx, dy)
	if !next.Valid() {
		return false
	}
	t.window = next
	return true
}

// EndPan clears the drag anchor.
func (t *Transform) EndPan() { t.drag = nil }

// Zoom rescales both axes by ZoomBase around pointer, keeping the pointer's
// fractional position in the window. Unknown directions are ignored.
func (t *Transform) Zoom(pointer Coord, dir Direction) error {
	var scale float64
	switch dir {
	case ZoomIn:
		scale = 1 / ZoomBase
	case ZoomOut:
		scale = ZoomBase
	default:
		return nil
	}
	cur := t.window
	newW := cur.Width() * scale
	newH := cur.Height() * scale
	relX := (cur.XMax - pointer.X) / cur.Width()
	relY := (cur.YMax - pointer.Y) / cur.Height()
	next := Window{
		XMin: pointer.X - newW*(1-relX),
		XMax: pointer.X + newW*relX,
		YMin: pointer.Y - newH*(1-relY),
		YMax: pointer.Y + newH*relY,
	}
	if !next.Valid() {
		return ErrDegenerateWindow
	}
	t.window = next
	if t.drag != nil {
		// the pointer keeps its data position, so re-anchor the drag there
		t.drag = &anchor{pointer: pointer, window: next}
	}
	return nil
}

// Pan shifts the window by a fraction of its own size, e.g. 0.1 moves it a
// tenth of its width.
func (t *Transform) Pan(fx, fy float64) error {
	next := t.window.Shift(fx*t.window.Width(), fy*t.window.Height())
	if !next.Valid() {
		return ErrDegenerateWindow
	}
	t.window = next
	return nil
}

// CenterOn pans so that c is in the middle of the window.
func (t *Transform) CenterOn(c Coord) error {
	mid := t.window.Center()
	next := t.window.Shift(c.X-mid.X, c.Y-mid.Y)
	if !next.Valid() {
		return ErrDegenerateWindow
	}
	t.window = next
	return nil
}

// Reset restores the window the Transform was created with.
func (t *Transform) Reset() {
	t.window = t.initial
	t.drag = nil
}
