package view

import (
	"errors"
	"math"
	"testing"
)

func mustNew(t *testing.T, w Window) *Transform {
	t.Helper()
	tr, err := New(w)
	if err != nil {
		t.Fatalf("New(%+v): %v", w, err)
	}
	return tr
}

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func TestNewRejectsDegenerateWindows(t *testing.T) {
	tests := []struct {
		name string
		w    Window
	}{
		{"empty x", Window{XMin: 1, XMax: 1, YMin: 0, YMax: 1}},
		{"inverted y", Window{XMin: 0, XMax: 1, YMin: 2, YMax: 1}},
		{"nan", Window{XMin: math.NaN(), XMax: 1, YMin: 0, YMax: 1}},
		{"inf", Window{XMin: 0, XMax: math.Inf(1), YMin: 0, YMax: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w); !errors.Is(err, ErrDegenerateWindow) {
				t.Errorf("Expected ErrDegenerateWindow, got %v", err)
			}
		})
	}
}

func TestZoomKeepsPointerFraction(t *testing.T) {
	pointers := []Coord{{2, 7}, {0, 0}, {10, 10}, {5, 5}, {9.5, 0.25}, {-3, 14}}
	for _, dir := range []Direction{ZoomIn, ZoomOut} {
		for _, p := range pointers {
			tr := mustNew(t, Window{XMin: 0, XMax: 10, YMin: 0, YMax: 10})
			fx0, fy0 := tr.Window().Fraction(p)
			for i := 0; i < 5; i++ {
				if err := tr.Zoom(p, dir); err != nil {
					t.Fatalf("Zoom(%v, %v): %v", p, dir, err)
				}
				fx, fy := tr.Window().Fraction(p)
				if !near(fx, fx0) || !near(fy, fy0) {
					t.Fatalf("zoom %v at %+v step %d: fraction moved from (%f,%f) to (%f,%f)", dir, p, i, fx0, fy0, fx, fy)
				}
			}
		}
	}
}

func TestZoomScale(t *testing.T) {
	tr := mustNew(t, Window{XMin: 100, XMax: 112, YMin: 8, YMax: 24})
	w0 := tr.Window()
	c := w0.Center()

	if err := tr.Zoom(c, ZoomOut); err != nil {
		t.Fatal(err)
	}
	if w := tr.Window(); !near(w.Width(), w0.Width()*1.2) || !near(w.Height(), w0.Height()*1.2) {
		t.Errorf("zoom out: expected spans x1.2, got %f x %f", w.Width(), w.Height())
	}

	tr = mustNew(t, w0)
	if err := tr.Zoom(c, ZoomIn); err != nil {
		t.Fatal(err)
	}
	if w := tr.Window(); !near(w.Width(), w0.Width()/1.2) || !near(w.Height(), w0.Height()/1.2) {
		t.Errorf("zoom in: expected spans /1.2, got %f x %f", w.Width(), w.Height())
	}
	if got := tr.Window().Center(); !near(got.X, c.X) || !near(got.Y, c.Y) {
		t.Errorf("zoom at center moved the center to %+v", got)
	}
}

func TestZoomUnknownDirectionIsNoop(t *testing.T) {
	w := Window{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	tr := mustNew(t, w)
	for _, dir := range []Direction{0, 3, -1} {
		if err := tr.Zoom(Coord{2, 2}, dir); err != nil {
			t.Errorf("Zoom(%v): unexpected error %v", dir, err)
		}
		if tr.Window() != w {
			t.Errorf("Zoom(%v) changed the window to %+v", dir, tr.Window())
		}
	}
}

func TestZoomRejectsDegenerateResult(t *testing.T) {
	w := Window{XMin: 0, XMax: MinSpan * 1.1, YMin: 0, YMax: 1}
	tr := mustNew(t, w)
	if err := tr.Zoom(Coord{0, 0.5}, ZoomIn); !errors.Is(err, ErrDegenerateWindow) {
		t.Fatalf("Expected ErrDegenerateWindow, got %v", err)
	}
	if tr.Window() != w {
		t.Errorf("rejected zoom changed the window to %+v", tr.Window())
	}
}

func TestPanFollowsPointer(t *testing.T) {
	w := Window{XMin: 100, XMax: 110, YMin: 10, YMax: 20}
	tr := mustNew(t, w)

	tr.BeginPan(Coord{105, 15})
	if !tr.Panning() {
		t.Fatal("Expected an active pan")
	}
	if !tr.UpdatePan(Coord{107, 16}, true) {
		t.Fatal("Expected the window to move")
	}
	want := Window{XMin: 98, XMax: 108, YMin: 9, YMax: 19}
	if tr.Window() != want {
		t.Errorf("Expected %+v, got %+v", want, tr.Window())
	}
	if tr.Frame() != w {
		t.Errorf("Expected frame to stay at the drag start window, got %+v", tr.Frame())
	}

	// back to the anchor restores the window exactly
	tr.UpdatePan(Coord{105, 15}, true)
	if tr.Window() != w {
		t.Errorf("Expected %+v, got %+v", w, tr.Window())
	}
	tr.EndPan()
	if tr.Panning() {
		t.Error("Expected pan to be cleared")
	}
	if tr.Frame() != tr.Window() {
		t.Error("Expected frame to be the current window after release")
	}
}

func TestPanThenOppositePanRestoresWindow(t *testing.T) {
	w := Window{XMin: 102.25, XMax: 109.75, YMin: 8.5, YMax: 23.5}
	tr := mustNew(t, w)

	tr.BeginPan(Coord{104, 12})
	tr.UpdatePan(Coord{106.5, 13.25}, true)
	tr.EndPan()

	tr.BeginPan(Coord{106.5, 13.25})
	tr.UpdatePan(Coord{104, 12}, true)
	tr.EndPan()

	if tr.Window() != w {
		t.Errorf("Expected %+v, got %+v", w, tr.Window())
	}
}

func TestPanNoops(t *testing.T) {
	w := Window{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	tr := mustNew(t, w)

	if tr.UpdatePan(Coord{3, 3}, true) {
		t.Error("update without an anchor moved the window")
	}

	tr.BeginPan(Coord{1, 1})
	if tr.UpdatePan(Coord{3, 3}, false) {
		t.Error("update with an undefined pointer moved the window")
	}

	// a second press keeps the first anchor
	tr.BeginPan(Coord{9, 9})
	tr.UpdatePan(Coord{2, 2}, true)
	want := w.Shift(-1, -1)
	if tr.Window() != want {
		t.Errorf("Expected %+v, got %+v", want, tr.Window())
	}

	tr.EndPan()
	if tr.UpdatePan(Coord{5, 5}, true) {
		t.Error("update after release moved the window")
	}
}

func TestZoomDuringPanReanchors(t *testing.T) {
	tr := mustNew(t, Window{XMin: 0, XMax: 10, YMin: 0, YMax: 10})
	tr.BeginPan(Coord{5, 5})
	if err := tr.Zoom(Coord{5, 5}, ZoomIn); err != nil {
		t.Fatal(err)
	}
	zoomed := tr.Window()
	if tr.Frame() != zoomed {
		t.Errorf("Expected frame %+v, got %+v", zoomed, tr.Frame())
	}
	tr.UpdatePan(Coord{5, 5}, true)
	if tr.Window() != zoomed {
		t.Errorf("Expected zoomed window to survive, got %+v", tr.Window())
	}
}

func TestKeyboardPanCenterAndReset(t *testing.T) {
	w := Window{XMin: 0, XMax: 10, YMin: 0, YMax: 20}
	tr := mustNew(t, w)

	if err := tr.Pan(0.5, -0.25); err != nil {
		t.Fatal(err)
	}
	if want := (Window{XMin: 5, XMax: 15, YMin: -5, YMax: 15}); tr.Window() != want {
		t.Errorf("Expected %+v, got %+v", want, tr.Window())
	}

	if err := tr.CenterOn(Coord{100, 50}); err != nil {
		t.Fatal(err)
	}
	if c := tr.Window().Center(); c != (Coord{100, 50}) {
		t.Errorf("Expected center (100,50), got %+v", c)
	}
	if tr.Window().Width() != 10 || tr.Window().Height() != 20 {
		t.Errorf("CenterOn resized the window: %+v", tr.Window())
	}

	tr.BeginPan(Coord{1, 1})
	tr.Reset()
	if tr.Window() != w || tr.Panning() {
		t.Errorf("Expected reset to %+v without a drag, got %+v (panning=%v)", w, tr.Window(), tr.Panning())
	}
}

func TestFit(t *testing.T) {
	w := Fit(100, 10, 110, 20, 0.05)
	want := Window{XMin: 99.5, XMax: 110.5, YMin: 9.5, YMax: 20.5}
	if !near(w.XMin, want.XMin) || !near(w.XMax, want.XMax) || !near(w.YMin, want.YMin) || !near(w.YMax, want.YMax) {
		t.Errorf("Expected %+v, got %+v", want, w)
	}

	single := Fit(5, 5, 5, 5, 0.05)
	if !single.Valid() {
		t.Errorf("Expected a valid window around a single point, got %+v", single)
	}
}
