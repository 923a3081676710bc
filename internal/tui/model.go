package tui

import (
	"errors"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"vnmap/internal/geom"
	"vnmap/internal/scene"
	"vnmap/internal/view"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	// initial window margin on each side, as a fraction of the data span
	fitMargin = 0.05
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	scene *scene.Scene
	view  *view.Transform

	// layer sidebar
	l       list.Model
	visible [numLayers]bool

	// pasted overlay path
	overlay   geom.BoundaryPath
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverVertex bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// landmark table
	showTable bool
	tbl       table.Model
}

// New builds a model showing sc, with the window fitted to its extent.
func New(sc *scene.Scene) (Model, error) {
	bbox, ok := sc.Extent()
	if !ok {
		return Model{}, errors.New("tui: scene has nothing to draw")
	}
	tr, err := view.New(view.Fit(bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY, fitMargin))
	if err != nil {
		return Model{}, err
	}
	m := Model{
		helpVisible: true,
		status:      "vnmap ready",
		scene:       sc,
		view:        tr,
	}
	for l := range m.visible {
		m.visible[l] = true
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Layers"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	m.refreshLayers()
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste coordinates, one per line (lat,lon or DMS). Enter to draw; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = newLandmarkTable(sc.Landmarks)
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// layout is the screen geometry shared by View and the mouse handler.
type layout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	lo := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	side := 0
	if m.showSidebar {
		side = sidebarWidth
		lo.mapX = sidebarWidth + 1
	}
	lo.mapW = max(10, lo.contentW-side-1)
	lo.mapH = lo.contentH
	return lo
}

// inMap converts a screen cell to a map cell.
func (lo layout) inMap(x, y int) (int, int, bool) {
	cx, cy := x-lo.mapX, y-lo.mapY
	return cx, cy, cx >= 0 && cx < lo.mapW && cy >= 0 && cy < lo.mapH
}
