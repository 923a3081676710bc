package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"vnmap/internal/geom"
	"vnmap/internal/view"
)

// keyPanStep is the arrow-key pan distance as a fraction of the window.
const keyPanStep = 0.1

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pasteMode {
		switch msg.String() {
		case "esc":
			m.pasteMode = false
			m.ta.Blur()
			m.status = "view mode"
			return m, nil
		case "enter":
			m.applyPaste()
			return m, nil
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}
	if m.showTable {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "a":
			m.showTable = false
			return m, nil
		case "enter":
			if lm, ok := m.selectedLandmark(); ok {
				m.report(m.view.CenterOn(view.Coord{X: lm.Lon, Y: lm.Lat}), "centred on "+lm.Name)
			}
			m.showTable = false
			return m, nil
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	if m.showSidebar {
		switch msg.String() {
		case "up", "down", "k", "j":
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		case "enter", " ":
			if it, ok := m.l.SelectedItem().(layerItem); ok {
				m.toggleLayer(it.layer)
			}
			return m, nil
		}
	}

	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up":
		m.report(m.view.Pan(0, keyPanStep), "")
	case "down":
		m.report(m.view.Pan(0, -keyPanStep), "")
	case "left":
		m.report(m.view.Pan(-keyPanStep, 0), "")
	case "right":
		m.report(m.view.Pan(keyPanStep, 0), "")
	case "+", "=":
		m.report(m.view.Zoom(m.view.Window().Center(), view.ZoomIn), "zoom in")
	case "-", "_":
		m.report(m.view.Zoom(m.view.Window().Center(), view.ZoomOut), "zoom out")
	case "r":
		m.view.Reset()
		m.status = "view reset"
	case "1", "2", "3", "4", "5", "6":
		m.toggleLayer(layer(key[0] - '1'))
	case "l":
		all := true
		for _, v := range m.visible {
			all = all && v
		}
		for l := range m.visible {
			m.visible[l] = !all
		}
		m.refreshLayers()
		m.status = fmt.Sprintf("all layers: %v", !all)
	case "tab":
		m.showSidebar = !m.showSidebar
		m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
	case "a":
		if len(m.scene.Landmarks) == 0 {
			m.status = "no landmarks configured"
			break
		}
		m.showTable = true
		m.inspectPopup = ""
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.ta.Focus()
		m.status = "paste mode"
	case "i":
		if m.inspectPopup != "" {
			m.inspectPopup = ""
			break
		}
		m.inspectPopup = m.inspect()
		m.status = "inspect popup"
	case "esc":
		m.inspectPopup = ""
	case "h":
		m.helpVisible = !m.helpVisible
	}
	return m, nil
}

// applyPaste parses the textarea tolerantly into the overlay layer.
func (m *Model) applyPaste() {
	v := strings.TrimSpace(m.ta.Value())
	if v == "" {
		m.status = "paste: empty"
		return
	}
	res, err := geom.Read(strings.NewReader(v), geom.FormatAuto, geom.Tolerant)
	if err != nil {
		m.status = "paste error: " + err.Error()
		return
	}
	if len(res.Points) == 0 {
		m.status = fmt.Sprintf("paste: no valid coordinates (%d skipped)", len(res.Skipped))
		return
	}
	m.overlay = res.Points
	m.visible[layerOverlay] = true
	m.refreshLayers()
	m.status = fmt.Sprintf("pasted %d points, %d skipped", len(res.Points), len(res.Skipped))
	log.Debug().Int("points", len(res.Points)).Int("skipped", len(res.Skipped)).Msg("overlay pasted")
	m.pasteMode = false
	m.ta.Blur()
}

// report puts a view error, or msg on success, in the status line.
func (m *Model) report(err error, msg string) {
	switch {
	case errors.Is(err, view.ErrDegenerateWindow):
		m.status = "zoom limit reached"
	case err != nil:
		m.status = err.Error()
	case msg != "":
		m.status = msg
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	lo := m.layout()
	cx, cy, inside := lo.inMap(msg.X, msg.Y)

	// Pointer positions during a drag are read in the anchored frame so the
	// map follows the pointer instead of chasing its own movement.
	pointer := cellToData(m.view.Frame(), cx, cy, lo.mapW, lo.mapH)

	if m.showTable || m.pasteMode {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if inside {
				m.view.BeginPan(pointer)
				m.inspectPopup = ""
			}
		case tea.MouseButtonWheelUp:
			if inside {
				m.report(m.view.Zoom(pointer, view.ZoomIn), "")
			}
		case tea.MouseButtonWheelDown:
			if inside {
				m.report(m.view.Zoom(pointer, view.ZoomOut), "")
			}
		}
	case tea.MouseActionMotion:
		m.view.UpdatePan(pointer, inside)
	case tea.MouseActionRelease:
		m.view.EndPan()
	}
	m.updateHover(cx, cy, inside, lo)
}

// updateHover tracks the pointer for the footer and the vertex marker.
func (m *Model) updateHover(cx, cy int, inside bool, lo layout) {
	m.hovering = inside
	if !inside {
		m.hoverHasGeo = false
		m.hoverVertex = false
		return
	}
	m.hoverCellX, m.hoverCellY = cx, cy
	c := cellToData(m.view.Window(), cx, cy, lo.mapW, lo.mapH)
	m.hoverHasGeo = true
	m.hoverLon, m.hoverLat = c.X, c.Y
	m.hoverMicX, m.hoverMicY, m.hoverVertex = m.nearestVertex(cx*2, cy*4, lo.mapW, lo.mapH)
}
