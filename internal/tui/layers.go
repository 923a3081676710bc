package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
)

// layer is a drawable group; higher values are drawn on top.
type layer int

const (
	layerGrid layer = iota
	layerBoundary
	layerZone
	layerOverlay
	layerCircles
	layerLandmarks
	numLayers
)

var layerNames = [numLayers]string{
	layerGrid:      "grid",
	layerBoundary:  "boundary",
	layerZone:      "zone",
	layerOverlay:   "pasted",
	layerCircles:   "circles",
	layerLandmarks: "landmarks",
}

func (l layer) String() string { return layerNames[l] }

type layerItem struct {
	layer   layer
	visible bool
	count   int
}

func (it layerItem) Title() string {
	mark := "○"
	if it.visible {
		mark = "●"
	}
	if it.layer == layerGrid {
		return fmt.Sprintf("%s %s", mark, it.layer)
	}
	return fmt.Sprintf("%s %s (%d)", mark, it.layer, it.count)
}
func (it layerItem) Description() string { return "" }
func (it layerItem) FilterValue() string { return it.layer.String() }

// layerCount is the number of features a layer draws.
func (m Model) layerCount(l layer) int {
	switch l {
	case layerBoundary:
		return len(m.scene.Boundary)
	case layerZone:
		return len(m.scene.Zone)
	case layerOverlay:
		return len(m.overlay)
	case layerCircles:
		return len(m.scene.Circles)
	case layerLandmarks:
		return len(m.scene.Landmarks)
	}
	return 0
}

// refreshLayers rebuilds the sidebar items from the visibility flags.
func (m *Model) refreshLayers() {
	items := make([]list.Item, 0, numLayers)
	for l := layer(0); l < numLayers; l++ {
		items = append(items, layerItem{layer: l, visible: m.visible[l], count: m.layerCount(l)})
	}
	m.l.SetItems(items)
}

// toggleLayer flips one layer and reports it in the status line.
func (m *Model) toggleLayer(l layer) {
	m.visible[l] = !m.visible[l]
	m.status = fmt.Sprintf("%s: %v", l, m.visible[l])
	m.refreshLayers()
}
