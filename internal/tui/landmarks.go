package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"vnmap/internal/geom"
)

func newLandmarkTable(lms []geom.NamedPoint) table.Model {
	nameW := len("name") + 2
	for _, lm := range lms {
		nameW = max(nameW, len(lm.Name)+2)
	}
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "name", Width: min(nameW, 24)},
		{Title: "lat", Width: geom.Latitude.Width() + 2},
		{Title: "lon", Width: geom.Longitude.Width() + 2},
		{Title: "decimal", Width: 22},
	}
	rows := make([]table.Row, 0, len(lms))
	for i, lm := range lms {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			lm.Name,
			geom.DecimalToDMS(lm.Lat, geom.Latitude).Format(geom.Latitude),
			geom.DecimalToDMS(lm.Lon, geom.Longitude).Format(geom.Longitude),
			fmt.Sprintf("%.5f, %.5f", lm.Lat, lm.Lon),
		})
	}
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithFocused(true))
	t.SetHeight(min(len(rows)+1, 12))
	return t
}

// tableWidth is the rendered width of all columns including cell padding.
func tableWidth(t table.Model) int {
	w := 0
	for _, c := range t.Columns() {
		w += c.Width + 2
	}
	return w
}

// selectedLandmark returns the landmark under the table cursor.
func (m Model) selectedLandmark() (geom.NamedPoint, bool) {
	i := m.tbl.Cursor()
	if i < 0 || i >= len(m.scene.Landmarks) {
		return geom.NamedPoint{}, false
	}
	return m.scene.Landmarks[i], true
}

// nearestLandmark finds the landmark closest to c by great-circle distance.
func (m Model) nearestLandmark(c geom.GeoPoint) (geom.NamedPoint, float64, bool) {
	best := math.Inf(1)
	var out geom.NamedPoint
	for _, lm := range m.scene.Landmarks {
		if d := geom.DistanceKm(c, lm.GeoPoint); d < best {
			best, out = d, lm
		}
	}
	return out, best, !math.IsInf(best, 1)
}

// inspect describes what lies around the window centre.
func (m Model) inspect() string {
	win := m.view.Window()
	ctr := win.Center()
	at := geom.GeoPoint{Lat: ctr.Y, Lon: ctr.X}
	lines := []string{
		fmt.Sprintf("centre: %s %s",
			geom.DecimalToDMS(at.Lat, geom.Latitude).Format(geom.Latitude),
			geom.DecimalToDMS(at.Lon, geom.Longitude).Format(geom.Longitude)),
		fmt.Sprintf("window: lon [%.4f, %.4f] lat [%.4f, %.4f]", win.XMin, win.XMax, win.YMin, win.YMax),
		fmt.Sprintf("counts: boundary=%d zone=%d pasted=%d", len(m.scene.Boundary), len(m.scene.Zone), len(m.overlay)),
	}
	if lm, km, ok := m.nearestLandmark(at); ok {
		lines = append(lines, fmt.Sprintf("nearest: %s %.1f km", lm.Name, km))
	} else {
		lines = append(lines, "nearest: no landmarks")
	}
	return strings.Join(lines, "\n")
}
