package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	hoverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	labelStyle = lipgloss.NewStyle().Foreground(baseFg)
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA"))
)

// layerStyles is indexed by layer; the renderer keeps pointers into it.
var layerStyles = [numLayers]lipgloss.Style{
	layerGrid:      lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
	layerBoundary:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")),
	layerZone:      lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")),
	layerOverlay:   lipgloss.NewStyle().Foreground(accentFg),
	layerCircles:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
	layerLandmarks: lipgloss.NewStyle().Foreground(baseFg).Bold(true),
}
