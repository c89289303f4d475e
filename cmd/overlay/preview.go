package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-overlay"
)

const (
	maxPreviewWidth  = 240
	maxPreviewHeight = 120
)

var (
	captionStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	frameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63"))
	containerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	anchorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	panelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	clippedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	overlapStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

type previewCell uint8

const (
	cellOutside previewCell = iota
	cellContainer
	cellAnchor
	cellPanel
	cellOverlap
)

// renderPreview draws the container, the anchor and the resolved panel one
// character per cell.
func renderPreview(req overlay.PlacementRequest, res overlay.PlacementResult) (string, error) {
	anchor := req.Anchor.Sanitize()
	if req.Origin != nil {
		anchor = overlay.NewRect(req.Origin.X, req.Origin.Y, 1, 1)
	}
	panel := res.Rect(req.Content)
	container := req.Container.Sanitize()

	frame := container.Union(anchor).Union(panel)
	if frame.IsEmpty() {
		return "", fmt.Errorf("nothing to preview: anchor and content are empty")
	}
	if frame.Width > maxPreviewWidth || frame.Height > maxPreviewHeight {
		return "", fmt.Errorf("preview area %dx%d exceeds %dx%d cells", frame.Width, frame.Height, maxPreviewWidth, maxPreviewHeight)
	}

	classify := func(x, y int) previewCell {
		inAnchor, inPanel := anchor.Contains(x, y), panel.Contains(x, y)
		switch {
		case inAnchor && inPanel:
			return cellOverlap
		case inPanel:
			return cellPanel
		case inAnchor:
			return cellAnchor
		case container.Contains(x, y):
			return cellContainer
		}
		return cellOutside
	}

	panelGlyph := panelStyle
	if res.Clipped {
		panelGlyph = clippedStyle
	}
	render := func(kind previewCell, n int) string {
		switch kind {
		case cellContainer:
			return containerStyle.Render(strings.Repeat(".", n))
		case cellAnchor:
			return anchorStyle.Render(strings.Repeat("A", n))
		case cellPanel:
			return panelGlyph.Render(strings.Repeat("#", n))
		case cellOverlap:
			return overlapStyle.Render(strings.Repeat("X", n))
		}
		return strings.Repeat(" ", n)
	}

	rows := make([]string, 0, frame.Height)
	for y := frame.Y; y < frame.Bottom(); y++ {
		var row strings.Builder
		run, kind := 0, classify(frame.X, y)
		for x := frame.X; x < frame.Right(); x++ {
			k := classify(x, y)
			if k != kind {
				row.WriteString(render(kind, run))
				run, kind = 0, k
			}
			run++
		}
		row.WriteString(render(kind, run))
		rows = append(rows, row.String())
	}

	caption := fmt.Sprintf("%s  top=%d left=%d", res.Placement, res.Top, res.Left)
	if res.Clipped {
		caption += "  (clipped)"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		captionStyle.Render(caption),
		frameStyle.Render(strings.Join(rows, "\n")),
	), nil
}
