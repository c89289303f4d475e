package demo

import "github.com/charmbracelet/lipgloss"

type styleID uint8

const (
	styleNormal styleID = iota
	styleDim
	styleButton
	styleFocused
	styleBorder
	styleTitle
	styleActive
	styleStatus
)

var styles = [...]lipgloss.Style{
	styleNormal:  lipgloss.NewStyle(),
	styleDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	styleButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	styleFocused: lipgloss.NewStyle().Reverse(true).Bold(true),
	styleBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	styleTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	styleActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	styleStatus:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
}
