// SPDX-License-Identifier: MIT

package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleGroup for rendered groups.
	StyleGroup = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

var (
	styleLabel = lipgloss.NewStyle().Width(6)
	styleName  = lipgloss.NewStyle().Width(14)
	styleKind  = lipgloss.NewStyle().Width(9).Foreground(colorDim)
)
