// Package ui holds the terminal styles and the table renderer used for
// user-facing output.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
)

var (
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	blue   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	bright = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bold   = lipgloss.NewStyle().Bold(true)
)

func Green(s string) string     { return green.Render(s) }
func Blue(s string) string      { return blue.Render(s) }
func Red(s string) string       { return red.Render(s) }
func RedBright(s string) string { return bright.Render(s) }
func Gray(s string) string      { return gray.Render(s) }
func Bold(s string) string      { return bold.Render(s) }

// Plain removes colour and other escape sequences.
func Plain(s string) string {
	return ansi.Strip(s)
}

// KeyValue pads label to width (measured without escape sequences) and
// appends the value in blue, e.g. "NPM Version    : 10.2.0".
func KeyValue(label string, width int, value string) string {
	pad := width - ansi.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	return label + strings.Repeat(" ", pad) + " : " + Blue(value)
}

// Table renders a bordered table with red headers and gray borders.
// Cells may already carry styles.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(gray).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Inherit(red)
			}
			return style
		})

	return lipgloss.NewStyle().MarginTop(1).Render(t.String())
}
