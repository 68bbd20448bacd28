package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim     = lipgloss.NewStyle().Foreground(colorGray)
)

func printTitle(w io.Writer, s string) {
	fmt.Fprintln(w, styleTitle.Render(s))
}

func printMessages(w io.Writer, icon string, style lipgloss.Style, msgs []string) {
	for _, m := range msgs {
		fmt.Fprintf(w, "%s %s\n", style.Render(icon), m)
	}
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleDim).
		Headers(headers...).
		Rows(rows...).
		Render()
}
