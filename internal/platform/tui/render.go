package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agegechkori/2048/internal/board"
)

const cellWidth = 6

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Bold(true)

	emptyCellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// tileColors cycles by tile rank: 2, 4, 8, ... then wraps.
	tileColors = []lipgloss.Color{"229", "222", "215", "208", "202", "196", "226", "220", "214", "201", "93", "57"}
)

// tileColor picks a colour from the tile's rank so that non-power-of-two
// values still get a stable colour.
func tileColor(v int) lipgloss.Color {
	rank := 0
	for v > 1 {
		v >>= 1
		rank++
	}
	if rank > 0 {
		rank--
	}
	return tileColors[rank%len(tileColors)]
}

// RenderCell renders a single tile value.
func RenderCell(v int) string {
	if v == 0 {
		return emptyCellStyle.Render("·")
	}
	return cellStyle.Foreground(tileColor(v)).Render(strconv.Itoa(v))
}

// RenderBoard draws the board as a bordered, coloured grid.
func RenderBoard(b board.Board) string {
	rows := make([]string, 0, len(b))
	for _, row := range b {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, RenderCell(v))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return gridStyle.Render(strings.Join(rows, "\n"))
}
