package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/agent8/internal/core"
)

// ansiCodes maps game colors to ANSI 256 palette entries.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
}

var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen turns the cell buffer into styled terminal text. Runs of
// same-colored cells share one escape sequence.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	runColor := core.ColorDefault

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(styleFor(runColor).Render(string(run)))
			run = run[:0]
		}
	}
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return sb.String()
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// RenderStatus renders the one-line status bar shown under the playfield.
func RenderStatus(state core.GameState, best, width int) string {
	left := fmt.Sprintf(" %s  BEST: %d", state.Phase, max(best, state.Score))
	right := "esc: menu  r: restart  ctrl+s: snapshot "

	if state.GameOver {
		left += "  " + alertStyle.Render("SPACE TO RESPAWN")
	}
	gap := width - lipgloss.Width(left) - len(right)
	if gap < 1 {
		return statusStyle.Render(left)
	}
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}
