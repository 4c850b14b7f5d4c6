package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treat-catcher/internal/core"
	"github.com/vovakirdan/treat-catcher/internal/games/catch"
	"github.com/vovakirdan/treat-catcher/internal/records"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrown:       lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorPink:        lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawLoading marks the field while the record fetch is in flight.
func drawLoading(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2, " Fetching scores... ", core.ColorYellow)
}

// standingLines formats the record for the game-over overlay.
func standingLines(st records.Standing, policy, player string, score int) []string {
	return records.Lines(st, policy, player, score)
}

// drawStanding draws the best score or leaderboard under the game-over box.
// Lines that do not fit on the screen are dropped.
func drawStanding(dst *core.Screen, st records.Standing, policy, player string, score int) {
	lines := standingLines(st, policy, player, score)
	box := catch.MessageBox(dst.Width(), dst.Height(), score)

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	y := box.Bottom() + 1
	x := (dst.Width() - width) / 2
	for i, l := range lines {
		if y+i >= dst.Height() {
			return
		}
		c := core.ColorWhite
		switch {
		case i == 0:
			c = core.ColorYellow
		case strings.HasPrefix(l, ">"):
			c = core.ColorPink
		}
		dst.DrawHLine(x, y+i, width, ' ', core.ColorDefault)
		dst.DrawTextColored(x, y+i, l, c)
	}
}

// promptView renders the name prompt with the last known leaderboard.
func (m Model) promptView() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208")).
		MarginBottom(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2)
	boardStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		MarginTop(1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Treat Catcher"))
	b.WriteString("\n")
	b.WriteString("Help " + catch.PlayerName + " catch the falling treats.\n")
	b.WriteString("Don't let a single one hit the ground!\n\n")
	b.WriteString(m.name.View())

	if len(m.standing.Board) > 0 {
		lines := standingLines(m.standing, m.keeper.Policy(), m.player, 0)
		b.WriteString("\n")
		b.WriteString(boardStyle.Render(strings.Join(lines, "\n")))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.prompt)))

	content := boxStyle.Render(b.String())
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}
