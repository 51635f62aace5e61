package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1"))
	pendingStyle   = lipgloss.NewStyle()
)

func renderHeader(timeLeft int, wpm float64) string {
	return fmt.Sprintf("Time left: %d, WPM: %d", timeLeft, int(math.Round(wpm)))
}

// renderPrompt colors each prompt character against the typed input:
// green where the input matches, red where it does not, unstyled where
// nothing has been typed yet. The prompt character itself is always
// displayed, even over a mistyped one. The line is clipped to width
// terminal cells; zero or negative width leaves it unclipped.
func renderPrompt(target, input string, width int) string {
	targetRunes := []rune(target)
	inputRunes := []rune(input)

	var b strings.Builder
	cells := 0
	for i, tr := range targetRunes {
		w := runewidth.RuneWidth(tr)
		if width > 0 && cells+w > width {
			break
		}
		cells += w
		switch {
		case i >= len(inputRunes):
			b.WriteString(pendingStyle.Render(string(tr)))
		case inputRunes[i] == tr:
			b.WriteString(correctStyle.Render(string(tr)))
		default:
			b.WriteString(incorrectStyle.Render(string(tr)))
		}
	}
	return b.String()
}
