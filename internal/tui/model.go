// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hjort/fastfingers/internal/game"
	"github.com/hjort/fastfingers/internal/model"
)

// pollInterval is how often the countdown is re-evaluated while a
// round is running.
const pollInterval = 100 * time.Millisecond

// TickMsg drives the countdown clock.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type phase int

const (
	phaseIdle phase = iota // clock starts on the first keystroke
	phaseRunning
	phaseFinished
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	session  *game.Session
	gameTime int

	phase     phase
	startedAt time.Time
	timeLeft  int

	interrupted bool

	width int

	keys keyMap
	help help.Model
}

// NewModel constructs the typing UI around a prepared session. The
// width seeds the layout until the first window size message arrives.
func NewModel(session *game.Session, gameTime, width int) *Model {
	m := &Model{
		session:  session,
		gameTime: gameTime,
		phase:    phaseIdle,
		timeLeft: gameTime,
		width:    width,
		keys:     defaultKeyMap,
		help:     help.New(),
	}
	if width > 0 {
		m.help.Width = width
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.InterruptMsg:
		m.interrupted = true
		return m, tea.Quit
	case TickMsg:
		if m.phase == phaseRunning {
			left := m.remaining()
			if left <= 0 {
				m.timeLeft = 0
				m.phase = phaseFinished
				return m, tea.Quit
			}
			m.timeLeft = countdown(left)
		}
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.interrupted = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	}
	if m.phase == phaseFinished {
		return m, nil
	}
	m.startClock()
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.session.Backspace()
	case tea.KeySpace:
		m.session.CompleteWord()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r == ' ' {
				m.session.CompleteWord()
			} else {
				m.session.AppendRune(r)
			}
		}
	}
	m.timeLeft = countdown(m.remaining())
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.phase == phaseFinished || m.interrupted {
		return ""
	}
	header := renderHeader(m.timeLeft, m.session.WPM(m.elapsed()))
	prompt := renderPrompt(m.session.Target(), m.session.Input(), m.width)
	return header + "\n" + prompt + "\n\n" + m.help.View(m.keys)
}

// Interrupted reports whether the player quit before the round ended.
func (m *Model) Interrupted() bool {
	return m.interrupted
}

// Report returns the final stats of the finished round.
func (m *Model) Report() model.Report {
	return m.session.Report()
}

// startClock begins the countdown on the first keystroke.
func (m *Model) startClock() {
	if m.phase != phaseIdle {
		return
	}
	m.phase = phaseRunning
	m.startedAt = time.Now()
}

func (m *Model) restart() {
	m.session.Restart()
	m.phase = phaseIdle
	m.startedAt = time.Time{}
	m.timeLeft = m.gameTime
}

// remaining returns the unrounded wall-clock seconds left in the
// round.
func (m *Model) remaining() float64 {
	return float64(m.gameTime) - time.Since(m.startedAt).Seconds()
}

func (m *Model) elapsed() float64 {
	if m.phase == phaseIdle {
		return 0
	}
	return time.Since(m.startedAt).Seconds()
}

// countdown rounds the remaining time for display. The round itself
// ends on the raw value, so the header may show zero for up to half a
// second before expiry.
func countdown(left float64) int {
	if left < 0 {
		return 0
	}
	return int(math.Round(left))
}
