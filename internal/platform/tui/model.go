package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/agegechkori/2048/internal/board"
	"github.com/agegechkori/2048/internal/tiles"
)

// Recorder persists finished sessions. *storage.Store satisfies it.
type Recorder interface {
	SaveScore(variant string, score, maxTile int) (int64, error)
	SaveSnapshot(variant string, b board.Board, score int) (int64, error)
}

// Model is the Bubble Tea model for an interactive session.
type Model struct {
	session  *Session
	recorder Recorder
	logger   *log.Logger
	keys     KeyMap
	help     help.Model

	status    string
	statusSeq int
	full      bool // Last placement found no empty cell
	saved     bool // Score recorded for this session
	quitting  bool
	width     int
	height    int
}

// NewModel creates a model around an existing session.
// recorder may be nil, in which case nothing is persisted.
func NewModel(session *Session, recorder Recorder, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		session:  session,
		recorder: recorder,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.record()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m.setStatus(m.saveSnapshot())
	}

	dir, ok := m.keys.Direction(msg)
	if !ok {
		return m, nil
	}

	moved, err := m.session.Move(dir)
	switch {
	case errors.Is(err, tiles.ErrNoEmptyCell):
		m.full = true
		return m.setStatus("No empty cell for a new tile")
	case err != nil:
		m.logger.Error("move failed", "dir", dir, "err", err)
		return m.setStatus(err.Error())
	case !moved:
		return m.setStatus(fmt.Sprintf("Nothing moves %s", dir))
	}

	m.full = false
	return m, nil
}

// setStatus shows a status line and schedules its removal.
func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	m.statusSeq++
	return m, clearStatusCmd(m.statusSeq)
}

// record saves the final score once. Best effort: failures are logged.
func (m *Model) record() {
	if m.saved || m.recorder == nil || m.session.Moves() == 0 {
		return
	}
	m.saved = true

	b := m.session.Board()
	if _, err := m.recorder.SaveScore(m.session.Variant(), m.session.Score(), board.MaxTile(b)); err != nil {
		m.logger.Warn("could not save score", "err", err)
	}
	if _, err := m.recorder.SaveSnapshot(m.session.Variant(), b, m.session.Score()); err != nil {
		m.logger.Warn("could not save snapshot", "err", err)
	}
}

// saveSnapshot stores the current board without ending the session.
func (m Model) saveSnapshot() string {
	if m.recorder == nil {
		return "No database, snapshot not saved"
	}
	id, err := m.recorder.SaveSnapshot(m.session.Variant(), m.session.Board(), m.session.Score())
	if err != nil {
		m.logger.Warn("could not save snapshot", "err", err)
		return "Snapshot failed"
	}
	return fmt.Sprintf("Snapshot #%d saved", id)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	hudStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

	b := m.session.Board()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.session.Variant()))
	sb.WriteString("\n\n")
	sb.WriteString(hudStyle.Render(fmt.Sprintf("Score: %d   Max: %d   Moves: %d",
		m.session.Score(), board.MaxTile(b), m.session.Moves())))
	sb.WriteString("\n")
	sb.WriteString(RenderBoard(b))
	sb.WriteString("\n")
	switch {
	case m.status != "":
		sb.WriteString(statusStyle.Render(m.status))
	case m.full:
		sb.WriteString(statusStyle.Render("Board is full"))
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return sb.String()
}

// Score returns the current session score.
func (m Model) Score() int {
	return m.session.Score()
}

// Run starts the Bubble Tea program for the session.
func Run(session *Session, recorder Recorder, logger *log.Logger) error {
	model := NewModel(session, recorder, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
