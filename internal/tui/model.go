// Package tui is a hot-seat terminal renderer over a local domain.Session.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iamasit07/align4/internal/domain"
)

const (
	diskGlyph  = "●"
	winGlyph   = "◉"
	emptyGlyph = "·"
	cursorMark = "▼"
)

type Model struct {
	session *domain.Session
	keys    KeyMap
	help    help.Model

	cursor int
	notice string
	width  int
}

func New(session *domain.Session) Model {
	return Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		cursor:  session.Dimensions().Columns / 2,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < m.session.Dimensions().Columns-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Drop):
		m.notice = ""
		if _, err := m.session.Drop(m.cursor); err != nil {
			m.notice = m.describe(err)
		}

	case key.Matches(msg, m.keys.NewGame):
		m.notice = ""
		m.session.NewGame()
	}
	return m, nil
}

func (m Model) describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrColumnFull):
		return fmt.Sprintf("Column %d is full.", m.cursor+1)
	case errors.Is(err, domain.ErrGameOver):
		return "Game over. Press n for a new game."
	default:
		return err.Error()
	}
}

func (m Model) View() string {
	engine := m.session.ActiveEngine()
	result := engine.Result()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("align4 - game %d", m.session.GameNumber())))
	b.WriteString("\n\n")
	b.WriteString(m.renderCursor(engine))
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(m.renderBoard(engine.Board(), result)))
	b.WriteString("\n")
	b.WriteString(renderStatus(engine, result))
	b.WriteString("\n")
	b.WriteString(renderTally(m.session.Tally()))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderCursor lines the marker up with the board's inner columns: border
// plus one cell of padding, then two characters per column.
func (m Model) renderCursor(engine *domain.Engine) string {
	mark := cursorMark
	if !engine.IsFinished() {
		mark = playerStyle(engine.CurrentPlayer()).Render(cursorMark)
	}
	return strings.Repeat(" ", 2+2*m.cursor) + mark
}

func (m Model) renderBoard(board *domain.Board, result domain.GameResult) string {
	dims := board.Dimensions()
	onLine := make(map[domain.Coord]bool, len(result.Line))
	for _, c := range result.Line {
		onLine[c] = true
	}

	var rows []string
	for row := dims.Rows - 1; row >= 0; row-- {
		cells := make([]string, 0, dims.Columns)
		for col := 0; col < dims.Columns; col++ {
			cell, _ := board.CellAt(col, row)
			cells = append(cells, renderCell(cell, onLine[domain.Coord{Column: col, Row: row}]))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	labels := make([]string, 0, dims.Columns)
	for col := 0; col < dims.Columns; col++ {
		labels = append(labels, fmt.Sprintf("%d", (col+1)%10))
	}
	rows = append(rows, emptyStyle.Render(strings.Join(labels, " ")))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(cell domain.Cell, winning bool) string {
	if !cell.IsPlayer() {
		return emptyStyle.Render(emptyGlyph)
	}
	if winning {
		return playerStyle(cell).Bold(true).Render(winGlyph)
	}
	return playerStyle(cell).Render(diskGlyph)
}

func renderStatus(engine *domain.Engine, result domain.GameResult) string {
	switch result.Status {
	case domain.StatusWon:
		return statusStyle.Foreground(playerColor(result.Winner)).Render(result.Winner.String() + " wins!")
	case domain.StatusDraw:
		return statusStyle.Render("Draw. The board is full.")
	default:
		p := engine.CurrentPlayer()
		return statusStyle.Foreground(playerColor(p)).Render(p.String() + " to move")
	}
}

func renderTally(t domain.Tally) string {
	return fmt.Sprintf("%s %d  %s %d  Draws %d",
		playerStyle(domain.PlayerA).Render(domain.PlayerA.String()), t.PlayerA,
		playerStyle(domain.PlayerB).Render(domain.PlayerB.String()), t.PlayerB,
		t.Draw)
}
