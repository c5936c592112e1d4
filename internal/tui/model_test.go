package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/align4/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := domain.NewSession(domain.DefaultDimensions())
	require.NoError(t, err)
	return New(s)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyNew   = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorStaysOnBoard(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, 3, m.cursor)

	m = press(t, m, keyLeft, keyLeft, keyLeft, keyLeft, keyLeft)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, keyRight, runes("l"), keyRight, keyRight, keyRight, keyRight, keyRight, keyRight)
	assert.Equal(t, 6, m.cursor)

	m = press(t, m, runes("h"))
	assert.Equal(t, 5, m.cursor)
}

func TestDropPlaysUnderCursor(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyLeft, keyEnter)

	engine := m.session.ActiveEngine()
	require.Equal(t, 1, engine.MoveCount())
	cell, err := engine.Board().CellAt(2, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.PlayerA, cell)
	assert.Contains(t, m.View(), "Yellow to move")
}

func TestWinDrawsStatusAndTally(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Red to move")

	// Red stacks column 4, Yellow answers in column 5
	for i := 0; i < 3; i++ {
		m = press(t, m, keyEnter, keyRight, keyEnter, keyLeft)
	}
	m = press(t, m, keyEnter)

	v := m.View()
	assert.Contains(t, v, "Red wins!")
	assert.Contains(t, v, "Red 1")
	assert.Equal(t, 4, strings.Count(v, winGlyph))

	m = press(t, m, keyEnter)
	assert.Contains(t, m.View(), "Game over")

	m = press(t, m, keyNew)
	v = m.View()
	assert.Contains(t, v, "game 2")
	assert.Contains(t, v, "Yellow to move")
	assert.NotContains(t, v, "Game over")
}

func TestFullColumnNotice(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < domain.Rows; i++ {
		m = press(t, m, keyEnter)
	}
	require.Equal(t, domain.Rows, m.session.ActiveEngine().MoveCount())

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Contains(t, m.View(), "Column 4 is full.")
	assert.Equal(t, domain.Rows, m.session.ActiveEngine().MoveCount())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyQuit)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewRendersEveryRow(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	v := m.View()
	assert.Equal(t, domain.Rows*domain.Columns, strings.Count(v, emptyGlyph))
	assert.Contains(t, v, "1 2 3 4 5 6 7")
	assert.Contains(t, v, "new game")
}
