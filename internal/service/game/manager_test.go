package game

import (
	"sync"
	"testing"
	"time"

	"github.com/iamasit07/align4/internal/domain"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestManager(t *testing.T, maxTables int) (*Manager, *fakeClock) {
	t.Helper()
	m, err := NewManager(domain.DefaultDimensions(), maxTables)
	require.NoError(t, err)
	clock := &fakeClock{now: time.Date(2025, 1, 27, 12, 0, 0, 0, time.UTC)}
	m.now = clock.Now
	return m, clock
}

func TestManagerLifecycle(t *testing.T) {
	m, _ := newTestManager(t, 10)

	table, err := m.CreateTable()
	require.NoError(t, err)
	require.Equal(t, 1, m.Count())

	got, err := m.GetTable(table.ID)
	require.NoError(t, err)
	require.Same(t, table, got)

	require.NoError(t, m.RemoveTable(table.ID))
	_, err = m.GetTable(table.ID)
	require.ErrorIs(t, err, ErrTableNotFound)
	require.ErrorIs(t, m.RemoveTable(table.ID), ErrTableNotFound)

	select {
	case <-table.Done():
	default:
		t.Fatal("removed table should be closed")
	}
	_, _, err = table.Drop(0)
	require.ErrorIs(t, err, ErrTableClosed)
	_, err = table.NewGame()
	require.ErrorIs(t, err, ErrTableClosed)
}

func TestManagerMaxTables(t *testing.T) {
	m, _ := newTestManager(t, 2)

	_, err := m.CreateTable()
	require.NoError(t, err)
	second, err := m.CreateTable()
	require.NoError(t, err)

	_, err = m.CreateTable()
	require.ErrorIs(t, err, ErrTooManyTables)

	require.NoError(t, m.RemoveTable(second.ID))
	_, err = m.CreateTable()
	require.NoError(t, err)
}

func TestManagerCleanupIdle(t *testing.T) {
	m, clock := newTestManager(t, 10)

	stale, err := m.CreateTable()
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)

	busy, err := m.CreateTable()
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	_, _, err = busy.Drop(3)
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	removed := m.CleanupIdle(time.Hour)
	require.Equal(t, 1, removed)

	_, err = m.GetTable(stale.ID)
	require.ErrorIs(t, err, ErrTableNotFound)
	_, err = m.GetTable(busy.ID)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	require.NoError(t, m.Touch(busy.ID))
	require.Equal(t, 0, m.CleanupIdle(time.Hour))
	require.ErrorIs(t, m.Touch(stale.ID), ErrTableNotFound)
}

func TestManagerListTables(t *testing.T) {
	m, clock := newTestManager(t, 10)

	first, err := m.CreateTable()
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := m.CreateTable()
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, _, err = first.Drop(0)
	require.NoError(t, err)

	list := m.ListTables()
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].TableID)
	require.Equal(t, 1, list[0].MoveCount)
	require.Equal(t, second.ID, list[1].TableID)
}

func TestNewManagerRejectsBadDimensions(t *testing.T) {
	_, err := NewManager(domain.Dimensions{Columns: 1, Rows: 1, WinLength: 4}, 1)
	require.ErrorIs(t, err, domain.ErrInvalidDimensions)
}
