package game

import (
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/align4/internal/domain"
	"github.com/iamasit07/align4/pkg/uid"
	"github.com/rs/zerolog/log"
)

// Manager keeps the open tables. Tables share nothing with each other; the
// manager lock only guards the map.
type Manager struct {
	tables    map[string]*Table // tableID → Table
	dims      domain.Dimensions
	maxTables int
	now       func() time.Time
	mu        sync.RWMutex
}

// TableSummary is the listing view of a table.
type TableSummary struct {
	TableID      string       `json:"tableId"`
	GameNumber   int          `json:"gameNumber"`
	MoveCount    int          `json:"moveCount"`
	Tally        domain.Tally `json:"tally"`
	CreatedAt    time.Time    `json:"createdAt"`
	LastActivity time.Time    `json:"lastActivity"`
}

func NewManager(dims domain.Dimensions, maxTables int) (*Manager, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		tables:    make(map[string]*Table),
		dims:      dims,
		maxTables: maxTables,
		now:       time.Now,
	}, nil
}

func (m *Manager) Dimensions() domain.Dimensions {
	return m.dims
}

func (m *Manager) CreateTable() (*Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxTables > 0 && len(m.tables) >= m.maxTables {
		return nil, ErrTooManyTables
	}

	table, err := newTable(uid.GenerateTableID(), m.dims, m.now)
	if err != nil {
		return nil, err
	}
	m.tables[table.ID] = table

	log.Info().Str("component", "table").Str("table_id", table.ID).
		Int("open_tables", len(m.tables)).Msg("created table")
	return table, nil
}

func (m *Manager) GetTable(tableID string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	table, exists := m.tables[tableID]
	if !exists {
		return nil, ErrTableNotFound
	}
	return table, nil
}

// Touch marks the table as in use, e.g. while a renderer stays connected.
func (m *Manager) Touch(tableID string) error {
	table, err := m.GetTable(tableID)
	if err != nil {
		return err
	}
	table.touch()
	return nil
}

func (m *Manager) RemoveTable(tableID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.removeTableLocked(tableID)
}

// removeTableLocked removes the table without acquiring the lock (caller must hold it)
func (m *Manager) removeTableLocked(tableID string) error {
	table, exists := m.tables[tableID]
	if !exists {
		return ErrTableNotFound
	}

	log.Info().Str("component", "table").Str("table_id", tableID).Msg("removing table")
	delete(m.tables, tableID)
	table.close()
	return nil
}

// CleanupIdle removes every table without activity for longer than maxIdle
// and returns how many were removed.
func (m *Manager) CleanupIdle(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	count := 0
	for tableID, table := range m.tables {
		if now.Sub(table.LastActivity()) > maxIdle {
			m.removeTableLocked(tableID)
			count++
		}
	}

	if count > 0 {
		log.Info().Str("component", "table").Int("removed", count).
			Int("open_tables", len(m.tables)).Msg("memory cleanup removed idle tables")
	}
	return count
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}

// ListTables returns a summary per open table, most recently active first.
func (m *Manager) ListTables() []TableSummary {
	m.mu.RLock()
	tables := make([]*Table, 0, len(m.tables))
	for _, t := range m.tables {
		tables = append(tables, t)
	}
	m.mu.RUnlock()

	summaries := make([]TableSummary, 0, len(tables))
	for _, t := range tables {
		snap := t.Snapshot()
		summaries = append(summaries, TableSummary{
			TableID:      t.ID,
			GameNumber:   snap.GameNumber,
			MoveCount:    snap.MoveCount,
			Tally:        snap.Tally,
			CreatedAt:    t.CreatedAt,
			LastActivity: t.LastActivity(),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].LastActivity.Equal(summaries[j].LastActivity) {
			return summaries[i].TableID < summaries[j].TableID
		}
		return summaries[i].LastActivity.After(summaries[j].LastActivity)
	})
	return summaries
}
