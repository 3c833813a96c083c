package store

import (
	"context"
	"sync"

	"color-chooser/internal/colors"
)

// snapshot is an immutable record set; a seed replaces it wholesale.
type snapshot struct {
	records []colors.Record
	byName  map[string]int
}

func newSnapshot(records []colors.Record) *snapshot {
	s := &snapshot{
		records: records,
		byName:  make(map[string]int, len(records)),
	}
	for i, r := range records {
		s.byName[r.Name] = i
	}
	return s
}

// MemoryStore holds records in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *snapshot
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store. Call Seed before serving.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snap: newSnapshot(nil)}
}

func (m *MemoryStore) Seed(ctx context.Context, records []colors.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	valid, err := colors.Validate(records)
	if err != nil {
		return err
	}

	next := newSnapshot(valid)

	m.mu.Lock()
	m.snap = next
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) FindAll(ctx context.Context) ([]colors.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]colors.Record, len(m.snap.records))
	copy(out, m.snap.records)
	return out, nil
}

func (m *MemoryStore) FindByName(ctx context.Context, name string) (colors.Record, error) {
	if err := ctx.Err(); err != nil {
		return colors.Record{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.snap.byName[name]
	if !ok {
		return colors.Record{}, colors.ErrNotFound
	}
	return m.snap.records[i], nil
}

func (m *MemoryStore) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snap.records), nil
}
