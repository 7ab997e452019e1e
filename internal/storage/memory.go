package storage

// MemoryStore is an in-memory Store for tests. Writes counts distinct
// mutations, letting tests assert that identical re-saves are no-ops.
type MemoryStore struct {
	values map[string]string

	// Writes increments only when Set actually changes stored state.
	Writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	if current, ok := m.values[key]; ok && current == value {
		return nil
	}
	m.values[key] = value
	m.Writes++
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	delete(m.values, key)
	return nil
}
