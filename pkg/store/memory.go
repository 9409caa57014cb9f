package store

import (
	"context"
	"sync"
)

// MemoryPersistence keeps the stored value in process. Used for
// --ephemeral runs and tests.
type MemoryPersistence struct {
	codec
	mu   sync.Mutex
	data map[string][]byte
}

var _ Persistence = (*MemoryPersistence)(nil)

// NewMemory returns an empty in-process store.
func NewMemory() *MemoryPersistence {
	p := &MemoryPersistence{data: make(map[string][]byte)}
	p.codec = codec{kv: p}
	return p
}

// Raw returns the stored bytes for key.
func (p *MemoryPersistence) Raw(key string) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.data[key]
	return v, ok
}

// SetRaw replaces the stored bytes for key.
func (p *MemoryPersistence) SetRaw(key string, value []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[key] = append([]byte(nil), value...)
}

func (p *MemoryPersistence) read(_ context.Context, key string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.data[key]
	if !ok {
		return nil, ErrNoData
	}
	return append([]byte(nil), v...), nil
}

func (p *MemoryPersistence) write(_ context.Context, key string, value []byte) error {
	p.SetRaw(key, value)
	return nil
}

// Close is a no-op.
func (p *MemoryPersistence) Close() error {
	return nil
}
