package memory

import (
	"context"
	"maps"
	"sync"
)

// TxManager serializes transactions and restores the key/value snapshot when
// fn fails. Analytics events are append-only and not rolled back.
type TxManager struct {
	store *Store
	mu    *sync.Mutex
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store, mu: &sync.Mutex{}}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.store.mu.RLock()
	snapshot := maps.Clone(t.store.values)
	t.store.mu.RUnlock()

	if err := fn(ctx); err != nil {
		t.store.mu.Lock()
		t.store.values = snapshot
		t.store.mu.Unlock()
		return err
	}
	return nil
}
