package memory

import (
	"context"

	"voidascendant/internal/app/ports"
)

type KeyValueRepo struct {
	store *Store
}

func NewKeyValueRepo(store *Store) KeyValueRepo {
	return KeyValueRepo{store: store}
}

func (r KeyValueRepo) Get(_ context.Context, key string) (string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	v, ok := r.store.values[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	return v, nil
}

func (r KeyValueRepo) Set(_ context.Context, key, value string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.values[key] = value
	return nil
}

func (r KeyValueRepo) Remove(_ context.Context, key string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.values, key)
	return nil
}
