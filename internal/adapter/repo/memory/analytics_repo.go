package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AnalyticsRepo struct {
	store *Store
	now   func() time.Time
}

func NewAnalyticsRepo(store *Store) AnalyticsRepo {
	return AnalyticsRepo{store: store, now: time.Now}
}

func (r AnalyticsRepo) Report(_ context.Context, name string, properties map[string]any) error {
	props := make(map[string]any, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = append(r.store.events, AnalyticsEvent{
		ID:         uuid.NewString(),
		Name:       name,
		Properties: props,
		OccurredAt: r.now(),
	})
	return nil
}

// List returns the newest events first.
func (r AnalyticsRepo) List(_ context.Context, limit int) ([]AnalyticsEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]AnalyticsEvent, 0, len(r.store.events))
	for i := len(r.store.events) - 1; i >= 0; i-- {
		out = append(out, r.store.events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
