package memory

import (
	"sync"
	"time"
)

type AnalyticsEvent struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Store struct {
	mu     sync.RWMutex
	values map[string]string
	events []AnalyticsEvent
}

func NewStore() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

func (s *Store) Seed(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}
