package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"voidascendant/internal/app/clock"
	"voidascendant/internal/app/ports"
	"voidascendant/internal/app/profile"
	"voidascendant/internal/domain/colony"
)

type recordingNotifier struct {
	mu      sync.Mutex
	entries []colony.Entry
}

func (n *recordingNotifier) Notify(e colony.Entry) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = append(n.entries, e)
}

func (n *recordingNotifier) texts() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.entries))
	for _, e := range n.entries {
		out = append(out, e.Text)
	}
	return out
}

func (n *recordingNotifier) count(text string) int {
	c := 0
	for _, t := range n.texts() {
		if t == text {
			c++
		}
	}
	return c
}

// scriptedRandom replays values in order and then repeats the last one.
type scriptedRandom struct {
	values []float64
	i      int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.values) == 0 {
		return 0.99
	}
	v := r.values[min(r.i, len(r.values)-1)]
	r.i++
	return v
}

type reportedEvent struct {
	name  string
	props map[string]any
}

type recordingSink struct {
	events []reportedEvent
	err    error
}

func (s *recordingSink) Report(_ context.Context, name string, props map[string]any) error {
	s.events = append(s.events, reportedEvent{name: name, props: props})
	return s.err
}

type memoryStore struct {
	values map[string]string
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	return v, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

type countingMetrics struct {
	actions   map[ports.ActionKind]map[colony.ResultCode]int
	gameOvers []string
	failures  int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{actions: map[ports.ActionKind]map[colony.ResultCode]int{}}
}

func (m *countingMetrics) RecordAction(kind ports.ActionKind, code colony.ResultCode) {
	if m.actions[kind] == nil {
		m.actions[kind] = map[colony.ResultCode]int{}
	}
	m.actions[kind][code]++
}

func (m *countingMetrics) RecordGameOver(reason string) { m.gameOvers = append(m.gameOvers, reason) }

func (m *countingMetrics) RecordFailure() { m.failures++ }

type harness struct {
	ctrl     *Controller
	clock    *clock.Manual
	notifier *recordingNotifier
	random   *scriptedRandom
	sink     *recordingSink
	store    *memoryStore
	metrics  *countingMetrics
}

func newHarness(draws ...float64) harness {
	h := harness{
		clock:    clock.NewManual(),
		notifier: &recordingNotifier{},
		random:   &scriptedRandom{values: draws},
		sink:     &recordingSink{},
		store:    &memoryStore{values: map[string]string{}},
		metrics:  newCountingMetrics(),
	}
	h.ctrl = New(Config{TickUnit: time.Millisecond, AdvanceDayOnGather: false}, Deps{
		Scheduler: h.clock,
		Notifier:  h.notifier,
		Random:    h.random,
		Profile:   profile.UseCase{Store: h.store},
		Analytics: []ports.AnalyticsSink{h.sink},
		Metrics:   h.metrics,
	})
	return h
}

var errSinkDown = errors.New("sink down")
