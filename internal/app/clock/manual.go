package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual fires tasks only when Advance is called. Due tasks run in time order;
// ties run in registration order.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	seq       int
	period    time.Duration
	next      time.Duration
	task      Task
	cancelled bool
	owner     *Manual
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Every(period time.Duration, task Task) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if period <= 0 {
		period = time.Nanosecond
	}
	m.seq++
	t := &manualTask{seq: m.seq, period: period, next: m.now + period, task: task, owner: m}
	m.tasks = append(m.tasks, t)
	return t
}

func (t *manualTask) Cancel() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.cancelled = true
}

// Elapsed is the total virtual time advanced so far.
func (m *Manual) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Active counts registered tasks that are not cancelled.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, running every task that falls due.
// Tasks run without the scheduler lock held, so they may register or cancel.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.now = target
			m.compactLocked()
			m.mu.Unlock()
			return
		}
		m.now = next.next
		next.next += next.period
		run := next.task
		m.mu.Unlock()

		run()
	}
}

func (m *Manual) nextDueLocked(target time.Duration) *manualTask {
	var due []*manualTask
	for _, t := range m.tasks {
		if !t.cancelled && t.next <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].next != due[j].next {
			return due[i].next < due[j].next
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

func (m *Manual) compactLocked() {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
}
