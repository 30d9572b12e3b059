package clock

import (
	"context"
	"sync"
	"time"
)

// Ticker runs each task on its own time.Ticker goroutine. Tasks are expected to
// serialise themselves; Ticker only guarantees a task never overlaps itself.
type Ticker struct {
	ctx context.Context
}

// NewTicker binds task lifetimes to ctx: cancelling ctx stops every task.
func NewTicker(ctx context.Context) *Ticker {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Ticker{ctx: ctx}
}

type tickerHandle struct {
	once sync.Once
	stop chan struct{}
}

func (t *Ticker) Every(period time.Duration, task Task) Handle {
	h := &tickerHandle{stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-t.ctx.Done():
				return
			case <-h.stop:
				return
			case <-ticker.C:
				select {
				case <-h.stop:
					return
				default:
				}
				task()
			}
		}
	}()
	return h
}

// Cancel stops future runs. It does not wait for a run already in flight, so
// it is safe to call while holding a lock the task also takes.
func (h *tickerHandle) Cancel() {
	h.once.Do(func() { close(h.stop) })
}
