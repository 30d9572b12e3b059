// Package clock provides repeating task scheduling with cancel handles, so the
// simulation can run on wall-clock time or be stepped by hand in tests.
package clock

import "time"

type Task func()

type Handle interface {
	Cancel()
}

type Scheduler interface {
	// Every registers task to run once per period until the handle is cancelled.
	Every(period time.Duration, task Task) Handle
}
