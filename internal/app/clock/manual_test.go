package clock

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestManualFiresInTimeOrder(t *testing.T) {
	m := NewManual()
	var got []string
	m.Every(1000*time.Millisecond, func() { got = append(got, "solar") })
	m.Every(5000*time.Millisecond, func() { got = append(got, "drain") })
	m.Every(10000*time.Millisecond, func() { got = append(got, "hunger") })

	m.Advance(10 * time.Second)

	want := []string{
		"solar", "solar", "solar", "solar", "solar", "drain",
		"solar", "solar", "solar", "solar", "solar", "drain", "hunger",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fire order mismatch (-want +got):\n%s", diff)
	}
	if m.Elapsed() != 10*time.Second {
		t.Fatalf("expected elapsed 10s, got %s", m.Elapsed())
	}
}

func TestManualPartialAdvanceAccumulates(t *testing.T) {
	m := NewManual()
	runs := 0
	m.Every(time.Second, func() { runs++ })
	m.Advance(600 * time.Millisecond)
	if runs != 0 {
		t.Fatalf("expected no run before period, got %d", runs)
	}
	m.Advance(600 * time.Millisecond)
	if runs != 1 {
		t.Fatalf("expected one run at 1.2s, got %d", runs)
	}
}

func TestManualCancelStopsTask(t *testing.T) {
	m := NewManual()
	runs := 0
	h := m.Every(time.Second, func() { runs++ })
	m.Advance(2 * time.Second)
	h.Cancel()
	m.Advance(5 * time.Second)
	if runs != 2 {
		t.Fatalf("expected 2 runs before cancel, got %d", runs)
	}
	if m.Active() != 0 {
		t.Fatalf("expected no active tasks, got %d", m.Active())
	}
}

func TestManualTaskMayCancelItself(t *testing.T) {
	m := NewManual()
	runs := 0
	var h Handle
	h = m.Every(time.Second, func() {
		runs++
		h.Cancel()
	})
	m.Advance(3 * time.Second)
	if runs != 1 {
		t.Fatalf("expected a single run, got %d", runs)
	}
}
