package inmemory

import (
	"maps"
	"sync"

	"voidascendant/internal/app/ports"
	"voidascendant/internal/domain/colony"
)

type Snapshot struct {
	ActionTotal    uint64                       `json:"action_total"`
	ActionAccepted uint64                       `json:"action_accepted"`
	ActionRejected uint64                       `json:"action_rejected"`
	ActionFailure  uint64                       `json:"action_failure"`
	TicksSkipped   uint64                       `json:"ticks_skipped"`
	ByKind         map[string]map[string]uint64 `json:"by_kind"`
	GameOvers      map[string]uint64            `json:"game_overs"`
}

type Recorder struct {
	mu        sync.Mutex
	accepted  uint64
	rejected  uint64
	failure   uint64
	skipped   uint64
	byKind    map[string]map[string]uint64
	gameOvers map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byKind:    map[string]map[string]uint64{},
		gameOvers: map[string]uint64{},
	}
}

func (r *Recorder) RecordAction(kind ports.ActionKind, resultCode colony.ResultCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch resultCode {
	case colony.ResultRejected:
		r.rejected++
	case colony.ResultTickSkipped:
		r.skipped++
	default:
		r.accepted++
	}
	codes, ok := r.byKind[string(kind)]
	if !ok {
		codes = map[string]uint64{}
		r.byKind[string(kind)] = codes
	}
	codes[string(resultCode)]++
}

func (r *Recorder) RecordGameOver(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gameOvers[reason]++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionAccepted: r.accepted,
		ActionRejected: r.rejected,
		ActionFailure:  r.failure,
		TicksSkipped:   r.skipped,
		ActionTotal:    r.accepted + r.rejected + r.failure,
		ByKind:         make(map[string]map[string]uint64, len(r.byKind)),
		GameOvers:      maps.Clone(r.gameOvers),
	}
	for k, v := range r.byKind {
		out.ByKind[k] = maps.Clone(v)
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
