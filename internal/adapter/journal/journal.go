package journal

import (
	"sync"
	"time"

	"voidascendant/internal/domain/colony"
)

const DefaultCapacity = 200

type Record struct {
	Seq      uint64          `json:"seq"`
	Text     string          `json:"text"`
	Severity colony.Severity `json:"severity"`
	At       time.Time       `json:"at"`
}

// Journal is the player-facing message log. It keeps the newest Capacity
// records; sequence numbers keep increasing across Clear.
type Journal struct {
	mu       sync.RWMutex
	capacity int
	seq      uint64
	records  []Record
	now      func() time.Time
}

func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{capacity: capacity, now: time.Now}
}

func (j *Journal) Notify(entry colony.Entry) {
	if entry.Severity == "" {
		entry.Severity = colony.SeverityDefault
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.seq++
	j.records = append(j.records, Record{Seq: j.seq, Text: entry.Text, Severity: entry.Severity, At: j.now()})
	if over := len(j.records) - j.capacity; over > 0 {
		j.records = append(j.records[:0:0], j.records[over:]...)
	}
}

// Since returns records with Seq > after, oldest first, at most limit of the
// newest ones when limit > 0.
func (j *Journal) Since(after uint64, limit int) []Record {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Record, 0, len(j.records))
	for _, r := range j.records {
		if r.Seq > after {
			out = append(out, r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = nil
}
