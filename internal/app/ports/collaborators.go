package ports

import (
	"context"

	"voidascendant/internal/domain/colony"
)

// Notifier receives every player-facing log line.
type Notifier interface {
	Notify(entry colony.Entry)
}

// KeyValueStore persists the handful of flags that outlive a session.
// Get reports ErrNotFound for absent keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// TxManager runs fn atomically against the KeyValueStore; stores join the
// transaction through ctx.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AnalyticsSink is best-effort; callers log and drop its errors.
type AnalyticsSink interface {
	Report(ctx context.Context, name string, properties map[string]any) error
}

type RandomSource interface {
	Float64() float64
}

const (
	KeyIntroShown = "voidascendant_intro_shown"
	KeyPlayerName = "voidascendant_player_name"
	KeyDebugMode  = "voidascendant_debug_mode"
)
