package ports

import "voidascendant/internal/domain/colony"

type ActionKind string

const (
	ActionGather ActionKind = "gather"
	ActionCraft  ActionKind = "craft"
	ActionSolar  ActionKind = "solar_tick"
	ActionDrain  ActionKind = "drain_tick"
	ActionHunger ActionKind = "hunger_tick"
)

type ActionMetrics interface {
	RecordAction(kind ActionKind, resultCode colony.ResultCode)
	RecordGameOver(reason string)
	RecordFailure()
}
