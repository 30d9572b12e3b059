package session

import (
	"voidascendant/internal/domain/colony"
)

type Phase string

const (
	PhasePreGame       Phase = "pre_game"
	PhaseRunning       Phase = "running"
	PhasePaused        Phase = "paused"
	PhaseGameOver      Phase = "game_over"
	PhaseStageComplete Phase = "stage_complete"
)

type Result struct {
	Code    colony.ResultCode `json:"result_code"`
	Entries []colony.Entry    `json:"entries"`
	State   colony.State      `json:"state"`
}

type CraftStatus struct {
	colony.CraftDefinition
	Owned      bool `json:"owned"`
	Affordable bool `json:"affordable"`
	Unlocked   bool `json:"unlocked"`
}

type Snapshot struct {
	SessionID string        `json:"session_id"`
	Phase     Phase         `json:"phase"`
	State     colony.State  `json:"state"`
	Crafts    []CraftStatus `json:"crafts"`
}
