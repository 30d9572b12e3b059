package session

import (
	"voidascendant/internal/app/ports"
	"voidascendant/internal/domain/colony"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const anyGeneration = -1

// tick runs one periodic step. Runs from a superseded registration, and all
// runs while paused or over, are skipped.
func (c *Controller) tick(gen int, kind ports.ActionKind, step func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if (gen != anyGeneration && gen != c.generation) || c.state.TicksFrozen() {
		c.recordAction(kind, colony.ResultTickSkipped)
		return
	}
	step()
	c.recordAction(kind, colony.ResultOK)
}

func (c *Controller) solarLocked() {
	if produced := colony.SolarTick(&c.state); produced > 0 {
		hlog.CtxDebugf(c.baseCtx, "solar generated %d energy, now %d/%d", produced, c.state.Ledger.Energy, c.state.Ledger.EnergyCap)
	}
}

func (c *Controller) drainLocked() {
	if colony.DrainTick(&c.state) {
		c.gameOverLocked(c.baseCtx, colony.MsgEnergyDepleted)
	}
}

func (c *Controller) hungerLocked() {
	if colony.HungerTick(&c.state) {
		c.gameOverLocked(c.baseCtx, colony.MsgStarved)
		return
	}
	hlog.CtxDebugf(c.baseCtx, "day %d begins, organics left %d", c.state.Days, c.state.Ledger.Organics)
}

// SolarTick, DrainTick and HungerTick run a single step immediately, subject to
// the same pause and game-over gating as scheduled runs.
func (c *Controller) SolarTick() { c.tick(anyGeneration, ports.ActionSolar, c.solarLocked) }

func (c *Controller) DrainTick() { c.tick(anyGeneration, ports.ActionDrain, c.drainLocked) }

func (c *Controller) HungerTick() { c.tick(anyGeneration, ports.ActionHunger, c.hungerLocked) }
