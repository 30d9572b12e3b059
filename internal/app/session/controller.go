package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"voidascendant/internal/app/clock"
	"voidascendant/internal/app/ports"
	"voidascendant/internal/app/profile"
	"voidascendant/internal/domain/colony"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type Config struct {
	// TickUnit scales the catalog tick periods (1000/5000/10000 units).
	TickUnit time.Duration
	// AdvanceDayOnGather moves the day counter on every counted gather in
	// addition to hunger ticks.
	AdvanceDayOnGather bool
}

func DefaultConfig() Config {
	return Config{TickUnit: time.Millisecond, AdvanceDayOnGather: true}
}

// Deps are the collaborators of a Controller. Every field is optional except
// Scheduler; nil collaborators are replaced by no-ops.
type Deps struct {
	Scheduler clock.Scheduler
	Notifier  ports.Notifier
	Random    ports.RandomSource
	Profile   profile.UseCase
	Analytics []ports.AnalyticsSink
	Metrics   ports.ActionMetrics
}

// Controller owns one playthrough. Actions and ticks run to completion under
// mu, one at a time.
type Controller struct {
	mu        sync.Mutex
	cfg       Config
	deps      Deps
	state     colony.State
	sessionID string
	started   bool
	baseCtx   context.Context

	handles    []clock.Handle
	generation int
}

func New(cfg Config, deps Deps) *Controller {
	if cfg.TickUnit <= 0 {
		cfg.TickUnit = time.Millisecond
	}
	if deps.Scheduler == nil {
		deps.Scheduler = clock.NewManual()
	}
	if deps.Notifier == nil {
		deps.Notifier = discardNotifier{}
	}
	c := &Controller{cfg: cfg, deps: deps, baseCtx: context.Background()}
	c.resetLocked()
	return c
}

func (c *Controller) resetLocked() {
	c.state = colony.NewState()
	c.state.Paused = true
	c.sessionID = uuid.NewString()
	c.started = false
}

// Start resumes the session and (re)registers the three periodic tasks,
// dropping any registered by an earlier Start.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.baseCtx = context.WithoutCancel(ctx)
	c.state.Paused = false
	c.started = true
	c.cancelTasksLocked()
	c.generation++
	gen := c.generation
	unit := c.cfg.TickUnit
	c.handles = []clock.Handle{
		c.deps.Scheduler.Every(colony.SolarTickUnits*unit, func() { c.tick(gen, ports.ActionSolar, c.solarLocked) }),
		c.deps.Scheduler.Every(colony.DrainTickUnits*unit, func() { c.tick(gen, ports.ActionDrain, c.drainLocked) }),
		c.deps.Scheduler.Every(colony.HungerTickUnits*unit, func() { c.tick(gen, ports.ActionHunger, c.hungerLocked) }),
	}
	hlog.CtxInfof(ctx, "session %s started, tick unit %s", c.sessionID, unit)

	c.notifyLocked(colony.Message(c.welcomeLocked(ctx)))
}

func (c *Controller) welcomeLocked(ctx context.Context) string {
	name, err := c.deps.Profile.PlayerName(ctx)
	if err != nil {
		hlog.CtxWarnf(ctx, "load player name: %v", err)
	}
	if name == "" {
		return colony.MsgWelcome
	}
	return fmt.Sprintf("%s! %s", name, colony.MsgWelcome)
}

func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Paused = true
}

func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Paused = false
}

// Stop cancels every registered task without touching game state.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelTasksLocked()
}

func (c *Controller) cancelTasksLocked() {
	for _, h := range c.handles {
		h.Cancel()
	}
	c.handles = nil
	// stale runs already past the scheduler are dropped by the generation check
	c.generation++
}

// Reset stops the clock, forgets the intro and player name, and starts a fresh
// paused session.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelTasksLocked()
	c.resetLocked()
	hlog.CtxInfof(ctx, "session reset, new session %s", c.sessionID)
	if err := c.deps.Profile.Forget(ctx); err != nil {
		return fmt.Errorf("forget profile: %w", err)
	}
	return nil
}

func (c *Controller) Gather(ctx context.Context, resource string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out, err := colony.Gather(&c.state, colony.Resource(resource), colony.GatherOptions{
		Draw:       c.drawFunc(),
		AdvanceDay: c.cfg.AdvanceDayOnGather,
	})
	if err != nil {
		c.recordFailure()
		return Result{}, err
	}
	c.notifyLocked(out.Entries...)
	c.recordAction(ports.ActionGather, out.Code)
	return Result{Code: out.Code, Entries: out.Entries, State: c.state.Clone()}, nil
}

func (c *Controller) drawFunc() func() float64 {
	if c.deps.Random == nil {
		return nil
	}
	return c.deps.Random.Float64
}

// Craft buys a catalog entry. Prerequisites are deliberately not enforced;
// callers that want gating check HasPrereq first.
func (c *Controller) Craft(ctx context.Context, id string) (Result, error) {
	def, ok := colony.LookupCraft(colony.CraftID(id))
	if !ok {
		c.recordFailure()
		return Result{}, fmt.Errorf("%w: %q", colony.ErrUnknownCraft, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	out := colony.Craft(&c.state, def)
	c.notifyLocked(out.Entries...)
	c.recordAction(ports.ActionCraft, out.Code)
	if out.Code == colony.ResultOK {
		hlog.CtxInfof(ctx, "session %s crafted %s", c.sessionID, def.ID)
	}
	if out.Code == colony.ResultOK && c.state.StageComplete {
		hlog.CtxInfof(ctx, "session %s completed stage 1 on day %d", c.sessionID, c.state.Days)
	}
	return Result{Code: out.Code, Entries: out.Entries, State: c.state.Clone()}, nil
}

func (c *Controller) HasPrereq(id string) (bool, error) {
	def, ok := colony.LookupCraft(colony.CraftID(id))
	if !ok {
		return false, fmt.Errorf("%w: %q", colony.ErrUnknownCraft, id)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.HasPrereq(def), nil
}

func (c *Controller) CanAfford(id string) (bool, error) {
	def, ok := colony.LookupCraft(colony.CraftID(id))
	if !ok {
		return false, fmt.Errorf("%w: %q", colony.ErrUnknownCraft, id)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CanAfford(def.Cost), nil
}

// TriggerGameOver ends the session at most once.
func (c *Controller) TriggerGameOver(ctx context.Context, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gameOverLocked(ctx, reason)
}

func (c *Controller) gameOverLocked(ctx context.Context, reason string) {
	if !c.state.MarkGameOver(reason) {
		return
	}
	hlog.CtxInfof(ctx, "session %s game over on day %d: %s", c.sessionID, c.state.Days, reason)
	c.notifyLocked(colony.Entry{Text: reason, Severity: colony.SeverityGameOver})
	if c.deps.Metrics != nil {
		c.deps.Metrics.RecordGameOver(reason)
	}

	name, err := c.deps.Profile.PlayerName(ctx)
	if err != nil {
		hlog.CtxWarnf(ctx, "load player name for analytics: %v", err)
	}
	props := map[string]any{
		"reason":     reason,
		"days":       c.state.Days,
		"name":       name,
		"session_id": c.sessionID,
	}
	for _, sink := range c.deps.Analytics {
		if sink == nil {
			continue
		}
		if err := sink.Report(ctx, "game_over", props); err != nil {
			hlog.CtxWarnf(ctx, "analytics sink dropped game_over: %v", err)
		}
	}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	crafts := colony.Crafts()
	statuses := make([]CraftStatus, 0, len(crafts))
	for _, def := range crafts {
		statuses = append(statuses, CraftStatus{
			CraftDefinition: def,
			Owned:           c.state.HasItem(def.ID),
			Affordable:      c.state.CanAfford(def.Cost),
			Unlocked:        c.state.HasPrereq(def),
		})
	}
	return Snapshot{
		SessionID: c.sessionID,
		Phase:     c.phaseLocked(),
		State:     c.state.Clone(),
		Crafts:    statuses,
	}
}

func (c *Controller) phaseLocked() Phase {
	switch {
	case c.state.GameOver && c.state.StageComplete:
		return PhaseStageComplete
	case c.state.GameOver:
		return PhaseGameOver
	case !c.started:
		return PhasePreGame
	case c.state.Paused:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

func (c *Controller) notifyLocked(entries ...colony.Entry) {
	for _, e := range entries {
		c.deps.Notifier.Notify(e)
	}
}

func (c *Controller) recordAction(kind ports.ActionKind, code colony.ResultCode) {
	if c.deps.Metrics != nil {
		c.deps.Metrics.RecordAction(kind, code)
	}
}

func (c *Controller) recordFailure() {
	if c.deps.Metrics != nil {
		c.deps.Metrics.RecordFailure()
	}
}

type discardNotifier struct{}

func (discardNotifier) Notify(colony.Entry) {}
