package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"voidascendant/internal/adapter/journal"
	"voidascendant/internal/adapter/repo/memory"
	"voidascendant/internal/app/ports"
	"voidascendant/internal/app/profile"
	"voidascendant/internal/app/session"
	"voidascendant/internal/domain/colony"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var (
	ErrCraftLocked   = errors.New("craft prerequisites not met")
	ErrDebugDisabled = errors.New("debug mode is disabled")
	ErrUnknownTick   = errors.New("unknown tick kind")
)

type Handler struct {
	Session *session.Controller
	Journal *journal.Journal
	Profile profile.UseCase
	KPI     kpiSnapshotProvider
	Events  analyticsFeed
	// CORSOrigin defaults to "*".
	CORSOrigin string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.CORSOrigin))

	sess := s.Group("/api/session")
	sess.POST("/start", h.start)
	sess.POST("/pause", h.pause)
	sess.POST("/resume", h.resume)
	sess.POST("/reset", h.reset)
	sess.POST("/gather", h.gather)
	sess.POST("/craft", h.craft)
	sess.GET("/status", h.status)
	sess.GET("/log", h.log)
	sess.POST("/debug/tick", h.debugTick)
	sess.POST("/debug/gameover", h.debugGameOver)

	s.GET("/api/crafts", h.crafts)

	prof := s.Group("/api/profile")
	prof.GET("", h.profile)
	prof.POST("/intro", h.intro)
	prof.POST("/name", h.saveName)
	prof.POST("/debug", h.setDebug)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/ops/analytics", h.analytics)
}

type gatherRequest struct {
	Resource string `json:"resource"`
}

type craftRequest struct {
	ID    string `json:"id"`
	Force bool   `json:"force,omitempty"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type debugRequest struct {
	Enabled bool `json:"enabled"`
}

type tickRequest struct {
	Kind string `json:"kind"`
}

type gameOverRequest struct {
	Reason string `json:"reason"`
}

func writeResult(ctx *app.RequestContext, res session.Result) {
	if res.Entries == nil {
		res.Entries = []colony.Entry{}
	}
	ctx.JSON(consts.StatusOK, res)
}

func (h Handler) start(c context.Context, ctx *app.RequestContext) {
	h.Session.Start(c)
	ctx.JSON(consts.StatusOK, h.Session.Snapshot())
}

func (h Handler) pause(_ context.Context, ctx *app.RequestContext) {
	h.Session.Pause()
	ctx.JSON(consts.StatusOK, h.Session.Snapshot())
}

func (h Handler) resume(_ context.Context, ctx *app.RequestContext) {
	h.Session.Resume()
	ctx.JSON(consts.StatusOK, h.Session.Snapshot())
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	if err := h.Session.Reset(c); err != nil {
		writeError(ctx, err)
		return
	}
	if h.Journal != nil {
		h.Journal.Clear()
	}
	ctx.JSON(consts.StatusOK, h.Session.Snapshot())
}

func (h Handler) gather(c context.Context, ctx *app.RequestContext) {
	var body gatherRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	res, err := h.Session.Gather(c, strings.TrimSpace(body.Resource))
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeResult(ctx, res)
}

func (h Handler) craft(c context.Context, ctx *app.RequestContext) {
	var body craftRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	id := strings.TrimSpace(body.ID)
	if !body.Force {
		ok, err := h.Session.HasPrereq(id)
		if err != nil {
			writeError(ctx, err)
			return
		}
		if !ok {
			writeError(ctx, ErrCraftLocked)
			return
		}
	}
	res, err := h.Session.Craft(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeResult(ctx, res)
}

func (h Handler) status(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Session.Snapshot())
}

func (h Handler) crafts(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"crafts": h.Session.Snapshot().Crafts})
}

func (h Handler) log(_ context.Context, ctx *app.RequestContext) {
	if h.Journal == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "journal not configured")
		return
	}
	after, _ := strconv.ParseUint(string(ctx.Query("after")), 10, 64)
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	ctx.JSON(consts.StatusOK, map[string]any{"entries": h.Journal.Since(after, limit)})
}

func (h Handler) debugTick(c context.Context, ctx *app.RequestContext) {
	if err := h.requireDebug(c); err != nil {
		writeError(ctx, err)
		return
	}
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	switch ports.ActionKind(body.Kind) {
	case ports.ActionSolar:
		h.Session.SolarTick()
	case ports.ActionDrain:
		h.Session.DrainTick()
	case ports.ActionHunger:
		h.Session.HungerTick()
	default:
		writeError(ctx, ErrUnknownTick)
		return
	}
	ctx.JSON(consts.StatusOK, h.Session.Snapshot())
}

func (h Handler) debugGameOver(c context.Context, ctx *app.RequestContext) {
	if err := h.requireDebug(c); err != nil {
		writeError(ctx, err)
		return
	}
	var body gameOverRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	reason := strings.TrimSpace(body.Reason)
	if reason == "" {
		reason = colony.MsgStarved
	}
	h.Session.TriggerGameOver(c, reason)
	ctx.JSON(consts.StatusOK, h.Session.Snapshot())
}

func (h Handler) requireDebug(c context.Context) error {
	on, err := h.Profile.DebugMode(c)
	if err != nil {
		return err
	}
	if !on {
		return ErrDebugDisabled
	}
	return nil
}

func (h Handler) profile(c context.Context, ctx *app.RequestContext) {
	p, err := h.Profile.Load(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, p)
}

func (h Handler) intro(c context.Context, ctx *app.RequestContext) {
	show, err := h.Profile.BeginIntro(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"show_intro": show})
}

func (h Handler) saveName(c context.Context, ctx *app.RequestContext) {
	var body nameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	name, err := h.Profile.SavePlayerName(c, body.Name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"player_name": name})
}

func (h Handler) setDebug(c context.Context, ctx *app.RequestContext) {
	var body debugRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.Profile.SetDebugMode(c, body.Enabled); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"debug_mode": body.Enabled})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

type analyticsFeed interface {
	List(ctx context.Context, limit int) ([]memory.AnalyticsEvent, error)
}

func (h Handler) analytics(c context.Context, ctx *app.RequestContext) {
	if h.Events == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "analytics feed not configured")
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	events, err := h.Events.List(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"events": events})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, colony.ErrUnknownResource):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_resource", err.Error())
	case errors.Is(err, colony.ErrUnknownCraft):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_craft", err.Error())
	case errors.Is(err, ErrUnknownTick):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_tick", err.Error())
	case errors.Is(err, profile.ErrInvalidName):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_name", err.Error())
	case errors.Is(err, ErrCraftLocked):
		writeErrorBody(ctx, consts.StatusConflict, "craft_locked", err.Error())
	case errors.Is(err, ErrDebugDisabled):
		writeErrorBody(ctx, consts.StatusForbidden, "debug_disabled", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		hlog.Errorf("request failed: %v", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
