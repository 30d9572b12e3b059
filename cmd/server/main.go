package main

import (
	"context"
	"log"

	analyticslog "voidascendant/internal/adapter/analytics"
	httpadapter "voidascendant/internal/adapter/http"
	"voidascendant/internal/adapter/journal"
	metricsinmem "voidascendant/internal/adapter/metrics/inmemory"
	"voidascendant/internal/adapter/random"
	gormrepo "voidascendant/internal/adapter/repo/gorm"
	"voidascendant/internal/adapter/repo/memory"
	"voidascendant/internal/app/clock"
	"voidascendant/internal/app/ports"
	"voidascendant/internal/app/profile"
	"voidascendant/internal/app/session"
	"voidascendant/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	hlog.SetLevel(level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := buildStores(ctx, cfg)
	if err != nil {
		log.Fatalf("build stores: %v", err)
	}
	kpiRecorder := metricsinmem.NewRecorder()
	messages := journal.New(cfg.JournalSize)
	prof := profile.UseCase{Store: st.flags, TxManager: st.tx}

	ctrl := session.New(session.Config{
		TickUnit:           cfg.TickUnit,
		AdvanceDayOnGather: cfg.DayPerGather,
	}, session.Deps{
		Scheduler: clock.NewTicker(ctx),
		Notifier:  messages,
		Random:    random.New(cfg.RandomSeed),
		Profile:   prof,
		Analytics: buildSinks(cfg, st),
		Metrics:   kpiRecorder,
	})

	h := httpadapter.Handler{
		Session:    ctrl,
		Journal:    messages,
		Profile:    prof,
		KPI:        kpiRecorder,
		Events:     st.events,
		CORSOrigin: cfg.CORSOrigin,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	s.OnShutdown = append(s.OnShutdown, func(context.Context) {
		ctrl.Stop()
		cancel()
	})
	h.RegisterRoutes(s)

	hlog.Infof("void ascendant server listening on %s (storage=%s, tick unit=%s)", cfg.HTTPAddr, st.kind, cfg.TickUnit)
	s.Spin()
}

type stores struct {
	kind   string
	flags  ports.KeyValueStore
	tx     ports.TxManager
	events memory.AnalyticsRepo
	db     ports.AnalyticsSink
}

// buildStores always keeps an in-memory analytics feed for /ops/analytics;
// the flag store moves to postgres when a DSN is configured.
func buildStores(ctx context.Context, cfg config.Config) (stores, error) {
	mem := memory.NewStore()
	out := stores{
		kind:   "memory",
		flags:  memory.NewKeyValueRepo(mem),
		tx:     memory.NewTxManager(mem),
		events: memory.NewAnalyticsRepo(mem),
	}
	if cfg.DBDSN == "" {
		return out, nil
	}
	db, err := gormrepo.Open(ctx, cfg.DBDSN, gormrepo.Options{
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		Migrate:      cfg.DBMigrate,
		LogSQL:       cfg.LogLevel == "debug" || cfg.LogLevel == "trace",
	})
	if err != nil {
		return stores{}, err
	}
	out.kind = "postgres"
	out.flags = gormrepo.NewKeyValueRepo(db)
	out.tx = gormrepo.NewTxManager(db)
	out.db = gormrepo.NewAnalyticsRepo(db)
	return out, nil
}

func buildSinks(cfg config.Config, st stores) []ports.AnalyticsSink {
	sinks := make([]ports.AnalyticsSink, 0, len(cfg.AnalyticsSinks))
	if cfg.HasSink(config.SinkLog) {
		sinks = append(sinks, analyticslog.LogSink{})
	}
	if cfg.HasSink(config.SinkMemory) {
		sinks = append(sinks, st.events)
	}
	if cfg.HasSink(config.SinkDB) && st.db != nil {
		sinks = append(sinks, st.db)
	}
	return sinks
}
