package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	SinkLog    = "log"
	SinkDB     = "db"
	SinkMemory = "memory"
)

type Config struct {
	HTTPAddr string `env:"VOID_HTTP_ADDR" envDefault:":8080"`
	// DBDSN selects the postgres adapters; empty keeps everything in memory.
	DBDSN      string `env:"VOID_DB_DSN"`
	DBMigrate  bool   `env:"VOID_DB_MIGRATE" envDefault:"true"`
	CORSOrigin string `env:"VOID_CORS_ORIGIN" envDefault:"*"`

	TickUnit       time.Duration `env:"VOID_TICK_UNIT" envDefault:"1ms"`
	RandomSeed     uint64        `env:"VOID_RANDOM_SEED" envDefault:"0"`
	DayPerGather   bool          `env:"VOID_DAY_PER_GATHER" envDefault:"true"`
	AnalyticsSinks []string      `env:"VOID_ANALYTICS_SINKS" envDefault:"log" envSeparator:","`
	JournalSize    int           `env:"VOID_JOURNAL_SIZE" envDefault:"200"`
	LogLevel       string        `env:"VOID_LOG_LEVEL" envDefault:"info"`
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TickUnit <= 0 {
		return fmt.Errorf("VOID_TICK_UNIT must be positive, got %s", c.TickUnit)
	}
	if c.JournalSize <= 0 {
		return fmt.Errorf("VOID_JOURNAL_SIZE must be positive, got %d", c.JournalSize)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for _, sink := range c.AnalyticsSinks {
		switch strings.TrimSpace(sink) {
		case SinkLog, SinkMemory, "":
		case SinkDB:
			if c.DBDSN == "" {
				return fmt.Errorf("analytics sink %q requires VOID_DB_DSN", SinkDB)
			}
		default:
			return fmt.Errorf("unknown analytics sink %q", sink)
		}
	}
	return nil
}

func (c Config) HasSink(name string) bool {
	for _, sink := range c.AnalyticsSinks {
		if strings.TrimSpace(sink) == name {
			return true
		}
	}
	return false
}

func ParseLevel(level string) (hlog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return hlog.LevelTrace, nil
	case "debug":
		return hlog.LevelDebug, nil
	case "", "info":
		return hlog.LevelInfo, nil
	case "notice":
		return hlog.LevelNotice, nil
	case "warn", "warning":
		return hlog.LevelWarn, nil
	case "error":
		return hlog.LevelError, nil
	case "fatal":
		return hlog.LevelFatal, nil
	default:
		return hlog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
