package analytics

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func TestLogSinkWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	hlog.SetOutput(&buf)
	hlog.SetLevel(hlog.LevelInfo)

	err := LogSink{}.Report(context.Background(), "game_over", map[string]any{"reason": "You starved to death.", "days": 4})
	if err != nil {
		t.Fatalf("Report error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "event=game_over") || !strings.Contains(out, `"days":4`) {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestLogSinkRejectsUnencodableProperties(t *testing.T) {
	err := LogSink{}.Report(context.Background(), "game_over", map[string]any{"bad": make(chan int)})
	if err == nil {
		t.Fatalf("expected encode error")
	}
}
