package analytics

import (
	"context"
	"encoding/json"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// LogSink writes each event as one structured log line.
type LogSink struct{}

func (LogSink) Report(ctx context.Context, name string, properties map[string]any) error {
	b, err := json.Marshal(properties)
	if err != nil {
		return err
	}
	hlog.CtxInfof(ctx, "analytics event=%s properties=%s", name, b)
	return nil
}
