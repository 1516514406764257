package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type ctxKey struct{}

// WithRequestID stores the request id used by all log entries produced
// while handling that request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type Logger struct{ service string }

func New(service string) *Logger { return &Logger{service: service} }

func (l *Logger) log(ctx context.Context, level, action, msg string, fields map[string]any, err error) {
	entry := map[string]any{
		"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		"level":      level,
		"service":    l.service,
		"action":     action,
		"message":    msg,
		"hostname":   hostname(),
		"request_id": RequestID(ctx),
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = map[string]any{"msg": err.Error(), "type": fmt.Sprintf("%T", err)}
	}
	_ = json.NewEncoder(os.Stdout).Encode(entry)
}

func (l *Logger) Info(ctx context.Context, action string, fields map[string]any) {
	l.log(ctx, "INFO", action, action, fields, nil)
}

func (l *Logger) Debug(ctx context.Context, action string, fields map[string]any) {
	l.log(ctx, "DEBUG", action, action, fields, nil)
}

func (l *Logger) Error(ctx context.Context, action string, err error, fields map[string]any) {
	l.log(ctx, "ERROR", action, action, fields, err)
}

func hostname() string { h, _ := os.Hostname(); return h }
