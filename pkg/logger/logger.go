package logger

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey int8

const (
	ctxKeyRequestID ctxKey = iota
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		record.Add("request_id", v)
	}

	return h.Handler.Handle(ctx, record)
}

func New(level, format string) (*slog.Logger, error) {
	var sLevel slog.Level

	err := sLevel.UnmarshalText([]byte(level))
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: sLevel,
	}

	var inner slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if format == "text" {
		inner = slog.NewTextHandler(os.Stdout, opts)
	}

	l := slog.New(&Handler{inner})

	slog.SetDefault(l)

	return l, nil
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

func RequestIDFromCtx(ctx context.Context) string {
	requestID, ok := ctx.Value(ctxKeyRequestID).(string)
	if !ok {
		return ""
	}

	return requestID
}
