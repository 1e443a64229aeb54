package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/salesdesk/qbo-bridge/pkg/logger"
)

// LoggingRoundTripper logs every outbound call and forwards the request id
// of the originating HTTP request to the upstream API.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	return &LoggingRoundTripper{Transport: transport}
}

func (l *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
	)

	return resp, nil
}
