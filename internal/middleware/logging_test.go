package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"connectrpc.com/connect"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingInterceptor(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantMsg   string
	}{
		{"success", nil, "level=INFO", "RPC ok"},
		{"client error", connect.NewError(connect.CodeFailedPrecondition, errors.New("at least one person must remain")), "level=WARN", "failed_precondition"},
		{"internal error", connect.NewError(connect.CodeInternal, errors.New("disk full")), "level=ERROR", "disk full"},
		{"plain error", errors.New("boom"), "level=ERROR", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return connect.NewResponse(&struct{}{}), nil
			}

			_, err := LoggingInterceptor()(next)(context.Background(), connect.NewRequest(&struct{}{}))
			if !errors.Is(err, tt.err) {
				t.Fatalf("interceptor changed error: got %v, want %v", err, tt.err)
			}

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) || !strings.Contains(out, tt.wantMsg) {
				t.Errorf("log output %q missing %q / %q", out, tt.wantLevel, tt.wantMsg)
			}
		})
	}
}
