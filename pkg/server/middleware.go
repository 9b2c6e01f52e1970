package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/badges/pkg/observability"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = 0

// RequestID returns the id assigned to the request, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestID propagates the caller's X-Request-ID or assigns a new UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestLogger(ctx context.Context, l *log.Logger) *log.Logger {
	if id := RequestID(ctx); id != "" {
		return l.With("request_id", id)
	}
	return l
}

// logFormatter adapts charm log to chi's RequestLogger, so access lines and
// panics recovered by middleware.Recoverer share one structured logger.
type logFormatter struct {
	logger *log.Logger
}

// NewLogEntry implements middleware.LogFormatter.
func (f *logFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	ctx := r.Context()
	observability.HTTP().OnRequest(ctx, r.Method, r.URL.Path)
	return &logEntry{
		logger: requestLogger(ctx, f.logger),
		ctx:    ctx,
		method: r.Method,
		path:   r.URL.Path,
		remote: r.RemoteAddr,
	}
}

// logEntry is the per-request middleware.LogEntry.
type logEntry struct {
	logger *log.Logger
	ctx    context.Context
	method string
	path   string
	remote string
}

// Write logs the finished request.
func (e *logEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	observability.HTTP().OnResponse(e.ctx, e.method, e.path, status, elapsed)
	e.logger.Info("request",
		"method", e.method,
		"path", e.path,
		"status", status,
		"bytes", bytes,
		"duration", elapsed.Round(time.Microsecond),
		"remote", e.remote,
	)
}

// Panic logs a handler panic recovered by middleware.Recoverer.
func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error("panic", "method", e.method, "path", e.path, "err", v)
	e.logger.Debug("panic stack", "stack", string(stack))
}
