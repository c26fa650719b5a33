package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/frm/casemock/internal/domain"
)

const (
	headerRequestID = "X-Request-ID"

	defaultMaxBodyLogSize = 64 << 10
)

type requestIDKey struct{}

// requestID propagates X-Request-ID from the client or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFrom returns the request ID stored by the request ID middleware.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestLogger records method and path for every request, the JSON body
// when the request declares one, and the outcome once the handler returns.
// The body is handed to the handler unchanged.
func requestLogger(logger *slog.Logger, maxBody int64) func(http.Handler) http.Handler {
	if maxBody <= 0 {
		maxBody = defaultMaxBodyLogSize
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With(
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()),
			)
			reqLogger.Info("request received")
			if isJSONRequest(r) {
				logBody(reqLogger, r, maxBody)
			}

			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			reqLogger.Info("request completed",
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// logBody reads at most maxBody bytes and splices them back in front of the
// unread remainder.
func logBody(logger *slog.Logger, r *http.Request, maxBody int64) {
	if r.Body == nil || r.Body == http.NoBody {
		return
	}
	original := r.Body
	peeked, err := io.ReadAll(io.LimitReader(original, maxBody+1))
	r.Body = &splicedBody{Reader: io.MultiReader(bytes.NewReader(peeked), original), Closer: original}
	if err != nil {
		logger.Warn("reading request body for log failed", "error", err)
		return
	}

	if int64(len(peeked)) > maxBody {
		logger.Info("request body", "body_truncated", true, "body", string(peeked[:maxBody]))
		return
	}
	if !gjson.ValidBytes(peeked) {
		logger.Info("request body", "body_invalid", true, "body", string(peeked))
		return
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, peeked); err != nil {
		logger.Info("request body", "body", string(peeked))
		return
	}
	logger.Info("request body", "body", compact.String())
}

type splicedBody struct {
	io.Reader
	io.Closer
}

// recoverer converts a handler panic into a 500 INTERNAL_ERROR response.
func recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic serving request",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestIDFrom(r.Context()),
				)
				writeError(w, http.StatusInternalServerError, domain.ErrorCodeInternal, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
