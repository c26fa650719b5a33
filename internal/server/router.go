package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/frm/casemock/internal/domain"
)

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	API            *APIHandlers
	Metrics        *Metrics // nil disables /metrics and instrumentation
	AllowedOrigins []string
	MaxBodyLogSize int64
}

// NewRouter wires the HTTP routes exposed by the mock API. Every request,
// matched or not, passes through CORS, request ID, request logging and panic
// recovery in that order.
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	r := mux.NewRouter()

	notFound := http.Handler(http.HandlerFunc(handleNotFound))
	notAllowed := http.Handler(http.HandlerFunc(handleMethodNotAllowed))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
		notFound = deps.Metrics.Middleware(notFound)
		notAllowed = deps.Metrics.Middleware(notAllowed)
		r.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)
	}
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notAllowed

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	if deps.API != nil {
		deps.API.register(r)
	}

	handler := recoverer(logger)(r)
	handler = requestLogger(logger, deps.MaxBodyLogSize)(handler)
	handler = requestID(handler)
	if len(deps.AllowedOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: deps.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{headerRequestID},
		}).Handler(handler)
	}
	return handler
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code domain.ErrorCode, msg string) {
	respondJSON(w, status, domain.NewError(code, msg))
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, domain.ErrorCodeNotFound, "Resource not found")
}

func handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, domain.ErrorCodeMethodNotAllowed, "Method not allowed")
}
