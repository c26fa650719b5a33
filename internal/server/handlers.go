package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/frm/casemock/internal/config"
	"github.com/frm/casemock/internal/domain"
	"github.com/frm/casemock/internal/generator"
)

// APIHandlers exposes HTTP handlers for the mock REST API.
type APIHandlers struct {
	logger     *slog.Logger
	generators *generator.Factory
	service    config.ServiceConfig
	mock       config.MockConfig
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, generators *generator.Factory, service config.ServiceConfig, mock config.MockConfig) *APIHandlers {
	return &APIHandlers{
		logger:     logger,
		generators: generators,
		service:    service,
		mock:       mock,
	}
}

func (h *APIHandlers) register(r *mux.Router) {
	r.HandleFunc("/", h.handleIndex).Methods(http.MethodGet)

	r.HandleFunc("/cases", h.listCases).Methods(http.MethodGet)
	r.HandleFunc("/cases/summary", h.getCaseSummary).Methods(http.MethodGet)
	r.HandleFunc("/cases/{id:[0-9]+}", h.getCaseDetail).Methods(http.MethodGet)

	r.HandleFunc("/cases/{id:[0-9]+}/comments", h.listComments).Methods(http.MethodGet)
	r.HandleFunc("/cases/{id:[0-9]+}/comments", h.createComment).Methods(http.MethodPost)
	r.HandleFunc("/cases/{case_id:[0-9]+}/comments/{comment_id:[0-9]+}", h.getComment).Methods(http.MethodGet)
	r.HandleFunc("/cases/{case_id:[0-9]+}/comments/{comment_id:[0-9]+}", h.updateComment).Methods(http.MethodPut)

	r.HandleFunc("/customers/{id:[0-9]+}", h.getCustomer).Methods(http.MethodGet)
	r.HandleFunc("/alerts/{id:[0-9]+}", h.getAlert).Methods(http.MethodGet)
}

func (h *APIHandlers) handleIndex(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, indexResponse{
		Name:    h.service.Name,
		Version: h.service.Version,
		Status:  "running",
	})
}

// listCases filters after generation, so a filtered page usually holds
// fewer than pageSize cases while pagination still reports pageSize.
func (h *APIHandlers) listCases(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, pageSize := h.pageParams(query)

	gen := h.generators.New()
	cases := filterCases(gen.CaseSummaries(pageSize), caseFilter{
		Status:   query.Get("status"),
		Priority: query.Get("priority"),
		Search:   query.Get("search"),
	})
	sortCases(cases, query.Get("sortBy"), query.Get("sortOrder"))

	respondJSON(w, http.StatusOK, pagedResponse[domain.CaseSummary]{
		Data:       cases,
		Pagination: domain.NewPagination(page, pageSize, h.mock.TotalItems),
	})
}

func (h *APIHandlers) getCaseSummary(w http.ResponseWriter, _ *http.Request) {
	gen := h.generators.New()
	summaries := gen.CaseStatusSummaries(h.mock.SummarySize)

	total := 0
	for _, s := range summaries {
		total += s.Count
	}

	respondJSON(w, http.StatusOK, caseSummaryResponse{
		Data:        summaries,
		TotalCases:  total,
		LastUpdated: gen.Timestamp(),
	})
}

func (h *APIHandlers) getCaseDetail(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.generators.New().CaseDetail())
}

func (h *APIHandlers) listComments(w http.ResponseWriter, r *http.Request) {
	page, pageSize := h.pageParams(r.URL.Query())

	respondJSON(w, http.StatusOK, pagedResponse[domain.Comment]{
		Data:       h.generators.New().Comments(pageSize),
		Pagination: domain.NewPagination(page, pageSize, h.mock.TotalItems),
	})
}

func (h *APIHandlers) createComment(w http.ResponseWriter, r *http.Request) {
	h.writeComment(w, r, http.StatusCreated)
}

func (h *APIHandlers) getComment(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.generators.New().Comment())
}

func (h *APIHandlers) updateComment(w http.ResponseWriter, r *http.Request) {
	h.writeComment(w, r, http.StatusOK)
}

// writeComment backs both create and update: a generated comment carrying
// the caller's header and content.
func (h *APIHandlers) writeComment(w http.ResponseWriter, r *http.Request, status int) {
	input, err := decodeCommentInput(r)
	if err != nil {
		h.logger.Debug("rejected comment payload", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusBadRequest, domain.ErrorCodeInvalidRequest, invalidRequestMessage(err))
		return
	}

	comment := h.generators.New().Comment()
	comment.Header = input.Header
	comment.Content = input.Content
	respondJSON(w, status, comment)
}

func (h *APIHandlers) getCustomer(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.generators.New().Customer())
}

func (h *APIHandlers) getAlert(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.generators.New().Alert())
}

// pageParams defaults unparsable values, lifts page to 1 and caps pageSize.
func (h *APIHandlers) pageParams(query url.Values) (page, pageSize int) {
	page = parseInt(query.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	pageSize = parseInt(query.Get("pageSize"), h.mock.DefaultPageSize)
	if pageSize < 1 {
		pageSize = h.mock.DefaultPageSize
	}
	return page, min(pageSize, h.mock.MaxPageSize)
}

// --- Response envelopes ---

type indexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type pagedResponse[T any] struct {
	Data       []T               `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

type caseSummaryResponse struct {
	Data        []domain.CaseStatusSummary `json:"data"`
	TotalCases  int                        `json:"totalCases"`
	LastUpdated int64                      `json:"lastUpdated"`
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
