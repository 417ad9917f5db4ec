package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/filacolia/internal/domain"
	"github.com/kailas-cloud/filacolia/internal/domain/answer/mode"
	"github.com/kailas-cloud/filacolia/internal/domain/footnote"
	"github.com/kailas-cloud/filacolia/internal/logger"
	chatuc "github.com/kailas-cloud/filacolia/internal/usecase/chat"
	healthuc "github.com/kailas-cloud/filacolia/internal/usecase/health"
)

// Client-facing messages.
const (
	MsgNoMessages     = "Mensagens não fornecidas"
	MsgMalformedBody  = "Corpo da requisição inválido"
	MsgInvalidMode    = "Tipo de resposta inválido"
	MsgInvalidRequest = "Requisição inválida"
	MsgInternal       = "Erro interno do servidor"
	MsgFailureContent = "Desculpe, ocorreu um erro ao processar sua pergunta. Tente novamente."
)

// DefaultMaxBodyBytes limits request bodies when no limit is configured.
const DefaultMaxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the chat API.
type Server struct {
	chat          *chatuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	maxBodyBytes  int64
	chatLimits    []func(http.Handler) http.Handler
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. maxBodyBytes <= 0 selects
// DefaultMaxBodyBytes.
func NewServer(
	chat *chatuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
	maxBodyBytes int64,
) *Server {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	s := &Server{
		chat:         chat,
		health:       health,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
	// Specific causes first: they all wrap ErrInvalidRequest.
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNoMessages, http.StatusBadRequest, MsgNoMessages),
		sentinelHandler(domain.ErrMalformedBody, http.StatusBadRequest, MsgMalformedBody),
		sentinelHandler(domain.ErrInvalidMode, http.StatusBadRequest, MsgInvalidMode),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, MsgInvalidRequest),
	}
	return s
}

// WithRateLimit limits POST /api/chat to rps requests per second per client.
func (s *Server) WithRateLimit(rps float64, burst int) *Server {
	if rps > 0 {
		s.chatLimits = append(s.chatLimits, RateLimitMiddleware(rps, burst))
	}
	return s
}

// Routes mounts the API on r.
func (s *Server) Routes(r chi.Router) {
	r.With(s.chatLimits...).Post("/api/chat", s.Chat)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Chat handles POST /api/chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleDomainError(w, r, fmt.Errorf("%w: %w", domain.ErrMalformedBody, err))
		return
	}
	if len(req.Messages) == 0 {
		s.handleDomainError(w, r, domain.ErrNoMessages)
		return
	}

	m, err := mode.Parse(req.RequestType)
	if err != nil {
		s.handleDomainError(w, r, fmt.Errorf("%w: %w", domain.ErrInvalidMode, err))
		return
	}

	msgs := make([]chatuc.Message, len(req.Messages))
	for i, msg := range req.Messages {
		msgs[i] = chatuc.Message{Role: msg.Role, Content: msg.Content}
	}

	a, err := s.chat.Answer(r.Context(), msgs, m)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	content, refs := footnote.Format(a.Content())
	writeJSON(w, http.StatusOK, chatResponse{
		Content:        content,
		Type:           string(a.Mode()),
		HasMoreDetails: a.HasMoreDetails(),
		Footnotes:      footnotesToDTO(refs),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeFailure writes the 500 body.
func writeFailure(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, failureResponse{
		Error:   MsgInternal,
		Content: MsgFailureContent,
		Type:    string(mode.Error),
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, message string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, message)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			logger.FromContext(r.Context()).Warn("domain error", zap.Error(err))
			return
		}
	}
	if !errors.Is(err, domain.ErrInternal) {
		err = fmt.Errorf("%w: %w", domain.ErrInternal, err)
	}
	s.logger.Error("internal error",
		zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeFailure(w)
}

func footnotesToDTO(refs []footnote.Reference) []footnoteItem {
	if len(refs) == 0 {
		return nil
	}
	items := make([]footnoteItem, len(refs))
	for i, ref := range refs {
		items[i] = footnoteItem{
			Number:    i + 1,
			Reference: ref.String(),
			Note:      ref.Number,
		}
	}
	return items
}
