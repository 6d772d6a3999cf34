package collector

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/beaconlabs/beacon/pkg/logger"
)

// Server exposes the collector's HTTP surface: the two agent-facing
// endpoints plus a health check.
type Server struct {
	storage Storage
	log     *slog.Logger
}

// NewServer creates a collector server over the given storage.
func NewServer(storage Storage, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{storage: storage, log: log}
}

// Routes builds the router. The agent treats any non-2xx as "no ack" and
// retries on its next run, so handlers answer 200 only after storage
// confirmed the write.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/ahoy/visits", s.handleCreateVisit)
	r.Post("/ahoy/events", s.handleCreateEvents)
	r.Get("/healthz", s.handleHealth)

	return r
}

func (s *Server) handleCreateVisit(w http.ResponseWriter, r *http.Request) {
	var visit Visit
	if err := json.NewDecoder(r.Body).Decode(&visit); err != nil {
		s.log.DebugContext(r.Context(), "malformed visit payload", logger.Error(err))
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	visit.StartedAt = time.Now().UTC()

	if err := s.storage.SaveVisit(r.Context(), visit); err != nil {
		s.log.ErrorContext(r.Context(), "visit not saved",
			logger.VisitID(visit.VisitToken),
			logger.Error(err),
		)
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}

	s.log.InfoContext(r.Context(), "visit started",
		logger.VisitID(visit.VisitToken),
		logger.VisitorID(visit.VisitorToken),
		slog.String("platform", visit.Platform),
	)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCreateEvents(w http.ResponseWriter, r *http.Request) {
	var events []Event
	if err := json.NewDecoder(r.Body).Decode(&events); err != nil {
		s.log.DebugContext(r.Context(), "malformed events payload", logger.Error(err))
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	if err := s.storage.SaveEvents(r.Context(), events); err != nil {
		s.log.ErrorContext(r.Context(), "events not saved", logger.Error(err))
		http.Error(w, "storage failure", http.StatusInternalServerError)
		return
	}

	for _, event := range events {
		s.log.InfoContext(r.Context(), "event received",
			logger.EventID(event.ID),
			logger.EventName(event.Name),
		)
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
