package profiled

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tradex-bot/core/logger"
)

const component = "profiled"

// Server is the profile backend HTTP API.
//
// POST /user       creates a profile; 409 when the user already has one.
// GET  /user/{id}  returns a profile; 404 when absent.
type Server struct {
	storage Storage
}

// NewServer builds the API over a storage implementation.
func NewServer(storage Storage) *Server {
	return &Server{storage: storage}
}

// Handler returns the routed HTTP handler with request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /user", s.handleCreate)
	mux.HandleFunc("GET /user/{id}", s.handleGet)
	return logRequests(mux)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var rec Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if rec.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "user_id must be positive")
		return
	}
	if rec.Transactions == nil {
		rec.Transactions = json.RawMessage("[]")
	}

	err := s.storage.Insert(r.Context(), rec)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, rec)
	case err == ErrExists:
		writeError(w, http.StatusConflict, "profile already exists")
	default:
		logger.Error(r.Context(), component, "insert.fail",
			slog.Int64("user_id", rec.UserID),
			slog.String("err", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "storage failure")
	}
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	rec, err := s.storage.Get(r.Context(), userID)
	if err != nil {
		logger.Error(r.Context(), component, "get.fail",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sr, r)
		logger.Debug(r.Context(), component, "request",
			slog.String("method", r.Method),
			slog.String("path", logger.SanitizeLimit(r.URL.Path, 128)),
			slog.Int("status", sr.status),
			slog.Duration("duration", logger.RoundMS(time.Since(start))),
		)
	})
}
