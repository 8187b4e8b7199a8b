// Package api exposes the orchestrator over HTTP.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/logger"
	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator"
	"github.com/go-playground/validator/v10"
)

// SessionCookie is the cookie that carries the session token
const SessionCookie = "session"

// Config holds configuration for the HTTP handler
type Config struct {
	Orchestrator orchestrator.Service
	Logger       *slog.Logger

	// SecureCookies marks the session cookie Secure
	SecureCookies bool
}

// Handler serves the JSON API
type Handler struct {
	orchestrator  orchestrator.Service
	logger        *slog.Logger
	validate      *validator.Validate
	secureCookies bool
	mux           *http.ServeMux
}

// New creates a new handler with every route registered
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Orchestrator == nil {
		return nil, errors.New("orchestrator cannot be nil")
	}

	h := &Handler{
		orchestrator:  cfg.Orchestrator,
		logger:        logger.OrDefault(cfg.Logger),
		validate:      newValidator(),
		secureCookies: cfg.SecureCookies,
		mux:           http.NewServeMux(),
	}
	h.routes()

	return h, nil
}

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /health", h.health)

	h.mux.HandleFunc("POST /api/users", h.signUp)
	h.mux.HandleFunc("GET /api/users", h.listUsers)
	h.mux.HandleFunc("GET /api/users/{username}", h.getUser)
	h.mux.HandleFunc("PATCH /api/users/username", h.updateUsername)
	h.mux.HandleFunc("PATCH /api/users/password", h.updatePassword)
	h.mux.HandleFunc("DELETE /api/users", h.deleteAccount)
	h.mux.HandleFunc("POST /api/users/mood", h.selectMood)
	h.mux.HandleFunc("POST /api/login", h.logIn)
	h.mux.HandleFunc("POST /api/logout", h.logOut)
	h.mux.HandleFunc("GET /api/session", h.currentUser)

	h.mux.HandleFunc("POST /api/events", h.createEvent)
	h.mux.HandleFunc("GET /api/events", h.listEvents)
	h.mux.HandleFunc("GET /api/events/{id}", h.lookupEvent)
	h.mux.HandleFunc("PATCH /api/events/{id}", h.updateEvent)
	h.mux.HandleFunc("DELETE /api/events/{id}", h.cancelEvent)
	h.mux.HandleFunc("PATCH /api/events/{id}/status", h.advanceEvent)
	h.mux.HandleFunc("POST /api/events/{id}/rsvp", h.rsvp)
	h.mux.HandleFunc("DELETE /api/events/{id}/rsvp", h.cancelRSVP)
	h.mux.HandleFunc("POST /api/events/{id}/tags", h.tagEvent)
	h.mux.HandleFunc("PATCH /api/events/{id}/attendance", h.markAttendance)
	h.mux.HandleFunc("GET /api/events/{id}/mood-sync", h.syncMood)

	h.mux.HandleFunc("GET /api/rsvps", h.listRSVPs)
	h.mux.HandleFunc("GET /api/rsvps/{id}", h.getRSVP)
	h.mux.HandleFunc("GET /api/moods", h.listMoods)
	h.mux.HandleFunc("GET /api/categories", h.listCategories)
	h.mux.HandleFunc("GET /api/tags", h.listTags)
	h.mux.HandleFunc("POST /api/tags", h.createTag)
	h.mux.HandleFunc("GET /api/recommendations", h.recommend)
	h.mux.HandleFunc("GET /api/streaks/{userID}", h.getStreak)

	h.mux.HandleFunc("GET /api/upvotes/{eventID}", h.countUpvotes)
	h.mux.HandleFunc("POST /api/upvotes/{eventID}", h.upvote)
	h.mux.HandleFunc("DELETE /api/upvotes/{eventID}", h.removeUpvote)

	h.mux.HandleFunc("POST /api/invitations", h.invite)
	h.mux.HandleFunc("GET /api/invitations", h.listInvitations)
	h.mux.HandleFunc("PUT /api/invitations/{id}/accept", h.acceptInvitation)
	h.mux.HandleFunc("PUT /api/invitations/{id}/reject", h.rejectInvitation)

	h.mux.HandleFunc("GET /api/posts", h.listPosts)
	h.mux.HandleFunc("POST /api/posts", h.createPost)
	h.mux.HandleFunc("PATCH /api/posts/{id}", h.updatePost)
	h.mux.HandleFunc("DELETE /api/posts/{id}", h.deletePost)
}

// ServeHTTP logs each request and recovers from handler panics
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	defer func() {
		if p := recover(); p != nil {
			h.logger.ErrorContext(r.Context(), "handler panic", "path", r.URL.Path, "panic", p)
			writeJSON(rec, http.StatusInternalServerError, errorBody{Error: "internal", Msg: "internal error"})
		}
		h.logger.DebugContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	}()

	h.mux.ServeHTTP(rec, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, message{Msg: "ok"})
}
