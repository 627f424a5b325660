package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/mikeladderbush/LED-Project/internal/app/display"
	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/logging"
	"github.com/mikeladderbush/LED-Project/internal/poller"
)

const maxTeamBodyBytes = 1 << 10

// Display is the slice of the display service the status surface needs.
type Display interface {
	State() games.DisplayState
	Team() string
	SetTeam(team string) error
}

// TeamRequest is the body accepted by PUT /team.
type TeamRequest struct {
	Team string `json:"team"`
}

// Handler wires HTTP routes to the display service.
type Handler struct {
	svc      Display
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no poller runs.
func NewHandler(svc Display, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/state":
		h.State(w, r)
	case "/team":
		h.Team(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the process health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the poller has drawn a healthy frame recently.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	msg := "not ready"
	if status.LastOutcome == games.StateUnavailable {
		msg = "live feed unavailable"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// State returns the last frame handed to the display.
func (h *Handler) State(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.State(), h.logger)
}

// Team reads or replaces the tracked team.
func (h *Handler) Team(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		writeJSON(w, nethttp.StatusOK, TeamRequest{Team: h.svc.Team()}, h.logger)
	case nethttp.MethodPut:
		h.setTeam(w, r)
	default:
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet, nethttp.MethodPut)
	}
}

func (h *Handler) setTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	var req TeamRequest
	if err := decodeBody(r, maxTeamBodyBytes, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team payload", h.logger)
		return
	}

	if err := h.svc.SetTeam(req.Team); err != nil {
		status := nethttp.StatusInternalServerError
		if errors.Is(err, display.ErrEmptyTeam) {
			status = nethttp.StatusBadRequest
		}
		writeError(w, r, status, err.Error(), h.logger)
		return
	}

	team := h.svc.Team()
	logging.Info(logger, "team updated via status api", logging.FieldTeam, team)
	writeJSON(w, nethttp.StatusOK, TeamRequest{Team: team}, h.logger)
}
