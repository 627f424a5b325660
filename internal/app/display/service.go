package display

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/logging"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/providers"
	"github.com/mikeladderbush/LED-Project/internal/render"
	"github.com/mikeladderbush/LED-Project/internal/resolver"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

// ErrEmptyTeam is returned by SetTeam for a blank name.
var ErrEmptyTeam = errors.New("team name is required")

// Outcomes recorded for each resolution pass.
const (
	OutcomeLive        = "live"
	OutcomeUpcoming    = "upcoming"
	OutcomeUnavailable = "unavailable"
	OutcomeUnchanged   = "unchanged"
)

// Store holds the last display state.
type Store interface {
	State() games.DisplayState
	// SetState stores state unless the store was reset for another team.
	SetState(state games.DisplayState) bool
	Reset(team string)
}

// LiveResolver looks up the tracked team's in-progress game.
type LiveResolver interface {
	FetchTeamGame(ctx context.Context, team string) resolver.LiveResult
}

// FutureResolver searches the schedule for the team's next game.
type FutureResolver interface {
	FindNextGame(ctx context.Context, team string, start timeutil.Date, horizonDays int) (games.FutureGame, error)
}

// teamLabeler is implemented by renderers that label the tracked side.
type teamLabeler interface {
	SetTeam(team string)
}

// Config carries the tunables for a Service.
type Config struct {
	Team        string
	Timezone    string
	HorizonDays int
}

// Deps are the collaborators a Service drives.
type Deps struct {
	Live     LiveResolver
	Future   FutureResolver
	Clock    providers.DateProvider
	Renderer render.Renderer
	Store    Store
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	Now      func() time.Time
}

// Service runs resolution passes for the tracked team and hands the
// result to the renderer.
type Service struct {
	mu   sync.RWMutex
	team string

	tz      string
	horizon int

	live     LiveResolver
	future   FutureResolver
	clock    providers.DateProvider
	renderer render.Renderer
	store    Store
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

func NewService(cfg Config, deps Deps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = render.Nop{}
	}
	return &Service{
		team:     cfg.Team,
		tz:       cfg.Timezone,
		horizon:  cfg.HorizonDays,
		live:     deps.Live,
		future:   deps.Future,
		clock:    deps.Clock,
		renderer: renderer,
		store:    deps.Store,
		logger:   deps.Logger,
		recorder: deps.Recorder,
		now:      now,
	}
}

// Team returns the currently tracked team.
func (s *Service) Team() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.team
}

// SetTeam switches the tracked team and clears the stored state.
func (s *Service) SetTeam(team string) error {
	team = strings.TrimSpace(team)
	if team == "" {
		return ErrEmptyTeam
	}

	// Team and store change together so concurrent switches cannot leave the
	// store reset for a team that is no longer tracked.
	s.mu.Lock()
	prev := s.team
	if prev == team {
		s.mu.Unlock()
		return nil
	}
	s.team = team
	if s.store != nil {
		s.store.Reset(team)
	}
	s.mu.Unlock()

	if l, ok := s.renderer.(teamLabeler); ok {
		l.SetTeam(team)
	}
	logging.Info(s.logger, "tracked team changed", "previous", prev, logging.FieldTeam, team)
	return nil
}

// State returns the last stored display state.
func (s *Service) State() games.DisplayState {
	if s.store == nil {
		return games.EmptyState(s.Team())
	}
	return s.store.State()
}

// Resolve runs one pass: live score if the team is playing, a placeholder
// if the live feed is down, otherwise the next scheduled game. When the
// next game cannot be determined the previous state is kept and nothing
// is drawn.
func (s *Service) Resolve(ctx context.Context) games.DisplayState {
	team := s.Team()
	logger := s.passLogger(team)
	ctx = logging.WithLogger(ctx, logger)

	res := resolver.LiveResult{Status: resolver.LiveFetchFailed, Err: providers.ErrProviderUnavailable}
	if s.live != nil {
		res = s.live.FetchTeamGame(ctx, team)
	}
	switch res.Status {
	case resolver.LiveFound:
		game := res.Game
		state := games.DisplayState{Kind: games.StateLive, Team: team, Live: &game, UpdatedAt: s.now()}
		return s.commit(logger, team, OutcomeLive, state, func() { s.renderer.RenderLive(game) })

	case resolver.LiveFetchFailed:
		logging.Warn(logger, "live feed unavailable, showing placeholder", "error", res.Err)
		state := games.DisplayState{Kind: games.StateUnavailable, Team: team, UpdatedAt: s.now()}
		return s.commit(logger, team, OutcomeUnavailable, state, func() { s.renderer.RenderPlaceholder(team) })
	}

	logging.Debug(logger, "team not live, searching schedule", "live_status", res.Status.String())
	next, err := s.NextGame(ctx, nil)
	if err != nil {
		logging.Warn(logger, "next game unresolved, keeping previous state", "error", err)
		s.recorder.RecordResolution(OutcomeUnchanged)
		return s.State()
	}

	state := games.DisplayState{Kind: games.StateUpcoming, Team: team, Upcoming: &next, UpdatedAt: s.now()}
	return s.commit(logger, team, OutcomeUpcoming, state, func() {
		s.renderer.RenderFuture(next.Date.String(), next.TipInfo, string(next.Location), next.Opponent)
	})
}

// NextGame finds the tracked team's next game starting at from, or at the
// time service's current date when from is nil.
func (s *Service) NextGame(ctx context.Context, from *timeutil.Date) (games.FutureGame, error) {
	team := s.Team()
	var start timeutil.Date
	if from != nil {
		start = *from
	} else {
		today, err := resolver.CurrentDate(ctx, s.clock, s.tz, s.logger)
		if err != nil {
			return games.FutureGame{}, err
		}
		start = today
	}
	if s.future == nil {
		return games.FutureGame{}, providers.ErrProviderUnavailable
	}
	return s.future.FindNextGame(ctx, team, start, s.horizon)
}

// commit stores and draws state unless the tracked team changed mid-pass.
// The store rejects a frame for a team it was not reset for, which keeps a
// concurrent SetTeam from being overwritten. A switch that lands while the
// frame is drawn resets the store after us.
func (s *Service) commit(logger *slog.Logger, team, outcome string, state games.DisplayState, draw func()) games.DisplayState {
	if s.Team() != team || (s.store != nil && !s.store.SetState(state)) {
		return s.discard(logger)
	}
	draw()
	if s.Team() != team {
		return s.discard(logger)
	}
	s.recorder.RecordResolution(outcome)
	logging.Info(logger, "display updated", logging.FieldOutcome, outcome)
	return state
}

func (s *Service) discard(logger *slog.Logger) games.DisplayState {
	logging.Info(logger, "tracked team changed during pass, discarding result", "current", s.Team())
	s.recorder.RecordResolution(OutcomeUnchanged)
	return s.State()
}

func (s *Service) passLogger(team string) *slog.Logger {
	if s.logger == nil {
		return nil
	}
	return s.logger.With(logging.FieldTeam, team, "pass_id", uuid.NewString())
}
