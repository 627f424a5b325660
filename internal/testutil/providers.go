package testutil

import (
	"context"
	"sync"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

// StubScoreboard is an in-memory scoreboard feed. Days maps a date to that
// day's schedule; DayErrs fails individual days.
type StubScoreboard struct {
	mu sync.Mutex

	Today     []games.ScoreboardGame
	TodayErr  error
	Detail    map[string]games.ScoreboardGame
	DetailErr error
	// NotFoundErr is returned by GameDetail for ids missing from Detail.
	NotFoundErr error
	Days        map[timeutil.Date][]games.ScoreboardGame
	DayErrs     map[timeutil.Date]error

	TodayCalls  int
	DetailCalls int
	DaysFetched []timeutil.Date
}

func (s *StubScoreboard) TodaysGames(ctx context.Context) ([]games.ScoreboardGame, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TodayCalls++
	if s.TodayErr != nil {
		return nil, s.TodayErr
	}
	return s.Today, nil
}

func (s *StubScoreboard) GameDetail(ctx context.Context, gameID string) (games.ScoreboardGame, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DetailCalls++
	if s.DetailErr != nil {
		return games.ScoreboardGame{}, s.DetailErr
	}
	g, ok := s.Detail[gameID]
	if !ok {
		return games.ScoreboardGame{}, s.NotFoundErr
	}
	return g, nil
}

func (s *StubScoreboard) GamesOn(ctx context.Context, date timeutil.Date) ([]games.ScoreboardGame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DaysFetched = append(s.DaysFetched, date)
	if err, ok := s.DayErrs[date]; ok {
		return nil, err
	}
	return s.Days[date], nil
}

// Fetched returns a copy of the dates requested through GamesOn.
func (s *StubScoreboard) Fetched() []timeutil.Date {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]timeutil.Date, len(s.DaysFetched))
	copy(out, s.DaysFetched)
	return out
}

// StubDate returns a fixed date or error and remembers the zone it was asked for.
type StubDate struct {
	Date  timeutil.Date
	Err   error
	Zones []string
}

func (s *StubDate) CurrentDate(ctx context.Context, tz string) (timeutil.Date, error) {
	_ = ctx
	s.Zones = append(s.Zones, tz)
	if s.Err != nil {
		return timeutil.Date{}, s.Err
	}
	return s.Date, nil
}
