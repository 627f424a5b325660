package testutil

import (
	"sync"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
)

// FutureCall captures the arguments of one RenderFuture call.
type FutureCall struct {
	Date     string
	TipInfo  string
	Location string
	Opponent string
}

// RecordingRenderer keeps every frame it is asked to draw.
type RecordingRenderer struct {
	mu           sync.Mutex
	Live         []games.GameResult
	Future       []FutureCall
	Placeholders []string
}

func (r *RecordingRenderer) RenderLive(res games.GameResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Live = append(r.Live, res)
}

func (r *RecordingRenderer) RenderFuture(date, tipInfo, location, opponent string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Future = append(r.Future, FutureCall{Date: date, TipInfo: tipInfo, Location: location, Opponent: opponent})
}

func (r *RecordingRenderer) RenderPlaceholder(team string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Placeholders = append(r.Placeholders, team)
}

// Frames returns the total number of render calls.
func (r *RecordingRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Live) + len(r.Future) + len(r.Placeholders)
}
