package render

import (
	"github.com/mikeladderbush/LED-Project/internal/domain/games"
)

// Placeholder values drawn when the live feed cannot be reached.
const (
	PlaceholderOpponent = "unknown"
	PlaceholderClock    = games.TipTBD
)

// Renderer draws one frame on the display. Implementations must not block
// for long; they are called from the polling goroutine.
type Renderer interface {
	RenderLive(res games.GameResult)
	RenderFuture(date, tipInfo, location, opponent string)
	RenderPlaceholder(team string)
}

// Multi fans every frame out to each renderer in order.
type Multi []Renderer

func (m Multi) RenderLive(res games.GameResult) {
	for _, r := range m {
		if r != nil {
			r.RenderLive(res)
		}
	}
}

func (m Multi) RenderFuture(date, tipInfo, location, opponent string) {
	for _, r := range m {
		if r != nil {
			r.RenderFuture(date, tipInfo, location, opponent)
		}
	}
}

func (m Multi) RenderPlaceholder(team string) {
	for _, r := range m {
		if r != nil {
			r.RenderPlaceholder(team)
		}
	}
}

// SetTeam forwards the tracked team to renderers that label it.
func (m Multi) SetTeam(team string) {
	for _, r := range m {
		if l, ok := r.(interface{ SetTeam(string) }); ok {
			l.SetTeam(team)
		}
	}
}

// Nop discards every frame.
type Nop struct{}

func (Nop) RenderLive(games.GameResult)                 {}
func (Nop) RenderFuture(string, string, string, string) {}
func (Nop) RenderPlaceholder(string)                    {}
