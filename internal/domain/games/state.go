package games

import "time"

// StateKind names what the display is currently showing.
type StateKind string

const (
	StateNone        StateKind = "none"
	StateLive        StateKind = "live"
	StateUpcoming    StateKind = "upcoming"
	StateUnavailable StateKind = "unavailable"
)

// DisplayState is the last frame handed to the renderer.
type DisplayState struct {
	Kind      StateKind   `json:"kind"`
	Team      string      `json:"team"`
	Live      *GameResult `json:"live,omitempty"`
	Upcoming  *FutureGame `json:"upcoming,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt,omitempty"`
}

// EmptyState is the state before anything has been drawn.
func EmptyState(team string) DisplayState {
	return DisplayState{Kind: StateNone, Team: team}
}

// Degraded reports whether the state was produced by a failed feed.
func (s DisplayState) Degraded() bool {
	return s.Kind == StateUnavailable
}
