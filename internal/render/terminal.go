package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
)

var (
	green  = lipgloss.Color("#50fa7b")
	yellow = lipgloss.Color("#f1fa8c")
	cyan   = lipgloss.Color("#8be9fd")
	red    = lipgloss.Color("#ff5555")
	muted  = lipgloss.Color("#6272a4")
)

// Terminal draws each frame as a bordered panel, standing in for the LED matrix.
type Terminal struct {
	mu    sync.Mutex
	w     io.Writer
	team  string
	panel lipgloss.Style
	score lipgloss.Style
	label lipgloss.Style
	clock lipgloss.Style
	warn  lipgloss.Style
}

// NewTerminal writes frames to w. team labels the tracked side of a live score.
func NewTerminal(w io.Writer, team string) *Terminal {
	out := w
	if out == nil {
		out = io.Discard
	}
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		w:    w,
		team: team,
		panel: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 2),
		score: r.NewStyle().Foreground(green).Bold(true),
		label: r.NewStyle().Foreground(cyan),
		clock: r.NewStyle().Foreground(yellow),
		warn:  r.NewStyle().Foreground(red),
	}
}

// SetTeam changes the label used for the tracked side.
func (t *Terminal) SetTeam(team string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.team = team
}

func (t *Terminal) RenderLive(res games.GameResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	home, away := t.team, res.Opponent
	if !res.Home {
		home, away = res.Opponent, t.team
	}
	lines := []string{
		t.label.Render(fmt.Sprintf("%s vs %s", away, home)),
		t.score.Render(fmt.Sprintf("%d - %d", res.AwayScore, res.HomeScore)),
		t.clock.Render(res.Clock),
	}
	t.write(lines)
}

func (t *Terminal) RenderFuture(date, tipInfo, location, opponent string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prep := "@"
	if location == string(games.LocationHome) {
		prep = "vs"
	}
	lines := []string{
		t.label.Render(fmt.Sprintf("Next: %s %s", prep, opponent)),
		t.clock.Render(fmt.Sprintf("%s  %s", date, tipInfo)),
	}
	t.write(lines)
}

func (t *Terminal) RenderPlaceholder(team string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := []string{
		t.warn.Render(fmt.Sprintf("%s vs %s", team, PlaceholderOpponent)),
		t.score.Render("0 - 0"),
		t.clock.Render(PlaceholderClock),
	}
	t.write(lines)
}

// write must be called with t.mu held.
func (t *Terminal) write(lines []string) {
	if t.w == nil {
		return
	}
	_, _ = fmt.Fprintln(t.w, t.panel.Render(strings.Join(lines, "\n")))
}
