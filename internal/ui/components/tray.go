package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"numdraw/internal/modules/draw/domain"
	"numdraw/internal/ui/theme"
)

type trayBall struct {
	value    int
	revealAt time.Time
}

// Tray is the ball area of the terminal UI. The draw usecase appends to it
// and resets it; the UI only renders it. Balls become visible once their
// stagger delay has elapsed.
type Tray struct {
	now         func() time.Time
	placeholder string
	balls       []trayBall
}

func NewTray(now func() time.Time, placeholder string) *Tray {
	if now == nil {
		now = time.Now
	}
	return &Tray{now: now, placeholder: placeholder}
}

func (t *Tray) Append(value, stagger int) {
	delay := domain.Ball{Value: value, Stagger: stagger}.Delay()
	t.balls = append(t.balls, trayBall{value: value, revealAt: t.now().Add(delay)})
}

func (t *Tray) Reset() {
	t.balls = nil
}

// Len counts every appended ball, revealed or not.
func (t *Tray) Len() int { return len(t.balls) }

// Pending reports whether some ball is still waiting for its reveal time.
func (t *Tray) Pending() bool {
	now := t.now()
	for _, b := range t.balls {
		if b.revealAt.After(now) {
			return true
		}
	}
	return false
}

// Visible returns the values that are currently revealed, in append order.
func (t *Tray) Visible() []int {
	now := t.now()
	out := make([]int, 0, len(t.balls))
	for _, b := range t.balls {
		if !b.revealAt.After(now) {
			out = append(out, b.value)
		}
	}
	return out
}

// View lays the revealed balls out in rows that fit width, or the
// placeholder when the tray is empty.
func (t *Tray) View(width int) string {
	if len(t.balls) == 0 {
		return theme.Muted.Render(t.placeholder)
	}
	visible := t.Visible()
	if len(visible) == 0 {
		return ""
	}
	rendered := make([]string, len(visible))
	for i, v := range visible {
		rendered[i] = theme.Ball.Render(fmt.Sprintf("%2d", v))
	}
	perRow := len(rendered)
	if cell := lipgloss.Width(rendered[0]) + 1; width > 0 && cell > 0 {
		perRow = max(1, width/cell)
	}
	var rows []string
	for start := 0; start < len(rendered); start += perRow {
		end := min(start+perRow, len(rendered))
		cells := make([]string, 0, (end-start)*2)
		for i, r := range rendered[start:end] {
			if i > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, r)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
