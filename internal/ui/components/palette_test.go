package components_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"numdraw/internal/ui/components"
)

func TestPaletteSubmitAndCancel(t *testing.T) {
	t.Parallel()
	p := components.NewPalette()
	if p.Visible() || p.View() != "" {
		t.Fatalf("new palette must be hidden")
	}
	p.Open()
	typeText := func(s string) {
		for _, r := range s {
			p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	typeText("dr")
	view := p.View()
	if !strings.Contains(view, "draw <count>") || strings.Contains(view, "export") {
		t.Fatalf("expected only the draw hint for prefix dr: %q", view)
	}
	typeText("aw 3")
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("enter must close the palette")
	}
	msg, ok := cmd().(components.PaletteSubmitMsg)
	if !ok || msg.Input != "draw 3" {
		t.Fatalf("expected submit of %q, got %#v", "draw 3", msg)
	}

	p.Open()
	p, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(components.PaletteCancelMsg); !ok || p.Visible() {
		t.Fatalf("esc must cancel and close")
	}
}

func typeInto(p components.Palette, s string) components.Palette {
	for _, r := range s {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestPaletteMatchesOnFirstWord(t *testing.T) {
	t.Parallel()
	p := components.NewPalette()
	p.Open()
	if got := len(p.Matches()); got != len(components.Commands) {
		t.Fatalf("empty input should list every command, got %d", got)
	}
	p = typeInto(p, "draw 3")
	matches := p.Matches()
	if len(matches) != 1 || matches[0].Name != "draw" {
		t.Fatalf("arguments must not hide the command: %+v", matches)
	}
	p = components.NewPalette()
	p.Open()
	p = typeInto(p, "zz")
	if len(p.Matches()) != 0 {
		t.Fatalf("unknown prefix should match nothing")
	}
}

func TestPaletteTabCompletesSelection(t *testing.T) {
	t.Parallel()
	p := components.NewPalette()
	p.Open()
	p = typeInto(p, "ex")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg := cmd().(components.PaletteSubmitMsg); msg.Input != "export:clipboard" {
		t.Fatalf("tab should complete the selected command, got %q", msg.Input)
	}

	p.Open()
	p = typeInto(p, "d")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	p = typeInto(p, "4")
	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg := cmd().(components.PaletteSubmitMsg); msg.Input != "draw 4" {
		t.Fatalf("draw completion should leave room for the count, got %q", msg.Input)
	}
}
