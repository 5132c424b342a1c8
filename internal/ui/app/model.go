package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	drawfeedback "numdraw/internal/modules/draw/adapter/in"
	"numdraw/internal/modules/draw/domain"
	drawdto "numdraw/internal/modules/draw/dto"
	"numdraw/internal/ui/components"
	"numdraw/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type drawPort interface {
	Draw(ctx context.Context, count string) (drawdto.DrawOutput, error)
	Clear(ctx context.Context) error
	Export(ctx context.Context, target string) (drawdto.ExportOutput, error)
	Status(ctx context.Context) (drawdto.StatusOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type revealTickMsg time.Time

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Draw      key.Binding
	Clear     key.Binding
	Export    key.Binding
	Clipboard key.Binding
	Help      key.Binding
	Palette   key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Draw:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "draw")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
		Clipboard: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy csv")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Draw, k.Clear, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Draw, k.Clear},
		{k.Export, k.Clipboard},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. Every action runs synchronously inside
// Update, so the session is only ever touched from the event loop.
type Model struct {
	draw drawPort
	tray *components.Tray

	count     textinput.Model
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	notice    string
	status    string
	drawn     int
	remaining int
	width     int
	height    int
}

// NewModel wires the UI to the draw port. tray must be the same sink the
// draw usecase appends to.
func NewModel(draw drawPort, tray *components.Tray) Model {
	ti := textinput.New()
	ti.Prompt = "count › "
	ti.CharLimit = 3
	ti.Width = 4
	ti.SetValue("1")
	ti.Focus()

	return Model{
		draw:      draw,
		tray:      tray,
		count:     ti,
		keys:      defaultKeys(),
		help:      help.New(),
		palette:   components.NewPalette(),
		status:    "ready",
		remaining: domain.Capacity,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 60))
		m.help.Width = m.width
		return m, nil

	case revealTickMsg:
		if m.tray.Pending() {
			return m, revealTick()
		}
		return m, nil
	}

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		// A notice blocks everything until acknowledged.
		if m.notice != "" {
			switch msg.String() {
			case "enter", "esc", " ":
				m.notice = ""
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Draw):
			return m.runDraw(m.count.Value())
		case key.Matches(msg, m.keys.Clear):
			return m.runClear()
		case key.Matches(msg, m.keys.Export):
			return m.runExport(drawdto.TargetFile)
		case key.Matches(msg, m.keys.Clipboard):
			return m.runExport(drawdto.TargetClipboard)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		}

		if !countKey(msg) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.count, cmd = m.count.Update(msg)
	return m, cmd
}

// countKey admits digits, signs and editing keys into the count field.
func countKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '-' && r != '+' {
				return false
			}
		}
		return true
	}
	return false
}

// ─── actions ──────────────────────────────────────────────────────────────────

func (m Model) runDraw(count string) (tea.Model, tea.Cmd) {
	out, err := m.draw.Draw(context.Background(), count)
	if err != nil {
		m.reject("draw", err)
		return m, nil
	}
	m.drawn, m.remaining = out.Drawn, out.Remaining
	values := make([]string, len(out.Balls))
	for i, b := range out.Balls {
		values[i] = fmt.Sprint(b.Value)
	}
	m.status = fmt.Sprintf("drew %s", strings.Join(values, ", "))
	return m, revealTick()
}

func (m Model) runClear() (tea.Model, tea.Cmd) {
	if err := m.draw.Clear(context.Background()); err != nil {
		m.status = "clear failed: " + err.Error()
		return m, nil
	}
	m.drawn, m.remaining = 0, domain.Capacity
	m.status = "cleared"
	return m, nil
}

func (m Model) runExport(target string) (tea.Model, tea.Cmd) {
	out, err := m.draw.Export(context.Background(), target)
	if err != nil {
		m.reject("export", err)
		return m, nil
	}
	m.status = "exported " + out.Location
	return m, nil
}

func (m Model) runStatus() (tea.Model, tea.Cmd) {
	st, err := m.draw.Status(context.Background())
	if err != nil {
		m.status = "status failed: " + err.Error()
		return m, nil
	}
	m.drawn, m.remaining = st.Drawn, st.Remaining
	m.status = fmt.Sprintf("session %s: %d drawn, %d remaining", shortID(st.SessionID), st.Drawn, st.Remaining)
	return m, nil
}

// reject shows validation errors as a blocking notice and everything else
// on the status line.
func (m *Model) reject(action string, err error) {
	notice, ok := drawfeedback.Feedback(err)
	if !ok {
		m.status = action + " failed: " + err.Error()
		return
	}
	m.notice = notice.Message
	if notice.ResetCount > 0 {
		m.count.SetValue(fmt.Sprint(notice.ResetCount))
	}
}

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	switch parts[0] {
	case "draw":
		count := m.count.Value()
		if len(parts) >= 2 {
			count = parts[1]
			m.count.SetValue(count)
		}
		return m.runDraw(count)
	case "clear":
		return m.runClear()
	case "export":
		return m.runExport(drawdto.TargetFile)
	case "export:clipboard":
		return m.runExport(drawdto.TargetClipboard)
	case "status":
		return m.runStatus()
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

func revealTick() tea.Cmd {
	return tea.Tick(domain.StaggerStep, func(t time.Time) tea.Msg {
		return revealTickMsg(t)
	})
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.notice != "":
		box := theme.Notice.Render(m.notice + "\n\n" + theme.Muted.Render("enter: ok"))
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, box)
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.renderBody(contentH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	title := theme.Title.Render("numdraw")
	rule := theme.Muted.Render(fmt.Sprintf("  %d–%d · up to %d per draw", domain.MinNumber, domain.MaxNumber, domain.MaxPerDraw))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(title+rule) + "\n"
}

func (m Model) renderBody(height int) string {
	paneW := max(m.width-2, 20)
	inner := paneW - theme.Pane.GetHorizontalFrameSize()
	tray := theme.PaneActive.Width(paneW - 2).Render(m.tray.View(inner))
	body := lipgloss.JoinVertical(lipgloss.Left, m.count.View(), "", tray)
	return lipgloss.NewStyle().Height(height).Render(body)
}

func (m Model) renderStatusBar() string {
	left := theme.Hot.Render(fmt.Sprintf("● %d/%d", m.drawn, domain.Capacity)) + "  " + m.status
	right := theme.Muted.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
