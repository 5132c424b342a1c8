package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"numdraw/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

// Command is one palette entry. Name is what gets typed; Args is shown
// after it as a usage hint.
type Command struct {
	Name string
	Args string
	Info string
}

// Commands must stay in sync with app.Model.executePalette.
var Commands = []Command{
	{Name: "draw", Args: "<count>", Info: "draw 1-5 new numbers"},
	{Name: "clear", Info: "forget every drawn number"},
	{Name: "export", Info: "write the session as CSV"},
	{Name: "export:clipboard", Info: "copy the session CSV"},
	{Name: "status", Info: "show session counters"},
}

var (
	paletteBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	commandStyle  = lipgloss.NewStyle().Foreground(theme.Subtext0)
	selectedStyle = lipgloss.NewStyle().Foreground(theme.Peach).Bold(true)
	infoStyle     = lipgloss.NewStyle().Foreground(theme.Overlay0)
)

// Palette is a one-line command prompt with prefix completion.
type Palette struct {
	input    textinput.Model
	visible  bool
	width    int
	selected int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "draw 3"
	ti.CharLimit = 64
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows an empty prompt and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.selected = 0
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

// Matches returns the commands whose name starts with the first word typed.
func (p Palette) Matches() []Command {
	word := strings.ToLower(strings.TrimSpace(p.input.Value()))
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	var out []Command
	for _, c := range Commands {
		if strings.HasPrefix(c.Name, word) {
			out = append(out, c)
		}
	}
	return out
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	switch key.String() {
	case "esc":
		p.close()
		return p, func() tea.Msg { return PaletteCancelMsg{} }
	case "enter":
		input := strings.TrimSpace(p.input.Value())
		p.close()
		return p, func() tea.Msg { return PaletteSubmitMsg{Input: input} }
	case "up", "ctrl+p":
		if p.selected > 0 {
			p.selected--
		}
		return p, nil
	case "down", "ctrl+n":
		if p.selected < len(p.Matches())-1 {
			p.selected++
		}
		return p, nil
	case "tab":
		p.complete()
		return p, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.selected = 0
	return p, cmd
}

// complete replaces the typed word with the selected command, keeping any
// arguments already entered.
func (p *Palette) complete() {
	matches := p.Matches()
	if len(matches) == 0 {
		return
	}
	c := matches[min(p.selected, len(matches)-1)]
	_, args, _ := strings.Cut(strings.TrimLeft(p.input.Value(), " "), " ")
	value := c.Name
	if args != "" || c.Args != "" {
		value += " " + args
	}
	p.input.SetValue(value)
	p.input.CursorEnd()
	p.selected = 0
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command") + "\n")
	sb.WriteString(p.input.View() + "\n")

	matches := p.Matches()
	if len(matches) > 0 {
		sb.WriteString("\n")
	}
	for i, c := range matches {
		usage := c.Name
		if c.Args != "" {
			usage += " " + c.Args
		}
		line := commandStyle.Render("  " + usage)
		if i == p.selected {
			line = selectedStyle.Render("› " + usage)
		}
		sb.WriteString(line + "  " + infoStyle.Render(c.Info) + "\n")
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteBox.Width(w - 2).Render(strings.TrimRight(sb.String(), "\n"))
}
