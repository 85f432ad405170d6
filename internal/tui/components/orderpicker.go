package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OrderPicker lets the operator build an execution order by toggling files
// in the sequence they should run. Confirming with nothing picked selects
// the natural order.
type OrderPicker struct {
	title     string
	files     []string
	cursor    int
	picked    []int
	keyMap    pickerKeyMap
	styles    pickerStyles
	submitted bool
	cancelled bool
}

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	All    key.Binding
	Submit key.Binding
	Quit   key.Binding
}

type pickerStyles struct {
	Title      lipgloss.Style
	Cursor     lipgloss.Style
	Picked     lipgloss.Style
	Unselected lipgloss.Style
	Help       lipgloss.Style
}

func defaultPickerStyles() pickerStyles {
	return pickerStyles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Picked:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Unselected: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "x"),
			key.WithHelp("space", "pick/unpick"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "natural order"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// NewOrderPicker creates a picker over files, listed in discovery order.
func NewOrderPicker(title string, files []string) OrderPicker {
	return OrderPicker{
		title:  title,
		files:  files,
		keyMap: defaultPickerKeyMap(),
		styles: defaultPickerStyles(),
	}
}

// Init implements tea.Model.
func (p OrderPicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p OrderPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keyMap.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, p.keyMap.Down):
		if p.cursor < len(p.files)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, p.keyMap.Toggle):
		if len(p.files) > 0 {
			p.picked = toggle(p.picked, p.cursor)
		}
	case key.Matches(keyMsg, p.keyMap.All):
		p.picked = nil
		p.submitted = true
		return p, tea.Quit
	case key.Matches(keyMsg, p.keyMap.Submit):
		p.submitted = true
		return p, tea.Quit
	case key.Matches(keyMsg, p.keyMap.Quit):
		p.cancelled = true
		return p, tea.Quit
	}
	return p, nil
}

// toggle removes idx from picked if present, otherwise appends it.
// A fresh slice is returned so copies of the model never share state.
func toggle(picked []int, idx int) []int {
	out := make([]int, 0, len(picked)+1)
	found := false
	for _, p := range picked {
		if p == idx {
			found = true
			continue
		}
		out = append(out, p)
	}
	if !found {
		out = append(out, idx)
	}
	return out
}

// position returns the 1-based position of idx in the picked sequence, or 0.
func (p OrderPicker) position(idx int) int {
	for i, v := range p.picked {
		if v == idx {
			return i + 1
		}
	}
	return 0
}

// View implements tea.Model.
func (p OrderPicker) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Title.Render(p.title))
	b.WriteString("\n\n")

	for i, name := range p.files {
		cursor := "  "
		if i == p.cursor {
			cursor = p.styles.Cursor.Render("> ")
		}

		slot := "[  ]"
		style := p.styles.Unselected
		if pos := p.position(i); pos > 0 {
			slot = "[" + padLeft(strconv.Itoa(pos), 2) + "]"
			style = p.styles.Picked
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(slot + " " + strconv.Itoa(i+1) + ". " + name))
		b.WriteString("\n")
	}

	b.WriteString(p.styles.Help.Render("\n↑/↓ navigate • space pick • a all in order • enter confirm • q quit"))
	return b.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// Order returns the picked sequence as 1-based file numbers separated by
// spaces, or "0" (natural order) when nothing was picked.
func (p OrderPicker) Order() string {
	if len(p.picked) == 0 {
		return "0"
	}
	parts := make([]string, len(p.picked))
	for i, idx := range p.picked {
		parts[i] = strconv.Itoa(idx + 1)
	}
	return strings.Join(parts, " ")
}

// Cancelled returns true if the operator quit without confirming.
func (p OrderPicker) Cancelled() bool {
	return p.cancelled
}

// Submitted returns true if the operator confirmed an order.
func (p OrderPicker) Submitted() bool {
	return p.submitted
}
