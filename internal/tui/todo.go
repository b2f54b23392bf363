package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

type todoKeys struct {
	Submit     key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Clear      key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Up         key.Binding
	Down       key.Binding
	Quit       key.Binding
}

func (k todoKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Toggle, k.Delete, k.Clear, k.NextFilter, k.Quit}
}

func (k todoKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Toggle, k.Delete, k.Clear},
		{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Quit},
	}
}

func newTodoKeys() todoKeys {
	return todoKeys{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Toggle:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle")),
		Delete:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear completed")),
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous filter")),
		Up:         key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// TodoModel is the to-do list screen. The text input mirrors the store's
// pending input; the cursor indexes the filtered view.
type TodoModel struct {
	store  *todo.Store
	input  textinput.Model
	keys   todoKeys
	help   help.Model
	cursor int
}

func NewTodo(s *todo.Store) TodoModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.SetValue(s.PendingInput())
	ti.Focus()
	return TodoModel{store: s, input: ti, keys: newTodoKeys(), help: help.New()}
}

func (m TodoModel) Init() tea.Cmd { return textinput.Blink }

func (m TodoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 0)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			_ = m.store.Add(m.store.PendingInput())
			m.input.SetValue(m.store.PendingInput())
			return m, nil
		case key.Matches(msg, m.keys.NextFilter):
			m.store.SetFilter(m.store.Filter().Next())
			m.clampCursor()
			return m, nil
		case key.Matches(msg, m.keys.PrevFilter):
			m.store.SetFilter(m.store.Filter().Next().Next())
			m.clampCursor()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.store.FilteredItems())-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if it, ok := m.selected(); ok {
				m.store.Toggle(it.ID)
				m.clampCursor()
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if it, ok := m.selected(); ok {
				m.store.Delete(it.ID)
				m.clampCursor()
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.store.ClearCompleted()
			m.clampCursor()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetPendingInput(m.input.Value())
	return m, cmd
}

func (m TodoModel) selected() (model.Item, bool) {
	items := m.store.FilteredItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return model.Item{}, false
	}
	return items[m.cursor], true
}

// clampCursor keeps the cursor on the filtered view after it shrinks.
func (m *TodoModel) clampCursor() {
	n := len(m.store.FilteredItems())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m TodoModel) View() string {
	t := ui.Current()
	all := m.store.Items()
	active := m.store.ActiveCount()
	done := len(all) - active

	var lines []string
	lines = append(lines, fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), active,
		t.Accent.Render("Total"), len(all),
	))
	lines = append(lines, t.Muted.Render(ui.ProgressBar(done, len(all), 28)), "")
	lines = append(lines, m.input.View())
	if msg := m.store.ErrorMessage(); msg != "" {
		lines = append(lines, t.Error.Render(msg))
	}
	lines = append(lines, "")

	items := m.store.FilteredItems()
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for i, it := range items {
		prefix := "  "
		if i == m.cursor {
			prefix = t.Selected.Render("> ")
		}
		lines = append(lines, prefix+ItemLine(it))
	}

	lines = append(lines, "", m.footer(active))
	if err := m.store.LastStorageError(); err != nil {
		lines = append(lines, t.Error.Render("changes are not being saved: "+err.Error()))
	}
	return ui.Panel(lines) + "\n" + m.help.View(m.keys)
}

func (m TodoModel) footer(active int) string {
	t := ui.Current()
	noun := "items"
	if active == 1 {
		noun = "item"
	}
	tabs := make([]string, 0, 3)
	for _, f := range []model.Filter{model.FilterAll, model.FilterActive, model.FilterCompleted} {
		label := strings.ToUpper(f.String()[:1]) + f.String()[1:]
		if f == m.store.Filter() {
			tabs = append(tabs, t.Accent.Underline(true).Render(label))
		} else {
			tabs = append(tabs, t.Muted.Render(label))
		}
	}
	return fmt.Sprintf("%d %s left   %s", active, noun, strings.Join(tabs, "  "))
}

// ItemLine renders one item as "☐ text" or a struck-through "☑ text".
func ItemLine(it model.Item) string {
	t := ui.Current()
	text := ansi.Truncate(it.Text, 80, "...")
	if it.Completed {
		return t.Success.Render(t.BoxChecked) + " " + t.Done.Render(text)
	}
	return t.Muted.Render(t.BoxUnchecked) + " " + text
}
