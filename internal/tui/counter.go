// Package tui holds the Bubble Tea front ends for the counter and the
// to-do list. Models only translate key presses into store operations and
// render whatever the store holds afterwards.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tada/internal/counter"
	"github.com/idilsaglam/tada/internal/ui"
)

type counterKeys struct {
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

func (k counterKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrement, k.Reset, k.Increment, k.Quit}
}

func (k counterKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

func newCounterKeys() counterKeys {
	return counterKeys{
		Increment: key.NewBinding(key.WithKeys("+", "=", "k", "up"), key.WithHelp("+", "increment")),
		Decrement: key.NewBinding(key.WithKeys("-", "j", "down"), key.WithHelp("-", "decrement")),
		Reset:     key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r", "reset")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// CounterModel is the counter screen.
type CounterModel struct {
	store *counter.Store
	keys  counterKeys
	help  help.Model
	width int
}

func NewCounter(s *counter.Store) CounterModel {
	return CounterModel{store: s, keys: newCounterKeys(), help: help.New()}
}

func (m CounterModel) Init() tea.Cmd { return nil }

func (m CounterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Increment):
			m.store.Increment()
		case key.Matches(msg, m.keys.Decrement):
			m.store.Decrement()
		case key.Matches(msg, m.keys.Reset):
			m.store.Reset()
		}
	}
	return m, nil
}

func (m CounterModel) View() string {
	t := ui.Current()
	count := t.Accent.Bold(true).Render(fmt.Sprintf("%d", m.store.Count()))
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Decrement.Render("-"), "  ",
		t.Reset.Render("Reset"), "  ",
		t.Increment.Render("+"),
	)
	body := lipgloss.JoinVertical(lipgloss.Center,
		t.Title.Render("Simple Counter"),
		"",
		count,
		"",
		buttons,
	)
	return strings.Join([]string{ui.Panel([]string{body}), m.help.View(m.keys)}, "\n")
}
