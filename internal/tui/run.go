package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts m full screen and blocks until the user quits.
func Run(m tea.Model, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
