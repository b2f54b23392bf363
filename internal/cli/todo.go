package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

func newTodoCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Open the to-do list, or manage it with a subcommand",
		Long: `tada todo - a to-do list

Without a subcommand the interactive list opens: type and press enter to add,
ctrl+t toggles, ctrl+d deletes, ctrl+x clears completed, tab switches filter.

Examples:
  tada todo add "Buy milk"
  tada todo ls --filter active
  tada todo toggle 2
  tada todo rm 3
  tada todo clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withStore(func(s *todo.Store) error {
				err := tui.Run(tui.NewTodo(s), cmd.InOrStdin(), cmd.OutOrStdout())
				warnStorage(cmd.ErrOrStderr(), s)
				return err
			})
		},
	}
	cmd.AddCommand(
		newTodoAddCmd(e),
		newTodoListCmd(e),
		newTodoToggleCmd(e),
		newTodoRemoveCmd(e),
		newTodoClearCmd(e),
	)
	return cmd
}

func newTodoAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new item (text can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withStore(func(s *todo.Store) error {
				if err := s.Add(strings.Join(args, " ")); err != nil {
					return errors.New(s.ErrorMessage())
				}
				items := s.Items()
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d", items[len(items)-1].ID))
				warnStorage(cmd.ErrOrStderr(), s)
				return nil
			})
		},
	}
}

func newTodoListCmd(e *env) *cobra.Command {
	var (
		group  bool
		filter string
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withStore(func(s *todo.Store) error {
				if filter != "" {
					f, err := model.ParseFilter(filter)
					if err != nil {
						return err
					}
					s.SetFilter(f)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderList(s, group))
				warnStorage(cmd.ErrOrStderr(), s)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	cmd.Flags().StringVar(&filter, "filter", "", "show all, active or completed items")
	return cmd
}

func newTodoToggleCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Toggle done for the item with id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withStore(func(s *todo.Store) error {
				it, err := lookup(s, args[0])
				if err != nil {
					return err
				}
				s.Toggle(it.ID)
				it, _ = s.Lookup(it.ID)
				state := "active"
				if it.Completed {
					state = "done"
				}
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("#%d is %s", it.ID, state))
				warnStorage(cmd.ErrOrStderr(), s)
				return nil
			})
		},
	}
}

func newTodoRemoveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove the item with id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withStore(func(s *todo.Store) error {
				it, err := lookup(s, args[0])
				if err != nil {
					return err
				}
				s.Delete(it.ID)
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("removed #%d", it.ID))
				warnStorage(cmd.ErrOrStderr(), s)
				return nil
			})
		},
	}
}

func newTodoClearCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every completed item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withStore(func(s *todo.Store) error {
				before := len(s.Items())
				s.ClearCompleted()
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("cleared %d", before-len(s.Items())))
				warnStorage(cmd.ErrOrStderr(), s)
				return nil
			})
		},
	}
}

func lookup(s *todo.Store, arg string) (model.Item, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return model.Item{}, fmt.Errorf("not a number: %s", arg)
	}
	it, ok := s.Lookup(id)
	if !ok {
		return model.Item{}, fmt.Errorf("no item with id %d (run `tada todo ls` to see ids)", id)
	}
	return it, nil
}

// warnStorage tells the user the last change only lives in memory.
func warnStorage(w io.Writer, s *todo.Store) {
	if err := s.LastStorageError(); err != nil {
		ui.Fail(w, "not saved: "+err.Error())
	}
}

// -------------- rendering helpers --------------

func renderList(s *todo.Store, group bool) string {
	t := ui.Current()
	all := s.Items()
	active := s.ActiveCount()
	done := len(all) - active

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), active,
		t.Accent.Render("Total"), len(all),
	)
	lines := []string{header, t.Muted.Render(ui.ProgressBar(done, len(all), 28)), ""}

	items := s.FilteredItems()
	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "", t.Muted.Render(fmt.Sprintf("%d left · filter: %s", active, s.Filter())))
	return ui.Panel(lines)
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fmt.Sprintf("%s %s", t.Muted.Render(fmt.Sprintf("%3d.", it.ID)), tui.ItemLine(it)))
	}
	return out
}

func groupLines(items []model.Item) []string {
	t := ui.Current()
	var pend, done []model.Item
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
