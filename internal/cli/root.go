// Package cli wires the cobra commands to the stores and the TUIs.
package cli

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/store/backends"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

// env is what every subcommand shares. Storage is opened on first use so
// the counter never touches the data directory.
type env struct {
	configPath string
	storage    string
	dataDir    string
	theme      string

	cfg      config.Config
	log      *clog.Logger
	closeLog func() error
	backend  store.Backend
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "tada",
		Short:         "A tiny counter and to-do list for the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	f := root.PersistentFlags()
	f.StringVar(&e.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tada/config.toml)")
	f.StringVar(&e.storage, "storage", "", "storage backend: json, sqlite or memory")
	f.StringVar(&e.dataDir, "data-dir", "", "directory holding the persisted list and log")
	f.StringVar(&e.theme, "theme", "", "color theme: classic, neon or mono")

	root.AddCommand(newCounterCmd(e), newTodoCmd(e))
	return root
}

// Execute runs the root command and reports any failure on stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
	}
	return err
}

func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if e.storage != "" {
		cfg.StorageBackend = e.storage
	}
	if e.dataDir != "" {
		cfg.DataDir = e.dataDir
	}
	if e.theme != "" {
		cfg.Theme = e.theme
	}
	cfg.Normalize(cmd.ErrOrStderr())
	e.cfg = cfg
	ui.SetTheme(cfg.Theme)

	l, closeLog, err := logging.New(logging.Config{
		Path:    cfg.LogPath(),
		Level:   cfg.LogLevel,
		Command: cmd.CommandPath(),
	})
	if err != nil {
		// logging is best effort
		fmt.Fprintf(cmd.ErrOrStderr(), "logging disabled: %v\n", err)
		l, closeLog = logging.Discard(), func() error { return nil }
	}
	e.log, e.closeLog = l, closeLog
	return nil
}

func (e *env) teardown() error {
	var err error
	if e.backend != nil {
		err = e.backend.Close()
		e.backend = nil
	}
	if e.closeLog != nil {
		if cerr := e.closeLog(); err == nil {
			err = cerr
		}
		e.closeLog = nil
	}
	return err
}

// withStore opens the configured backend, loads the list, runs fn and
// releases everything whether or not fn fails.
func (e *env) withStore(fn func(*todo.Store) error) (err error) {
	defer func() {
		if cerr := e.teardown(); err == nil {
			err = cerr
		}
	}()
	b, err := backends.Open(e.cfg.StorageBackend, e.cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", e.cfg.StorageBackend, err)
	}
	e.backend = b
	s := todo.New(b,
		todo.WithLogger(e.log.With("store", "todo", "backend", e.cfg.StorageBackend)),
		todo.WithFilter(e.cfg.Filter()),
	)
	return fn(s)
}
