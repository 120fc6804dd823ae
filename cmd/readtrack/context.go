package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"readtrack/internal/config"
	"readtrack/internal/eventlog"
	"readtrack/internal/faults"
	"readtrack/internal/journal"
	"readtrack/internal/logging"
	"readtrack/internal/shelfstore"
	"readtrack/internal/tracker"
)

type globalFlags struct {
	config  string
	shelf   string
	events  bool
	verbose bool
}

type commandContext struct {
	flags     *globalFlags
	sessionID string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logger        *slog.Logger
	journal       *journal.Journal
	tracker       *tracker.Tracker
	eventsPrinted bool
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{
		flags:     flags,
		sessionID: uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if shelf := strings.TrimSpace(c.flags.shelf); shelf != "" {
			expanded, err := config.ExpandPath(shelf)
			if err != nil {
				c.configErr = fmt.Errorf("resolve --shelf: %w", err)
				return
			}
			cfg.Paths.ShelfFile = expanded
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// runContext tags the command context with the session and command name.
func (c *commandContext) runContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = faults.WithSessionID(ctx, c.sessionID)
	return faults.WithCommand(ctx, cmd.Name())
}

func (c *commandContext) ensureLogger(cmd *cobra.Command) (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, c.sessionID, c.flags.verbose, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

// ensureJournal opens the journal when it is enabled. A nil journal with a
// nil error means the journal is disabled.
func (c *commandContext) ensureJournal(cmd *cobra.Command) (*journal.Journal, error) {
	if c.journal != nil {
		return c.journal, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Journal.Enabled {
		return nil, nil
	}
	j, err := journal.Open(c.runContext(cmd), cfg)
	if err != nil {
		return nil, faults.Wrap(faults.ErrIOFailure, "open journal", cfg.JournalPath(), err)
	}
	c.journal = j
	return j, nil
}

// ensureTracker builds the tracker and loads the shelf document once per
// invocation.
func (c *commandContext) ensureTracker(cmd *cobra.Command) (*tracker.Tracker, error) {
	if c.tracker != nil {
		return c.tracker, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger(cmd)
	if err != nil {
		return nil, err
	}
	ctx := c.runContext(cmd)

	store, err := shelfstore.New(
		cfg.Paths.ShelfFile,
		shelfstore.WithBackup(cfg.Shelf.Backup),
		shelfstore.WithLockTimeout(cfg.LockTimeout()),
	)
	if err != nil {
		return nil, err
	}

	opts := []tracker.Option{
		tracker.WithLogger(logger),
		tracker.WithSessionID(c.sessionID),
	}
	j, err := c.ensureJournal(cmd)
	switch {
	case err != nil:
		logging.WarnWithContext(logging.WithContext(ctx, logger), "journal unavailable", "journal_open",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run readtrack doctor"),
			logging.String(logging.FieldImpact, "progress updates are not recorded in the journal"),
		)
	case j != nil:
		opts = append(opts, tracker.WithJournal(j))
	}

	tr := tracker.New(store, eventlog.New(), opts...)
	if err := tr.Open(ctx); err != nil {
		return nil, err
	}
	c.tracker = tr
	return tr, nil
}

// persist saves the shelf after a mutating command when autosave is on.
func (c *commandContext) persist(cmd *cobra.Command, tr *tracker.Tracker) error {
	if !tr.Dirty() {
		return nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !cfg.Shelf.Autosave {
		fmt.Fprintln(out, "Changes not saved (shelf.autosave is off)")
		return nil
	}
	if err := tr.Save(c.runContext(cmd)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %d books to %s\n", tr.Shelf().BookCount(), cfg.Paths.ShelfFile)
	return nil
}

// finish prints the event log when requested and releases the journal.
func (c *commandContext) finish(cmd *cobra.Command) error {
	if c.flags.events && c.tracker != nil && !c.eventsPrinted {
		printEvents(cmd.OutOrStdout(), c.tracker.Events())
		c.eventsPrinted = true
	}
	if c.journal != nil {
		err := c.journal.Close()
		c.journal = nil
		if err != nil {
			return fmt.Errorf("close journal: %w", err)
		}
	}
	return nil
}

func printEvents(w io.Writer, events *eventlog.Log) {
	if events.Len() == 0 {
		fmt.Fprintln(w, "No events logged")
		return
	}
	_, _ = events.WriteTo(w)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
