package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"readtrack/internal/faults"
	"readtrack/internal/tracker"
)

const shellPrompt = "readtrack> "

func newShellCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run an interactive session; the event log is printed on exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := ctx.ensureTracker(cmd)
			if err != nil {
				return err
			}
			session := &shellSession{
				cmd:   cmd,
				ctx:   ctx,
				tr:    tr,
				out:   cmd.OutOrStdout(),
				verbs: newShellVerbs(),
			}
			return session.run(cmd.InOrStdin())
		},
	}
}

type shellSession struct {
	cmd   *cobra.Command
	ctx   *commandContext
	tr    *tracker.Tracker
	out   io.Writer
	verbs *shellVerbTable
	quit  bool
}

func (s *shellSession) run(in io.Reader) error {
	fmt.Fprintf(s.out, "readtrack shell: %d books loaded. Type help for commands.\n", s.tr.Shelf().BookCount())

	scanner := bufio.NewScanner(in)
	for !s.quit {
		fmt.Fprint(s.out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		if err := s.execute(scanner.Text()); err != nil {
			fmt.Fprintln(s.out, "Error:", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read shell input: %w", err)
	}
	return s.close()
}

// execute runs one input line. Errors are reported to the user and do not end
// the session.
func (s *shellSession) execute(line string) error {
	words, err := splitShellWords(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	name := strings.ToLower(words[0])
	verb, ok := s.verbs.lookup(name)
	if !ok {
		return faults.Invalid("shell", "unknown command %q (type help)", words[0])
	}
	args := words[1:]
	if len(args) < verb.minArgs || (verb.maxArgs >= 0 && len(args) > verb.maxArgs) {
		return faults.Invalid("shell", "usage: %s", verb.usage)
	}
	return verb.run(s, args)
}

// close saves pending changes when autosave is on, then prints the event log.
func (s *shellSession) close() error {
	var saveErr error
	if s.tr.Dirty() {
		cfg, err := s.ctx.ensureConfig()
		switch {
		case err != nil:
			saveErr = err
		case cfg.Shelf.Autosave:
			saveErr = s.ctx.persist(s.cmd, s.tr)
		default:
			fmt.Fprintln(s.out, "Unsaved changes discarded (use save before quit)")
		}
	}
	fmt.Fprintln(s.out, "Event log:")
	printEvents(s.out, s.tr.Events())
	s.ctx.eventsPrinted = true
	return saveErr
}

// splitShellWords splits line with POSIX shell quoting rules. Semicolons are
// ordinary characters, so unquoted tag lists such as Fiction;SciFi stay one
// word, and a # at the start of a word begins a comment.
func splitShellWords(line string) ([]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, faults.Wrap(faults.ErrInvalidInput, "shell", fmt.Sprintf("cannot parse %q", line), err)
	}
	return words, nil
}
