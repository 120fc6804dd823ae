package main

import (
	"fmt"
	"strings"
)

// shellVerb is one entry of the shell dispatch table. maxArgs < 0 means
// unbounded.
type shellVerb struct {
	name    string
	aliases []string
	usage   string
	summary string
	minArgs int
	maxArgs int
	run     func(s *shellSession, args []string) error
}

type shellVerbTable struct {
	verbs  []shellVerb
	byName map[string]int
}

func (t *shellVerbTable) lookup(name string) (shellVerb, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return shellVerb{}, false
	}
	return t.verbs[idx], true
}

func newShellVerbs() *shellVerbTable {
	verbs := []shellVerb{
		{
			name: "add", usage: "add TITLE PAGES [GENRES]", summary: "add a book; genres separated by ;",
			minArgs: 2, maxArgs: 3,
			run: func(s *shellSession, args []string) error {
				genres := ""
				if len(args) == 3 {
					genres = args[2]
				}
				return addBook(s.cmd, s.ctx, s.tr, args[0], args[1], genres)
			},
		},
		{
			name: "list", aliases: []string{"ls"}, usage: "list", summary: "list every book",
			maxArgs: 0,
			run: func(s *shellSession, _ []string) error {
				return listBooks(s.cmd, s.tr, "", false)
			},
		},
		{
			name: "tagged", usage: "tagged GENRE", summary: "list books tagged with GENRE",
			minArgs: 1, maxArgs: 1,
			run: func(s *shellSession, args []string) error {
				return listBooks(s.cmd, s.tr, strings.TrimSpace(args[0]), false)
			},
		},
		{
			name: "genres", usage: "genres", summary: "show genre tags with counts",
			maxArgs: 0,
			run: func(s *shellSession, _ []string) error {
				showGenres(s.cmd, s.tr.Shelf())
				return nil
			},
		},
		{
			name: "progress", usage: "progress TITLE PAGES", summary: "record pages read",
			minArgs: 2, maxArgs: 2,
			run: func(s *shellSession, args []string) error {
				return updateProgress(s.cmd, s.ctx, s.tr, args[0], args[1])
			},
		},
		{
			name: "tag", usage: "tag TITLE TAGS", summary: "add genre tags separated by ;",
			minArgs: 2, maxArgs: 2,
			run: func(s *shellSession, args []string) error {
				return tagBook(s.cmd, s.ctx, s.tr, args[0], args[1])
			},
		},
		{
			name: "report", usage: "report", summary: "summarize reading progress",
			maxArgs: 0,
			run: func(s *shellSession, _ []string) error {
				return showReport(s.cmd, s.tr, false)
			},
		},
		{
			name: "save", usage: "save", summary: "write the shelf file",
			maxArgs: 0,
			run: func(s *shellSession, _ []string) error {
				if err := s.tr.Save(s.ctx.runContext(s.cmd)); err != nil {
					return err
				}
				fmt.Fprintf(s.out, "Saved %d books\n", s.tr.Shelf().BookCount())
				return nil
			},
		},
		{
			name: "load", usage: "load", summary: "reload the shelf file, dropping unsaved changes",
			maxArgs: 0,
			run: func(s *shellSession, _ []string) error {
				if err := s.tr.Load(s.ctx.runContext(s.cmd)); err != nil {
					return err
				}
				fmt.Fprintf(s.out, "Loaded %d books\n", s.tr.Shelf().BookCount())
				return nil
			},
		},
		{
			name: "events", usage: "events", summary: "print the event log so far",
			maxArgs: 0,
			run: func(s *shellSession, _ []string) error {
				printEvents(s.out, s.tr.Events())
				return nil
			},
		},
		{
			name: "help", aliases: []string{"?"}, usage: "help", summary: "show this list",
			maxArgs: -1,
			run: func(s *shellSession, _ []string) error {
				s.verbs.writeHelp(s)
				return nil
			},
		},
		{
			name: "quit", aliases: []string{"exit", "q"}, usage: "quit", summary: "leave the shell",
			maxArgs: 0,
			run: func(s *shellSession, _ []string) error {
				s.quit = true
				return nil
			},
		},
	}

	table := &shellVerbTable{verbs: verbs, byName: make(map[string]int, len(verbs)*2)}
	for i, v := range verbs {
		table.byName[v.name] = i
		for _, alias := range v.aliases {
			table.byName[alias] = i
		}
	}
	return table
}

func (t *shellVerbTable) writeHelp(s *shellSession) {
	width := 0
	for _, v := range t.verbs {
		width = max(width, len(v.usage))
	}
	fmt.Fprintln(s.out, "Commands (quote titles with spaces):")
	for _, v := range t.verbs {
		fmt.Fprintf(s.out, "  %-*s  %s\n", width, v.usage, v.summary)
	}
}
