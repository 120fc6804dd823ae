package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"readtrack/internal/preflight"
	"readtrack/internal/tracker"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"

	statusLabelWidth = 18
	statusIndent     = "  "
)

var statusStyles = map[statusKind]struct{ tag, color string }{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", "\x1b[32m"},
	statusWarn:  {"WARN", "\x1b[33m"},
	statusError: {"ERROR", "\x1b[31m"},
}

// statusLine is one "Label: [KIND] message" row of a status block.
type statusLine struct {
	label   string
	kind    statusKind
	message string
}

func (l statusLine) render(colorize bool) string {
	style := statusStyles[l.kind]
	status := "[" + style.tag + "]"
	if l.message != "" {
		status += " " + l.message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, l.label+":", status)
	if colorize && style.color != "" {
		return style.color + line + ansiReset
	}
	return line
}

// statusBlock is a titled group of status lines, as printed by report and doctor.
type statusBlock struct {
	title string
	lines []statusLine
}

func (b *statusBlock) add(label string, kind statusKind, message string) {
	b.lines = append(b.lines, statusLine{label: label, kind: kind, message: message})
}

func (b statusBlock) render(colorize bool) string {
	header := fmt.Sprintf("== %s ==", strings.TrimSpace(b.title))
	rule := strings.Repeat("-", len(header))
	if colorize {
		header = ansiBlue + header + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	rows := make([]string, 0, len(b.lines)+2)
	rows = append(rows, header, rule)
	for _, l := range b.lines {
		rows = append(rows, l.render(colorize))
	}
	return strings.Join(rows, "\n")
}

func reportBlock(r tracker.Report) statusBlock {
	b := statusBlock{title: "Reading report"}
	b.add("Books", statusInfo, strconv.Itoa(r.BookCount))
	b.add("Finished", statusInfo, fmt.Sprintf("%d of %d", r.FinishedCount, r.BookCount))
	b.add("Genres", statusInfo, strconv.Itoa(r.GenreCount))
	b.add("Pages read", statusInfo, fmt.Sprintf("%d (%d remaining)", r.PagesRead, r.PagesRemaining))
	b.add("Overall progress", progressKind(r.AggregateProgress), formatPercent(r.AggregateProgress))
	if len(r.WithoutPages) > 0 {
		b.add("No page count", statusWarn, strings.Join(r.WithoutPages, ", ")+" (counted as 0%)")
	}
	return b
}

func doctorBlock(results []preflight.Result, journalEnabled bool) statusBlock {
	b := statusBlock{title: "readtrack doctor"}
	for _, r := range results {
		kind := statusOK
		if !r.Passed {
			kind = statusError
		}
		b.add(r.Name, kind, r.Detail)
	}
	if !journalEnabled {
		b.add("Journal", statusInfo, "disabled")
	}
	return b
}

// progressKind maps a percentage to a status colour for summary lines.
func progressKind(progress float64) statusKind {
	switch {
	case progress >= 100:
		return statusOK
	case progress > 0:
		return statusInfo
	default:
		return statusWarn
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
