package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"readtrack/internal/journal"
)

const journalTimeLayout = "2006-01-02 15:04"

func newJournalCommand(ctx *commandContext) *cobra.Command {
	var title string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recorded progress updates, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			j, err := ctx.ensureJournal(cmd)
			if err != nil {
				return err
			}
			if j == nil {
				return errors.New("journal is disabled (set journal.enabled = true in the config)")
			}
			entries, err := j.List(ctx.runContext(cmd), journal.Filter{Title: strings.TrimSpace(title), Limit: limit})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, journalViews(entries))
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No progress recorded yet")
				return nil
			}
			fmt.Fprintln(out, journalTable(entries))
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Only show entries for this title")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

type journalView struct {
	ID         int64   `json:"id"`
	SessionID  string  `json:"sessionId"`
	Title      string  `json:"title"`
	PagesRead  int     `json:"pagesRead"`
	TotalPages int     `json:"totalPages"`
	Progress   float64 `json:"progress"`
	RecordedAt string  `json:"recordedAt"`
}

func journalViews(entries []journal.Entry) []journalView {
	views := make([]journalView, 0, len(entries))
	for _, e := range entries {
		views = append(views, journalView{
			ID:         e.ID,
			SessionID:  e.SessionID,
			Title:      e.Title,
			PagesRead:  e.PagesRead,
			TotalPages: e.TotalPages,
			Progress:   e.Progress,
			RecordedAt: e.RecordedAt.UTC().Format(time.RFC3339),
		})
	}
	return views
}

func journalTable(entries []journal.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.RecordedAt.In(time.Local).Format(journalTimeLayout),
			e.Title,
			fmt.Sprintf("%d/%d", e.PagesRead, e.TotalPages),
			formatPercent(e.Progress),
			shortSession(e.SessionID),
		})
	}
	return renderTable(tableView{
		Headers: []string{"When", "Title", "Pages", "Progress", "Session"},
		Aligns:  []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		Rows:    rows,
		Footer:  []string{strconv.Itoa(len(entries)) + " entries"},
	})
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
