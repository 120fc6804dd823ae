package main

import (
	"encoding/json"
	"strings"
	"testing"

	"readtrack/internal/testsupport"
)

func TestJournalRecordsProgress(t *testing.T) {
	env := setupCLITestEnv(t)
	mustRunCLI(t, env, "add", "Dune", "100")
	mustRunCLI(t, env, "add", "Hamlet", "200")
	mustRunCLI(t, env, "progress", "Dune", "10")
	mustRunCLI(t, env, "progress", "Hamlet", "20")
	mustRunCLI(t, env, "progress", "Dune", "40")

	out := mustRunCLI(t, env, "journal")
	requireContains(t, out, "3 ENTRIES")
	requireContains(t, out, "40/100")
	requireContains(t, out, "20/200")
	if strings.Index(out, "40/100") > strings.Index(out, "10/100") {
		t.Fatalf("expected newest entry first:\n%s", out)
	}

	out = mustRunCLI(t, env, "journal", "--title", "Dune", "--limit", "1", "--json")
	var views []journalView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode journal json %q: %v", out, err)
	}
	if len(views) != 1 || views[0].Title != "Dune" || views[0].PagesRead != 40 || views[0].Progress != 40 {
		t.Fatalf("unexpected journal views: %+v", views)
	}
	if views[0].SessionID == "" {
		t.Fatal("expected session id on journal entry")
	}
}

func TestJournalEmpty(t *testing.T) {
	env := setupCLITestEnv(t)
	requireContains(t, mustRunCLI(t, env, "journal"), "No progress recorded yet")
}

func TestJournalDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutJournal())
	mustRunCLI(t, env, "add", "Dune", "100")
	mustRunCLI(t, env, "progress", "Dune", "10")

	_, _, err := runCLI(t, env, "journal")
	if err == nil || !strings.Contains(err.Error(), "journal is disabled") {
		t.Fatalf("expected disabled error, got %v", err)
	}
}

func TestShortSession(t *testing.T) {
	tests := map[string]string{
		"":                                     "-",
		"abc":                                  "abc",
		"0f8fad5b-d9cb-469f-a165-70867728950e": "0f8fad5b",
	}
	for in, want := range tests {
		if got := shortSession(in); got != want {
			t.Errorf("shortSession(%q) = %q, want %q", in, got, want)
		}
	}
}
