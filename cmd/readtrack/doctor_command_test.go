package main

import (
	"testing"

	"readtrack/internal/testsupport"
)

func TestDoctorPassesOnFreshConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	out := mustRunCLI(t, env, "doctor")
	requireContains(t, out, "== readtrack doctor ==")
	requireContains(t, out, "Data directory:")
	requireContains(t, out, "[OK]")
	requireContains(t, out, "not created yet")
	requireNotContains(t, out, "[ERROR]")
}

func TestDoctorFailsOnMalformedShelf(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.cfg.Paths.ShelfFile, "{")

	out, _, err := runCLI(t, env, "doctor")
	if err == nil {
		t.Fatal("expected doctor to fail")
	}
	requireContains(t, out, "Shelf file:")
	requireContains(t, out, "[ERROR]")
}

func TestDoctorReportsDisabledJournal(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutJournal())
	out := mustRunCLI(t, env, "doctor")
	requireContains(t, out, "[INFO] disabled")
}
