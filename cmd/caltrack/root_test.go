package caltrack

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\noutput: %s", args, err, buf.String())
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCommand(t, "--help")
	if out == "" {
		t.Fatalf("expected help output")
	}
}

func TestGuestLoggingRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")

	out := runCommand(t, "--db", path, "food", "categories")
	if !strings.Contains(out, "cat-proteins") {
		t.Fatalf("expected categories listed, got:\n%s", out)
	}

	out = runCommand(t, "--db", path,
		"log", "add", "--food", "default-0", "--grams", "200", "--meal", "lunch", "--date", "2026-08-30")
	if !strings.Contains(out, "Basmati Rice") {
		t.Fatalf("expected logged food named, got:\n%s", out)
	}

	out = runCommand(t, "--db", path, "today", "--date", "2026-08-30")
	if !strings.Contains(out, "Total: 300 kcal") {
		t.Fatalf("expected 300 kcal total, got:\n%s", out)
	}
}

func TestTDEECommand(t *testing.T) {
	out := runCommand(t, "tdee",
		"--weight", "70", "--height", "175", "--age", "30",
		"--gender", "male", "--activity", "moderate")
	if !strings.Contains(out, "TDEE: 2556 kcal/day") {
		t.Fatalf("unexpected tdee output:\n%s", out)
	}
	if !strings.Contains(out, "BMR: 1649 kcal/day") {
		t.Fatalf("unexpected bmr output:\n%s", out)
	}
}

func TestMacrosCacheFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack.db")

	out := runCommand(t, "--db", path, "macros", "calc", "--tdee", "2556", "--goal", "lose")
	if !strings.Contains(out, "Target: 2056 kcal/day") {
		t.Fatalf("unexpected macros output:\n%s", out)
	}

	out = runCommand(t, "--db", path, "macros", "show")
	if !strings.Contains(out, "Target: 2056 kcal/day") {
		t.Fatalf("expected cached recommendation, got:\n%s", out)
	}
}
