package patchui

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateLineRuneSafe(t *testing.T) {
	line := "＋ osc → filter"
	got := truncateLine(line, 4)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) != 4 {
		t.Errorf("expected 4 runes, got %d (%q)", utf8.RuneCountInString(got), got)
	}
}

func TestTruncateLineShortAndDegenerate(t *testing.T) {
	if got := truncateLine("abc", 10); got != "abc" {
		t.Errorf("short line must pass through, got %q", got)
	}
	if got := truncateLine("＋ a → b", 0); got != "" {
		t.Errorf("max 0 must yield empty, got %q", got)
	}
	if got := truncateLine("x", -3); got != "" {
		t.Errorf("negative max must yield empty, got %q", got)
	}
}
