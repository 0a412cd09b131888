package handler

import (
	"testing"
	"time"
)

func TestParseDateParam(t *testing.T) {
	got, err := parseDateParam("2025-12-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || !got.Equal(time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v, want 2025-12-28", got)
	}

	got, err = parseDateParam("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("blank value should parse to nil, got %v", got)
	}

	if _, err := parseDateParam("28.12.2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestParseStringParam(t *testing.T) {
	if got := parseStringParam(" Food "); got == nil || *got != "Food" {
		t.Errorf("got %v, want Food", got)
	}
	if got := parseStringParam(""); got != nil {
		t.Errorf("empty value should parse to nil, got %v", got)
	}
}

func TestParseIDParam(t *testing.T) {
	id, err := parseIDParam("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("got %d, want 42", id)
	}

	for _, bad := range []string{"", "abc", "-1", "4294967296"} {
		if _, err := parseIDParam(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
