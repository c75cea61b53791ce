package tui

import (
	"errors"
	"testing"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{0: "00:00", 59: "00:59", 90: "01:30", 1500: "25:00", 3600: "1:00:00", 3725: "1:02:05", -4: "00:00"}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseClock(t *testing.T) {
	good := map[string]int{"25": 1500, "1:30": 90, " 0:05 ": 5, "90:00": 5400, "0": 0}
	for in, want := range good {
		got, err := ParseClock(in)
		if err != nil || got != want {
			t.Fatalf("ParseClock(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"", "abc", "1:xx", "1:60", "1:-1", "-5", "1441", "1440:01", "200000000"} {
		if _, err := ParseClock(in); err == nil {
			t.Fatalf("ParseClock(%q) should fail", in)
		}
	}
	if got, err := ParseClock("1440"); err != nil || got != 24*60*60 {
		t.Fatalf("ParseClock(1440) = %d, %v; want a full day", got, err)
	}
	if _, err := ParseClock("200000000"); !errors.Is(err, errLongClock) {
		t.Fatalf("expected errLongClock, got %v", err)
	}
	if splitClock(3, 5) != "3:05" {
		t.Fatalf("unexpected splitClock output")
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("default") })
	if !SetTheme("dracula") || CurrentTheme.Name != "Dracula" {
		t.Fatalf("expected dracula theme")
	}
	if SetTheme("nope") {
		t.Fatalf("unknown theme should be rejected")
	}
}

func TestHelpLineSkipsUnlabelledBindings(t *testing.T) {
	line := defaultKeys().HelpLine()
	if line == "" {
		t.Fatalf("expected help text")
	}
	if VersionLabel() == "" {
		t.Fatalf("expected version label")
	}
}
