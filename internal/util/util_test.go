package util

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct{ in, min, max, want int }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.in, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", c.in, c.min, c.max, got, c.want)
		}
	}
	if AtLeast(0, 1) != 1 || AtLeast(7, 1) != 7 {
		t.Fatalf("AtLeast returned unexpected values")
	}
}

func TestDataDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	if got := DataDir("focusclock"); got != filepath.Join("/xdg/data", "focusclock") {
		t.Fatalf("unexpected data dir %q", got)
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := ConfigDir("focusclock"); got != filepath.Join("/xdg/config", "focusclock") {
		t.Fatalf("unexpected config dir %q", got)
	}
}

func TestDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/tester")
	if got := DataDir("focusclock"); got != filepath.Join("/home/tester", ".local", "share", "focusclock") {
		t.Fatalf("unexpected data dir %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got := ExpandHome("~/notes"); got != filepath.Join("/home/tester", "notes") {
		t.Fatalf("unexpected expansion %q", got)
	}
	if got := ExpandHome("$HOME/x"); got != "/home/tester/x" {
		t.Fatalf("unexpected expansion %q", got)
	}
	if got := ExpandHome("/abs"); got != "/abs" {
		t.Fatalf("unexpected expansion %q", got)
	}
}

func TestLogHelpers(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(prev)
		SetDebug(false)
	})

	LogError("ctx", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nil error to log nothing")
	}
	LogError("persist presets", errors.New("disk full"))
	if !strings.Contains(buf.String(), "persist presets: disk full") {
		t.Fatalf("unexpected log output %q", buf.String())
	}

	buf.Reset()
	Debugf("tick %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected debug output to be suppressed")
	}
	SetDebug(true)
	Debugf("tick %d", 2)
	if !strings.Contains(buf.String(), "debug: tick 2") {
		t.Fatalf("unexpected debug output %q", buf.String())
	}
}
