package main

import (
	"context"
	"testing"
	"time"
)

func TestGetenb(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"yes", false, true},
		{" ON ", false, true},
		{"0", true, false},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PEERCHESS_TEST_BOOL", tt.value)
			if got := getenb("PEERCHESS_TEST_BOOL", tt.def); got != tt.want {
				t.Fatalf("getenb(%q, %v) = %v", tt.value, tt.def, got)
			}
		})
	}
}

func TestGetenvFallbacks(t *testing.T) {
	t.Setenv("PEERCHESS_TEST_PORT", "4000")
	t.Setenv("PEERCHESS_TEST_TIMEOUT", "90s")
	t.Setenv("PEERCHESS_TEST_BAD", "soon")
	if got := getenvInt("PEERCHESS_TEST_PORT", 3000); got != 4000 {
		t.Fatalf("port = %d", got)
	}
	if got := getenvInt("PEERCHESS_TEST_BAD", 3000); got != 3000 {
		t.Fatalf("bad int = %d, want default", got)
	}
	if got := getenvDuration("PEERCHESS_TEST_TIMEOUT", time.Minute); got != 90*time.Second {
		t.Fatalf("timeout = %s", got)
	}
	if got := getenvDuration("PEERCHESS_TEST_BAD", time.Minute); got != time.Minute {
		t.Fatalf("bad duration = %s, want default", got)
	}
	if got := getenv("PEERCHESS_TEST_UNSET", "./log"); got != "./log" {
		t.Fatalf("getenv = %q", got)
	}
}

func TestRunUntilKeepsFrontAfterGameEnds(t *testing.T) {
	done := make(chan error, 1)
	done <- nil
	quit := make(chan struct{})
	stopped := false
	go func() {
		time.Sleep(10 * time.Millisecond)
		close(quit)
	}()
	err := runUntil(context.Background(), done, func() error { <-quit; return nil }, func() { stopped = true })
	if err != nil || stopped {
		t.Fatalf("err=%v stopped=%v", err, stopped)
	}
}
