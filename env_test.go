package main

import (
	"testing"
	"time"
)

func TestEnvBool(t *testing.T) {
	t.Setenv("GOPHERDIAG_TEST_FLAG", "true")
	if !envBool("GOPHERDIAG_TEST_FLAG", false) {
		t.Errorf("expected true")
	}
	t.Setenv("GOPHERDIAG_TEST_FLAG", "yes")
	if envBool("GOPHERDIAG_TEST_FLAG", false) {
		t.Errorf("only the literals true and false count")
	}
	if !envBool("GOPHERDIAG_TEST_UNSET", true) {
		t.Errorf("expected the default for an unset variable")
	}
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("GOPHERDIAG_TEST_TIMEOUT", "30s")
	if got := envDuration("GOPHERDIAG_TEST_TIMEOUT", 0); got != 30*time.Second {
		t.Errorf("expected 30s, got %s", got)
	}
	t.Setenv("GOPHERDIAG_TEST_TIMEOUT", "soon")
	if got := envDuration("GOPHERDIAG_TEST_TIMEOUT", time.Minute); got != time.Minute {
		t.Errorf("expected the default for a malformed value, got %s", got)
	}
	if got := envDuration("GOPHERDIAG_TEST_UNSET", time.Second); got != time.Second {
		t.Errorf("expected the default for an unset variable, got %s", got)
	}
}
