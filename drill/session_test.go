package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"nanikiru/common/config"
)

func newTestSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Drill.Seed = 11
	out := new(bytes.Buffer)
	return newSession(cfg, out), out
}

func TestSession_CustomHandFlow(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	if _, err := s.handle(ctx, "next"); err != errNoSelection {
		t.Fatalf("expected errNoSelection, got %v", err)
	}
	if _, err := s.handle(ctx, "hand 1111m234p567p789s5z"); err != nil {
		t.Fatalf("hand: %v", err)
	}
	if !strings.Contains(out.String(), "听牌") {
		t.Fatalf("expected tenpai in output: %s", out.String())
	}

	out.Reset()
	if _, err := s.handle(ctx, "1m"); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if s.correct != 1 || s.total != 1 {
		t.Fatalf("expected 1/1, got %d/%d", s.correct, s.total)
	}
	if _, err := s.handle(ctx, "5z"); err == nil {
		t.Fatalf("second choice in the same turn should fail")
	}

	if _, err := s.handle(ctx, "next"); err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.selected != nil || s.round.Hand().Len() != 14 {
		t.Fatalf("next should discard, draw and reset the selection")
	}
}

func TestSession_Commands(t *testing.T) {
	s, out := newTestSession(t)
	ctx := context.Background()

	if _, err := s.handle(ctx, "5m"); err == nil {
		t.Fatalf("choosing before a round should fail")
	}
	if _, err := s.handle(ctx, "new"); err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := s.handle(ctx, "hand 123m"); err == nil {
		t.Fatalf("13 tiles should be rejected")
	}
	if _, err := s.handle(ctx, "foo"); err == nil {
		t.Fatalf("unknown command should fail")
	}
	out.Reset()
	if quit, _ := s.handle(ctx, "help"); quit || !strings.Contains(out.String(), "next") {
		t.Fatalf("help should print commands")
	}
	if quit, _ := s.handle(ctx, "quit"); !quit {
		t.Fatalf("quit should end the session")
	}
}
