package mahjong

import "testing"

func mustHand(t testing.TB, s string) *Hand {
	t.Helper()
	h, err := ParseHand(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return h
}

func mustCounts(t testing.TB, s string) Hand34 {
	t.Helper()
	return mustHand(t, s).Counts()
}
