package mahjong

import (
	"context"
	"errors"
	"testing"
)

func TestOptimize_Tanki(t *testing.T) {
	hand := mustHand(t, "1111m234p567p789s5z")
	before := hand.Clone()

	out, err := NewDiscardOptimizer(nil).Optimize(context.Background(), hand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hand.Equal(before) {
		t.Fatalf("hand mutated: %s -> %s", before, hand)
	}

	if n := len(out.List()); n != 11 {
		// 1m 2p3p4p 5p6p7p 7s8s9s 5z
		t.Fatalf("expected 11 distinct discards, got %d", n)
	}
	if best := out.BestShanten(); best != 0 {
		t.Fatalf("best shanten expected 0, got %d", best)
	}

	d := out[Man1]
	if !d.Present || d.Shanten != 0 || d.Acceptance.String() != "5z" {
		t.Fatalf("discard 1m expected shanten 0 waiting 5z, got %+v (%s)", d, d.Acceptance)
	}
	d = out[White]
	if d.Shanten != 0 || d.Acceptance.Len() != 0 {
		t.Fatalf("discard 5z expected shanten 0 with no acceptance, got %+v", d)
	}
	if d = out[Pin2]; d.Shanten != 1 {
		t.Fatalf("discard 2p expected shanten 1, got %d", d.Shanten)
	}
	if out[Man2].Present {
		t.Fatalf("2m is not in hand")
	}
}

func TestOptimize_WorkersAgree(t *testing.T) {
	hands := []string{
		"1123445m2367p789s",
		"1111m234p567p789s5z",
		"147m258p369s12345z",
		"119m19p19s1234567z",
	}
	for _, s := range hands {
		hand := mustHand(t, s)
		seq, err := NewDiscardOptimizer(nil).Optimize(context.Background(), hand)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		par, err := NewDiscardOptimizer(nil, WithWorkers(4)).Optimize(context.Background(), hand)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if seq != par {
			t.Fatalf("%s: parallel result differs from sequential", s)
		}
	}
}

func TestOptimize_HandSize(t *testing.T) {
	_, err := NewDiscardOptimizer(nil).Optimize(context.Background(), mustHand(t, "123456789m11p45s"))
	if !errors.Is(err, ErrHandSize) {
		t.Fatalf("expected ErrHandSize, got %v", err)
	}
}

func TestOptimize_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		_, err := NewDiscardOptimizer(nil, WithWorkers(workers)).Optimize(ctx, mustHand(t, "1123445m2367p789s"))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("workers=%d expected context.Canceled, got %v", workers, err)
		}
	}
}

func BenchmarkOptimize(b *testing.B) {
	hand := mustHand(b, "1123445m2367p789s")
	o := NewDiscardOptimizer(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = o.Optimize(context.Background(), hand)
	}
}
