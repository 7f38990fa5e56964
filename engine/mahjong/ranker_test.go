package mahjong

import (
	"context"
	"testing"
)

func discardOf(tile TileType, shanten int, accept ...TileType) Discard {
	d := Discard{Present: true, Tile: tile, Shanten: shanten}
	for _, a := range accept {
		d.Acceptance.Add(a)
	}
	return d
}

func TestRank_SortedAndStable(t *testing.T) {
	var ds Discards
	ds[Man1] = discardOf(Man1, 1, Man2)
	ds[Man5] = discardOf(Man5, 1, Pin1, Pin2)
	ds[Man9] = discardOf(Man9, 1, Pin5)
	ds[East] = discardOf(East, 1)
	ds[Pin9] = discardOf(Pin9, 2, So1, So2, So3)

	ranked := Rank(ds, NewFullTally())
	want := []struct {
		tile  TileType
		score int
	}{
		{Man5, 8},
		{Man1, 4},
		{Man9, 4},
	}
	if len(ranked) != len(want) {
		t.Fatalf("expected %d entries, got %+v", len(want), ranked)
	}
	for i, w := range want {
		if ranked[i].Discard != w.tile || ranked[i].Score != w.score {
			t.Fatalf("entry %d expected %s/%d, got %s/%d", i, w.tile, w.score, ranked[i].Discard, ranked[i].Score)
		}
	}
	if !IsBest(ranked, Man5) || IsBest(ranked, Man1) {
		t.Fatalf("only 5m should be best")
	}
}

func TestRank_DropsExhausted(t *testing.T) {
	var ds Discards
	ds[Man1] = discardOf(Man1, 0, Red)
	ds[Man2] = discardOf(Man2, 0, Man3)

	tally := NewFullTally()
	for i := 0; i < CopiesPerType; i++ {
		if err := tally.Remove(Red); err != nil {
			t.Fatalf("remove: %v", err)
		}
	}
	ranked := Rank(ds, tally)
	if len(ranked) != 1 || ranked[0].Discard != Man2 {
		t.Fatalf("expected only 2m, got %+v", ranked)
	}
}

func TestRank_Tanki(t *testing.T) {
	hand := mustHand(t, "1111m234p567p789s5z")
	ds, err := NewDiscardOptimizer(nil).Optimize(context.Background(), hand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tally, err := NewUnseenTally(hand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ranked := Rank(ds, tally)
	if len(ranked) != 1 {
		t.Fatalf("expected one ranked discard, got %+v", ranked)
	}
	r := ranked[0]
	if r.Discard != Man1 || r.Shanten != 0 || r.Score != 3 {
		t.Fatalf("expected 1m shanten 0 score 3, got %+v", r)
	}
	if len(r.Acceptance) != 1 || r.Acceptance[0] != White {
		t.Fatalf("expected acceptance [5z], got %v", r.Acceptance)
	}
	// 打出面子里的牌会退向听
	if ds[Pin2].Shanten <= r.Shanten {
		t.Fatalf("breaking a meld should not beat 1m")
	}
}

func TestRank_TiedHonors(t *testing.T) {
	hand := mustHand(t, "123456789m11p9s13z")
	ds, err := NewDiscardOptimizer(nil).Optimize(context.Background(), hand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tally, _ := NewUnseenTally(hand)
	ranked := Rank(ds, tally)

	if !IsBest(ranked, East) || !IsBest(ranked, West) {
		t.Fatalf("both isolated honors should tie for best: %+v", ranked)
	}
	if IsBest(ranked, So9) {
		t.Fatalf("9s should not be best: %+v", ranked)
	}
	if ranked[0].Discard != East {
		t.Fatalf("tie should keep ascending order, got %s first", ranked[0].Discard)
	}
}

func TestRank_OmitsRetreatingDiscards(t *testing.T) {
	var ds Discards
	ds[Man1] = discardOf(Man1, 0, Red)
	ds[Pin2] = discardOf(Pin2, 1, Man1, Man2, Man3, Pin1, Pin2)

	ranked := Rank(ds, NewFullTally())
	if len(ranked) != 1 || ranked[0].Discard != Man1 {
		t.Fatalf("higher-shanten discard should be left out even with more acceptance, got %+v", ranked)
	}
	if len(ds.List()) != 2 {
		t.Fatalf("List should still return every candidate")
	}
}
