package mahjong

import (
	"errors"
	"testing"
)

func TestCalculateShanten(t *testing.T) {
	cases := []struct {
		name string
		hand string
		want int
		form Form
	}{
		{"complete sequences", "123456789m123p11z", -1, FormNormal},
		{"four triplets and pair", "111m222p333s55777z", -1, FormNormal},
		{"seven pairs tenpai", "115599m2266p11s7z", 0, FormSevenPairs},
		{"thirteen orphans tenpai", "19m19p19s1234567z", 0, FormThirteenOrphans},
		{"isolated singles", "147m258p369s1234z", 6, FormSevenPairs},
		{"ryanmen tenpai", "123456789m11p45s", 0, FormNormal},
		{"tanki after four melds", "111m234p567p789s5z", 0, FormNormal},
		{"iishanten", "1111m34p567p789s5z", 1, FormNormal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := CalculateShanten(mustCounts(t, c.hand))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Shanten != c.want {
				t.Fatalf("%s shanten expected %d, got %d", c.hand, c.want, r.Shanten)
			}
			if r.Form != c.form {
				t.Fatalf("%s form expected %s, got %s", c.hand, c.form, r.Form)
			}
		})
	}
}

func TestShantenNormal_IsolatedSingles(t *testing.T) {
	// 没有任何搭子的 13 张，一般型为 8 向听
	got, shape := ShantenNormal(mustCounts(t, "147m258p369s1234z"))
	if got != 8 {
		t.Fatalf("normal shanten expected 8, got %d", got)
	}
	if shape != (Shape{}) {
		t.Fatalf("expected empty shape, got %+v", shape)
	}
}

func TestShantenNormal_ExtraPairs(t *testing.T) {
	// 6 个对子：1 个雀头 + 5 个按搭子算，上限 4
	got, shape := ShantenNormal(mustCounts(t, "115599m2266p11s7z"))
	if got != 3 {
		t.Fatalf("normal shanten expected 3, got %d", got)
	}
	if shape.Pairs != 6 {
		t.Fatalf("expected 6 pairs, got %+v", shape)
	}
}

func TestShantenNormal_Shape(t *testing.T) {
	_, shape := ShantenNormal(mustCounts(t, "123456789m123p11z"))
	want := Shape{Sequences: 4, Pairs: 1}
	if shape != want {
		t.Fatalf("shape expected %+v, got %+v", want, shape)
	}
}

func TestShantenSpecialForms(t *testing.T) {
	if got := ShantenSevenPairs(mustCounts(t, "1111m2233p4455s6z")); got != 2 {
		// 四张同种只算一个对子，种类 6 需补 1
		t.Fatalf("seven pairs expected 2, got %d", got)
	}
	if got := ShantenThirteenOrphans(mustCounts(t, "119m19p19s123456z")); got != 0 {
		t.Fatalf("thirteen orphans expected 0, got %d", got)
	}
	if got := ShantenThirteenOrphans(mustCounts(t, "119m19p19s1234567z")); got != -1 {
		t.Fatalf("thirteen orphans agari expected -1, got %d", got)
	}
}

func TestCalculateShanten_Range(t *testing.T) {
	w := NewWall(42)
	for i := 0; i < 200; i++ {
		if w.Remaining() < HandSizeWaiting {
			w = NewWall(uint64(i))
		}
		h, _ := NewHand()
		if err := w.DrawInto(h, HandSizeWaiting); err != nil {
			t.Fatalf("draw: %v", err)
		}
		r, err := CalculateShanten(h.Counts())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Shanten < -1 || r.Shanten > 6 {
			t.Fatalf("%s shanten %d out of range", h, r.Shanten)
		}
	}
}

func TestCalculateShanten_InvalidCount(t *testing.T) {
	var h Hand34
	h[Man1] = 5
	_, err := CalculateShanten(h)
	if !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
	var ee *EngineError
	if !errors.As(err, &ee) || ee.Tile != Man1 || ee.Count != 5 {
		t.Fatalf("expected engine error on 1m with count 5, got %v", err)
	}
}

func TestCalculateShanten_DoesNotMutate(t *testing.T) {
	h := mustCounts(t, "1111m34p567p789s5z")
	before := h
	if _, err := CalculateShanten(h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != before {
		t.Fatalf("input counts mutated")
	}
}

func BenchmarkCalculateShanten(b *testing.B) {
	h := mustCounts(b, "1123445m2367p789s")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CalculateShanten(h)
	}
}

func TestShantenSevenPairs_FewKinds(t *testing.T) {
	// 四张同种只算一个对子，且只有 4 种牌，还差 3 种：6 - 3 + 3
	if got := ShantenSevenPairs(mustCounts(t, "1111m2222p3333s4z")); got != 6 {
		t.Fatalf("seven pairs expected 6, got %d", got)
	}
}
