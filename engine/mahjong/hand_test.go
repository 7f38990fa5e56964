package mahjong

import (
	"errors"
	"testing"
)

func TestHand_AddRemove(t *testing.T) {
	h := mustHand(t, "1112m")
	if err := h.Add(Man1); err != nil {
		t.Fatalf("fourth copy: %v", err)
	}
	if err := h.Add(Man1); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("fifth copy expected ErrInvalidCount, got %v", err)
	}
	if err := h.Add(TileType(-1)); !errors.Is(err, ErrInvalidTile) {
		t.Fatalf("expected ErrInvalidTile, got %v", err)
	}
	if err := h.Remove(East); !errors.Is(err, ErrTileAbsent) {
		t.Fatalf("expected ErrTileAbsent, got %v", err)
	}
	if err := h.Remove(Man2); err != nil {
		t.Fatalf("remove 2m: %v", err)
	}
	if h.Len() != 4 || h.Count(Man1) != 4 || h.Contains(Man2) {
		t.Fatalf("unexpected hand %s", h)
	}
}

func TestHand_CloneIsIndependent(t *testing.T) {
	h := mustHand(t, "123m")
	c := h.Clone()
	if err := c.Add(East); err != nil {
		t.Fatalf("add: %v", err)
	}
	if h.Len() != 3 || h.Equal(c) {
		t.Fatalf("clone shares storage with original")
	}
	tiles := h.Tiles()
	tiles[0] = Red
	if h.Tiles()[0] != Man1 {
		t.Fatalf("Tiles should return a copy")
	}
}

func TestHand34_Validate(t *testing.T) {
	h := mustCounts(t, "123m")
	if err := h.Validate(false); err != nil {
		t.Fatalf("non strict: %v", err)
	}
	if err := h.Validate(true); !errors.Is(err, ErrHandSize) {
		t.Fatalf("strict expected ErrHandSize, got %v", err)
	}
	if _, err := Hand34FromTiles([]TileType{Red, Red, Red, Red, Red}); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}
