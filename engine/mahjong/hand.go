package mahjong

import (
	"slices"
)

const (
	HandSizeWaiting = 13 // 等牌时
	HandSizeDrawn   = 14 // 刚摸完牌
)

// Hand34 按种类计数的手牌，是向听搜索的唯一输入
type Hand34 [NumTileTypes]uint8

// Hand34FromTiles 按种类计数，同种牌超过 4 张时报错
func Hand34FromTiles(tiles []TileType) (Hand34, error) {
	var h Hand34
	for _, t := range tiles {
		if !t.IsValid() {
			return h, newEngineError(ErrInvalidTile, "count", t, 0)
		}
		if h[t] >= CopiesPerType {
			return h, newEngineError(ErrInvalidCount, "count", t, int(h[t])+1)
		}
		h[t]++
	}
	return h, nil
}

func (h Hand34) Total() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// Validate 每种牌必须在 [0,4]；strict 时总张数必须是 13 或 14
func (h Hand34) Validate(strict bool) error {
	for i, c := range h {
		if c > CopiesPerType {
			return newEngineError(ErrInvalidCount, "validate", TileType(i), int(c))
		}
	}
	if strict {
		if n := h.Total(); n != HandSizeWaiting && n != HandSizeDrawn {
			return newEngineError(ErrHandSize, "validate", -1, n)
		}
	}
	return nil
}

// Tiles 展开成有序的牌列表
func (h Hand34) Tiles() []TileType {
	out := make([]TileType, 0, h.Total())
	for i, c := range h {
		for j := 0; j < int(c); j++ {
			out = append(out, TileType(i))
		}
	}
	return out
}

func (h Hand34) key() string {
	var b [NumTileTypes]byte
	for i := 0; i < NumTileTypes; i++ {
		b[i] = byte(h[i])
	}
	return string(b[:])
}

// Hand 有序的手牌多重集，顺序即摸牌顺序
type Hand struct {
	tiles []TileType
}

func NewHand(tiles ...TileType) (*Hand, error) {
	h := &Hand{tiles: make([]TileType, 0, HandSizeDrawn)}
	for _, t := range tiles {
		if err := h.Add(t); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Add 加入一张牌，第 5 张同种牌直接报错
func (h *Hand) Add(t TileType) error {
	if !t.IsValid() {
		return newEngineError(ErrInvalidTile, "add", t, 0)
	}
	if n := h.Count(t); n >= CopiesPerType {
		return newEngineError(ErrInvalidCount, "add", t, n+1)
	}
	h.tiles = append(h.tiles, t)
	return nil
}

// Remove 移除最后摸入的一张同种牌
func (h *Hand) Remove(t TileType) error {
	for i := len(h.tiles) - 1; i >= 0; i-- {
		if h.tiles[i] == t {
			h.tiles = slices.Delete(h.tiles, i, i+1)
			return nil
		}
	}
	return newEngineError(ErrTileAbsent, "remove", t, 0)
}

func (h *Hand) Count(t TileType) int {
	n := 0
	for _, x := range h.tiles {
		if x == t {
			n++
		}
	}
	return n
}

func (h *Hand) Contains(t TileType) bool {
	return slices.Contains(h.tiles, t)
}

func (h *Hand) Len() int {
	return len(h.tiles)
}

// Tiles 返回副本，调用方修改不影响手牌
func (h *Hand) Tiles() []TileType {
	return slices.Clone(h.tiles)
}

func (h *Hand) Sorted() []TileType {
	out := slices.Clone(h.tiles)
	slices.Sort(out)
	return out
}

func (h *Hand) Clone() *Hand {
	return &Hand{tiles: slices.Clone(h.tiles)}
}

func (h *Hand) Counts() Hand34 {
	var c Hand34
	for _, t := range h.tiles {
		c[t]++
	}
	return c
}

// Equal 逐张比较，顺序也要相同
func (h *Hand) Equal(other *Hand) bool {
	return slices.Equal(h.tiles, other.tiles)
}
