package mahjong

import (
	"math/rand/v2"
)

// Wall 洗好的 136 张牌山，按顺序摸牌
type Wall struct {
	tiles []TileType
	index int // 当前摸牌位置
}

// NewWall 使用给定种子洗牌，种子相同则牌序相同
func NewWall(seed uint64) *Wall {
	w := &Wall{
		tiles: make([]TileType, 0, NumTiles),
	}
	w.initializeTiles()
	w.shuffle(seed)
	return w
}

func (w *Wall) shuffle(seed uint64) {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(w.tiles), func(i, j int) {
		w.tiles[i], w.tiles[j] = w.tiles[j], w.tiles[i]
	})
}

// NewWallWithout 去掉已经在手里的牌后洗牌，自定义手牌时用它继续摸牌
func NewWallWithout(seed uint64, held *Hand) (*Wall, error) {
	unseen, err := NewUnseenTally(held)
	if err != nil {
		return nil, err
	}
	w := &Wall{tiles: make([]TileType, 0, unseen.Total())}
	for t := Man1; t <= Red; t++ {
		for i := 0; i < unseen.Count(t); i++ {
			w.tiles = append(w.tiles, t)
		}
	}
	w.shuffle(seed)
	return w, nil
}

// NewWallFromTiles 指定牌序，主要用于测试与复盘
func NewWallFromTiles(tiles []TileType) *Wall {
	return &Wall{tiles: append([]TileType(nil), tiles...)}
}

func (w *Wall) initializeTiles() {
	w.tiles = w.tiles[:0]
	for t := Man1; t <= Red; t++ {
		for i := 0; i < CopiesPerType; i++ {
			w.tiles = append(w.tiles, t)
		}
	}
}

func (w *Wall) Remaining() int {
	return len(w.tiles) - w.index
}

// Draw 摸一张，牌山空时报 ErrWallEmpty
func (w *Wall) Draw() (TileType, error) {
	if w.index >= len(w.tiles) {
		return -1, ErrWallEmpty
	}
	t := w.tiles[w.index]
	w.index++
	return t, nil
}

// DrawN 连续摸 n 张，不足 n 张时报 ErrWallEmpty 且不消耗牌山
func (w *Wall) DrawN(n int) ([]TileType, error) {
	if n > w.Remaining() {
		return nil, ErrWallEmpty
	}
	out := append([]TileType(nil), w.tiles[w.index:w.index+n]...)
	w.index += n
	return out, nil
}

// DrawInto 连续摸 n 张加入手牌
func (w *Wall) DrawInto(hand *Hand, n int) error {
	for i := 0; i < n; i++ {
		t, err := w.Draw()
		if err != nil {
			return err
		}
		if err := hand.Add(t); err != nil {
			return err
		}
	}
	return nil
}
