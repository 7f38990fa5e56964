package mahjong

import "strings"

// TileSet 34 种牌的成员集合
type TileSet [NumTileTypes]bool

func (s *TileSet) Add(t TileType) {
	s[t] = true
}

func (s TileSet) Contains(t TileType) bool {
	return t.IsValid() && s[t]
}

func (s TileSet) Len() int {
	n := 0
	for _, ok := range s {
		if ok {
			n++
		}
	}
	return n
}

// Tiles 按种类升序
func (s TileSet) Tiles() []TileType {
	out := make([]TileType, 0, s.Len())
	for i, ok := range s {
		if ok {
			out = append(out, TileType(i))
		}
	}
	return out
}

func (s TileSet) String() string {
	return FormatTiles(s.Tiles())
}

// FormatTiles 有序列表转紧凑记法，同花色连写：123m45p
func FormatTiles(tiles []TileType) string {
	var b strings.Builder
	for i, t := range tiles {
		b.WriteByte(byte('0' + t.Rank()))
		if i == len(tiles)-1 || tiles[i+1].Suit() != t.Suit() {
			b.WriteByte(suitLetters[t.Suit()])
		}
	}
	return b.String()
}
