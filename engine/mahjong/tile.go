package mahjong

import "strconv"

type TileType int

const (
	// 万子 (0-8)
	Man1 TileType = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	// 筒子 (9-17)
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子 (18-26)
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9

	// 字牌 (27-33)
	East
	South
	West
	North
	White
	Green
	Red
)

const (
	NumTileTypes  = 34  // 牌的种类数
	NumSuitTypes  = 27  // 数牌种类数，之后全是字牌
	SuitSize      = 9   // 每种花色的数牌数
	CopiesPerType = 4   // 每种牌的张数
	NumTiles      = 136 // 一副牌总张数
)

// suitLetters 花色记号，顺序与 Suit() 返回值一致，z 为字牌
const suitLetters = "mpsz"

// thirteenOrphans 国士无双用到的 13 种幺九牌
var thirteenOrphans = [13]TileType{
	Man1, Man9,
	Pin1, Pin9,
	So1, So9,
	East, South, West, North,
	White, Green, Red,
}

func (t TileType) IsValid() bool {
	return t >= 0 && t < NumTileTypes
}

func (t TileType) IsNumbered() bool {
	return t >= Man1 && t <= So9
}

func (t TileType) IsHonor() bool {
	return t >= East && t <= Red
}

// Suit 0 万 1 筒 2 索 3 字
func (t TileType) Suit() int {
	return int(t) / SuitSize
}

// Rank 数牌 1-9，字牌 1-7（东南西北白发中）
func (t TileType) Rank() int {
	if t.IsHonor() {
		return int(t-East) + 1
	}
	return int(t)%SuitSize + 1
}

// IsTerminalOrHonor 幺九牌
func (t TileType) IsTerminalOrHonor() bool {
	if t.IsHonor() {
		return true
	}
	r := t.Rank()
	return r == 1 || r == 9
}

// String 短记法，如 5m、7z
func (t TileType) String() string {
	if !t.IsValid() {
		return "?"
	}
	return strconv.Itoa(t.Rank()) + string(suitLetters[t.Suit()])
}

// AllTileTypes 按序返回 34 种牌
func AllTileTypes() []TileType {
	out := make([]TileType, NumTileTypes)
	for i := range out {
		out[i] = TileType(i)
	}
	return out
}
