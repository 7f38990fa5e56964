package mahjong

// TileTally 每种牌尚未见到的张数，范围 [0,4]
type TileTally [NumTileTypes]uint8

// NewFullTally 一副完整的牌
func NewFullTally() TileTally {
	var t TileTally
	for i := range t {
		t[i] = CopiesPerType
	}
	return t
}

// NewUnseenTally 全部牌减去手牌
func NewUnseenTally(hand *Hand) (TileTally, error) {
	t := NewFullTally()
	for _, tile := range hand.tiles {
		if err := t.Remove(tile); err != nil {
			return t, err
		}
	}
	return t, nil
}

// Remove 一张牌变为可见
func (t *TileTally) Remove(tile TileType) error {
	if !tile.IsValid() {
		return newEngineError(ErrInvalidTile, "tally remove", tile, 0)
	}
	if t[tile] == 0 {
		return newEngineError(ErrTallyUnderflow, "tally remove", tile, 0)
	}
	t[tile]--
	return nil
}

// Add 一张牌回到未见状态
func (t *TileTally) Add(tile TileType) error {
	if !tile.IsValid() {
		return newEngineError(ErrInvalidTile, "tally add", tile, 0)
	}
	if t[tile] >= CopiesPerType {
		return newEngineError(ErrTallyOverflow, "tally add", tile, int(t[tile]))
	}
	t[tile]++
	return nil
}

func (t TileTally) Count(tile TileType) int {
	if !tile.IsValid() {
		return 0
	}
	return int(t[tile])
}

func (t TileTally) Total() int {
	n := 0
	for _, c := range t {
		n += int(c)
	}
	return n
}

// CountOf 集合中所有牌的剩余张数之和
func (t TileTally) CountOf(set TileSet) int {
	n := 0
	for i, ok := range set {
		if ok {
			n += int(t[i])
		}
	}
	return n
}
