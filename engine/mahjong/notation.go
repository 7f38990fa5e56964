package mahjong

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseTiles 解析紧凑记法 "123m456p789s1122z"，字牌 1z-7z 依次为东南西北白发中
func ParseTiles(s string) ([]TileType, error) {
	var (
		out     []TileType
		pending []int
	)
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r >= '1' && r <= '9':
			pending = append(pending, int(r-'0'))
		default:
			suit := strings.IndexRune(suitLetters, unicode.ToLower(r))
			if suit < 0 {
				return nil, fmt.Errorf("%w: unexpected %q in %q", ErrBadNotation, r, s)
			}
			if len(pending) == 0 {
				return nil, fmt.Errorf("%w: suit %q without ranks in %q", ErrBadNotation, r, s)
			}
			for _, rank := range pending {
				t, err := tileOf(suit, rank)
				if err != nil {
					return nil, fmt.Errorf("%w: %d%c in %q", ErrBadNotation, rank, r, s)
				}
				out = append(out, t)
			}
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: trailing ranks without suit in %q", ErrBadNotation, s)
	}
	return out, nil
}

// ParseHand 解析记法并校验每种牌不超过 4 张
func ParseHand(s string) (*Hand, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return nil, err
	}
	return NewHand(tiles...)
}

// ParseTile 单张牌，如 "5m"
func ParseTile(s string) (TileType, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return -1, err
	}
	if len(tiles) != 1 {
		return -1, fmt.Errorf("%w: want one tile, got %q", ErrBadNotation, s)
	}
	return tiles[0], nil
}

// ShortForm 排序后的紧凑记法
func (h *Hand) ShortForm() string {
	return FormatTiles(h.Sorted())
}

func (h *Hand) String() string {
	return h.ShortForm()
}

func (t TileType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, newEngineError(ErrInvalidTile, "marshal", t, 0)
	}
	return []byte(t.String()), nil
}

func (t *TileType) UnmarshalText(b []byte) error {
	v, err := ParseTile(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func tileOf(suit, rank int) (TileType, error) {
	if suit == 3 {
		if rank > 7 {
			return -1, ErrInvalidTile
		}
		return East + TileType(rank-1), nil
	}
	return TileType(suit*SuitSize + rank - 1), nil
}
