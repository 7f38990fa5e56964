package mahjong

import (
	"errors"
	"fmt"
)

// 引擎错误都属于调用方的集成错误，不做重试
var (
	ErrInvalidTile    = errors.New("invalid tile type")
	ErrInvalidCount   = errors.New("invalid tile count")
	ErrHandSize       = errors.New("invalid hand size")
	ErrTileAbsent     = errors.New("tile not in hand")
	ErrTallyUnderflow = errors.New("tally underflow")
	ErrTallyOverflow  = errors.New("tally overflow")
	ErrBadNotation    = errors.New("bad hand notation")
	ErrWallEmpty      = errors.New("wall is empty")
)

// EngineError 携带出错的牌与数量，Kind 为上面的哨兵错误之一
type EngineError struct {
	Kind  error
	Op    string
	Tile  TileType
	Count int
}

func (e *EngineError) Error() string {
	if e.Tile.IsValid() {
		return fmt.Sprintf("%s: %v (tile=%s count=%d)", e.Op, e.Kind, e.Tile, e.Count)
	}
	return fmt.Sprintf("%s: %v (count=%d)", e.Op, e.Kind, e.Count)
}

func (e *EngineError) Unwrap() error {
	return e.Kind
}

func newEngineError(kind error, op string, tile TileType, count int) error {
	return &EngineError{Kind: kind, Op: op, Tile: tile, Count: count}
}

// IsInputError 错误来自调用方给的牌或记法，而不是引擎本身
func IsInputError(err error) bool {
	var ee *EngineError
	if errors.As(err, &ee) {
		return true
	}
	return errors.Is(err, ErrBadNotation) || errors.Is(err, ErrInvalidTile)
}
