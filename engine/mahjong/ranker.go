package mahjong

import (
	"slices"
)

// RankedDiscard 排序后的弃牌建议，Score 为进张中尚未见到的张数
type RankedDiscard struct {
	Discard    TileType   `json:"discard"`
	Shanten    int        `json:"shanten"`
	Score      int        `json:"score"`
	Acceptance []TileType `json:"acceptance"`
}

// Rank 按有效张给弃牌排序。
// 注意返回的不是全部候选：向听数大于 discards.BestShanten() 的打法（退向听）直接丢弃，
// 有效张为 0 的也丢弃；剩下的按有效张降序稳定排序，同分保持牌种升序。
// 需要全部候选时直接用 discards.List()。
func Rank(discards Discards, tally TileTally) []RankedDiscard {
	best := discards.BestShanten()
	out := make([]RankedDiscard, 0, HandSizeDrawn)
	for _, d := range discards.List() {
		if d.Shanten != best {
			continue
		}
		score := tally.CountOf(d.Acceptance)
		if score == 0 {
			continue
		}
		out = append(out, RankedDiscard{
			Discard:    d.Tile,
			Shanten:    d.Shanten,
			Score:      score,
			Acceptance: d.Acceptance.Tiles(),
		})
	}
	slices.SortStableFunc(out, func(a, b RankedDiscard) int {
		return b.Score - a.Score
	})
	return out
}

// TopScore 最高有效张数，没有建议时为 0
func TopScore(ranked []RankedDiscard) int {
	if len(ranked) == 0 {
		return 0
	}
	return ranked[0].Score
}

// IsBest tile 是否是并列最优的打法之一
func IsBest(ranked []RankedDiscard, tile TileType) bool {
	top := TopScore(ranked)
	for _, r := range ranked {
		if r.Score < top {
			break
		}
		if r.Discard == tile {
			return true
		}
	}
	return false
}
