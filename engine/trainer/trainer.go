package trainer

import (
	"context"
	"errors"
	"fmt"

	"nanikiru/common/log"
	"nanikiru/engine/mahjong"
)

var (
	ErrRoundOver    = errors.New("trainer: wall exhausted, round over")
	ErrNotEvaluated = errors.New("trainer: hand not evaluated yet")
)

// Evaluation 当前 14 张手牌的分析结果
type Evaluation struct {
	Hand    string                  `json:"hand"`
	Result  mahjong.Result          `json:"result"`
	Ranked  []mahjong.RankedDiscard `json:"ranked"`
	Unseen  int                     `json:"unseen"`
	Remains int                     `json:"remains"` // 牌山剩余
}

// Complete 已经和了
func (e *Evaluation) Complete() bool {
	return e.Result.Shanten == -1
}

// Verdict 一次选择的判定
type Verdict struct {
	Tile     mahjong.TileType
	Correct  bool
	TopScore int
	Best     []mahjong.TileType
}

// Round 一局何切练习：发 14 张，每次打一张摸一张
type Round struct {
	hand      *mahjong.Hand
	wall      *mahjong.Wall
	searcher  *mahjong.Searcher
	optimizer *mahjong.DiscardOptimizer
	eval      *Evaluation
}

// NewRound 从牌山发 14 张
func NewRound(wall *mahjong.Wall, searcher *mahjong.Searcher, optimizer *mahjong.DiscardOptimizer) (*Round, error) {
	hand, err := mahjong.NewHand()
	if err != nil {
		return nil, err
	}
	if err := wall.DrawInto(hand, mahjong.HandSizeDrawn); err != nil {
		if errors.Is(err, mahjong.ErrWallEmpty) {
			return nil, ErrRoundOver
		}
		return nil, err
	}
	return NewRoundWithHand(hand, wall, searcher, optimizer)
}

// NewRoundWithHand 指定 14 张起手，wall 里不应再包含这些牌
func NewRoundWithHand(hand *mahjong.Hand, wall *mahjong.Wall, searcher *mahjong.Searcher, optimizer *mahjong.DiscardOptimizer) (*Round, error) {
	if hand.Len() != mahjong.HandSizeDrawn {
		return nil, fmt.Errorf("new round: %w", mahjong.ErrHandSize)
	}
	if searcher == nil {
		searcher = mahjong.NewSearcher()
	}
	if optimizer == nil {
		optimizer = mahjong.NewDiscardOptimizer(searcher)
	}
	return &Round{
		hand:      hand.Clone(),
		wall:      wall,
		searcher:  searcher,
		optimizer: optimizer,
	}, nil
}

// Hand 当前手牌的副本
func (r *Round) Hand() *mahjong.Hand {
	return r.hand.Clone()
}

// Last 最近一次 Evaluate 的结果，没有则为 nil
func (r *Round) Last() *Evaluation {
	return r.eval
}

// Evaluate 计算向听数与弃牌排序，未见牌为全部牌减去手牌
func (r *Round) Evaluate(ctx context.Context) (*Evaluation, error) {
	res, err := r.searcher.HandShanten(r.hand)
	if err != nil {
		return nil, err
	}
	discards, err := r.optimizer.Optimize(ctx, r.hand)
	if err != nil {
		return nil, err
	}
	tally, err := mahjong.NewUnseenTally(r.hand)
	if err != nil {
		return nil, err
	}

	r.eval = &Evaluation{
		Hand:    r.hand.ShortForm(),
		Result:  res,
		Ranked:  mahjong.Rank(discards, tally),
		Unseen:  tally.Total(),
		Remains: r.wall.Remaining(),
	}
	log.Debug("评估手牌 %s shanten=%d candidates=%d", r.eval.Hand, res.Shanten, len(r.eval.Ranked))
	return r.eval, nil
}

// Judge 打出 tile 是否是最优解之一；所有打法有效张都为 0 时，手里的任何牌都算对
func (r *Round) Judge(tile mahjong.TileType) (Verdict, error) {
	if r.eval == nil {
		return Verdict{}, ErrNotEvaluated
	}
	if !r.hand.Contains(tile) {
		return Verdict{}, fmt.Errorf("judge %s: %w", tile, mahjong.ErrTileAbsent)
	}

	v := Verdict{
		Tile:     tile,
		TopScore: mahjong.TopScore(r.eval.Ranked),
	}
	for _, rd := range r.eval.Ranked {
		if rd.Score < v.TopScore {
			break
		}
		v.Best = append(v.Best, rd.Discard)
	}
	v.Correct = len(r.eval.Ranked) == 0 || mahjong.IsBest(r.eval.Ranked, tile)
	return v, nil
}

// Continue 打出 tile 再摸一张，然后重新评估；牌山空时手牌保持不变
func (r *Round) Continue(ctx context.Context, tile mahjong.TileType) (*Evaluation, error) {
	if r.wall.Remaining() == 0 {
		return nil, ErrRoundOver
	}
	if err := r.hand.Remove(tile); err != nil {
		return nil, err
	}
	// 摸牌失败时把打出的牌放回，手牌保持 14 张
	drawn, err := r.wall.Draw()
	if err != nil {
		_ = r.hand.Add(tile)
		return nil, err
	}
	if err := r.hand.Add(drawn); err != nil {
		_ = r.hand.Add(tile)
		return nil, fmt.Errorf("continue: drew %s: %w", drawn, err)
	}
	return r.Evaluate(ctx)
}
