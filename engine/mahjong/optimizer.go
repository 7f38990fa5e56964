package mahjong

import (
	"context"
	"time"

	"nanikiru/common/log"

	"golang.org/x/sync/errgroup"
)

// Discard 打出某种牌后的 13 张向听数与进张
type Discard struct {
	Present    bool     `json:"-"`
	Tile       TileType `json:"tile"`
	Shanten    int      `json:"shanten"`
	Acceptance TileSet  `json:"-"`
}

// Discards 按牌种下标索引，Present 为 false 的槽位表示手里没有这种牌
type Discards [NumTileTypes]Discard

// List 按牌种升序返回所有候选
func (d *Discards) List() []Discard {
	out := make([]Discard, 0, HandSizeDrawn)
	for _, c := range d {
		if c.Present {
			out = append(out, c)
		}
	}
	return out
}

// BestShanten 所有候选中最小的向听数，没有候选时返回 -2
func (d *Discards) BestShanten() int {
	best := -2
	for _, c := range d {
		if c.Present && (best == -2 || c.Shanten < best) {
			best = c.Shanten
		}
	}
	return best
}

// DiscardOptimizer 14 张手牌逐一试打，计算每种打法的进张
type DiscardOptimizer struct {
	searcher *Searcher
	workers  int
}

type OptimizerOption func(*DiscardOptimizer)

// WithWorkers 按候选弃牌并行，n<=1 时顺序执行
func WithWorkers(n int) OptimizerOption {
	return func(o *DiscardOptimizer) {
		o.workers = n
	}
}

func NewDiscardOptimizer(searcher *Searcher, opts ...OptimizerOption) *DiscardOptimizer {
	if searcher == nil {
		searcher = NewSearcher()
	}
	o := &DiscardOptimizer{searcher: searcher, workers: 1}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Optimize 同种牌只试一次；每个候选在自己的计数副本上计算，调用方的手牌不会被修改
func (o *DiscardOptimizer) Optimize(ctx context.Context, hand *Hand) (Discards, error) {
	var out Discards
	if hand.Len() != HandSizeDrawn {
		return out, newEngineError(ErrHandSize, "optimize", -1, hand.Len())
	}
	h14 := hand.Counts()
	if err := h14.Validate(true); err != nil {
		return out, err
	}

	start := time.Now()
	if o.workers <= 1 {
		for i := 0; i < NumTileTypes; i++ {
			if h14[i] == 0 {
				continue
			}
			if err := ctx.Err(); err != nil {
				return Discards{}, err
			}
			d, err := o.evaluate(h14, TileType(i))
			if err != nil {
				return Discards{}, err
			}
			out[i] = d
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.workers)
		for i := 0; i < NumTileTypes; i++ {
			if h14[i] == 0 {
				continue
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				d, err := o.evaluate(h14, TileType(i))
				if err != nil {
					return err
				}
				// 每个协程只写自己的槽位
				out[i] = d
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Discards{}, err
		}
	}

	log.Debug("试打完成 hand=%s workers=%d cost=%v", FormatTiles(hand.Sorted()), o.workers, time.Since(start))
	return out, nil
}

func (o *DiscardOptimizer) evaluate(h14 Hand34, discard TileType) (Discard, error) {
	h13 := h14
	h13[discard]--
	res, accept, err := o.searcher.Acceptance(h13)
	if err != nil {
		return Discard{}, err
	}
	return Discard{
		Present:    true,
		Tile:       discard,
		Shanten:    res.Shanten,
		Acceptance: accept,
	}, nil
}
