package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"nanikiru/analyzer/application/dto"
	"nanikiru/common/cache"
	"nanikiru/common/config"
	"nanikiru/common/log"
	"nanikiru/engine/mahjong"
)

// AnalysisService 向听与何切分析，HTTP、Lambda 和命令行共用
type AnalysisService struct {
	searcher  *mahjong.Searcher
	optimizer atomic.Pointer[mahjong.DiscardOptimizer]
	cache     *cache.LocalCache[mahjong.Result]
}

func NewAnalysisService(cfg *config.Config) (*AnalysisService, error) {
	s := &AnalysisService{}
	opts := []mahjong.SearcherOption{mahjong.WithStrict(cfg.Engine.Strict)}
	if cfg.Cache.Enabled {
		c, err := cache.NewLocalCache[mahjong.Result](cfg.Cache.MaxCost, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		if err != nil {
			return nil, err
		}
		s.cache = c
		opts = append(opts, mahjong.WithCache(c))
	}
	s.searcher = mahjong.NewSearcher(opts...)
	s.Reload(cfg)
	return s, nil
}

// Reload 配置热更新时替换试打器，缓存与严格模式不变
func (s *AnalysisService) Reload(cfg *config.Config) {
	s.optimizer.Store(mahjong.NewDiscardOptimizer(s.searcher, mahjong.WithWorkers(cfg.Engine.Workers)))
	log.Info("分析服务配置: workers=%d strict=%v cache=%v", cfg.Engine.Workers, cfg.Engine.Strict, cfg.Cache.Enabled)
}

func (s *AnalysisService) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}

func (s *AnalysisService) Shanten(ctx context.Context, req *dto.ShantenRequest) (*dto.ShantenResponse, error) {
	hand, err := mahjong.ParseHand(req.Hand)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, err := s.searcher.HandShanten(hand)
	if err != nil {
		return nil, err
	}
	return &dto.ShantenResponse{
		Hand:    hand.ShortForm(),
		Shanten: res.Shanten,
		Form:    res.Form.String(),
		Shape:   res.Shape,
	}, nil
}

// Discards 14 张手牌的弃牌排序，未见牌 = 全部牌 - 手牌 - 可见牌
func (s *AnalysisService) Discards(ctx context.Context, req *dto.DiscardsRequest) (*dto.DiscardsResponse, error) {
	start := time.Now()
	hand, err := mahjong.ParseHand(req.Hand)
	if err != nil {
		return nil, err
	}
	tally, err := mahjong.NewUnseenTally(hand)
	if err != nil {
		return nil, err
	}
	visible, err := mahjong.ParseTiles(req.Visible)
	if err != nil {
		return nil, fmt.Errorf("visible: %w", err)
	}
	for _, t := range visible {
		if err := tally.Remove(t); err != nil {
			return nil, fmt.Errorf("visible: %w", err)
		}
	}

	res, err := s.searcher.HandShanten(hand)
	if err != nil {
		return nil, err
	}
	discards, err := s.optimizer.Load().Optimize(ctx, hand)
	if err != nil {
		return nil, err
	}

	resp := &dto.DiscardsResponse{
		Hand:    hand.ShortForm(),
		Shanten: res.Shanten,
		Unseen:  tally.Total(),
		Ranked:  mahjong.Rank(discards, tally),
		CostMs:  time.Since(start).Milliseconds(),
	}
	log.Debug("何切分析 hand=%s shanten=%d candidates=%d cost=%dms", resp.Hand, resp.Shanten, len(resp.Ranked), resp.CostMs)
	return resp, nil
}
