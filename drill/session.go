package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"nanikiru/common/config"
	"nanikiru/engine/mahjong"
	"nanikiru/engine/trainer"
)

var errNoSelection = errors.New("先选择要打的牌")

// session 一次交互练习，状态只在输入循环里修改
type session struct {
	out       io.Writer
	seed      uint64
	searcher  *mahjong.Searcher
	optimizer *mahjong.DiscardOptimizer

	round    *trainer.Round
	selected *mahjong.TileType
	correct  int
	total    int
}

func newSession(cfg *config.Config, out io.Writer) *session {
	searcher := mahjong.NewSearcher(mahjong.WithStrict(true))
	return &session{
		out:       out,
		seed:      cfg.Drill.Seed,
		searcher:  searcher,
		optimizer: mahjong.NewDiscardOptimizer(searcher, mahjong.WithWorkers(cfg.Engine.Workers)),
	}
}

// nextSeed 配置了种子时每局递增，结果可复现
func (s *session) nextSeed() uint64 {
	if s.seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	seed := s.seed
	s.seed++
	return seed
}

// handle 执行一条命令，返回 true 表示退出
func (s *session) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "h":
		printHelp(s.out)
		return false, nil
	case "new", "n":
		return false, s.newRound(ctx)
	case "next":
		return false, s.next(ctx)
	case "hand":
		if len(fields) < 2 {
			return false, fmt.Errorf("用法: hand 123m456p789s11122z")
		}
		return false, s.customHand(ctx, strings.Join(fields[1:], ""))
	default:
		tile, err := mahjong.ParseTile(cmd)
		if err != nil {
			return false, fmt.Errorf("未知命令 %q，输入 help 查看帮助", fields[0])
		}
		return false, s.choose(tile)
	}
}

func (s *session) newRound(ctx context.Context) error {
	round, err := trainer.NewRound(mahjong.NewWall(s.nextSeed()), s.searcher, s.optimizer)
	if err != nil {
		return err
	}
	return s.start(ctx, round)
}

func (s *session) customHand(ctx context.Context, notation string) error {
	hand, err := mahjong.ParseHand(notation)
	if err != nil {
		return err
	}
	if hand.Len() != mahjong.HandSizeDrawn {
		return fmt.Errorf("需要 14 张，实际 %d 张", hand.Len())
	}
	wall, err := mahjong.NewWallWithout(s.nextSeed(), hand)
	if err != nil {
		return err
	}
	round, err := trainer.NewRoundWithHand(hand, wall, s.searcher, s.optimizer)
	if err != nil {
		return err
	}
	return s.start(ctx, round)
}

func (s *session) start(ctx context.Context, round *trainer.Round) error {
	eval, err := round.Evaluate(ctx)
	if err != nil {
		return err
	}
	s.round = round
	s.selected = nil
	renderEvaluation(s.out, eval)
	return nil
}

// choose 每巡只判定第一次选择
func (s *session) choose(tile mahjong.TileType) error {
	if s.round == nil {
		return errors.New("还没有开局，输入 new")
	}
	if s.selected != nil {
		return fmt.Errorf("本巡已选择 %s，输入 next 继续", *s.selected)
	}
	v, err := s.round.Judge(tile)
	if err != nil {
		return err
	}
	s.selected = &tile
	s.total++
	if v.Correct {
		s.correct++
	}
	renderVerdict(s.out, v, s.round.Last(), s.correct, s.total)
	return nil
}

func (s *session) next(ctx context.Context) error {
	if s.round == nil || s.selected == nil {
		return errNoSelection
	}
	eval, err := s.round.Continue(ctx, *s.selected)
	if errors.Is(err, trainer.ErrRoundOver) {
		renderRoundOver(s.out)
		s.round = nil
		s.selected = nil
		return nil
	}
	if err != nil {
		return err
	}
	s.selected = nil
	renderEvaluation(s.out, eval)
	return nil
}
