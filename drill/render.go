package main

import (
	"fmt"
	"io"

	"nanikiru/engine/mahjong"
	"nanikiru/engine/trainer"

	"github.com/fatih/color"
)

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "命令:")
	fmt.Fprintln(out, "  new            发一手新牌")
	fmt.Fprintln(out, "  <牌>           选择要打的牌，如 5m 7z")
	fmt.Fprintln(out, "  next           打出所选的牌并摸下一张")
	fmt.Fprintln(out, "  hand <记法>    自定义 14 张手牌，如 hand 123m456p789s11122z")
	fmt.Fprintln(out, "  quit           退出")
}

// tileColor 万子红、筒子蓝、索子绿、字牌白
func tileColor(t mahjong.TileType) *color.Color {
	switch t.Suit() {
	case 0:
		return color.New(color.FgHiRed)
	case 1:
		return color.New(color.FgHiBlue)
	case 2:
		return color.New(color.FgHiGreen)
	default:
		return color.New(color.FgHiWhite)
	}
}

func renderTiles(out io.Writer, tiles []mahjong.TileType) {
	for _, t := range tiles {
		tileColor(t).Fprintf(out, "%s ", t)
	}
}

func renderEvaluation(out io.Writer, eval *trainer.Evaluation) {
	fmt.Fprintln(out)
	hand, _ := mahjong.ParseTiles(eval.Hand)
	renderTiles(out, hand)
	fmt.Fprintln(out)

	if eval.Complete() {
		color.New(color.FgHiRed).Fprintln(out, "【和了】")
		return
	}
	switch eval.Result.Shanten {
	case 0:
		color.New(color.FgHiYellow).Fprintf(out, "听牌")
	default:
		fmt.Fprintf(out, "%d 向听", eval.Result.Shanten)
	}
	fmt.Fprintf(out, "  (%s)  牌山剩余 %d\n", eval.Result.Form, eval.Remains)
	fmt.Fprintln(out, "何切？")
}

func renderVerdict(out io.Writer, v trainer.Verdict, eval *trainer.Evaluation, correct, total int) {
	if v.Correct {
		color.New(color.FgHiGreen).Fprintf(out, "正解！")
	} else {
		color.New(color.FgHiRed).Fprintf(out, "不是最优，最优: ")
		renderTiles(out, v.Best)
	}
	fmt.Fprintf(out, "  [%d/%d]\n", correct, total)

	for _, r := range eval.Ranked {
		c := color.New(color.FgWhite)
		if r.Score == v.TopScore {
			c = color.New(color.FgHiYellow)
		}
		if r.Discard == v.Tile {
			c.Add(color.Underline)
		}
		c.Fprintf(out, "打 %s", r.Discard)
		fmt.Fprintf(out, "  有效张 %2d  ", r.Score)
		renderTiles(out, r.Acceptance)
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "输入 next 继续")
}

func renderRoundOver(out io.Writer) {
	color.New(color.FgHiBlack).Fprintln(out, "流局，牌山已摸完。输入 new 重新开始")
}
