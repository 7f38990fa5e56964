package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nanikiru/common/config"
	"nanikiru/common/log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configFile string
	seed       uint64
)

var rootCmd = &cobra.Command{
	Use:   "drill",
	Short: "何切练习",
	Long:  `终端里的何切练习：发 14 张牌，选择要打的牌，和最优解对比`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Drill.Seed = seed
		}
		// 日志写到 stderr，不打断提示符
		log.InitLogWithWriter(os.Stderr, cfg.AppName, cfg.Log.Level)

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return inputLoop(ctx, newSession(cfg, color.Output))
	},
}

// inputLoop 处理用户输入的命令
func inputLoop(ctx context.Context, s *session) error {
	if err := s.newRound(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		// 显示提示符
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		quit, err := s.handle(ctx, scanner.Text())
		if err != nil {
			color.New(color.FgHiRed).Fprintln(s.out, err)
			continue
		}
		if quit {
			fmt.Fprintln(s.out, "再见")
			return nil
		}
	}
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "configFile", "", "resource file")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "牌山种子，0 表示随机")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}
