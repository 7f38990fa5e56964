package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"nanikiru/analyzer/app"
	"nanikiru/analyzer/application/dto"
	"nanikiru/analyzer/application/service"
	"nanikiru/common/config"
	"nanikiru/common/log"
	"nanikiru/common/metrics"
	"nanikiru/engine/mahjong"

	"github.com/spf13/cobra"
)

var (
	configFile string
	visible    string
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "何切分析服务",
	Long:  `向听数与弃牌排序，提供 HTTP 接口或命令行一次性分析`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 分析服务",
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.InitConfig(configFile); err != nil {
			log.Fatal("文件配置发生错误：%v", err)
		}
		cfg := config.Get()
		log.InitLog(cfg.AppName, cfg.Log.Level)
		log.Info("配置文件: %+v", *cfg)

		if cfg.MetricPort > 0 {
			go func() {
				log.Info("启动监控..., URL: http://localhost:%d/debug/statsviz/", cfg.MetricPort)
				if err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", cfg.MetricPort)); err != nil {
					log.Error("监控服务退出: %v", err)
				}
			}()
		}

		if err := app.Run(context.Background()); err != nil {
			log.Error("发生异常: %v", err)
			os.Exit(-1)
		}
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <hand>",
	Short: "分析一手牌，如 analyze 123m456p789s11z234s",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		log.InitLogWithWriter(os.Stderr, cfg.AppName, cfg.Log.Level)

		svc, err := service.NewAnalysisService(cfg)
		if err != nil {
			return err
		}
		defer svc.Close()

		hand := strings.Join(args, "")
		parsed, err := mahjong.ParseHand(hand)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		sh, err := svc.Shanten(cmd.Context(), &dto.ShantenRequest{Hand: hand})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  向听数 %d (%s)\n", sh.Hand, sh.Shanten, sh.Form)

		// 13 张只报告向听数
		if parsed.Len() != mahjong.HandSizeDrawn {
			return nil
		}
		resp, err := svc.Discards(cmd.Context(), &dto.DiscardsRequest{Hand: hand, Visible: visible})
		if err != nil {
			return err
		}
		for _, r := range resp.Ranked {
			fmt.Fprintf(out, "打 %s  向听 %d  有效张 %d  %v\n", r.Discard, r.Shanten, r.Score, r.Acceptance)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "resource file")
	analyzeCmd.Flags().StringVar(&visible, "visible", "", "场上已见的牌，如 1z5m")
	rootCmd.AddCommand(serveCmd, analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}
