package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"

	"nanikiru/analyzer/application/dto"
	"nanikiru/analyzer/application/service"
	"nanikiru/common/config"
	"nanikiru/common/log"
	"nanikiru/engine/mahjong"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/tidwall/gjson"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type handler struct {
	svc *service.AnalysisService
}

// handle 函数 URL 请求：body 里有 hand 和可选的 visible；13 张只返回向听数
func (h *handler) handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	if !gjson.Valid(body) {
		return errResp(400, "invalid JSON")
	}
	hand := gjson.Get(body, "hand")
	if !hand.Exists() || hand.String() == "" {
		return errResp(400, "missing hand field")
	}
	visible := gjson.Get(body, "visible").String()

	parsed, err := mahjong.ParseHand(hand.String())
	if err != nil {
		return errResp(400, err.Error())
	}

	var resp any
	if parsed.Len() == mahjong.HandSizeDrawn {
		resp, err = h.svc.Discards(ctx, &dto.DiscardsRequest{Hand: hand.String(), Visible: visible})
	} else {
		resp, err = h.svc.Shanten(ctx, &dto.ShantenRequest{Hand: hand.String()})
	}
	if err != nil {
		if mahjong.IsInputError(err) {
			return errResp(400, err.Error())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return errResp(504, "analysis timed out")
		}
		log.Error("lambda 分析失败: %v", err)
		return errResp(500, "internal error")
	}

	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	// 只读环境变量 NANIKIRU_*，函数里没有配置文件
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("配置错误: %v", err)
	}
	log.InitLog(cfg.AppName, cfg.Log.Level)

	svc, err := service.NewAnalysisService(cfg)
	if err != nil {
		log.Fatal("初始化分析服务失败: %v", err)
	}
	h := &handler{svc: svc}
	lambda.Start(h.handle)
}
