package api

import (
	"context"
	"errors"

	"nanikiru/analyzer/application/dto"
	"nanikiru/analyzer/application/service"
	"nanikiru/common/http"
	"nanikiru/common/log"
	"nanikiru/engine/mahjong"
)

// ShantenHandler 13/14 张手牌的向听数
func ShantenHandler(svc *service.AnalysisService) http.HandlerFunc {
	return func(c *http.Context) error {
		var req dto.ShantenRequest
		if err := c.BindJSON(&req); err != nil {
			c.BadRequest("请求参数错误")
			return nil
		}

		resp, err := svc.Shanten(c.Context(), &req)
		if err != nil {
			writeError(c, err)
			return nil
		}
		c.Success(resp)
		return nil
	}
}

// DiscardsHandler 14 张手牌的何切排序
func DiscardsHandler(svc *service.AnalysisService) http.HandlerFunc {
	return func(c *http.Context) error {
		var req dto.DiscardsRequest
		if err := c.BindJSON(&req); err != nil {
			c.BadRequest("请求参数错误")
			return nil
		}

		resp, err := svc.Discards(c.Context(), &req)
		if err != nil {
			writeError(c, err)
			return nil
		}
		c.Success(resp)
		return nil
	}
}

func writeError(c *http.Context, err error) {
	switch {
	case mahjong.IsInputError(err):
		c.BadRequest(err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.ErrorWithCode(http.CodeTimeout, "分析已取消")
	default:
		log.Error("分析失败 %s: %v", c.Path(), err)
		c.InternalServerError("")
	}
}
