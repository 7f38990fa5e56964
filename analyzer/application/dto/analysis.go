package dto

import "nanikiru/engine/mahjong"

type ShantenRequest struct {
	Hand string `json:"hand" binding:"required"`
}

type ShantenResponse struct {
	Hand    string        `json:"hand"`
	Shanten int           `json:"shanten"`
	Form    string        `json:"form"`
	Shape   mahjong.Shape `json:"shape"`
}

// DiscardsRequest Visible 为场上已经看到的牌（河、宝牌指示牌），记法与手牌相同
type DiscardsRequest struct {
	Hand    string `json:"hand" binding:"required"`
	Visible string `json:"visible"`
}

type DiscardsResponse struct {
	Hand    string                  `json:"hand"`
	Shanten int                     `json:"shanten"`
	Unseen  int                     `json:"unseen"`
	Ranked  []mahjong.RankedDiscard `json:"ranked"`
	CostMs  int64                   `json:"costMs"`
}
