package mahjong

// Form 取得最小向听数的牌型
type Form int

const (
	FormNormal          Form = iota // 一般型 4 面子 1 雀头
	FormSevenPairs                  // 七对子
	FormThirteenOrphans             // 国士无双
)

func (f Form) String() string {
	switch f {
	case FormNormal:
		return "normal"
	case FormSevenPairs:
		return "seven_pairs"
	case FormThirteenOrphans:
		return "thirteen_orphans"
	default:
		return "unknown"
	}
}

// Shape 一般型拆解的计数：顺子、刻子、对子、嵌张搭子、两面(边张)搭子
type Shape struct {
	Sequences int `json:"sequences"`
	Triplets  int `json:"triplets"`
	Pairs     int `json:"pairs"`
	Middles   int `json:"middles"`
	TwoSides  int `json:"twoSides"`
}

// shanten 8 - 2*面子 - min(4-面子, 搭子) - 雀头，第二个起的对子按搭子算
func (s Shape) shanten() int {
	complete := s.Sequences + s.Triplets
	partial := s.Middles + s.TwoSides
	head := 0
	if s.Pairs > 0 {
		head = 1
		partial += s.Pairs - 1
	}
	if limit := 4 - complete; partial > limit {
		partial = max(limit, 0)
	}
	return max(8-2*complete-partial-head, -1)
}

// Result 向听数与对应的牌型；Shape 是一般型最优拆解，仅供诊断
type Result struct {
	Shanten int   `json:"shanten"`
	Form    Form  `json:"form"`
	Shape   Shape `json:"shape"`
}

// CalculateShanten 三种牌型取最小，h 按值传入，调用方的数组不会被修改
func CalculateShanten(h Hand34) (Result, error) {
	if err := h.Validate(false); err != nil {
		return Result{}, err
	}

	normal, shape := ShantenNormal(h)
	res := Result{Shanten: normal, Form: FormNormal, Shape: shape}
	if v := ShantenSevenPairs(h); v < res.Shanten {
		res.Shanten = v
		res.Form = FormSevenPairs
	}
	if v := ShantenThirteenOrphans(h); v < res.Shanten {
		res.Shanten = v
		res.Form = FormThirteenOrphans
	}
	return res, nil
}

// ShantenSevenPairs 七对子向听数，种类不足 7 时补差
func ShantenSevenPairs(h Hand34) int {
	pairs := 0
	kinds := 0
	for _, c := range h {
		if c > 0 {
			kinds++
		}
		if c >= 2 {
			pairs++
		}
	}
	return 6 - pairs + max(7-kinds, 0)
}

// ShantenThirteenOrphans 国士无双向听数
func ShantenThirteenOrphans(h Hand34) int {
	present := 0
	pair := false
	for _, t := range thirteenOrphans {
		if h[t] > 0 {
			present++
			if h[t] >= 2 {
				pair = true
			}
		}
	}
	sh := 13 - present
	if pair {
		sh--
	}
	return sh
}

// ShantenNormal 一般型向听数，同时返回最先找到的最优拆解
func ShantenNormal(h Hand34) (int, Shape) {
	s := &shantenSearch{
		h:         h,
		remaining: h.Total(),
		best:      Shape{}.shanten() + 1,
	}
	s.dfs(0, branchTriplet)
	return s.best, s.bestShape
}

// 同一张牌上的拆法按固定次序尝试，避免同一组合以不同顺序被重复枚举
type branch int

const (
	branchTriplet branch = iota
	branchSequence
	branchPair
	branchTwoSide
	branchMiddle
	branchSingle
)

type shantenSearch struct {
	h         Hand34
	remaining int
	cur       Shape
	best      int
	bestShape Shape
}

// dfs 游标 i 指向最小的非零种类，from 为该种类上允许的最早拆法
func (s *shantenSearch) dfs(i int, from branch) {
	for i < NumTileTypes && s.h[i] == 0 {
		i++
		from = branchTriplet
	}
	if i == NumTileTypes {
		if sh := s.cur.shanten(); sh < s.best {
			s.best = sh
			s.bestShape = s.cur
		}
		return
	}
	// 剩余每 3 张最多再降 2 向听
	if s.best == -1 || s.cur.shanten()-2*s.remaining/3 >= s.best {
		return
	}

	t := TileType(i)
	chain := t.IsNumbered()
	rank := t.Rank()

	if from <= branchTriplet && s.h[i] >= 3 {
		s.take(i, 3)
		s.cur.Triplets++
		s.dfs(i, branchTriplet)
		s.cur.Triplets--
		s.put(i, 3)
	}

	if from <= branchSequence && chain && rank <= 7 && s.h[i+1] > 0 && s.h[i+2] > 0 {
		s.take(i, 1)
		s.take(i+1, 1)
		s.take(i+2, 1)
		s.cur.Sequences++
		s.dfs(i, branchSequence)
		s.cur.Sequences--
		s.put(i+2, 1)
		s.put(i+1, 1)
		s.put(i, 1)
	}

	if from <= branchPair && s.h[i] >= 2 {
		s.take(i, 2)
		s.cur.Pairs++
		s.dfs(i, branchPair)
		s.cur.Pairs--
		s.put(i, 2)
	}

	if from <= branchTwoSide && chain && rank <= 8 && s.h[i+1] > 0 {
		s.take(i, 1)
		s.take(i+1, 1)
		s.cur.TwoSides++
		s.dfs(i, branchTwoSide)
		s.cur.TwoSides--
		s.put(i+1, 1)
		s.put(i, 1)
	}

	if from <= branchMiddle && chain && rank <= 7 && s.h[i+2] > 0 {
		s.take(i, 1)
		s.take(i+2, 1)
		s.cur.Middles++
		s.dfs(i, branchMiddle)
		s.cur.Middles--
		s.put(i+2, 1)
		s.put(i, 1)
	}

	// 浮牌
	s.take(i, 1)
	s.dfs(i, branchSingle)
	s.put(i, 1)
}

func (s *shantenSearch) take(i int, n uint8) {
	s.h[i] -= n
	s.remaining -= int(n)
}

func (s *shantenSearch) put(i int, n uint8) {
	s.h[i] += n
	s.remaining += int(n)
}
