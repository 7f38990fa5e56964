package mahjong

// ShantenCache 向听数缓存，key 为 34 字节的手牌计数
type ShantenCache interface {
	Get(key string) (Result, bool)
	Set(key string, value Result) bool
}

// Searcher 向听搜索入口，可挂缓存；并发安全取决于缓存实现
type Searcher struct {
	cache  ShantenCache
	strict bool
}

type SearcherOption func(*Searcher)

// WithCache 挂载向听数缓存
func WithCache(c ShantenCache) SearcherOption {
	return func(s *Searcher) {
		s.cache = c
	}
}

// WithStrict 要求手牌必须是 13 或 14 张
func WithStrict(strict bool) SearcherOption {
	return func(s *Searcher) {
		s.strict = strict
	}
}

func NewSearcher(opts ...SearcherOption) *Searcher {
	s := &Searcher{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shanten 向听数，带缓存
func (s *Searcher) Shanten(h Hand34) (Result, error) {
	if err := h.Validate(s.strict); err != nil {
		return Result{}, err
	}

	var key string
	if s.cache != nil {
		key = h.key()
		if r, ok := s.cache.Get(key); ok {
			return r, nil
		}
	}

	r, err := CalculateShanten(h)
	if err != nil {
		return Result{}, err
	}
	if s.cache != nil {
		s.cache.Set(key, r)
	}
	return r, nil
}

// HandShanten 对手牌直接求向听
func (s *Searcher) HandShanten(hand *Hand) (Result, error) {
	return s.Shanten(hand.Counts())
}

// Acceptance 13 张手牌的进张：再摸一张能让向听数严格下降的牌种
// 手里已有 4 张的牌不可能再摸到，直接跳过
func (s *Searcher) Acceptance(h13 Hand34) (Result, TileSet, error) {
	var accept TileSet
	base, err := s.Shanten(h13)
	if err != nil {
		return base, accept, err
	}

	for t := 0; t < NumTileTypes; t++ {
		if h13[t] >= CopiesPerType {
			continue
		}
		h13[t]++
		r, err := s.Shanten(h13)
		h13[t]--
		if err != nil {
			return base, accept, err
		}
		if r.Shanten < base.Shanten {
			accept.Add(TileType(t))
		}
	}
	return base, accept, nil
}
