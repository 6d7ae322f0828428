package mahjong

// SetKind 胡牌分解出的成组类型
type SetKind int

const (
	SetPung SetKind = iota
	SetChow
)

// SetInfo 一组刻子或顺子，Tile为刻子牌或顺子最小牌
type SetInfo struct {
	Kind SetKind
	Tile Tile
}

// HuDecomposition 胡牌结构：特殊牌型只有Style，普通牌型含将牌和各组
type HuDecomposition struct {
	Style EHandStyle
	Pair  Tile
	Sets  []SetInfo
}

// HuCore 胡牌判定器，无状态可复用
type HuCore struct{}

func NewHuCore() *HuCore {
	return &HuCore{}
}

// CheckHu 判定tiles（手牌，含胡的那张）加meldCount副副露能否胡牌
func (c *HuCore) CheckHu(tiles []Tile, meldCount int) bool {
	return c.Decompose(tiles, meldCount) != nil
}

// Decompose 返回胡牌分解，胡不了返回nil。
// 七对、十三幺先查：两者都要求门清整手14张，与副露结构互斥。
func (c *HuCore) Decompose(tiles []Tile, meldCount int) *HuDecomposition {
	if len(tiles)%3 != 2 {
		return nil
	}
	counts := TileCounts(tiles)
	if meldCount == 0 && len(tiles) == 14 {
		if isSevenPairs(counts) {
			return &HuDecomposition{Style: HandSevenPairs}
		}
		if isThirteenOrphans(counts) {
			return &HuDecomposition{Style: HandThirteenOrphans}
		}
	}

	setsNeeded := (len(tiles) - 2) / 3
	if setsNeeded+meldCount != 4 {
		return nil
	}
	keys := SortedKeys(counts)
	deco := &HuDecomposition{Style: HandNormal, Pair: TileNull, Sets: make([]SetInfo, 0, setsNeeded)}
	if c.search(counts, keys, deco, false) {
		return deco
	}
	return nil
}

// search 按键序回溯：每个未耗尽的键依次尝试将、刻、顺。
// counts是本次调用的工作副本，分支内取/还成对出现。
func (c *HuCore) search(counts map[Tile]int, keys []Tile, deco *HuDecomposition, pairUsed bool) bool {
	key := TileNull
	for _, k := range keys {
		if counts[k] > 0 {
			key = k
			break
		}
	}
	if key == TileNull {
		return pairUsed
	}

	if !pairUsed && counts[key] >= 2 {
		counts[key] -= 2
		deco.Pair = key
		if c.search(counts, keys, deco, true) {
			return true
		}
		deco.Pair = TileNull
		counts[key] += 2
	}

	if counts[key] >= 3 {
		counts[key] -= 3
		deco.Sets = append(deco.Sets, SetInfo{Kind: SetPung, Tile: key})
		if c.search(counts, keys, deco, pairUsed) {
			return true
		}
		deco.Sets = deco.Sets[:len(deco.Sets)-1]
		counts[key] += 3
	}

	if key.IsSuit() && key.Point() <= 6 {
		color, point := key.Info()
		t1 := MakeTile(color, point+1)
		t2 := MakeTile(color, point+2)
		if counts[t1] > 0 && counts[t2] > 0 {
			counts[key]--
			counts[t1]--
			counts[t2]--
			deco.Sets = append(deco.Sets, SetInfo{Kind: SetChow, Tile: key})
			if c.search(counts, keys, deco, pairUsed) {
				return true
			}
			deco.Sets = deco.Sets[:len(deco.Sets)-1]
			counts[key]++
			counts[t1]++
			counts[t2]++
		}
	}
	return false
}

func isSevenPairs(counts map[Tile]int) bool {
	if len(counts) != 7 {
		return false
	}
	for _, count := range counts {
		if count != 2 {
			return false
		}
	}
	return true
}

// thirteenOrphanTiles 幺九字牌共13种
var thirteenOrphanTiles = []Tile{
	MakeTile(ColorCharacter, 0), MakeTile(ColorCharacter, 8),
	MakeTile(ColorBamboo, 0), MakeTile(ColorBamboo, 8),
	MakeTile(ColorDot, 0), MakeTile(ColorDot, 8),
	TileDong, TileNan, TileXi, TileBei,
	TileZhong, TileFa, TileBai,
}

func isThirteenOrphans(counts map[Tile]int) bool {
	if len(counts) != 13 {
		return false
	}
	doubled := 0
	for _, target := range thirteenOrphanTiles {
		switch counts[target] {
		case 1:
		case 2:
			doubled++
		default:
			return false
		}
	}
	return doubled == 1
}

// Tiles 重组分解结果的牌集合，与输入多重集一致（可靠性校验用）
func (d *HuDecomposition) Tiles() []Tile {
	if d == nil || d.Style != HandNormal {
		return nil
	}
	tiles := MakeTiles(d.Pair, 2)
	for _, set := range d.Sets {
		if set.Kind == SetPung {
			tiles = append(tiles, MakeTiles(set.Tile, 3)...)
		} else {
			color, point := set.Tile.Info()
			for i := range 3 {
				tiles = append(tiles, MakeTile(color, point+i))
			}
		}
	}
	return tiles
}
