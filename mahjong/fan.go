package mahjong

// 番种名称
const (
	FanThirteenOrphans = "十三幺"
	FanSevenPairs      = "七对"
	FanAllHonors       = "字一色"
	FanNineGates       = "九莲宝灯"
	FanAllPungs        = "对对胡"
	FanMixedFlush      = "混一色"
	FanCleanFlush      = "清一色"
	FanPingHu          = "平胡"
	FanSeatWind        = "门风刻"
	FanRoundWind       = "圈风刻"
	FanSelfDrawn       = "自摸"
	FanConcealed       = "门前清"
	FanLastTile        = "海底捞月"
	FanKongDraw        = "杠上开花"
	FanSmallDragons    = "小三元"
	FanBigDragons      = "大三元"
	FanSmallWinds      = "小四喜"
	FanBigWinds        = "大四喜"
	FanFourFlowers     = "齐四花"
	FanFourSeasons     = "齐四季"
	FanSeatFlower      = "正花"
	FanAllBonus        = "八仙过海"
)

const (
	MaxFan       int32 = 13
	maxPointTier int32 = 10
)

type FanItem struct {
	Name string
	Fan  int32
}

type FanResult struct {
	Total int32
	Items []FanItem
}

func (r *FanResult) add(name string, fan int32) {
	r.Items = append(r.Items, FanItem{Name: name, Fan: fan})
	r.Total += fan
}

func (r *FanResult) cap() *FanResult {
	if r.Total > MaxFan {
		r.Total = MaxFan
	}
	return r
}

// FanToPoints 番转底分，超过10番按10番档
func FanToPoints(fan int32) int64 {
	if fan > maxPointTier {
		fan = maxPointTier
	}
	return int64(1) << fan
}

func MeetsMinimum(total, minFan int32) bool {
	return total >= minFan
}

// CalcFan 对一手有效的胡牌结构算番。deco必须来自data.Decompose()。
func CalcFan(data *HuData, deco *HuDecomposition) *FanResult {
	result := &FanResult{Items: make([]FanItem, 0, 4)}

	switch deco.Style {
	case HandThirteenOrphans:
		result.add(FanThirteenOrphans, MaxFan)
		return result
	case HandSevenPairs:
		return calcSevenPairs(data, result)
	}
	return calcNormal(data, deco, result)
}

func calcSevenPairs(data *HuData, result *FanResult) *FanResult {
	result.add(FanSevenPairs, 4)
	allHonor := true
	for _, t := range data.Tiles {
		if !t.IsHonor() {
			allHonor = false
			break
		}
	}
	if allHonor {
		result.Items = []FanItem{{Name: FanAllHonors, Fan: MaxFan}}
		result.Total = MaxFan
		return result
	}
	addFlushFan(result, data.Tiles)
	if data.SelfDrawn {
		result.add(FanSelfDrawn, 1)
	}
	return result.cap()
}

func calcNormal(data *HuData, deco *HuDecomposition, result *FanResult) *FanResult {
	all := data.allTiles()
	if isAllHonors(all) {
		result.add(FanAllHonors, MaxFan)
		return result
	}
	if data.PlayData.MeldCount() == 0 && isNineGates(data.Tiles) {
		result.add(FanNineGates, MaxFan)
		return result
	}

	sets := data.allSets(deco)
	if !hasChowSet(sets) {
		result.add(FanAllPungs, 3)
	}
	addFlushFan(result, all)
	if allChows(sets) && data.PlayData.MeldCount() == 0 {
		result.add(FanPingHu, 1)
	}

	dragonSets, windSets := int32(0), int32(0)
	for _, set := range sets {
		if set.Kind != SetPung {
			continue
		}
		if set.Tile.IsDragon() {
			dragonSets++
			result.add(set.Tile.Name(), 1)
		}
		if set.Tile.IsWind() {
			windSets++
			if set.Tile.Wind() == data.SeatWind {
				result.add(FanSeatWind, 1)
			}
			if set.Tile.Wind() == data.RoundWind {
				result.add(FanRoundWind, 1)
			}
		}
	}

	if data.SelfDrawn {
		result.add(FanSelfDrawn, 1)
	}
	if data.PlayData.MeldCount() == 0 && !data.SelfDrawn {
		result.add(FanConcealed, 1)
	}
	if data.LastTile {
		result.add(FanLastTile, 1)
	}
	if data.KongDraw {
		result.add(FanKongDraw, 1)
	}

	if dragonSets == 2 && deco.Pair.IsDragon() {
		result.add(FanSmallDragons, 4)
	} else if dragonSets == 3 {
		result.add(FanBigDragons, 8)
	}
	if windSets == 3 && deco.Pair.IsWind() {
		result.add(FanSmallWinds, 6)
	} else if windSets == 4 {
		result.add(FanBigWinds, MaxFan)
	}

	addBonusFan(result, data)
	return result.cap()
}

// addFlushFan 同一门数牌：带字牌混一色+3，不带清一色+7
func addFlushFan(result *FanResult, tiles []Tile) {
	suit := ColorUndefined
	hasHonor := false
	for _, t := range tiles {
		if t.IsHonor() {
			hasHonor = true
			continue
		}
		if suit == ColorUndefined {
			suit = t.Color()
		} else if suit != t.Color() {
			return
		}
	}
	if suit == ColorUndefined {
		return
	}
	if hasHonor {
		result.add(FanMixedFlush, 3)
	} else {
		result.add(FanCleanFlush, 7)
	}
}

func addBonusFan(result *FanResult, data *HuData) {
	extras := data.PlayData.extraTiles
	if len(extras) == 8 {
		result.add(FanAllBonus, MaxFan)
		return
	}
	flowers, seasons := 0, 0
	seatPoint := int(data.SeatWind - 1)
	for _, t := range extras {
		switch t.Color() {
		case ColorFlower:
			flowers++
		case ColorSeason:
			seasons++
		}
		if t.Point() == seatPoint {
			result.add(FanSeatFlower, 1)
		}
	}
	if flowers == 4 {
		result.add(FanFourFlowers, 2)
	}
	if seasons == 4 {
		result.add(FanFourSeasons, 2)
	}
}

func isAllHonors(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsHonor() {
			return false
		}
	}
	return len(tiles) > 0
}

// isNineGates 门清单一数牌门，1112345678999加任意一张同门
func isNineGates(tiles []Tile) bool {
	if len(tiles) != 14 {
		return false
	}
	suit := tiles[0].Color()
	if suit > ColorDot {
		return false
	}
	base := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
	var points [9]int
	for _, t := range tiles {
		if t.Color() != suit {
			return false
		}
		points[t.Point()]++
	}
	overflow := 0
	for i, need := range base {
		switch points[i] - need {
		case 0:
		case 1:
			overflow++
		default:
			return false
		}
	}
	return overflow == 1
}

func hasChowSet(sets []SetInfo) bool {
	for _, set := range sets {
		if set.Kind == SetChow {
			return true
		}
	}
	return false
}

func allChows(sets []SetInfo) bool {
	for _, set := range sets {
		if set.Kind != SetChow {
			return false
		}
	}
	return len(sets) > 0
}
