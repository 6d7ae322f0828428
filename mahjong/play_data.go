package mahjong

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// PonGroup 碰出的刻子，From为供牌座位
type PonGroup struct {
	Tile Tile
	From int32
	Seq  int32
}

// KonGroup 杠，补杠由碰转化而来
type KonGroup struct {
	Tile Tile
	From int32
	Type KonType
	Seq  int32
}

// ChowGroup 吃出的顺子，LeftTile为顺子最小牌
type ChowGroup struct {
	ChowTile Tile
	LeftTile Tile
	From     int32
	Seq      int32
}

// PlayData 单个座位的牌面：手牌、副露、花牌、牌河
type PlayData struct {
	seat       int32
	handTiles  []Tile
	outTiles   []Tile
	extraTiles []Tile // 花牌季牌，只计番不成组
	chowGroups []ChowGroup
	ponGroups  []PonGroup
	konGroups  []KonGroup
	exposeSeq  int32 // 副露次序，包牌判定用
}

func NewPlayData(seat int32) *PlayData {
	return &PlayData{
		seat:       seat,
		handTiles:  make([]Tile, 0, TileCountInitBanker),
		outTiles:   make([]Tile, 0),
		extraTiles: make([]Tile, 0),
		chowGroups: make([]ChowGroup, 0),
		ponGroups:  make([]PonGroup, 0),
		konGroups:  make([]KonGroup, 0),
	}
}

func (p *PlayData) Seat() int32 {
	return p.seat
}

func (p *PlayData) PutHandTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
}

func (p *PlayData) RemoveHandTile(tile Tile, count int) {
	p.handTiles = RemoveElements(p.handTiles, tile, count)
}

func (p *PlayData) Discard(tile Tile) bool {
	if !slices.Contains(p.handTiles, tile) {
		return false
	}
	p.handTiles = RemoveElements(p.handTiles, tile, 1)
	p.PutOutTile(tile)
	return true
}

func (p *PlayData) PutOutTile(tile Tile) {
	p.outTiles = append(p.outTiles, tile)
}

// RemoveOutTile 牌河顶的牌被吃碰杠胡后移除
func (p *PlayData) RemoveOutTile() {
	if len(p.outTiles) > 0 {
		p.outTiles = p.outTiles[:len(p.outTiles)-1]
	}
}

func (p *PlayData) PutExtraTile(tile Tile) {
	p.extraTiles = append(p.extraTiles, tile)
}

// HasExtraInHand 手中是否还有待补的花牌
func (p *PlayData) HasExtraInHand() bool {
	return slices.ContainsFunc(p.handTiles, Tile.IsExtra)
}

// TakeExtraTile 取出手中第一张花牌入花牌区
func (p *PlayData) TakeExtraTile() Tile {
	for _, t := range p.handTiles {
		if t.IsExtra() {
			p.RemoveHandTile(t, 1)
			p.PutExtraTile(t)
			return t
		}
	}
	return TileNull
}

func (p *PlayData) GetHandTiles() []Tile {
	return p.handTiles
}

func (p *PlayData) GetOutTiles() []Tile {
	return p.outTiles
}

func (p *PlayData) GetExtraTiles() []Tile {
	return p.extraTiles
}

func (p *PlayData) GetChowGroups() []ChowGroup {
	return p.chowGroups
}

func (p *PlayData) GetPonGroups() []PonGroup {
	return p.ponGroups
}

func (p *PlayData) GetKonGroups() []KonGroup {
	return p.konGroups
}

// MeldCount 已成组的副数，杠计1副
func (p *PlayData) MeldCount() int {
	return len(p.chowGroups) + len(p.ponGroups) + len(p.konGroups)
}

// ExposedMeldCount 明副露副数，暗杠不算
func (p *PlayData) ExposedMeldCount() int {
	count := len(p.chowGroups) + len(p.ponGroups)
	for _, kon := range p.konGroups {
		if kon.Type != KonTypeAn {
			count++
		}
	}
	return count
}

func (p *PlayData) SortHand() {
	slices.Sort(p.handTiles)
}

// ---- 查询：吃碰杠资格，只读不改 ----

func (p *PlayData) CanPon(tile Tile) bool {
	return CountElement(p.handTiles, tile) >= 2
}

func (p *PlayData) CanZhiKon(tile Tile) bool {
	return CountElement(p.handTiles, tile) >= 3
}

// ChowCombos 能吃tile的顺子集合，返回每个顺子的最小牌
func (p *PlayData) ChowCombos(tile Tile) []Tile {
	if !tile.IsSuit() {
		return nil
	}
	color, point := tile.Info()
	combos := make([]Tile, 0, 3)
	for low := point - 2; low <= point; low++ {
		if low < 0 || low+2 > 8 {
			continue
		}
		ok := true
		for i := range 3 {
			t := MakeTile(color, low+i)
			if t == tile {
				continue
			}
			if !slices.Contains(p.handTiles, t) {
				ok = false
				break
			}
		}
		if ok {
			combos = append(combos, MakeTile(color, low))
		}
	}
	return combos
}

func (p *PlayData) CanChow(tile Tile) bool {
	return len(p.ChowCombos(tile)) > 0
}

// SelfKonTiles 自己回合可宣的杠：手中4张的暗杠、碰过又摸到的补杠
func (p *PlayData) SelfKonTiles() []Tile {
	tiles := make([]Tile, 0)
	for tile, count := range TileCounts(p.handTiles) {
		if count == 4 {
			tiles = append(tiles, tile)
		}
	}
	for _, pon := range p.ponGroups {
		if slices.Contains(p.handTiles, pon.Tile) {
			tiles = append(tiles, pon.Tile)
		}
	}
	slices.Sort(tiles)
	return tiles
}

// ---- 执行：资格应当已由查询确认，失败只记错并返回false ----

func (p *PlayData) TryChow(curTile, leftTile Tile, from int32) bool {
	color, point := leftTile.Info()
	if color != curTile.Color() || curTile.Point()-point >= 3 || curTile.Point() < point {
		return false
	}

	tiles := make([]Tile, 0, 2)
	for i := range 3 {
		t := MakeTile(color, point+i)
		if t == curTile {
			continue
		}
		if !slices.Contains(p.handTiles, t) {
			return false
		}
		tiles = append(tiles, t)
	}

	for _, t := range tiles {
		p.RemoveHandTile(t, 1)
	}
	p.exposeSeq++
	p.chowGroups = append(p.chowGroups, ChowGroup{
		ChowTile: curTile,
		LeftTile: leftTile,
		From:     from,
		Seq:      p.exposeSeq,
	})
	return true
}

func (p *PlayData) Pon(tile Tile, from int32) bool {
	if !p.CanPon(tile) {
		logrus.Errorf("seat %d cannot pon %s", p.seat, tile.Name())
		return false
	}
	p.RemoveHandTile(tile, 2)
	p.exposeSeq++
	p.ponGroups = append(p.ponGroups, PonGroup{Tile: tile, From: from, Seq: p.exposeSeq})
	return true
}

func (p *PlayData) Kon(tile Tile, from int32, konType KonType) bool {
	if !p.canKon(tile, konType) {
		logrus.Errorf("seat %d cannot kon %s type %d", p.seat, tile.Name(), konType)
		return false
	}
	switch konType {
	case KonTypeBu:
		p.buKon(tile)
	case KonTypeAn:
		p.RemoveHandTile(tile, 4)
		p.pushKon(tile, p.seat, KonTypeAn)
	default:
		p.RemoveHandTile(tile, 3)
		p.pushKon(tile, from, KonTypeZhi)
	}
	return true
}

func (p *PlayData) canKon(tile Tile, konType KonType) bool {
	count := CountElement(p.handTiles, tile)
	switch konType {
	case KonTypeZhi:
		return count >= 3
	case KonTypeAn:
		return count == 4
	case KonTypeBu:
		return count >= 1 && p.HasPon(tile)
	default:
		return false
	}
}

// buKon 补杠是唯一原地改写的副露：碰转杠，供牌方不变
func (p *PlayData) buKon(tile Tile) {
	p.RemoveHandTile(tile, 1)
	pon := p.removePon(tile)
	p.exposeSeq++
	p.konGroups = append(p.konGroups, KonGroup{Tile: tile, From: pon.From, Type: KonTypeBu, Seq: p.exposeSeq})
}

func (p *PlayData) pushKon(tile Tile, from int32, konType KonType) {
	p.exposeSeq++
	p.konGroups = append(p.konGroups, KonGroup{Tile: tile, From: from, Type: konType, Seq: p.exposeSeq})
}

func (p *PlayData) HasPon(tile Tile) bool {
	for _, group := range p.ponGroups {
		if group.Tile == tile {
			return true
		}
	}
	return false
}

func (p *PlayData) removePon(tile Tile) PonGroup {
	for i, group := range p.ponGroups {
		if group.Tile == tile {
			p.ponGroups = append(p.ponGroups[:i], p.ponGroups[i+1:]...)
			return group
		}
	}
	return PonGroup{}
}

// AllSetTiles 手牌+副露的全部牌，算番用（花牌不含）
func (p *PlayData) AllSetTiles() []Tile {
	tiles := slices.Clone(p.handTiles)
	for _, chow := range p.chowGroups {
		low := chow.LeftTile
		for i := range 3 {
			tiles = append(tiles, MakeTile(low.Color(), low.Point()+i))
		}
	}
	for _, pon := range p.ponGroups {
		tiles = append(tiles, MakeTiles(pon.Tile, 3)...)
	}
	for _, kon := range p.konGroups {
		tiles = append(tiles, MakeTiles(kon.Tile, 4)...)
	}
	return tiles
}

// TileTotal 此座位占用的总牌数，墙+四家+牌河恒等于144的校验项
func (p *PlayData) TileTotal() int {
	total := len(p.handTiles) + len(p.outTiles) + len(p.extraTiles)
	total += 3 * (len(p.chowGroups) + len(p.ponGroups))
	total += 4 * len(p.konGroups)
	return total
}
