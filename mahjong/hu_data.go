package mahjong

import "slices"

// HuData 一次胡牌判定的输入快照：手牌（含胡的那张）加当时的场况
type HuData struct {
	PlayData  *PlayData
	Tiles     []Tile // 手牌，点炮时已并入炮牌
	WinTile   Tile
	SeatWind  Wind
	RoundWind Wind
	SelfDrawn bool
	LastTile  bool // 海底
	KongDraw  bool // 杠上开花
}

// NewHuData 组装判胡快照；self为false时把当前打出的牌并入手牌
func NewHuData(play *Play, playData *PlayData, self bool) *HuData {
	data := &HuData{
		PlayData:  playData,
		Tiles:     slices.Clone(playData.handTiles),
		WinTile:   play.curTile,
		SeatWind:  SeatWindOf(playData.seat, play.banker),
		RoundWind: play.roundWind,
		SelfDrawn: self,
		LastTile:  play.dealer.GetRestCount() == 0,
		KongDraw:  self && play.IsAfterKon(),
	}
	if !self {
		data.Tiles = append(data.Tiles, play.curTile)
	}
	return data
}

// Decompose 对快照求胡牌分解
func (h *HuData) Decompose() *HuDecomposition {
	return DefaultHuCore.Decompose(h.Tiles, h.PlayData.MeldCount())
}

// allTiles 手牌加全部副露的牌，花牌不含
func (h *HuData) allTiles() []Tile {
	tiles := slices.Clone(h.Tiles)
	for _, chow := range h.PlayData.chowGroups {
		low := chow.LeftTile
		for i := range 3 {
			tiles = append(tiles, MakeTile(low.Color(), low.Point()+i))
		}
	}
	for _, pon := range h.PlayData.ponGroups {
		tiles = append(tiles, MakeTiles(pon.Tile, 3)...)
	}
	for _, kon := range h.PlayData.konGroups {
		tiles = append(tiles, MakeTiles(kon.Tile, 4)...)
	}
	return tiles
}

// allSets 分解出的组加副露的组，顺子记最小牌
func (h *HuData) allSets(deco *HuDecomposition) []SetInfo {
	sets := slices.Clone(deco.Sets)
	for _, chow := range h.PlayData.chowGroups {
		sets = append(sets, SetInfo{Kind: SetChow, Tile: chow.LeftTile})
	}
	for _, pon := range h.PlayData.ponGroups {
		sets = append(sets, SetInfo{Kind: SetPung, Tile: pon.Tile})
	}
	for _, kon := range h.PlayData.konGroups {
		sets = append(sets, SetInfo{Kind: SetPung, Tile: kon.Tile})
	}
	return sets
}

var DefaultHuCore = NewHuCore()
