package mahjong

import (
	"math/rand"
)

// Dealer 牌墙：活牌+14张死墙（杠、补花从死墙摸）
type Dealer struct {
	rng      *rand.Rand
	tileWall []Tile
	deadWall []Tile
}

func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{
		rng:      rng,
		tileWall: make([]Tile, 0),
		deadWall: make([]Tile, 0),
	}
}

func (d *Dealer) Initialize() {
	// 先按牌值序展开再洗，洗牌结果只取决于注入的随机源
	tiles := AllTiles()
	d.tileWall = make([]Tile, 0, TileCountTotal)
	for _, tile := range SortedKeys(tiles) {
		d.tileWall = append(d.tileWall, MakeTiles(tile, tiles[tile])...)
	}
	for i := len(d.tileWall) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.tileWall[i], d.tileWall[j] = d.tileWall[j], d.tileWall[i]
	}
	d.splitDeadWall()
}

// LoadWall 直接装入给定牌序，牌局回放和测试用
func (d *Dealer) LoadWall(tiles []Tile) {
	d.tileWall = make([]Tile, len(tiles))
	copy(d.tileWall, tiles)
	d.splitDeadWall()
}

func (d *Dealer) splitDeadWall() {
	cut := len(d.tileWall) - TileCountDeadWall
	if cut < 0 {
		cut = 0
	}
	d.deadWall = make([]Tile, len(d.tileWall)-cut)
	copy(d.deadWall, d.tileWall[cut:])
	d.tileWall = d.tileWall[:cut]
}

// DrawTile 摸一张活牌，墙空返回TileNull
func (d *Dealer) DrawTile() Tile {
	if len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile
}

// DrawFromDeadWall 从死墙顶摸（杠后、补花），死墙空则退回活墙
func (d *Dealer) DrawFromDeadWall() Tile {
	if len(d.deadWall) == 0 {
		return d.DrawTile()
	}
	tile := d.deadWall[len(d.deadWall)-1]
	d.deadWall = d.deadWall[:len(d.deadWall)-1]
	return tile
}

// Deal 从庄家起按座位序每轮4张发3轮，再各补1张，庄家多1张
func (d *Dealer) Deal(banker int32) [][]Tile {
	hands := make([][]Tile, SeatCount)
	for i := range hands {
		hands[i] = make([]Tile, 0, TileCountInitBanker)
	}
	for range 3 {
		for i := range SeatCount {
			seat := GetNextSeat(banker, i, SeatCount)
			for range 4 {
				hands[seat] = append(hands[seat], d.DrawTile())
			}
		}
	}
	for i := range SeatCount {
		seat := GetNextSeat(banker, i, SeatCount)
		hands[seat] = append(hands[seat], d.DrawTile())
	}
	hands[banker] = append(hands[banker], d.DrawTile())
	return hands
}

func (d *Dealer) GetRestCount() int32 {
	return int32(len(d.tileWall))
}

func (d *Dealer) GetDeadCount() int32 {
	return int32(len(d.deadWall))
}

func (d *Dealer) Count(tile Tile) int {
	count := 0
	for _, t := range d.tileWall {
		if t == tile {
			count++
		}
	}
	return count
}
