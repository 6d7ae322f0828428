package mahjong

import (
	"github.com/sirupsen/logrus"
)

// Play 一局牌的推进：发牌、补花、行牌、吃碰杠胡的执行与历史记录。
// 状态流转由Game负责，Play只管牌面事实。
type Play struct {
	game         *Game
	dealer       *Dealer
	banker       int32
	roundWind    Wind
	curSeat      int32
	curTile      Tile
	playData     []*PlayData
	history      []Action
	huSeat       int32
	huResult     *FanResult
	paoSeat      int32 // 点炮座位，自摸为SeatNull
	selfCheckers []SelfChecker
	waitCheckers []WaitChecker
}

func NewPlay(game *Game, banker int32, roundWind Wind) *Play {
	p := &Play{
		game:      game,
		dealer:    NewDealer(game.rng),
		banker:    banker,
		roundWind: roundWind,
		curSeat:   banker,
		curTile:   TileNull,
		playData:  make([]*PlayData, SeatCount),
		history:   make([]Action, 0),
		huSeat:    SeatNull,
		paoSeat:   SeatNull,
	}
	p.selfCheckers = []SelfChecker{&HuChecker{}, &KonChecker{}}
	p.waitCheckers = []WaitChecker{&PaoChecker{}, &ZhiKonChecker{}, &PonChecker{}, &ChowChecker{}}
	for i := range SeatCount {
		p.playData[i] = NewPlayData(i)
	}
	return p
}

// Initialize 洗牌发牌，庄家起顺位补花，校验各家落在13/14张
func (p *Play) Initialize(manual *Manual) {
	if manual != nil && manual.Enabled() {
		if wall, err := manual.Load(); err == nil {
			p.dealer.LoadWall(wall)
		} else {
			logrus.Errorf("manual wall rejected: %v", err)
			p.dealer.Initialize()
		}
	} else {
		p.dealer.Initialize()
	}

	hands := p.dealer.Deal(p.banker)
	for i := range SeatCount {
		for _, t := range hands[i] {
			p.playData[i].PutHandTile(t)
		}
		p.playData[i].SortHand()
		p.game.sender.SendDeal(i, p.playData[i].GetHandTiles())
	}
	for i := range SeatCount {
		seat := GetNextSeat(p.banker, i, SeatCount)
		p.resolveFlowers(seat)
		p.repairHand(seat)
	}
}

// resolveFlowers 开花即补：取出花牌，从死墙补一张，补到的又是花则继续
func (p *Play) resolveFlowers(seat int32) {
	playData := p.playData[seat]
	for playData.HasExtraInHand() {
		flower := playData.TakeExtraTile()
		replacement := p.dealer.DrawFromDeadWall()
		if replacement == TileNull {
			p.game.sender.SendFlower(seat, flower, TileNull)
			return
		}
		playData.PutHandTile(replacement)
		if seat == p.curSeat && len(p.history) > 0 {
			p.curTile = replacement
		}
		p.game.sender.SendFlower(seat, flower, replacement)
	}
}

// repairHand 手牌数偏离3k+1/3k+2时的兜底修正，正确实现下不应触发
func (p *Play) repairHand(seat int32) {
	playData := p.playData[seat]
	expected := TileCountInitNormal - 3*playData.MeldCount()
	if seat == p.banker && len(p.history) == 0 {
		expected++
	}
	for len(playData.handTiles) < expected {
		tile := p.dealer.DrawTile()
		if tile == TileNull {
			return
		}
		logrus.Errorf("seat %d hand short, repaired with %s", seat, tile.Name())
		playData.PutHandTile(tile)
	}
	for len(playData.handTiles) > expected {
		tile := playData.handTiles[len(playData.handTiles)-1]
		logrus.Errorf("seat %d hand overflow, pushed %s out", seat, tile.Name())
		playData.RemoveHandTile(tile, 1)
		playData.PutOutTile(tile)
	}
}

func (p *Play) GetPlayData(seat int32) *PlayData {
	if seat < 0 || seat >= SeatCount {
		return nil
	}
	return p.playData[seat]
}

func (p *Play) GetDealer() *Dealer {
	return p.dealer
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) GetCurTile() Tile {
	return p.curTile
}

func (p *Play) GetBanker() int32 {
	return p.banker
}

func (p *Play) GetRoundWind() Wind {
	return p.roundWind
}

func (p *Play) GetHuSeat() int32 {
	return p.huSeat
}

func (p *Play) GetPaoSeat() int32 {
	return p.paoSeat
}

func (p *Play) GetHuResult() *FanResult {
	return p.huResult
}

func (p *Play) GetHistory() []Action {
	return p.history
}

// NeedDraw 当前座位手牌是3k+1时需要摸牌
func (p *Play) NeedDraw() bool {
	return len(p.playData[p.curSeat].handTiles)%3 == 1
}

// Draw 当前座位摸牌并补花，墙空返回TileNull（流局信号）
func (p *Play) Draw() Tile {
	tile := p.dealer.DrawTile()
	if tile == TileNull {
		return TileNull
	}
	p.playData[p.curSeat].PutHandTile(tile)
	p.curTile = tile
	p.addHistory(p.curSeat, tile, OperateDraw, 0)
	p.game.sender.SendDraw(p.curSeat, tile)
	p.resolveFlowers(p.curSeat)
	return tile
}

func (p *Play) FetchSelfOperates() *Operates {
	opt := &Operates{Value: OperateDiscard}
	for _, c := range p.selfCheckers {
		c.Check(p, opt)
	}
	return opt
}

func (p *Play) FetchWaitOperates(seat int32) *Operates {
	opt := &Operates{Value: OperatePass}
	for _, c := range p.waitCheckers {
		c.Check(p, seat, opt)
	}
	return opt
}

func (p *Play) Discard(tile Tile) bool {
	playData := p.playData[p.curSeat]
	if tile == TileNull {
		tile = playData.handTiles[len(playData.handTiles)-1]
	}
	if !playData.Discard(tile) {
		logrus.Errorf("seat %d cannot discard %s", p.curSeat, tile.Name())
		return false
	}
	p.curTile = tile
	p.addHistory(p.curSeat, tile, OperateDiscard, 0)
	p.game.sender.SendDiscard(p.curSeat, tile)
	return true
}

func (p *Play) Chow(seat int32, leftTile Tile) bool {
	playData := p.playData[seat]
	if !playData.TryChow(p.curTile, leftTile, p.curSeat) {
		logrus.Errorf("seat %d cannot chow %s", seat, p.curTile.Name())
		return false
	}
	p.playData[p.curSeat].RemoveOutTile()
	p.game.sender.SendChow(seat, p.curSeat, p.curTile, leftTile)
	p.addHistory(seat, leftTile, OperateChow, int32(p.curTile))
	p.curSeat = seat
	return true
}

func (p *Play) Pon(seat int32) bool {
	playData := p.playData[seat]
	if !playData.Pon(p.curTile, p.curSeat) {
		return false
	}
	p.playData[p.curSeat].RemoveOutTile()
	p.game.sender.SendPon(seat, p.curSeat, p.curTile)
	p.addHistory(seat, p.curTile, OperatePon, 0)
	p.curSeat = seat
	return true
}

// ZhiKon 直杠别人打出的牌，随后从死墙补一张
func (p *Play) ZhiKon(seat int32) bool {
	playData := p.playData[seat]
	if !playData.Kon(p.curTile, p.curSeat, KonTypeZhi) {
		return false
	}
	p.playData[p.curSeat].RemoveOutTile()
	p.game.sender.SendKon(seat, p.curSeat, p.curTile, KonTypeZhi)
	p.addHistory(seat, p.curTile, OperateKon, int32(KonTypeZhi))
	p.curSeat = seat
	p.konDraw(seat)
	return true
}

// SelfKon 自己回合宣杠：手里4张为暗杠，碰过的为补杠
func (p *Play) SelfKon(tile Tile) bool {
	playData := p.playData[p.curSeat]
	konType := KonTypeAn
	if playData.HasPon(tile) {
		konType = KonTypeBu
	}
	if !playData.Kon(tile, p.curSeat, konType) {
		return false
	}
	p.game.sender.SendKon(p.curSeat, p.curSeat, tile, konType)
	p.addHistory(p.curSeat, tile, OperateKon, int32(konType))
	p.konDraw(p.curSeat)
	return true
}

func (p *Play) konDraw(seat int32) {
	tile := p.dealer.DrawFromDeadWall()
	if tile == TileNull {
		return
	}
	p.playData[seat].PutHandTile(tile)
	p.curTile = tile
	p.addHistory(seat, tile, OperateDraw, 0)
	p.game.sender.SendDraw(seat, tile)
	p.resolveFlowers(seat)
}

// Hu 落定胡牌：点炮时炮牌并入胡家手牌并从牌河移除
func (p *Play) Hu(seat int32, result *FanResult) {
	p.huSeat = seat
	p.huResult = result
	if seat != p.curSeat {
		p.paoSeat = p.curSeat
		p.playData[p.curSeat].RemoveOutTile()
		p.playData[seat].PutHandTile(p.curTile)
	}
	p.addHistory(seat, p.curTile, OperateHu, 0)
	p.game.sender.SendHu(seat, p.paoSeat, p.curTile, result)
}

// IsAfterKon 当前手牌最后一摸是否为杠后补牌
func (p *Play) IsAfterKon() bool {
	for i := len(p.history) - 1; i >= 0; i-- {
		action := p.history[i]
		switch action.Operate {
		case OperateDraw:
			continue
		case OperateKon:
			return true
		default:
			return false
		}
	}
	return false
}

func (p *Play) SwitchNextSeat() {
	p.curSeat = GetNextSeat(p.curSeat, 1, SeatCount)
}

func (p *Play) addHistory(seat int32, tile Tile, operate int32, extra int32) {
	p.history = append(p.history, Action{Seat: seat, Tile: tile, Operate: operate, Extra: extra})
}

// TotalTiles 全桌牌数守恒校验：四家占用+活墙+死墙
func (p *Play) TotalTiles() int {
	total := int(p.dealer.GetRestCount()) + int(p.dealer.GetDeadCount())
	for _, pd := range p.playData {
		total += pd.TileTotal()
	}
	return total
}
