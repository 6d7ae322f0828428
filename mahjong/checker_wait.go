package mahjong

// WaitChecker 别家出牌后本座位的可选操作检查
type WaitChecker interface {
	Check(play *Play, seat int32, opt *Operates)
}

type PaoChecker struct{}    // 点炮胡检查器
type ZhiKonChecker struct{} // 直杠检查器
type PonChecker struct{}    // 碰检查器
type ChowChecker struct{}   // 吃检查器，仅下家

func (c *PaoChecker) Check(play *Play, seat int32, opt *Operates) {
	data := NewHuData(play, play.playData[seat], false)
	deco := data.Decompose()
	if deco == nil {
		return
	}
	result := CalcFan(data, deco)
	if !MeetsMinimum(result.Total, play.game.rule.MinFan) {
		return
	}
	opt.AddOperate(OperateHu)
	opt.HuFan = result.Total
}

func (c *ZhiKonChecker) Check(play *Play, seat int32, opt *Operates) {
	if play.dealer.GetRestCount() <= 0 {
		return
	}
	if play.playData[seat].CanZhiKon(play.curTile) {
		opt.AddOperate(OperateKon)
	}
}

func (c *PonChecker) Check(play *Play, seat int32, opt *Operates) {
	if play.playData[seat].CanPon(play.curTile) {
		opt.AddOperate(OperatePon)
	}
}

func (c *ChowChecker) Check(play *Play, seat int32, opt *Operates) {
	if GetNextSeat(play.curSeat, 1, SeatCount) != seat {
		return
	}
	combos := play.playData[seat].ChowCombos(play.curTile)
	if len(combos) > 0 {
		opt.AddOperate(OperateChow)
		opt.ChowLows = combos
	}
}
