package mahjong

// SelfChecker 自己回合（摸牌后）的可选操作检查
type SelfChecker interface {
	Check(play *Play, opt *Operates)
}

type HuChecker struct{}  // 自摸检查器
type KonChecker struct{} // 暗杠补杠检查器

func (c *HuChecker) Check(play *Play, opt *Operates) {
	data := NewHuData(play, play.playData[play.curSeat], true)
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

func (c *KonChecker) Check(play *Play, opt *Operates) {
	if play.dealer.GetRestCount()+play.dealer.GetDeadCount() <= 0 {
		return
	}
	tiles := play.playData[play.curSeat].SelfKonTiles()
	if len(tiles) > 0 {
		opt.AddOperate(OperateKon)
		opt.KonTiles = tiles
	}
}
