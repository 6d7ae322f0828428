package mahjong_test

import (
	"testing"

	"hkmj/mahjong"
)

// setupPlay 手工布置一局：0号为庄，各家手牌给定，墙装入前30张固定牌
func setupPlay(t *testing.T, hands [4]string) (*mahjong.Game, *mahjong.Play) {
	t.Helper()
	game := mahjong.NewGame(mahjong.NewRule(), nil)
	play := mahjong.NewPlay(game, 0, mahjong.WindEast)
	play.GetDealer().LoadWall(orderedWall()[:30])
	for seat, hand := range hands {
		playData := play.GetPlayData(int32(seat))
		for _, tile := range mahjong.NamesToTiles(hand) {
			playData.PutHandTile(tile)
		}
		playData.SortHand()
	}
	return game, play
}

func claimHands() [4]string {
	return [4]string{
		"5筒,1万,2万,5万,8万,3条,6条,9条,3筒,7筒,东,南,白,白",
		"4筒,6筒,1条,2条,7条,8条,9条,东,南,西,北,中,发",
		"5筒,5筒,1万,1万,9万,9万,4条,4条,2筒,2筒,西,西,北",
		"1万,2万,3万,4万,5万,6万,7万,8万,9万,东,东,东,5筒",
	}
}

func Test_WaitOperates(t *testing.T) {
	_, play := setupPlay(t, claimHands())
	if !play.Discard(mahjong.NameToTile("5筒")) {
		t.Fatal("banker discard failed")
	}

	opt1 := play.FetchWaitOperates(1)
	if !opt1.HasOperate(mahjong.OperateChow) {
		t.Error("seat 1 should be able to chow")
	}
	if len(opt1.ChowLows) != 1 || opt1.ChowLows[0] != mahjong.NameToTile("4筒") {
		t.Errorf("chow lows = %s, want 4筒", mahjong.TilesName(opt1.ChowLows))
	}
	if opt1.HasOperate(mahjong.OperatePon) || opt1.HasOperate(mahjong.OperateHu) {
		t.Error("seat 1 has unexpected operates")
	}

	opt2 := play.FetchWaitOperates(2)
	if !opt2.HasOperate(mahjong.OperatePon) {
		t.Error("seat 2 should be able to pon")
	}
	if opt2.HasOperate(mahjong.OperateChow) {
		t.Error("only the next seat may chow")
	}
	if opt2.HasOperate(mahjong.OperateKon) {
		t.Error("a pair is not enough for zhi kon")
	}

	opt3 := play.FetchWaitOperates(3)
	if !opt3.HasOperate(mahjong.OperateHu) {
		t.Error("seat 3 should win on 5筒")
	}
	if opt3.HuFan < 1 {
		t.Errorf("hu fan = %d, want >= 1", opt3.HuFan)
	}
}

func Test_PonTakesDiscard(t *testing.T) {
	_, play := setupPlay(t, claimHands())
	play.Discard(mahjong.NameToTile("5筒"))

	if !play.Pon(2) {
		t.Fatal("pon failed")
	}
	if play.GetCurSeat() != 2 {
		t.Errorf("cur seat = %d, want 2", play.GetCurSeat())
	}
	if len(play.GetPlayData(0).GetOutTiles()) != 0 {
		t.Error("discard should leave the river when claimed")
	}
	playData := play.GetPlayData(2)
	if len(playData.GetPonGroups()) != 1 || playData.GetPonGroups()[0].From != 0 {
		t.Errorf("pon groups = %+v", playData.GetPonGroups())
	}
	// 碰后手牌3k+2，无需摸牌直接出牌
	if play.NeedDraw() {
		t.Error("no draw expected after pon")
	}
}

func Test_HuByDiscard(t *testing.T) {
	game, play := setupPlay(t, claimHands())
	play.Discard(mahjong.NameToTile("5筒"))

	data := mahjong.NewHuData(play, play.GetPlayData(3), false)
	deco := data.Decompose()
	if deco == nil {
		t.Fatal("seat 3 should win on 5筒")
	}
	result := mahjong.CalcFan(data, deco)
	play.Hu(3, result)

	if play.GetHuSeat() != 3 || play.GetPaoSeat() != 0 {
		t.Fatalf("hu seat %d pao seat %d, want 3/0", play.GetHuSeat(), play.GetPaoSeat())
	}
	if len(play.GetPlayData(0).GetOutTiles()) != 0 {
		t.Error("winning tile should leave the river")
	}

	scores := mahjong.NewScorelator(game).Settle(play)
	// 门前清1番底分2，放炮方是庄家翻倍
	want := 2 * mahjong.FanToPoints(result.Total)
	if scores[3] != want || scores[0] != -want {
		t.Errorf("scores = %v, want +%d/-%d between 3 and 0", scores, want, want)
	}
	if scores[1] != 0 || scores[2] != 0 {
		t.Errorf("bystanders should not pay on discard win: %v", scores)
	}
	sum := int64(0)
	for _, s := range scores {
		sum += s
	}
	if sum != 0 {
		t.Errorf("settlement not zero sum: %v", scores)
	}
	if game.GetPlayer(3).GetScoreChange() != want {
		t.Errorf("score change = %d, want %d", game.GetPlayer(3).GetScoreChange(), want)
	}
}

func Test_DrawnRoundNoPayment(t *testing.T) {
	game, play := setupPlay(t, claimHands())
	scores := mahjong.NewScorelator(game).Settle(play)
	for seat, s := range scores {
		if s != 0 {
			t.Errorf("seat %d paid %d on drawn round", seat, s)
		}
	}
}
