package mahjong_test

import (
	"slices"
	"testing"

	"hkmj/mahjong"
)

func newPlayData(seat int32, hand string) *mahjong.PlayData {
	playData := mahjong.NewPlayData(seat)
	for _, tile := range mahjong.NamesToTiles(hand) {
		playData.PutHandTile(tile)
	}
	playData.SortHand()
	return playData
}

func Test_ChowCombos(t *testing.T) {
	playData := newPlayData(0, "1万,3万,4万,7条,8条,东,东")

	combos := playData.ChowCombos(mahjong.NameToTile("2万"))
	want := mahjong.NamesToTiles("1万,2万")
	if !slices.Equal(combos, want) {
		t.Errorf("2万 combos = %s, want %s", mahjong.TilesName(combos), mahjong.TilesName(want))
	}

	combos = playData.ChowCombos(mahjong.NameToTile("9条"))
	if !slices.Equal(combos, mahjong.NamesToTiles("7条")) {
		t.Errorf("9条 combos = %s, want 7条", mahjong.TilesName(combos))
	}

	if playData.ChowCombos(mahjong.TileDong) != nil {
		t.Error("honor tiles cannot be chowed")
	}
	if len(playData.ChowCombos(mahjong.NameToTile("5筒"))) != 0 {
		t.Error("no combo expected for 5筒")
	}
}

func Test_PonAndKon(t *testing.T) {
	playData := newPlayData(1, "5筒,5筒,5筒,8条,8条,中,中,中,中")

	if !playData.CanPon(mahjong.NameToTile("8条")) || playData.CanPon(mahjong.TileFa) {
		t.Error("pon eligibility wrong")
	}
	if !playData.CanZhiKon(mahjong.NameToTile("5筒")) || playData.CanZhiKon(mahjong.NameToTile("8条")) {
		t.Error("zhi kon eligibility wrong")
	}

	konTiles := playData.SelfKonTiles()
	if !slices.Equal(konTiles, []mahjong.Tile{mahjong.TileZhong}) {
		t.Errorf("self kon tiles = %s, want 中", mahjong.TilesName(konTiles))
	}

	if !playData.Pon(mahjong.NameToTile("8条"), 2) {
		t.Fatal("pon failed")
	}
	if got := len(playData.GetHandTiles()); got != 7 {
		t.Errorf("hand after pon = %d, want 7", got)
	}
	if playData.MeldCount() != 1 || playData.ExposedMeldCount() != 1 {
		t.Error("pon should count as exposed meld")
	}

	// 碰过又摸到同牌：可补杠
	playData.PutHandTile(mahjong.NameToTile("8条"))
	if !slices.Contains(playData.SelfKonTiles(), mahjong.NameToTile("8条")) {
		t.Error("bu kon candidate missing")
	}
	if !playData.Kon(mahjong.NameToTile("8条"), 1, mahjong.KonTypeBu) {
		t.Fatal("bu kon failed")
	}
	kons := playData.GetKonGroups()
	if len(kons) != 1 || kons[0].Type != mahjong.KonTypeBu || kons[0].From != 2 {
		t.Errorf("bu kon group = %+v, want type bu from seat 2", kons)
	}
	if len(playData.GetPonGroups()) != 0 {
		t.Error("pon group should convert to kon")
	}

	// 暗杠不计入明副露
	if !playData.Kon(mahjong.TileZhong, 1, mahjong.KonTypeAn) {
		t.Fatal("an kon failed")
	}
	if playData.MeldCount() != 2 || playData.ExposedMeldCount() != 1 {
		t.Errorf("meld counts = %d/%d, want 2/1", playData.MeldCount(), playData.ExposedMeldCount())
	}
}

func Test_TryChow(t *testing.T) {
	playData := newPlayData(2, "4万,5万,7条,9条")

	if !playData.TryChow(mahjong.NameToTile("3万"), mahjong.NameToTile("3万"), 1) {
		t.Fatal("chow 3万4万5万 failed")
	}
	chows := playData.GetChowGroups()
	if len(chows) != 1 || chows[0].LeftTile != mahjong.NameToTile("3万") || chows[0].From != 1 {
		t.Errorf("chow group = %+v", chows)
	}
	if got := len(playData.GetHandTiles()); got != 2 {
		t.Errorf("hand after chow = %d, want 2", got)
	}

	if playData.TryChow(mahjong.NameToTile("8条"), mahjong.NameToTile("8条"), 1) {
		t.Error("chow without both neighbors should fail")
	}
}

func Test_TileTotal(t *testing.T) {
	playData := newPlayData(3, "5筒,5筒,5筒,8条,8条,1万,2万,3万,东,东,东,中,白")
	playData.PutExtraTile(mahjong.TileMei)
	if got := playData.TileTotal(); got != 14 {
		t.Errorf("tile total = %d, want 14", got)
	}
	if !playData.Discard(mahjong.TileBai) {
		t.Fatal("discard failed")
	}
	if got := playData.TileTotal(); got != 14 {
		t.Errorf("tile total after discard = %d, want 14", got)
	}
	if playData.Discard(mahjong.TileFa) {
		t.Error("cannot discard a tile not in hand")
	}
	playData.Pon(mahjong.NameToTile("5筒"), 0)
	if got := playData.TileTotal(); got != 15 {
		// 碰来的第三张来自别家牌河
		t.Errorf("tile total after pon = %d, want 15", got)
	}
}
