package mahjong_test

import (
	"strconv"
	"testing"

	"hkmj/mahjong"
)

func buildHuData(hand string, seatWind, roundWind mahjong.Wind, selfDrawn bool) *mahjong.HuData {
	tiles := mahjong.NamesToTiles(hand)
	playData := mahjong.NewPlayData(0)
	for _, tile := range tiles {
		playData.PutHandTile(tile)
	}
	return &mahjong.HuData{
		PlayData:  playData,
		Tiles:     tiles,
		SeatWind:  seatWind,
		RoundWind: roundWind,
		SelfDrawn: selfDrawn,
	}
}

func calcTotal(t *testing.T, data *mahjong.HuData) *mahjong.FanResult {
	t.Helper()
	deco := data.Decompose()
	if deco == nil {
		t.Fatal("hand does not win")
	}
	return mahjong.CalcFan(data, deco)
}

func hasFan(result *mahjong.FanResult, name string) bool {
	for _, item := range result.Items {
		if item.Name == name {
			return true
		}
	}
	return false
}

func Test_CalcFan(t *testing.T) {
	cases := []struct {
		hand      string
		seatWind  mahjong.Wind
		roundWind mahjong.Wind
		selfDrawn bool
		total     int32
		fanName   string
	}{
		{
			// 大三元8+箭刻3+门前清1
			hand:     "中,中,中,发,发,发,白,白,白,1万,2万,3万,9条,9条",
			seatWind: mahjong.WindSouth, roundWind: mahjong.WindEast,
			total: 12, fanName: mahjong.FanBigDragons,
		},
		{
			// 清一色7+门前清1
			hand:     "2万,2万,2万,3万,4万,5万,6万,7万,8万,6万,7万,8万,9万,9万",
			seatWind: mahjong.WindSouth, roundWind: mahjong.WindEast,
			total: 8, fanName: mahjong.FanCleanFlush,
		},
		{
			// 混一色3+门前清1
			hand:     "2条,3条,4条,5条,6条,7条,8条,8条,8条,北,北,北,中,中",
			seatWind: mahjong.WindSouth, roundWind: mahjong.WindEast,
			total: 4, fanName: mahjong.FanMixedFlush,
		},
		{
			// 七对4+自摸1
			hand:     "1万,1万,3条,3条,5筒,5筒,东,东,南,南,中,中,发,发",
			seatWind: mahjong.WindSouth, roundWind: mahjong.WindEast, selfDrawn: true,
			total: 5, fanName: mahjong.FanSevenPairs,
		},
		{
			// 字一色七对封顶
			hand:     "东,东,南,南,西,西,北,北,中,中,发,发,白,白",
			seatWind: mahjong.WindSouth, roundWind: mahjong.WindEast,
			total: mahjong.MaxFan, fanName: mahjong.FanAllHonors,
		},
		{
			hand:     "1万,9万,1条,9条,1筒,9筒,东,南,西,北,中,发,白,9筒",
			seatWind: mahjong.WindSouth, roundWind: mahjong.WindEast,
			total: mahjong.MaxFan, fanName: mahjong.FanThirteenOrphans,
		},
		{
			// 平胡1+门前清1
			hand:     "1万,2万,3万,4万,5万,6万,2条,3条,4条,5筒,6筒,7筒,9筒,9筒",
			seatWind: mahjong.WindSouth, roundWind: mahjong.WindEast,
			total: 2, fanName: mahjong.FanPingHu,
		},
		{
			// 东刻同时是门风和圈风
			hand:     "东,东,东,1万,2万,3万,4万,5万,6万,7万,8万,9万,5筒,5筒",
			seatWind: mahjong.WindEast, roundWind: mahjong.WindEast,
			total: 3, fanName: mahjong.FanSeatWind,
		},
		{
			hand:     "1万,1万,1万,2万,3万,4万,5万,6万,7万,8万,9万,9万,9万,5万",
			seatWind: mahjong.WindSouth, roundWind: mahjong.WindEast,
			total: mahjong.MaxFan, fanName: mahjong.FanNineGates,
		},
		{
			// 大四喜封顶，叠加番数超出后截到13
			hand:     "东,东,东,南,南,南,西,西,西,北,北,北,5筒,5筒",
			seatWind: mahjong.WindEast, roundWind: mahjong.WindEast,
			total: mahjong.MaxFan, fanName: mahjong.FanBigWinds,
		},
	}

	for i, tc := range cases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			data := buildHuData(tc.hand, tc.seatWind, tc.roundWind, tc.selfDrawn)
			result := calcTotal(t, data)
			if result.Total != tc.total {
				t.Errorf("total = %d, want %d (%+v)", result.Total, tc.total, result.Items)
			}
			if !hasFan(result, tc.fanName) {
				t.Errorf("missing %s in %+v", tc.fanName, result.Items)
			}
		})
	}
}

func Test_CalcFanSituational(t *testing.T) {
	// 杠上开花与海底各加1
	data := buildHuData("2万,2万,2万,3万,4万,5万,6万,7万,8万,6万,7万,8万,9万,9万",
		mahjong.WindSouth, mahjong.WindEast, true)
	data.KongDraw = true
	data.LastTile = true
	result := calcTotal(t, data)
	// 清一色7+自摸1+海底1+杠上开花1
	if result.Total != 10 {
		t.Errorf("total = %d, want 10 (%+v)", result.Total, result.Items)
	}
	if !hasFan(result, mahjong.FanKongDraw) || !hasFan(result, mahjong.FanLastTile) {
		t.Errorf("situational fans missing: %+v", result.Items)
	}
}

func Test_BonusFan(t *testing.T) {
	data := buildHuData("1万,2万,3万,4万,5万,6万,2条,3条,4条,5筒,6筒,7筒,9筒,9筒",
		mahjong.WindEast, mahjong.WindEast, false)
	data.PlayData.PutExtraTile(mahjong.TileMei)
	data.PlayData.PutExtraTile(mahjong.TileSpring)
	result := calcTotal(t, data)
	// 平胡1+门前清1+正花2（梅、春都对东位）
	if result.Total != 4 {
		t.Errorf("total = %d, want 4 (%+v)", result.Total, result.Items)
	}
}

func Test_FanToPoints(t *testing.T) {
	cases := []struct {
		fan    int32
		points int64
	}{
		{0, 1}, {1, 2}, {4, 16}, {10, 1024}, {13, 1024},
	}
	for _, tc := range cases {
		if got := mahjong.FanToPoints(tc.fan); got != tc.points {
			t.Errorf("FanToPoints(%d) = %d, want %d", tc.fan, got, tc.points)
		}
	}
	if !mahjong.MeetsMinimum(3, 3) || mahjong.MeetsMinimum(2, 3) {
		t.Error("minimum fan gate failed")
	}
}
