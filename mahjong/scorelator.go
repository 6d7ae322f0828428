package mahjong

// Scorelator 一局结束后的分数结算：番转底分、庄家翻倍、包牌责任
type Scorelator struct {
	game *Game
}

func NewScorelator(g *Game) *Scorelator {
	return &Scorelator{game: g}
}

// Settle 按局面结算并写入各家积分，返回零和的分数变动
func (s *Scorelator) Settle(play *Play) []int64 {
	scores := make([]int64, SeatCount)
	if play.huSeat == SeatNull {
		return scores // 流局无收付
	}

	base := FanToPoints(play.huResult.Total)
	banker := play.banker
	winner := play.huSeat

	if play.paoSeat == SeatNull {
		s.settleZimo(play, scores, base, banker, winner)
	} else {
		pay := base
		if winner == banker || play.paoSeat == banker {
			pay *= 2
		}
		scores[play.paoSeat] = -pay
		scores[winner] = pay
	}

	s.capToStack(scores, winner)
	for i := range SeatCount {
		s.game.players[i].AddScoreChange(scores[i])
	}
	return scores
}

// capToStack 输家最多输到0分，差额从胡家所得中扣回保持零和
func (s *Scorelator) capToStack(scores []int64, winner int32) {
	for i := range SeatCount {
		if scores[i] >= 0 {
			continue
		}
		avail := max(s.game.players[i].GetCurScore(), 0)
		if -scores[i] > avail {
			scores[winner] += scores[i] + avail
			scores[i] = -avail
		}
	}
}

func (s *Scorelator) settleZimo(play *Play, scores []int64, base int64, banker, winner int32) {
	if bao := s.checkBao(play, winner); bao != SeatNull {
		scores[bao] = -3 * base
		scores[winner] = 3 * base
		return
	}
	for i := range SeatCount {
		if i == winner {
			continue
		}
		pay := base
		if winner == banker || i == banker {
			pay *= 2
		}
		scores[i] = -pay
		scores[winner] += pay
	}
}

type exposure struct {
	tile Tile
	from int32
	seq  int32
	kon  bool
}

// checkBao 包牌责任判定，仅对有副露的自摸局生效。
// 依序：大三元喂成、大四喜喂成、清一色四副露喂成、四明杠喂成；
// 喂牌者是胡家自己时不构成包牌。
func (s *Scorelator) checkBao(play *Play, winner int32) int32 {
	playData := play.playData[winner]
	exposed := exposedMelds(playData)
	if len(exposed) == 0 {
		return SeatNull
	}

	if seat := feederOf(exposed, winner, func(e exposure) bool { return e.tile.IsDragon() }, 3); seat != SeatNull {
		return seat
	}
	if seat := feederOf(exposed, winner, func(e exposure) bool { return e.tile.IsWind() }, 4); seat != SeatNull {
		return seat
	}
	if seat := s.cleanFlushFeeder(playData, exposed, winner); seat != SeatNull {
		return seat
	}
	konCount := 0
	for _, e := range exposed {
		if e.kon {
			konCount++
		}
	}
	if konCount >= 4 {
		if seat := feederOf(exposed, winner, func(e exposure) bool { return e.kon }, 4); seat != SeatNull {
			return seat
		}
	}
	return SeatNull
}

// exposedMelds 明副露（暗杠不算），按成组顺序
func exposedMelds(playData *PlayData) []exposure {
	melds := make([]exposure, 0, 4)
	for _, chow := range playData.chowGroups {
		melds = append(melds, exposure{tile: chow.LeftTile, from: chow.From, seq: chow.Seq})
	}
	for _, pon := range playData.ponGroups {
		melds = append(melds, exposure{tile: pon.Tile, from: pon.From, seq: pon.Seq})
	}
	for _, kon := range playData.konGroups {
		if kon.Type != KonTypeAn {
			melds = append(melds, exposure{tile: kon.Tile, from: kon.From, seq: kon.Seq, kon: true})
		}
	}
	return melds
}

// feederOf 满足match的副露达到need副时，最后喂成那副的供牌方
func feederOf(exposed []exposure, winner int32, match func(exposure) bool, need int) int32 {
	last := exposure{seq: -1}
	count := 0
	for _, e := range exposed {
		if !match(e) {
			continue
		}
		count++
		if e.seq > last.seq {
			last = e
		}
	}
	if count < need || last.from == winner {
		return SeatNull
	}
	return last.from
}

// cleanFlushFeeder 清一色包牌：4副及以上明副露、至少12张、全部同一门数牌
func (s *Scorelator) cleanFlushFeeder(playData *PlayData, exposed []exposure, winner int32) int32 {
	if len(exposed) < 4 {
		return SeatNull
	}
	tiles := 0
	suit := ColorUndefined
	for _, e := range exposed {
		if !e.tile.IsSuit() {
			return SeatNull
		}
		if suit == ColorUndefined {
			suit = e.tile.Color()
		} else if e.tile.Color() != suit {
			return SeatNull
		}
		if e.kon {
			tiles += 4
		} else {
			tiles += 3
		}
	}
	if tiles < 12 {
		return SeatNull
	}
	for _, t := range playData.handTiles {
		if t.Color() != suit {
			return SeatNull
		}
	}
	return feederOf(exposed, winner, func(exposure) bool { return true }, 4)
}
