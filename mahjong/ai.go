package mahjong

import (
	"math/rand"
	"slices"
)

// ClaimDecision AI对一次出牌的响应，nil表示过
type ClaimDecision struct {
	Operate int32
	ChowLow Tile
	KonTile Tile
}

// AIPlayer 脚本化对手。只读取Play的公开牌面（牌河、副露、花牌），
// 不窥视别家手牌。
type AIPlayer struct {
	seat       int32
	difficulty Difficulty
	rng        *rand.Rand
}

func NewAIPlayer(seat int32, difficulty Difficulty, rng *rand.Rand) *AIPlayer {
	return &AIPlayer{seat: seat, difficulty: difficulty, rng: rng}
}

// ChooseSelfAction 自己回合的取舍：能胡就胡，有杠就杠，否则打牌
func (a *AIPlayer) ChooseSelfAction(play *Play, opt *Operates) *ClaimDecision {
	if opt.HasOperate(OperateHu) {
		return &ClaimDecision{Operate: OperateHu}
	}
	if opt.HasOperate(OperateKon) && len(opt.KonTiles) > 0 {
		return &ClaimDecision{Operate: OperateKon, KonTile: opt.KonTiles[0]}
	}
	return &ClaimDecision{Operate: OperateDiscard}
}

func (a *AIPlayer) ChooseDiscard(play *Play) Tile {
	playData := play.GetPlayData(a.seat)
	hand := playData.GetHandTiles()
	if a.difficulty == DifficultyEasy {
		return hand[a.rng.Intn(len(hand))]
	}

	danger := scanDanger(play, a.seat)
	type scored struct {
		tile  Tile
		score int
	}
	candidates := make([]scored, 0, len(hand))
	for tile := range TileCounts(hand) {
		candidates = append(candidates, scored{tile, a.tileScore(play, playData, tile, danger)})
	}
	slices.SortFunc(candidates, func(x, y scored) int {
		if x.score != y.score {
			return x.score - y.score
		}
		return int(x.tile - y.tile)
	})
	pick := min(3, len(candidates))
	return candidates[a.rng.Intn(pick)].tile
}

// tileScore 留牌价值：越低越先打出
func (a *AIPlayer) tileScore(play *Play, playData *PlayData, tile Tile, danger dangerInfo) int {
	hand := playData.GetHandTiles()
	score := 0
	switch CountElement(hand, tile) {
	case 2:
		score += 4
	case 3, 4:
		score += 8
	}
	if tile.IsSuit() {
		color, point := tile.Info()
		for _, step := range []int{-1, 1} {
			if p := point + step; p >= 0 && p <= 8 && slices.Contains(hand, MakeTile(color, p)) {
				score += 3
			}
		}
		for _, step := range []int{-2, 2} {
			if p := point + step; p >= 0 && p <= 8 && slices.Contains(hand, MakeTile(color, p)) {
				score++
			}
		}
		if tile.IsTerminal() {
			score--
		}
	}
	if tile.IsDragon() {
		score += 2
	}

	dangerPenalty, safetyBonus := 5, 0
	if a.difficulty == DifficultyHard {
		dangerPenalty = 9
		safetyBonus = 6
		if play.GetDealer().GetRestCount() < 20 {
			safetyBonus = 12
		}
	}
	if danger.flags(tile) {
		score -= dangerPenalty
	}
	if safetyBonus > 0 && seenInDiscards(play, tile) {
		score -= safetyBonus
	}
	return score
}

// DecideClaim 响应别家出牌，nil为过
func (a *AIPlayer) DecideClaim(play *Play, opt *Operates) *ClaimDecision {
	if opt.HasOperate(OperateHu) {
		return &ClaimDecision{Operate: OperateHu}
	}
	if a.difficulty == DifficultyEasy {
		return a.decideClaimEasy(opt)
	}
	return a.decideClaimTactical(play, opt)
}

func (a *AIPlayer) decideClaimEasy(opt *Operates) *ClaimDecision {
	if opt.HasOperate(OperateKon) && a.rng.Intn(2) == 0 {
		return &ClaimDecision{Operate: OperateKon}
	}
	if opt.HasOperate(OperatePon) && a.rng.Intn(2) == 0 {
		return &ClaimDecision{Operate: OperatePon}
	}
	return nil
}

func (a *AIPlayer) decideClaimTactical(play *Play, opt *Operates) *ClaimDecision {
	if opt.HasOperate(OperateKon) {
		return &ClaimDecision{Operate: OperateKon}
	}

	playData := play.GetPlayData(a.seat)
	tile := play.GetCurTile()
	danger := scanDanger(play, a.seat)
	intercept := tile.IsSuit() && danger.suits[tile.Color()]

	if opt.HasOperate(OperatePon) && a.acceptPon(play, playData, tile, intercept) {
		return &ClaimDecision{Operate: OperatePon}
	}
	if opt.HasOperate(OperateChow) && len(opt.ChowLows) > 0 && a.acceptChow(play, playData, tile, intercept) {
		return &ClaimDecision{Operate: OperateChow, ChowLow: opt.ChowLows[0]}
	}
	return nil
}

func (a *AIPlayer) acceptPon(play *Play, playData *PlayData, tile Tile, intercept bool) bool {
	if intercept {
		return true
	}
	if a.difficulty == DifficultyHard {
		if tile.IsDragon() || tile.Wind() == SeatWindOf(a.seat, play.GetBanker()) {
			return true
		}
		if len(playData.GetPonGroups())+len(playData.GetKonGroups()) >= 2 {
			return true
		}
	}
	if a.breaksFlush(playData, tile) && a.handPotential(playData) < 4 {
		return false
	}
	if a.difficulty == DifficultyHard {
		return a.rng.Intn(4) < 3
	}
	return a.rng.Intn(2) == 0
}

func (a *AIPlayer) acceptChow(play *Play, playData *PlayData, tile Tile, intercept bool) bool {
	if intercept {
		return true
	}
	if lock := a.lockedSuit(playData); lock != ColorUndefined && tile.Color() != lock {
		return false
	}
	if a.breaksFlush(playData, tile) && a.handPotential(playData) < 4 {
		return false
	}
	if a.difficulty == DifficultyHard {
		return a.rng.Intn(4) < 1
	}
	return a.rng.Intn(5) < 2
}

// lockedSuit Hard难度：已有明副露的那门数牌即为锁定门，吃牌不得破门
func (a *AIPlayer) lockedSuit(playData *PlayData) EColor {
	if a.difficulty != DifficultyHard {
		return ColorUndefined
	}
	lock := ColorUndefined
	for _, chow := range playData.GetChowGroups() {
		lock = chow.LeftTile.Color()
	}
	for _, pon := range playData.GetPonGroups() {
		if pon.Tile.IsSuit() {
			lock = pon.Tile.Color()
		}
	}
	for _, kon := range playData.GetKonGroups() {
		if kon.Tile.IsSuit() && kon.Type != KonTypeAn {
			lock = kon.Tile.Color()
		}
	}
	return lock
}

// breaksFlush 手牌六成以上集中在一门数牌时，收入别门的牌会破坏清混一色倾向
func (a *AIPlayer) breaksFlush(playData *PlayData, tile Tile) bool {
	hand := playData.GetHandTiles()
	var suitCounts [3]int
	suited := 0
	for _, t := range hand {
		if t.IsSuit() {
			suitCounts[t.Color()]++
			suited++
		}
	}
	if suited == 0 {
		return false
	}
	major := ColorUndefined
	for c, n := range suitCounts {
		if n*10 >= len(hand)*6 {
			major = EColor(c)
		}
	}
	return major != ColorUndefined && (!tile.IsSuit() || tile.Color() != major)
}

// handPotential 粗略的成手价值：花牌番+字刻番+对对胡/七对倾向
func (a *AIPlayer) handPotential(playData *PlayData) int {
	potential := len(playData.GetExtraTiles())
	pairs, triplets := 0, 0
	for tile, count := range TileCounts(playData.GetHandTiles()) {
		if count >= 3 {
			triplets++
			if tile.IsHonor() {
				potential++
			}
		} else if count == 2 {
			pairs++
		}
	}
	for _, pon := range playData.GetPonGroups() {
		if pon.Tile.IsHonor() {
			potential++
		}
		triplets++
	}
	for _, kon := range playData.GetKonGroups() {
		if kon.Tile.IsHonor() {
			potential++
		}
		triplets++
	}
	if triplets >= 3 {
		potential += 3 // 对对胡在望
	}
	if pairs >= 5 {
		potential += 2 // 七对在望
	}
	return potential
}

// dangerInfo 各门/箭牌的危险标记，来自全桌明副露
type dangerInfo struct {
	suits   [3]bool
	dragons bool
}

func (d dangerInfo) flags(tile Tile) bool {
	if tile.IsSuit() {
		return d.suits[tile.Color()]
	}
	return d.dragons && tile.IsDragon()
}

// scanDanger 某家同一门数牌明露≥9张则该门危险；某家明露≥2副箭刻则箭牌危险
func scanDanger(play *Play, self int32) dangerInfo {
	var info dangerInfo
	for seat := int32(0); seat < SeatCount; seat++ {
		if seat == self {
			continue
		}
		playData := play.GetPlayData(seat)
		var suitTiles [3]int
		dragonMelds := 0
		for _, chow := range playData.GetChowGroups() {
			suitTiles[chow.LeftTile.Color()] += 3
		}
		for _, pon := range playData.GetPonGroups() {
			if pon.Tile.IsSuit() {
				suitTiles[pon.Tile.Color()] += 3
			}
			if pon.Tile.IsDragon() {
				dragonMelds++
			}
		}
		for _, kon := range playData.GetKonGroups() {
			if kon.Type == KonTypeAn {
				continue
			}
			if kon.Tile.IsSuit() {
				suitTiles[kon.Tile.Color()] += 4
			}
			if kon.Tile.IsDragon() {
				dragonMelds++
			}
		}
		for c, n := range suitTiles {
			if n >= 9 {
				info.suits[c] = true
			}
		}
		if dragonMelds >= 2 {
			info.dragons = true
		}
	}
	return info
}

// seenInDiscards 现物：任何牌河里出现过的牌视为安牌
func seenInDiscards(play *Play, tile Tile) bool {
	for seat := int32(0); seat < SeatCount; seat++ {
		if slices.Contains(play.GetPlayData(seat).GetOutTiles(), tile) {
			return true
		}
	}
	return false
}
