package mahjong

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// IState 状态机节点。OnEnter在切换后立即执行，
// OnPlayerAction只接受当前状态允许的动作。
type IState interface {
	Kind() GameStateKind
	OnEnter()
	OnPlayerAction(action *Action) error
}

type State struct {
	game *Game
}

func (s *State) OnEnter() {}

func (s *State) OnPlayerAction(action *Action) error {
	return fmt.Errorf("operate %d not allowed in current state", action.Operate)
}

type stateMenu struct {
	State
}

func newStateMenu(game *Game) *stateMenu {
	return &stateMenu{State{game: game}}
}

func (s *stateMenu) Kind() GameStateKind {
	return StateKindMenu
}

type stateDice struct {
	State
}

func newStateDice(game *Game) *stateDice {
	return &stateDice{State{game: game}}
}

func (s *stateDice) Kind() GameStateKind {
	return StateKindDiceRoll
}

func (s *stateDice) OnEnter() {
	g := s.game
	g.rollDice()
	if g.bots[0] != nil {
		g.timer.Schedule(g.rule.AIDelay, g.startRound)
	}
}

// stateAITurn AI座位的回合：摸牌后由定时器延迟落子
type stateAITurn struct {
	State
	seat int32
	opt  *Operates
}

func newStateAITurn(game *Game, seat int32) *stateAITurn {
	return &stateAITurn{State: State{game: game}, seat: seat}
}

func (s *stateAITurn) Kind() GameStateKind {
	return StateKindAITurn
}

func (s *stateAITurn) OnEnter() {
	g := s.game
	if g.play.NeedDraw() && g.play.Draw() == TileNull {
		g.SetNextState(newStateRoundEnd(g))
		return
	}
	s.opt = g.play.FetchSelfOperates()
	g.timer.Schedule(g.rule.AIDelay, s.act)
}

func (s *stateAITurn) act() {
	g := s.game
	bot := g.bots[s.seat]
	decision := bot.ChooseSelfAction(g.play, s.opt)
	if decision.Operate == OperateHu && g.settleWin(s.seat, true) {
		return
	}
	if decision.Operate == OperateKon && g.play.SelfKon(decision.KonTile) {
		g.SetNextState(newStateAITurn(g, s.seat))
		return
	}
	g.play.Discard(bot.ChooseDiscard(g.play))
	g.afterDiscard()
}

// statePlayerDiscard 人类座位的回合：亮出可选操作后等待输入
type statePlayerDiscard struct {
	State
	seat int32
	opt  *Operates
}

func newStatePlayerDiscard(game *Game, seat int32) *statePlayerDiscard {
	return &statePlayerDiscard{State: State{game: game}, seat: seat}
}

func (s *statePlayerDiscard) Kind() GameStateKind {
	return StateKindPlayerDiscard
}

func (s *statePlayerDiscard) OnEnter() {
	g := s.game
	if g.play.NeedDraw() && g.play.Draw() == TileNull {
		g.SetNextState(newStateRoundEnd(g))
		return
	}
	s.opt = g.play.FetchSelfOperates()
	g.sender.SendRequest(s.seat, s.opt)
}

func (s *statePlayerDiscard) OnPlayerAction(action *Action) error {
	g := s.game
	if action.Seat != s.seat {
		return fmt.Errorf("seat %d not on turn", action.Seat)
	}
	switch action.Operate {
	case OperateHu:
		if !s.opt.HasOperate(OperateHu) {
			return fmt.Errorf("seat %d cannot hu", s.seat)
		}
		if !g.settleWin(s.seat, true) {
			return fmt.Errorf("seat %d hu rejected", s.seat)
		}
	case OperateKon:
		if !s.opt.HasOperate(OperateKon) || !slices.Contains(s.opt.KonTiles, action.Tile) {
			return fmt.Errorf("seat %d cannot kon %s", s.seat, action.Tile.Name())
		}
		if !g.play.SelfKon(action.Tile) {
			return fmt.Errorf("seat %d kon %s failed", s.seat, action.Tile.Name())
		}
		g.SetNextState(g.newTurnState(s.seat))
	case OperateDiscard:
		if !g.play.Discard(action.Tile) {
			return fmt.Errorf("seat %d cannot discard %s", s.seat, action.Tile.Name())
		}
		g.afterDiscard()
	default:
		return fmt.Errorf("operate %d not allowed on turn", action.Operate)
	}
	return nil
}

// stateClaiming 人类座位对别家出牌有吃碰杠胡的选择权，
// 人类先答，过了才轮到AI竞争同一张牌
type stateClaiming struct {
	State
	seat int32
	opt  *Operates
}

func newStateClaiming(game *Game, seat int32, opt *Operates) *stateClaiming {
	return &stateClaiming{State: State{game: game}, seat: seat, opt: opt}
}

func (s *stateClaiming) Kind() GameStateKind {
	return StateKindClaiming
}

func (s *stateClaiming) OnEnter() {
	s.game.sender.SendRequest(s.seat, s.opt)
}

func (s *stateClaiming) OnPlayerAction(action *Action) error {
	g := s.game
	if action.Seat != s.seat {
		return fmt.Errorf("seat %d has no claim pending", action.Seat)
	}
	switch action.Operate {
	case OperatePass:
		g.resolveAIClaims()
	case OperateHu:
		if !s.opt.HasOperate(OperateHu) {
			return fmt.Errorf("seat %d cannot hu", s.seat)
		}
		if !g.settleWin(s.seat, false) {
			return fmt.Errorf("seat %d hu rejected", s.seat)
		}
	case OperateKon:
		if !s.opt.HasOperate(OperateKon) || !g.play.ZhiKon(s.seat) {
			return fmt.Errorf("seat %d cannot kon", s.seat)
		}
		g.SetNextState(g.newTurnState(s.seat))
	case OperatePon:
		if !s.opt.HasOperate(OperatePon) || !g.play.Pon(s.seat) {
			return fmt.Errorf("seat %d cannot pon", s.seat)
		}
		g.SetNextState(g.newTurnState(s.seat))
	case OperateChow:
		if !s.opt.HasOperate(OperateChow) || !slices.Contains(s.opt.ChowLows, action.Tile) {
			return fmt.Errorf("seat %d cannot chow from %s", s.seat, action.Tile.Name())
		}
		if !g.play.Chow(s.seat, action.Tile) {
			return fmt.Errorf("seat %d chow failed", s.seat)
		}
		g.SetNextState(g.newTurnState(s.seat))
	default:
		return fmt.Errorf("operate %d not allowed while claiming", action.Operate)
	}
	return nil
}

type stateRoundEnd struct {
	State
}

func newStateRoundEnd(game *Game) *stateRoundEnd {
	return &stateRoundEnd{State{game: game}}
}

func (s *stateRoundEnd) Kind() GameStateKind {
	return StateKindRoundEnd
}

func (s *stateRoundEnd) OnEnter() {
	g := s.game
	scores := g.scorelator.Settle(g.play)
	g.sender.SendScoreChange(g.GetCurScores())
	winner := g.play.GetHuSeat()
	g.sender.SendRoundResult(winner, winner == SeatNull, scores)
	g.advanceRound()
	if g.matchOver() {
		g.SetNextState(newStateGameEnd(g))
		return
	}
	if g.bots[0] != nil {
		g.timer.Schedule(g.rule.AIDelay, g.startRound)
	}
}

type stateGameEnd struct {
	State
}

func newStateGameEnd(game *Game) *stateGameEnd {
	return &stateGameEnd{State{game: game}}
}

func (s *stateGameEnd) Kind() GameStateKind {
	return StateKindGameEnd
}

func (s *stateGameEnd) OnEnter() {
	s.game.sender.SendGameOver(s.game.GetCurScores())
}

// ---- 出牌后的响应仲裁 ----

// afterDiscard 人类座位有可选操作时先进Claiming，否则直接结算AI响应
func (g *Game) afterDiscard() {
	discarder := g.play.GetCurSeat()
	for seat := int32(0); seat < SeatCount; seat++ {
		if seat == discarder || g.bots[seat] != nil {
			continue
		}
		opt := g.play.FetchWaitOperates(seat)
		if opt.Value != OperatePass {
			g.SetNextState(newStateClaiming(g, seat, opt))
			return
		}
	}
	g.resolveAIClaims()
}

// resolveAIClaims 按座位序收集AI响应，胡 > 杠/碰 > 吃，同级先到先得
func (g *Game) resolveAIClaims() {
	discarder := g.play.GetCurSeat()
	var bestSeat int32 = SeatNull
	var bestDecision *ClaimDecision
	for seat := int32(0); seat < SeatCount; seat++ {
		if seat == discarder || g.bots[seat] == nil {
			continue
		}
		opt := g.play.FetchWaitOperates(seat)
		if opt.Value == OperatePass {
			continue
		}
		decision := g.bots[seat].DecideClaim(g.play, opt)
		if decision == nil || decision.Operate == OperatePass {
			continue
		}
		if bestDecision == nil || claimPriority(decision.Operate) > claimPriority(bestDecision.Operate) {
			bestSeat, bestDecision = seat, decision
		}
	}
	if bestDecision != nil {
		g.executeClaim(bestSeat, bestDecision)
		return
	}
	g.passTurn()
}

func claimPriority(op int32) int {
	switch op {
	case OperateHu:
		return 3
	case OperateKon, OperatePon:
		return 2
	case OperateChow:
		return 1
	}
	return 0
}

func (g *Game) executeClaim(seat int32, decision *ClaimDecision) {
	switch decision.Operate {
	case OperateHu:
		if g.settleWin(seat, false) {
			return
		}
	case OperateKon:
		if g.play.ZhiKon(seat) {
			g.SetNextState(g.newTurnState(seat))
			return
		}
	case OperatePon:
		if g.play.Pon(seat) {
			g.SetNextState(g.newTurnState(seat))
			return
		}
	case OperateChow:
		if g.play.Chow(seat, decision.ChowLow) {
			g.SetNextState(g.newTurnState(seat))
			return
		}
	}
	g.passTurn()
}

func (g *Game) passTurn() {
	g.play.SwitchNextSeat()
	g.SetNextState(g.newTurnState(g.play.GetCurSeat()))
}

// settleWin 胡牌前重算一遍牌型与番数，通过才落定
func (g *Game) settleWin(seat int32, self bool) bool {
	data := NewHuData(g.play, g.play.GetPlayData(seat), self)
	deco := data.Decompose()
	if deco == nil {
		logrus.Errorf("seat %d hu rejected on recheck", seat)
		return false
	}
	g.play.Hu(seat, CalcFan(data, deco))
	g.SetNextState(newStateRoundEnd(g))
	return true
}
