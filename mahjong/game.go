package mahjong

import (
	"fmt"
	"math/rand"
	"time"
)

// Game 一场比赛：座位与积分、圈/局推进、状态机与定时驱动。
// 所有可变操作都经过当前状态的校验，状态字段即互斥锁。
type Game struct {
	rule       *Rule
	rng        *rand.Rand
	sender     *Sender
	timer      *Timer
	scorelator *Scorelator
	CurState   IState
	nextState  IState
	players    []*Player
	bots       []*AIPlayer
	play       *Play
	manual     *Manual

	banker       int32
	roundWind    Wind
	roundInWind  int32
	playedRounds int32
	dice         [3]int32
}

func NewGame(rule *Rule, sink EventSink) *Game {
	if rule == nil {
		rule = NewRule()
	}
	seed := rule.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		rule:      rule,
		rng:       rand.New(rand.NewSource(seed)),
		timer:     NewTimer(),
		players:   make([]*Player, SeatCount),
		bots:      make([]*AIPlayer, SeatCount),
		banker:    SeatNull,
		roundWind: WindEast,
	}
	g.sender = NewSender(g, sink)
	g.scorelator = NewScorelator(g)
	for i := range SeatCount {
		g.players[i] = NewPlayer(i, fmt.Sprintf("player%d", i), rule.StartingScore, i != 0)
		if i != 0 {
			g.bots[i] = NewAIPlayer(i, rule.Difficulty, g.rng)
		}
	}
	g.CurState = newStateMenu(g)
	return g
}

// EnableAutoPilot 0号座位也交给AI，模拟/测试用
func (g *Game) EnableAutoPilot() {
	g.bots[0] = NewAIPlayer(0, g.rule.Difficulty, g.rng)
	g.players[0] = NewPlayer(0, g.players[0].Name(), g.players[0].GetCurScore(), true)
}

// SetManual 装入配牌文件，下一局生效
func (g *Game) SetManual(m *Manual) {
	g.manual = m
}

func (g *Game) GetRule() *Rule {
	return g.rule
}

func (g *Game) GetPlay() *Play {
	return g.play
}

func (g *Game) GetPlayer(seat int32) *Player {
	if !g.IsValidSeat(seat) {
		return nil
	}
	return g.players[seat]
}

func (g *Game) IsValidSeat(seat int32) bool {
	return seat >= 0 && seat < SeatCount
}

func (g *Game) GetBanker() int32 {
	return g.banker
}

func (g *Game) GetRoundWind() Wind {
	return g.roundWind
}

func (g *Game) GetDice() [3]int32 {
	return g.dice
}

func (g *Game) GetPlayedRounds() int32 {
	return g.playedRounds
}

func (g *Game) GetCurScores() []int64 {
	scores := make([]int64, SeatCount)
	for i := range SeatCount {
		scores[i] = g.players[i].GetCurScore()
	}
	return scores
}

func (g *Game) IsOver() bool {
	return g.CurState != nil && g.CurState.Kind() == StateKindGameEnd
}

// OnTick 外部协作方按帧驱动：到点的定时任务（AI决策等）在此落地
func (g *Game) OnTick() {
	g.timer.OnTick()
	g.enterNextState()
}

func (g *Game) SetNextState(state IState) {
	g.nextState = state
}

func (g *Game) enterNextState() {
	for g.nextState != nil {
		g.CurState = g.nextState
		g.nextState = nil
		g.timer.Cancel()
		g.sender.StateChanged(g.CurState.Kind())
		g.CurState.OnEnter()
	}
}

// ---- 人类座位的入口，状态不符一律no-op返回false ----

func (g *Game) StartMatch() bool {
	if g.CurState == nil || g.CurState.Kind() != StateKindMenu {
		return false
	}
	g.SetNextState(newStateDice(g))
	g.enterNextState()
	return true
}

func (g *Game) ConfirmDice() bool {
	if g.CurState == nil || g.CurState.Kind() != StateKindDiceRoll {
		return false
	}
	g.startRound()
	g.enterNextState()
	return true
}

func (g *Game) NextRound() bool {
	if g.CurState == nil || g.CurState.Kind() != StateKindRoundEnd {
		return false
	}
	g.startRound()
	g.enterNextState()
	return true
}

// HandleAction 局内动作统一入口（人类座位）
func (g *Game) HandleAction(action *Action) error {
	if action == nil || !g.IsValidSeat(action.Seat) {
		return fmt.Errorf("invalid action")
	}
	if g.CurState == nil {
		return fmt.Errorf("game not started")
	}
	if err := g.CurState.OnPlayerAction(action); err != nil {
		return err
	}
	g.enterNextState()
	return nil
}

// DealerFromDice 三枚骰子定庄：(点数和-1)%4
func DealerFromDice(sum int32) int32 {
	return (sum - 1) % 4
}

func (g *Game) rollDice() {
	sum := int32(0)
	for i := range g.dice {
		g.dice[i] = int32(g.rng.Intn(6)) + 1
		sum += g.dice[i]
	}
	g.banker = DealerFromDice(sum)
	g.sender.SendDice(g.dice, g.banker)
}

func (g *Game) startRound() {
	for _, p := range g.players {
		p.ResetScoreChange()
	}
	g.play = NewPlay(g, g.banker, g.roundWind)
	g.play.Initialize(g.manual)
	g.sender.SendGameStart(g.GetCurScores())
	g.SetNextState(g.newTurnState(g.banker))
}

func (g *Game) newTurnState(seat int32) IState {
	if g.bots[seat] != nil {
		return newStateAITurn(g, seat)
	}
	return newStatePlayerDiscard(g, seat)
}

// advanceRound 局末推进：胡家非庄则庄位轮转，一风打满4局换圈风
func (g *Game) advanceRound() {
	g.playedRounds++
	winner := g.play.huSeat
	if winner != SeatNull && winner != g.banker {
		g.banker = GetNextSeat(g.banker, 1, SeatCount)
		g.roundInWind++
		if g.roundInWind >= 4 {
			g.roundInWind = 0
			g.roundWind = g.roundWind.Next()
		}
	}
}

func (g *Game) matchOver() bool {
	if g.roundWind == WindNone {
		return true
	}
	if g.playedRounds >= g.rule.MaxRounds {
		return true
	}
	for _, p := range g.players {
		if p.GetCurScore() <= 0 {
			return true
		}
	}
	return false
}
