package mahjong_test

import (
	"testing"
	"time"

	"hkmj/mahjong"
)

type recordSink struct {
	kinds  []mahjong.GameStateKind
	events []*mahjong.Event
}

func (s *recordSink) OnStateChanged(kind mahjong.GameStateKind) {
	s.kinds = append(s.kinds, kind)
}

func (s *recordSink) OnEvent(event *mahjong.Event) {
	s.events = append(s.events, event)
}

func Test_DealerFromDice(t *testing.T) {
	cases := []struct {
		sum  int32
		seat int32
	}{
		{3, 2}, {4, 3}, {5, 0}, {7, 2}, {12, 3}, {18, 1},
	}
	for _, tc := range cases {
		if got := mahjong.DealerFromDice(tc.sum); got != tc.seat {
			t.Errorf("DealerFromDice(%d) = %d, want %d", tc.sum, got, tc.seat)
		}
	}
}

func Test_StateGating(t *testing.T) {
	game := mahjong.NewGame(mahjong.NewRule(), nil)
	if game.ConfirmDice() {
		t.Error("ConfirmDice should fail before match start")
	}
	if game.NextRound() {
		t.Error("NextRound should fail before match start")
	}
	if err := game.HandleAction(&mahjong.Action{Seat: 0, Operate: mahjong.OperateDiscard}); err == nil {
		t.Error("discard should be rejected in menu")
	}
	if !game.StartMatch() {
		t.Fatal("StartMatch failed")
	}
	if game.StartMatch() {
		t.Error("StartMatch twice should fail")
	}
	if game.CurState.Kind() != mahjong.StateKindDiceRoll {
		t.Fatalf("state = %v, want DiceRoll", game.CurState.Kind())
	}
	dice := game.GetDice()
	sum := dice[0] + dice[1] + dice[2]
	if sum < 3 || sum > 18 {
		t.Errorf("dice sum %d out of range", sum)
	}
	if game.GetBanker() != mahjong.DealerFromDice(sum) {
		t.Errorf("banker %d does not match dice sum %d", game.GetBanker(), sum)
	}
}

func Test_RoundSetup(t *testing.T) {
	rule := mahjong.NewRule()
	rule.Seed = 11
	game := mahjong.NewGame(rule, nil)
	if !game.StartMatch() || !game.ConfirmDice() {
		t.Fatal("failed to reach first round")
	}

	play := game.GetPlay()
	if play == nil {
		t.Fatal("no play after ConfirmDice")
	}
	banker := game.GetBanker()
	for seat := int32(0); seat < mahjong.SeatCount; seat++ {
		want := mahjong.TileCountInitNormal
		if seat == banker {
			want = mahjong.TileCountInitBanker
		}
		playData := play.GetPlayData(seat)
		if got := len(playData.GetHandTiles()); got != want {
			t.Errorf("seat %d hand = %d, want %d", seat, got, want)
		}
		for _, tile := range playData.GetHandTiles() {
			if tile.IsExtra() {
				t.Errorf("seat %d still holds flower %s", seat, tile.Name())
			}
		}
	}
	if total := play.TotalTiles(); total != mahjong.TileCountTotal {
		t.Errorf("tile conservation broken: %d", total)
	}
	if play.GetRoundWind() != mahjong.WindEast {
		t.Errorf("first round wind = %v, want east", play.GetRoundWind())
	}
}

// 全AI对局跑到终局：状态可达、结算零和、牌数守恒
func Test_AutoMatch(t *testing.T) {
	rule := mahjong.NewRule()
	rule.Seed = 42
	rule.MaxRounds = 8
	rule.AIDelay = 0
	sink := &recordSink{}
	game := mahjong.NewGame(rule, sink)
	game.EnableAutoPilot()

	if !game.StartMatch() {
		t.Fatal("StartMatch failed")
	}
	if !game.ConfirmDice() {
		t.Fatal("ConfirmDice failed")
	}

	const tickLimit = 1 << 20
	for i := 0; ; i++ {
		if game.IsOver() {
			break
		}
		if i >= tickLimit {
			t.Fatalf("match stalled in state %v", game.CurState.Kind())
		}
		game.OnTick()
		if play := game.GetPlay(); play != nil && play.TotalTiles() != mahjong.TileCountTotal {
			t.Fatalf("tile conservation broken mid-round: %d", play.TotalTiles())
		}
	}

	if game.GetPlayedRounds() == 0 || game.GetPlayedRounds() > rule.MaxRounds {
		t.Errorf("played rounds = %d", game.GetPlayedRounds())
	}

	total := int64(0)
	for _, score := range game.GetCurScores() {
		total += score
	}
	if total != rule.StartingScore*int64(mahjong.SeatCount) {
		t.Errorf("score total = %d, settlement not zero sum", total)
	}

	rounds, gameOver := 0, false
	for _, event := range sink.events {
		switch event.Type {
		case mahjong.EventRoundResult:
			rounds++
			sum := int64(0)
			for _, s := range event.Scores {
				sum += s
			}
			if sum != 0 {
				t.Errorf("round result not zero sum: %v", event.Scores)
			}
			if !event.Drawn && event.Seat == mahjong.SeatNull {
				t.Error("non-drawn round without winner")
			}
		case mahjong.EventGameOver:
			gameOver = true
		}
	}
	if int32(rounds) != game.GetPlayedRounds() {
		t.Errorf("round results = %d, played = %d", rounds, game.GetPlayedRounds())
	}
	if !gameOver {
		t.Error("no game over event")
	}
	last := sink.kinds[len(sink.kinds)-1]
	if last != mahjong.StateKindGameEnd {
		t.Errorf("final state = %v, want GameEnd", last)
	}
}

func Test_Timer(t *testing.T) {
	timer := mahjong.NewTimer()
	fired := 0
	timer.Schedule(0, func() { fired++ })
	if !timer.Pending() {
		t.Error("timer should be pending")
	}
	timer.OnTick()
	timer.OnTick()
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}

	timer.Schedule(time.Hour, func() { fired++ })
	timer.OnTick()
	if fired != 1 {
		t.Error("future timer fired early")
	}
	timer.Cancel()
	if timer.Pending() {
		t.Error("cancel should clear timer")
	}
}
