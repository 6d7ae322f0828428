package mahjong

// Player 一个座位的对局身份与积分
type Player struct {
	seat        int32
	name        string
	curScore    int64
	scoreChange int64
	isBot       bool
}

func NewPlayer(seat int32, name string, score int64, isBot bool) *Player {
	return &Player{
		seat:     seat,
		name:     name,
		curScore: score,
		isBot:    isBot,
	}
}

func (p *Player) Seat() int32 {
	return p.seat
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsBot() bool {
	return p.isBot
}

func (p *Player) GetCurScore() int64 {
	return p.curScore
}

func (p *Player) GetScoreChange() int64 {
	return p.scoreChange
}

func (p *Player) AddScoreChange(score int64) {
	p.scoreChange += score
	p.curScore += score
}

func (p *Player) ResetScoreChange() {
	p.scoreChange = 0
}
