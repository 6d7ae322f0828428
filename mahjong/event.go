package mahjong

// GameStateKind 对外通告的状态标签
type GameStateKind int32

const (
	StateKindMenu GameStateKind = iota
	StateKindDiceRoll
	StateKindPlayerDiscard
	StateKindAITurn
	StateKindClaiming
	StateKindRoundEnd
	StateKindGameEnd
)

var stateKindNames = map[GameStateKind]string{
	StateKindMenu:          "Menu",
	StateKindDiceRoll:      "DiceRoll",
	StateKindPlayerDiscard: "PlayerDiscard",
	StateKindAITurn:        "AITurn",
	StateKindClaiming:      "Claiming",
	StateKindRoundEnd:      "RoundEnd",
	StateKindGameEnd:       "GameEnd",
}

func (k GameStateKind) String() string {
	return stateKindNames[k]
}

type EventType int32

const (
	EventGameStart EventType = iota
	EventDice
	EventDeal
	EventDraw
	EventFlower
	EventDiscard
	EventChow
	EventPon
	EventKon
	EventHu
	EventRequest
	EventScoreChange
	EventRoundResult
	EventGameOver
)

// Event 发给表现层的通知，核心不消费任何返回值
type Event struct {
	Type     EventType
	Seat     int32
	From     int32
	Tile     Tile
	Tiles    []Tile
	Dice     [3]int32
	KonType  KonType
	Operates *Operates
	Scores   []int64
	Fan      *FanResult
	Drawn    bool // 流局
}

// EventSink 表现/音频协作方的接入口，全部为单向通知
type EventSink interface {
	OnStateChanged(kind GameStateKind)
	OnEvent(event *Event)
}

// NopSink 默认空实现
type NopSink struct{}

func (NopSink) OnStateChanged(GameStateKind) {}
func (NopSink) OnEvent(*Event)               {}

// Sender 把对局进展组装成Event发往sink
type Sender struct {
	game *Game
	sink EventSink
}

func NewSender(game *Game, sink EventSink) *Sender {
	if sink == nil {
		sink = NopSink{}
	}
	return &Sender{game: game, sink: sink}
}

func (s *Sender) StateChanged(kind GameStateKind) {
	s.sink.OnStateChanged(kind)
}

func (s *Sender) SendGameStart(scores []int64) {
	s.sink.OnEvent(&Event{Type: EventGameStart, Seat: SeatNull, Scores: scores})
}

func (s *Sender) SendDice(dice [3]int32, banker int32) {
	s.sink.OnEvent(&Event{Type: EventDice, Seat: banker, Dice: dice})
}

func (s *Sender) SendDeal(seat int32, tiles []Tile) {
	s.sink.OnEvent(&Event{Type: EventDeal, Seat: seat, Tiles: tiles})
}

func (s *Sender) SendDraw(seat int32, tile Tile) {
	s.sink.OnEvent(&Event{Type: EventDraw, Seat: seat, Tile: tile})
}

func (s *Sender) SendFlower(seat int32, flower, replacement Tile) {
	s.sink.OnEvent(&Event{Type: EventFlower, Seat: seat, Tile: flower, Tiles: []Tile{replacement}})
}

func (s *Sender) SendDiscard(seat int32, tile Tile) {
	s.sink.OnEvent(&Event{Type: EventDiscard, Seat: seat, Tile: tile})
}

func (s *Sender) SendChow(seat, from int32, tile, leftTile Tile) {
	s.sink.OnEvent(&Event{Type: EventChow, Seat: seat, From: from, Tile: tile, Tiles: []Tile{leftTile}})
}

func (s *Sender) SendPon(seat, from int32, tile Tile) {
	s.sink.OnEvent(&Event{Type: EventPon, Seat: seat, From: from, Tile: tile})
}

func (s *Sender) SendKon(seat, from int32, tile Tile, konType KonType) {
	s.sink.OnEvent(&Event{Type: EventKon, Seat: seat, From: from, Tile: tile, KonType: konType})
}

func (s *Sender) SendHu(seat, from int32, tile Tile, fan *FanResult) {
	s.sink.OnEvent(&Event{Type: EventHu, Seat: seat, From: from, Tile: tile, Fan: fan})
}

// SendRequest 把人类座位可选的操作亮给UI
func (s *Sender) SendRequest(seat int32, operates *Operates) {
	s.sink.OnEvent(&Event{Type: EventRequest, Seat: seat, Operates: operates})
}

func (s *Sender) SendScoreChange(scores []int64) {
	s.sink.OnEvent(&Event{Type: EventScoreChange, Seat: SeatNull, Scores: scores})
}

func (s *Sender) SendRoundResult(winner int32, drawn bool, scores []int64) {
	s.sink.OnEvent(&Event{Type: EventRoundResult, Seat: winner, Drawn: drawn, Scores: scores})
}

func (s *Sender) SendGameOver(scores []int64) {
	s.sink.OnEvent(&Event{Type: EventGameOver, Seat: SeatNull, Scores: scores})
}
