package mahjong

const (
	OperateNone    int32 = 0               // 无操作
	OperatePass    int32 = 1 << (iota - 1) // 过
	OperateChow                            // 吃
	OperatePon                             // 碰
	OperateKon                             // 杠
	OperateHu                              // 胡
	OperateDiscard                         // 出牌
	OperateDraw                            // 摸牌
	OperateFlower                          // 补花
)

var OperateNames = map[int32]string{
	OperatePass:    "Pass",
	OperateChow:    "Chow",
	OperatePon:     "Pon",
	OperateKon:     "Kon",
	OperateHu:      "Win",
	OperateDiscard: "Discard",
	OperateDraw:    "Draw",
	OperateFlower:  "Flower",
}

// Operates 一个座位当前可选操作的位集
type Operates struct {
	Value    int32
	IsMustHu bool
	ChowLows []Tile // 可吃的顺子最小牌
	KonTiles []Tile // 可自杠的牌
	HuFan    int32
}

func (o *Operates) AddOperate(op int32) {
	o.Value |= op
}

func (o *Operates) AddOperates(ops *Operates) {
	o.Value |= ops.Value
}

func (o *Operates) RemoveOperate(op int32) {
	o.Value &= ^op
}

func (o *Operates) HasOperate(op int32) bool {
	return (o.Value & op) != 0
}

func (o *Operates) Reset() {
	o.Value = 0
}

func GetOperateName(operate int32) string {
	if name, ok := OperateNames[operate]; ok {
		return name
	}
	return ""
}
