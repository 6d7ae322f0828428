package mahjong

const (
	SeatNull  int32 = -1
	SeatCount int32 = 4
)

const (
	TileCountTotal      = 144
	TileCountDeadWall   = 14
	TileCountInitBanker = 14
	TileCountInitNormal = 13
)

type EColor int

const ColorUndefined EColor = -1

const (
	ColorCharacter EColor = iota // 万
	ColorBamboo                  // 条
	ColorDot                     // 筒
	ColorWind                    // 风牌
	ColorDragon                  // 箭牌
	ColorFlower                  // 花牌
	ColorSeason                  // 季牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3, 4, 4}
var SameTileCountByColor = [ColorEnd]int{4, 4, 4, 4, 4, 1, 1}

// Wind 风位，1为东（庄家），依次南西北
type Wind int32

const (
	WindNone Wind = iota
	WindEast      // 庄家恒为东
	WindSouth
	WindWest
	WindNorth
)

var windNames = [...]string{"", "东", "南", "西", "北"}

func (w Wind) Name() string {
	if w < WindEast || w > WindNorth {
		return ""
	}
	return windNames[w]
}

// Next 下一圈风：东->南->西->北，北打完返回WindNone
func (w Wind) Next() Wind {
	if w >= WindNorth {
		return WindNone
	}
	return w + 1
}

// SeatWindOf 座位相对庄家的风位
func SeatWindOf(seat, banker int32) Wind {
	return Wind((seat-banker+SeatCount)%SeatCount + 1)
}

type KonType int

const (
	KonTypeNone KonType = -1 + iota
	KonTypeZhi          // 直杠（杠别人打出的牌）
	KonTypeAn           // 暗杠
	KonTypeBu           // 补杠（碰后加杠）
)

type EHandStyle int

const (
	HandNone            EHandStyle = iota // 未胡
	HandNormal                            // 四副一将
	HandSevenPairs                        // 七对
	HandThirteenOrphans                   // 十三幺
)

type Difficulty int32

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Action 一次落子记录，既是对局历史的元素也是玩家消息的载体
type Action struct {
	Seat    int32
	Tile    Tile
	Operate int32
	Extra   int32
}

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}
