package mahjong

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultMinFan        int32 = 1
	DefaultMaxRounds     int32 = 24
	DefaultStartingScore int64 = 10000
)

// Rule 一桌的可配置规则，核心只读
type Rule struct {
	Difficulty    Difficulty
	MinFan        int32 // 起胡番
	MaxRounds     int32 // 总局数上限
	StartingScore int64
	AIDelay       time.Duration // AI行动前的等待，纯节奏用途
	Seed          int64         // 0表示随机
	TileTheme     string        // 客户端外观配置，核心只保存不解释
	Character     string
}

func NewRule() *Rule {
	return &Rule{
		Difficulty:    DifficultyMedium,
		MinFan:        DefaultMinFan,
		MaxRounds:     DefaultMaxRounds,
		StartingScore: DefaultStartingScore,
	}
}

// LoadRule 从viper读入规则，缺省项保留默认值
func (r *Rule) LoadRule(vp *viper.Viper) {
	if vp == nil {
		return
	}
	vp.SetDefault("difficulty", int(r.Difficulty))
	vp.SetDefault("min_fan", r.MinFan)
	vp.SetDefault("max_rounds", r.MaxRounds)
	vp.SetDefault("starting_score", r.StartingScore)

	r.Difficulty = Difficulty(vp.GetInt32("difficulty"))
	if fan := vp.GetInt32("min_fan"); fan > 0 {
		r.MinFan = fan
	}
	if rounds := vp.GetInt32("max_rounds"); rounds > 0 {
		r.MaxRounds = rounds
	}
	if score := vp.GetInt64("starting_score"); score > 0 {
		r.StartingScore = score
	}
	r.AIDelay = vp.GetDuration("ai_delay")
	r.Seed = vp.GetInt64("seed")
	r.TileTheme = vp.GetString("tile_theme")
	r.Character = vp.GetString("character")
}
