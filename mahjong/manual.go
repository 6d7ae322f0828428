package mahjong

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Manual 调试用配牌：从yaml读入整面墙的牌序，多余的牌随机补在后面
type Manual struct {
	vp  *viper.Viper
	rng shuffler
}

type shuffler interface {
	Intn(n int) int
}

func NewManual(name string, rng shuffler) *Manual {
	m := &Manual{
		vp:  viper.New(),
		rng: rng,
	}
	m.vp.SetConfigType("yaml")
	m.vp.SetConfigFile(filepath.Join(".", "initcard", name+".yaml"))
	if err := m.vp.ReadInConfig(); err != nil {
		return nil
	}
	return m
}

func (m *Manual) Enabled() bool {
	if m == nil {
		return false
	}
	return m.vp.GetBool("enable")
}

// Load 列出的牌放在墙头（先发出去），剩余的洗乱垫底
func (m *Manual) Load() ([]Tile, error) {
	names := m.vp.GetStringSlice("tiles")
	fixed := make([]Tile, 0, len(names))
	for _, group := range names {
		for _, t := range NamesToTiles(group) {
			if t == TileNull {
				return nil, fmt.Errorf("unknown tile name in %q", group)
			}
			fixed = append(fixed, t)
		}
	}

	rest := AllTiles()
	for _, t := range fixed {
		rest[t]--
		if rest[t] < 0 {
			return nil, fmt.Errorf("tile %s overflow", t.Name())
		}
	}

	var tail []Tile
	for _, t := range SortedKeys(rest) {
		tail = append(tail, MakeTiles(t, rest[t])...)
	}
	m.shuffle(tail)
	return append(fixed, tail...), nil
}

func (m *Manual) shuffle(s []Tile) {
	for i := len(s) - 1; i > 0; i-- {
		j := m.rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
