package mahjong

import "slices"

// RemoveElements 从tiles中删除至多count张tile，返回新切片
func RemoveElements(tiles []Tile, tile Tile, count int) []Tile {
	res := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t == tile && count > 0 {
			count--
			continue
		}
		res = append(res, t)
	}
	return res
}

func RemoveAllElement(tiles []Tile, tile Tile) []Tile {
	return slices.DeleteFunc(slices.Clone(tiles), func(t Tile) bool {
		return t == tile
	})
}

func CountElement(tiles []Tile, tile Tile) int {
	count := 0
	for _, t := range tiles {
		if t == tile {
			count++
		}
	}
	return count
}

// TileCounts 以牌为键的计数表
func TileCounts(tiles []Tile) map[Tile]int {
	counts := make(map[Tile]int, len(tiles))
	for _, t := range tiles {
		counts[t]++
	}
	return counts
}

// SortedKeys 计数表的升序键，保证遍历顺序稳定
func SortedKeys(counts map[Tile]int) []Tile {
	keys := make([]Tile, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
