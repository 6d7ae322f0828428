package mahjong_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"hkmj/mahjong"
)

func writeManualFile(t *testing.T, name, content string) {
	t.Helper()
	t.Chdir(t.TempDir())
	if err := os.MkdirAll("initcard", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("initcard", name+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func Test_ManualLoad(t *testing.T) {
	writeManualFile(t, "hkmj", `
enable: true
tiles:
  - 1万,1万,1万,2万
  - 东,南,中
`)
	manual := mahjong.NewManual("hkmj", rand.New(rand.NewSource(1)))
	if manual == nil || !manual.Enabled() {
		t.Fatal("manual config not loaded")
	}

	wall, err := manual.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(wall) != mahjong.TileCountTotal {
		t.Fatalf("wall = %d tiles, want %d", len(wall), mahjong.TileCountTotal)
	}
	head := mahjong.NamesToTiles("1万,1万,1万,2万,东,南,中")
	if !slices.Equal(wall[:len(head)], head) {
		t.Errorf("wall head = %s, want %s", mahjong.TilesName(wall[:len(head)]), mahjong.TilesName(head))
	}
	counts := mahjong.TileCounts(wall)
	for tile, want := range mahjong.AllTiles() {
		if counts[tile] != want {
			t.Errorf("%s: %d copies in wall, want %d", tile.Name(), counts[tile], want)
		}
	}
}

func Test_ManualSeededTail(t *testing.T) {
	writeManualFile(t, "hkmj", `
enable: true
tiles:
  - 1万,1万,1万,2万
`)
	load := func(seed int64) []mahjong.Tile {
		manual := mahjong.NewManual("hkmj", rand.New(rand.NewSource(seed)))
		if manual == nil {
			t.Fatal("manual config not loaded")
		}
		wall, err := manual.Load()
		if err != nil {
			t.Fatal(err)
		}
		return wall
	}
	if !slices.Equal(load(3), load(3)) {
		t.Error("same seed should shuffle the tail identically")
	}
}

func Test_ManualOverflow(t *testing.T) {
	writeManualFile(t, "hkmj", `
enable: true
tiles:
  - 1万,1万,1万,1万,1万
`)
	manual := mahjong.NewManual("hkmj", rand.New(rand.NewSource(1)))
	if manual == nil {
		t.Fatal("manual config not loaded")
	}
	if _, err := manual.Load(); err == nil {
		t.Error("five copies of 1万 should be rejected")
	}
}

func Test_ManualDisabled(t *testing.T) {
	writeManualFile(t, "hkmj", "enable: false\n")
	manual := mahjong.NewManual("hkmj", rand.New(rand.NewSource(1)))
	if manual.Enabled() {
		t.Error("disabled config should report disabled")
	}
	var missing *mahjong.Manual
	if missing.Enabled() {
		t.Error("nil manual should be disabled")
	}
}
