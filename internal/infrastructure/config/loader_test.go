package config

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// gameYAML returns the default game.yaml with edits applied
func gameYAML(t *testing.T, edit func(*GameConfig)) []byte {
	t.Helper()
	cfg, err := Default()
	require.NoError(t, err)
	edit(cfg)
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	return data
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.6, cfg.Physics.Gravity)
	assert.Equal(t, 12.0, cfg.Physics.GravityLimit)
	assert.Equal(t, 300*time.Millisecond, cfg.Player.JumpCooldown())
	assert.Equal(t, time.Second, cfg.Enemy.AttackCooldown())
	assert.Equal(t, 400.0, cfg.Enemy.DetectionWidth)
	assert.Equal(t, 1.5, cfg.Enemy.DetectionHeightScale)
	assert.Equal(t, 10.0, cfg.Enemy.AttackBuffer)
	assert.Equal(t, 7, cfg.Effect.Frames)
	assert.Equal(t, 100*time.Millisecond, cfg.Effect.FrameDuration())
	assert.Equal(t, 55, cfg.Maps.PlatformEnds)
	assert.Equal(t, 181, cfg.Maps.GroundEnds)
	assert.Equal(t, 4, cfg.Maps.SpawnPadding)
	assert.NoError(t, cfg.Validate())
}

func TestGameConfig_ValidateReportsEveryField(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Player.Radius = 0
	cfg.Enemy.Radius = 0

	err = cfg.Validate()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "player.radius")
	assert.Contains(t, err.Error(), "enemy.radius")
}

func TestDefaultLoader_Maps(t *testing.T) {
	loader := NewDefaultLoader()
	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	names, err := loader.MapNames(cfg.Maps)
	require.NoError(t, err)
	assert.Equal(t, []string{"map0.txt", "map1.txt", "map2.txt"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			m, err := loader.LoadMap(name, cfg)
			require.NoError(t, err)
			assert.Equal(t, 64, m.TileWidth)
			assert.Equal(t, 64, m.TileHeight)
			assert.Len(t, m.Codes, m.Height)
			assert.Equal(t, []string{"tiles.png"}, m.Images)
		})
	}
}

func TestLoader_LoadGame_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: gameYAML(t, func(c *GameConfig) {
			c.Physics.Gravity = 0.3
			c.Physics.GravityLimit = 1.5
			c.Maps.Dir = "levels"
		})},
		"levels/b.txt": {Data: []byte("1 1 32 32\n#map\n-1\n")},
		"levels/a.txt": {Data: []byte("1 1 32 32\n#map\n-1\n")},
		"levels/notes.md": {Data: []byte("ignored")},
	}
	loader := NewFSLoader(fsys, ".")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Physics.Gravity)
	assert.Equal(t, 1.5, cfg.Physics.GravityLimit)

	names, err := loader.MapNames(cfg.Maps)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("missing game file", func(t *testing.T) {
		_, err := NewFSLoader(fstest.MapFS{}, ".").LoadGame()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read game.yaml")
	})

	t.Run("bad yaml", func(t *testing.T) {
		fsys := fstest.MapFS{"game.yaml": {Data: []byte("physics: [oops")}}
		_, err := NewFSLoader(fsys, ".").LoadGame()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse game.yaml")
	})

	invalid := []struct {
		name  string
		field string
		edit  func(*GameConfig)
	}{
		{"zero player radius", "player.radius", func(c *GameConfig) { c.Player.Radius = 0 }},
		{"negative enemy width", "enemy.width", func(c *GameConfig) { c.Enemy.Width = -1 }},
		{"zero portal radius", "portal.radius", func(c *GameConfig) { c.Portal.Radius = 0 }},
		{"zero gravity", "physics.gravity", func(c *GameConfig) { c.Physics.Gravity = 0 }},
		{"zero gravity limit", "physics.gravityLimit", func(c *GameConfig) { c.Physics.GravityLimit = 0 }},
		{"no effect frames", "effect.frames", func(c *GameConfig) { c.Effect.Frames = 0 }},
		{"zero effect frame time", "effect.frameMs", func(c *GameConfig) { c.Effect.FrameMs = 0 }},
		{"zero attack cooldown", "enemy.attackCooldownMs", func(c *GameConfig) { c.Enemy.AttackCooldownMs = 0 }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"game.yaml": {Data: gameYAML(t, tt.edit)}}
			_, err := NewFSLoader(fsys, ".").LoadGame()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	t.Run("partial file", func(t *testing.T) {
		fsys := fstest.MapFS{"game.yaml": {Data: []byte("physics:\n  gravity: 0.3\n")}}
		_, err := NewFSLoader(fsys, ".").LoadGame()
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("missing map", func(t *testing.T) {
		cfg := &GameConfig{Maps: MapsConfig{Dir: "maps"}}
		_, err := NewFSLoader(fstest.MapFS{}, ".").LoadMap("nope.txt", cfg)
		require.Error(t, err)
	})
}

func testMapsConfig() (PhysicsConfig, MapsConfig) {
	return PhysicsConfig{DefaultTileSize: 32, TileScale: 2},
		MapsConfig{PlatformEnds: 55, GroundEnds: 181}
}

func TestParseMap(t *testing.T) {
	physics, maps := testMapsConfig()
	src := strings.Join([]string{
		"3 2 16 16",
		"// a comment",
		"#c tiles.png",
		"#map",
		"-1, 10, 100",
		"// comments inside the grid are skipped",
		"180,-1",
	}, "\n")

	m, err := ParseMap(strings.NewReader(src), "test", physics, maps)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, 64, m.TileWidth, "16px header is replaced by the default size and scaled")
	assert.Equal(t, 64, m.TileHeight)
	assert.Equal(t, [][]int{{-1, 10, 100}, {180, -1, -1}}, m.Codes)
	assert.Equal(t, []string{"tiles.png"}, m.Images)

	assert.True(t, maps.IsPlatformCode(10))
	assert.False(t, maps.IsPlatformCode(-1))
	assert.True(t, maps.IsGroundCode(100))
	assert.True(t, maps.IsGroundCode(180))
	assert.False(t, maps.IsGroundCode(181))
}

func TestParseMap_NonDefaultTileSize(t *testing.T) {
	physics, maps := testMapsConfig()
	m, err := ParseMap(strings.NewReader("1 1 24 20\n#map\n-1\n"), "test", physics, maps)
	require.NoError(t, err)
	assert.Equal(t, 48, m.TileWidth)
	assert.Equal(t, 40, m.TileHeight)
}

func TestParseMap_Invalid(t *testing.T) {
	physics, maps := testMapsConfig()

	tests := []struct {
		name string
		src  string
	}{
		{"empty file", ""},
		{"short header", "3 2 16\n#map\n"},
		{"non numeric header", "a b c d\n#map\n"},
		{"zero width", "0 2 16 16\n#map\n"},
		{"missing map section", "1 1 16 16\n// nothing\n"},
		{"too few rows", "2 2 16 16\n#map\n-1,-1\n"},
		{"bad code", "2 1 16 16\n#map\n-1,x\n"},
		{"code out of range", "2 1 16 16\n#map\n-1,181\n"},
		{"negative code", "2 1 16 16\n#map\n-2,-1\n"},
		{"garbage before grid", "1 1 16 16\nhello\n#map\n-1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMap(strings.NewReader(tt.src), "bad", physics, maps)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMap), "got %v", err)
		})
	}
}

func TestPickMap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, ok := PickMap(nil, rng)
	assert.False(t, ok)

	only, ok := PickMap([]string{"map0.txt"}, rng)
	require.True(t, ok)
	assert.Equal(t, "map0.txt", only)

	names := []string{"map0.txt", "map1.txt", "map2.txt"}
	for i := 0; i < 100; i++ {
		name, ok := PickMap(names, rng)
		require.True(t, ok)
		assert.NotEqual(t, "map0.txt", name)
	}
}
