package playing

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalcrawler/internal/application/replay"
	"github.com/younwookim/portalcrawler/internal/application/state"
	"github.com/younwookim/portalcrawler/internal/application/system"
	"github.com/younwookim/portalcrawler/internal/application/world"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

const frame = time.Second / 60

func createTestScene(t *testing.T, level int, opts Options) *Playing {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	campaign, err := world.NewCampaign(cfg, config.NewDefaultLoader(), world.CampaignOptions{Level: level, Seed: 5})
	require.NoError(t, err)
	return New(cfg, campaign, opts)
}

// startPlaying skips the level banner
func startPlaying(t *testing.T, p *Playing) {
	t.Helper()
	p.OnEnter()
	require.NoError(t, p.Step(system.InputState{}, Controls{Confirm: true}, frame))
	require.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_EnterShowsBanner(t *testing.T) {
	p := createTestScene(t, 0, Options{})
	assert.Equal(t, state.StateLoading, p.State())

	p.OnEnter()

	assert.Equal(t, state.StateWaiting, p.State())
}

func TestPlaying_WaitingEndsAfterDelay(t *testing.T) {
	p := createTestScene(t, 0, Options{})
	p.OnEnter()

	for i := 0; i < 60; i++ {
		require.NoError(t, p.Step(system.InputState{}, Controls{}, frame))
	}
	assert.Equal(t, state.StateWaiting, p.State())

	for i := 0; i < 40; i++ {
		require.NoError(t, p.Step(system.InputState{}, Controls{}, frame))
	}
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Less(t, p.campaign.Session().Ticks(), 10, "banner time is not simulated")
}

func TestPlaying_PauseToggle(t *testing.T) {
	p := createTestScene(t, 0, Options{})
	startPlaying(t, p)

	require.NoError(t, p.Step(system.InputState{}, Controls{}, frame))
	assert.Equal(t, 1, p.campaign.Session().Ticks())

	require.NoError(t, p.Step(system.InputState{}, Controls{Pause: true}, frame))
	assert.Equal(t, state.StatePaused, p.State())

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Step(system.InputState{Right: true}, Controls{}, frame))
	}
	assert.Equal(t, 1, p.campaign.Session().Ticks(), "paused world does not advance")

	require.NoError(t, p.Step(system.InputState{}, Controls{Pause: true}, frame))
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_PortalLoadsNextLevel(t *testing.T) {
	p := createTestScene(t, 0, Options{})
	startPlaying(t, p)

	for i := 0; i < 1000 && p.State() == state.StatePlaying; i++ {
		require.NoError(t, p.Step(system.InputState{Right: true}, Controls{}, frame))
	}

	assert.Equal(t, state.StateWaiting, p.State())
	assert.Equal(t, 1, p.campaign.Level())
}

func TestPlaying_GameOverAndRestart(t *testing.T) {
	p := createTestScene(t, 1, Options{})
	startPlaying(t, p)
	first := p.campaign.Session().Player()
	first.TakeDamage(1000, 0)

	for i := 0; i < 300 && p.State() == state.StatePlaying; i++ {
		require.NoError(t, p.Step(system.InputState{}, Controls{}, frame))
	}
	require.Equal(t, state.StateGameOver, p.State())

	// only confirm restarts
	require.NoError(t, p.Step(system.InputState{}, Controls{Pause: true}, frame))
	assert.Equal(t, state.StateGameOver, p.State())

	require.NoError(t, p.Step(system.InputState{}, Controls{Confirm: true}, frame))

	assert.Equal(t, state.StateWaiting, p.State())
	assert.Equal(t, 1, p.campaign.Level())
	assert.NotSame(t, first, p.campaign.Session().Player())
	assert.False(t, p.campaign.Session().Player().IsDying())
}

func TestPlaying_RecordsUntilGameOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestScene(t, 1, Options{RecordPath: path})
	startPlaying(t, p)
	p.campaign.Session().Player().TakeDamage(1000, 0)

	frames := 0
	for p.State() == state.StatePlaying {
		require.NoError(t, p.Step(system.InputState{Left: true}, Controls{}, frame))
		frames++
		require.Less(t, frames, 300)
	}

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, frames)
	assert.Equal(t, 1, data.Level)
	assert.Equal(t, int64(5), data.Seed)
	assert.True(t, data.Frames[0].L)
	assert.Nil(t, p.recorder)
}

func TestPlaying_FloatingDamageText(t *testing.T) {
	p := createTestScene(t, 1, Options{})

	p.handleEvents([]system.Event{
		system.DamageEvent{Amount: 2.4, X: 10, Y: 20},
		system.SoundEvent{Name: system.SoundSlash},
	})
	require.Len(t, p.floats, 1)
	assert.Equal(t, "2", p.floats[0].text)

	p.ageFloats(floatLifetime - time.Millisecond)
	assert.Len(t, p.floats, 1)

	p.ageFloats(time.Millisecond)
	assert.Empty(t, p.floats)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"inside", 50, 0, 100, 50},
		{"below", -5, 0, 100, 0},
		{"above", 150, 0, 100, 100},
		{"level smaller than screen", 30, 0, -20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clamp(tt.v, tt.lo, tt.hi))
		})
	}
}
