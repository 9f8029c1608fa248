package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalcrawler/internal/application/system"
	"github.com/younwookim/portalcrawler/internal/application/world"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    42,
		Level:   2,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, U: true},
			{F: 2, A: true},
		},
	}

	replayer := NewReplayer(data)
	assert.Equal(t, 2, replayer.Level())

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Left: true}, input)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Right: true, Up: true}, input)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Attack: true}, input)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5, system.InputState{})
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Seed(t *testing.T) {
	data := ReplayData{
		Seed:   99999,
		Frames: []FrameInput{},
	}
	replayer := NewReplayer(data)

	assert.Equal(t, int64(99999), replayer.Seed())
}

func TestReplayer_Reset(t *testing.T) {
	data := CreateTestReplayData(3, system.InputState{Right: true})
	replayer := NewReplayer(data)

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Right)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, system.InputState{Left: true, Attack: true})

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.True(t, frame.L)
		assert.True(t, frame.A)
		assert.False(t, frame.R)
	}
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(7, 1)

	rec.RecordFrame(system.InputState{Right: true})
	rec.RecordFrame(system.InputState{Up: true, Attack: true})
	rec.Stop()
	rec.RecordFrame(system.InputState{Left: true})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())
	data := rec.GetData()
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, 1, data.Level)
	assert.Equal(t, FrameInput{F: 1, U: true, A: true}, data.Frames[1])
}

func TestRecorder_EncodeDecode(t *testing.T) {
	rec := NewRecorder(7, 3)
	rec.RecordFrame(system.InputState{Right: true})
	rec.RecordFrame(system.InputState{})

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	data, err := Decode(&buf)

	require.NoError(t, err)
	assert.Equal(t, rec.GetData(), *data)
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(11, 0)
	rec.RecordFrame(system.InputState{Left: true})
	path := filepath.Join(t.TempDir(), "run.json")

	require.NoError(t, rec.Save(path))
	data, err := LoadReplay(path)

	require.NoError(t, err)
	assert.Equal(t, int64(11), data.Seed)
	require.Len(t, data.Frames, 1)
	assert.True(t, data.Frames[0].L)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(1, 0)

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))

	assert.True(t, errors.Is(err, ErrNoFrames))
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Decode(bytes.NewBufferString("{not json"))
	assert.Error(t, err)
}

func TestRun_TutorialThenNextLevel(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	data := CreateTestReplayData(500, system.InputState{Right: true})

	res, err := Run(&data, cfg, config.NewDefaultLoader(), nil)

	require.NoError(t, err)
	assert.Equal(t, 500, res.Frames)
	assert.Equal(t, 1, res.Level, "the tutorial portal leads to level 1")
	assert.Equal(t, world.StatusRunning, res.Status)
	assert.Equal(t, 1, res.PlayerLevel)
}

func TestRun_IsDeterministic(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	data := CreateTestReplayData(300, system.InputState{Right: true, Attack: true})
	data.Level = 2

	first, err := Run(&data, cfg, config.NewDefaultLoader(), nil)
	require.NoError(t, err)
	second, err := Run(&data, cfg, config.NewDefaultLoader(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
