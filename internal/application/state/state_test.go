package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateLoading, "Loading"},
		{StateWaiting, "Waiting"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateLoading)
	assert.Equal(t, GameState(1), StateWaiting)
	assert.Equal(t, GameState(2), StatePlaying)
	assert.Equal(t, GameState(3), StatePaused)
	assert.Equal(t, GameState(4), StateGameOver)
}

func TestGameState_Simulating(t *testing.T) {
	assert.True(t, StatePlaying.Simulating())
	assert.False(t, StatePaused.Simulating())
	assert.False(t, StateWaiting.Simulating())
	assert.False(t, StateGameOver.Simulating())
}

func TestGameState_TogglePause(t *testing.T) {
	tests := []struct {
		from GameState
		to   GameState
	}{
		{StatePlaying, StatePaused},
		{StatePaused, StatePlaying},
		{StateWaiting, StateWaiting},
		{StateGameOver, StateGameOver},
		{StateLoading, StateLoading},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.to, tt.from.TogglePause())
		})
	}
}
