// Package scene defines the Scene interface for game screens.
//
// Each game screen implements the Scene interface to handle its own
// update logic and rendering.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one frame of simulated time.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(elapsed time.Duration) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup such as saving a recording.
	OnExit()
}
