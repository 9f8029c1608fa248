// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/portalcrawler/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	frame   time.Duration
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		frame:   time.Second / 60,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.frame)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// SetFrameDuration sets the simulated time handed to the scene each update.
func (g *Game) SetFrameDuration(d time.Duration) {
	g.frame = d
}

// Close runs the current scene's OnExit. Call it once the ebiten loop returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// WindowOptions describes the desktop window
type WindowOptions struct {
	Title string
	Scale int
	// TPS is the update rate; the scenes advance by one frame of simulated
	// time per update
	TPS int
}

// windowSize returns the window size for the logical screen
func (g *Game) windowSize(opts WindowOptions) (int, int) {
	scale := max(opts.Scale, 1)
	return g.screenW * scale, g.screenH * scale
}

// frameDuration returns the simulated time of one update at the given rate
func frameDuration(tps int) time.Duration {
	if tps <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(tps)
}

// Run opens the window and blocks until it closes. The current scene's
// OnExit runs on the way out, so recordings are flushed on quit.
func (g *Game) Run(opts WindowOptions) error {
	defer g.Close()

	w, h := g.windowSize(opts)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Title)
	g.frame = frameDuration(opts.TPS)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
