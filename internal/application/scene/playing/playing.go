// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/portalcrawler/internal/application/replay"
	"github.com/younwookim/portalcrawler/internal/application/scene"
	"github.com/younwookim/portalcrawler/internal/application/state"
	"github.com/younwookim/portalcrawler/internal/application/system"
	"github.com/younwookim/portalcrawler/internal/application/world"
	"github.com/younwookim/portalcrawler/internal/domain/entity"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorGround    = color.RGBA{80, 80, 100, 255}
	colorPlatform  = color.RGBA{120, 100, 60, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorEnemy     = color.RGBA{200, 100, 100, 255}
	colorDying     = color.RGBA{120, 120, 120, 160}
	colorEffect    = color.RGBA{255, 240, 120, 160}
	colorPortal    = color.RGBA{120, 120, 255, 200}
	colorDetection = color.RGBA{255, 255, 0, 40}
	colorAttack    = color.RGBA{255, 0, 0, 60}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
)

const (
	// waitDuration is how long the level banner shows before play starts
	waitDuration = 1500 * time.Millisecond

	floatLifetime = 800 * time.Millisecond
	floatRise     = 30.0
)

// Controls are the scene keys that never reach the simulation
type Controls struct {
	Pause   bool
	Confirm bool
	Save    bool
}

func readControls() Controls {
	return Controls{
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

type floatingText struct {
	text string
	x, y float64
	age  time.Duration
}

// Options configures the playing scene
type Options struct {
	// RecordPath enables input recording when not empty
	RecordPath string
	Debug      bool
	Logger     *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	campaign *world.Campaign
	state    state.GameState
	logger   *log.Logger
	debug    bool
	screenW  int
	screenH  int

	waited time.Duration
	floats []floatingText

	recorder   *replay.Recorder
	recordPath string
}

// New creates a new Playing scene over a loaded campaign
func New(cfg *config.GameConfig, campaign *world.Campaign, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Playing{
		config:     cfg,
		campaign:   campaign,
		state:      state.StateLoading,
		logger:     logger,
		debug:      opts.Debug,
		screenW:    cfg.Display.ScreenWidth,
		screenH:    cfg.Display.ScreenHeight,
		recordPath: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(campaign.Seed(), campaign.Level())
		logger.Info("recording enabled", "path", opts.RecordPath, "seed", campaign.Seed())
	}

	return p
}

// State returns the scene state
func (p *Playing) State() state.GameState { return p.state }

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(elapsed time.Duration) (scene.Scene, error) {
	var in system.InputState
	if p.state.Simulating() {
		in = system.ReadKeyboard()
	}
	return nil, p.Step(in, readControls(), elapsed)
}

// Step advances the scene with an explicit input snapshot
func (p *Playing) Step(in system.InputState, ctl Controls, elapsed time.Duration) error {
	switch p.state {
	case state.StateLoading:
		p.enterWaiting()
	case state.StateWaiting:
		p.waited += elapsed
		if ctl.Confirm || p.waited >= waitDuration {
			p.state = state.StatePlaying
		}
	case state.StatePlaying:
		return p.updatePlaying(in, ctl, elapsed)
	case state.StatePaused:
		if ctl.Pause {
			p.state = p.state.TogglePause()
		}
	case state.StateGameOver:
		if ctl.Confirm {
			return p.restart()
		}
	}
	return nil
}

func (p *Playing) updatePlaying(in system.InputState, ctl Controls, elapsed time.Duration) error {
	if ctl.Pause {
		p.state = p.state.TogglePause()
		return nil
	}
	if ctl.Save {
		p.saveRecording()
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	session := p.campaign.Session()
	session.Tick(in, elapsed)
	p.handleEvents(session.DrainEvents())
	p.ageFloats(elapsed)

	switch session.Status() {
	case world.StatusPortalReached:
		if err := p.campaign.NextLevel(); err != nil {
			return fmt.Errorf("failed to enter next level: %w", err)
		}
		p.enterWaiting()
	case world.StatusGameOver:
		p.state = state.StateGameOver
		p.saveRecording()
		// a restarted run no longer matches the recorded seed
		p.recorder = nil
	}
	return nil
}

func (p *Playing) enterWaiting() {
	p.state = state.StateWaiting
	p.waited = 0
	p.floats = p.floats[:0]
	p.logger.Info("entering level", "level", p.campaign.Level(), "map", p.campaign.Session().MapName())
}

func (p *Playing) restart() error {
	if err := p.campaign.Restart(); err != nil {
		return fmt.Errorf("failed to restart: %w", err)
	}
	p.enterWaiting()
	return nil
}

func (p *Playing) handleEvents(events []system.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case system.DamageEvent:
			p.floats = append(p.floats, floatingText{
				text: fmt.Sprintf("%.0f", ev.Amount),
				x:    ev.X,
				y:    ev.Y,
			})
		case system.LevelUpEvent:
			p.logger.Info("level up", "level", ev.Level)
		case system.SoundEvent:
			p.logger.Debug("sound", "name", ev.Name)
		}
	}
}

func (p *Playing) ageFloats(elapsed time.Duration) {
	kept := p.floats[:0]
	for _, f := range p.floats {
		f.age += elapsed
		if f.age < floatLifetime {
			kept = append(kept, f)
		}
	}
	p.floats = kept
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	err := p.recorder.Save(filename)
	switch {
	case errors.Is(err, replay.ErrNoFrames):
		return
	case err != nil:
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	session := p.campaign.Session()
	camX, camY := p.camera(session)

	p.drawTiles(screen, session.Grid(), camX, camY)
	for _, portal := range session.Portals() {
		drawRect(screen, portal.Bounds(), camX, camY, colorPortal)
	}
	p.drawEnemies(screen, session, camX, camY)
	p.drawPlayer(screen, session.Player(), camX, camY)
	for _, fx := range session.Effects() {
		if fx.Visible() {
			drawRect(screen, fx.Bounds(), camX, camY, colorEffect)
		}
	}
	for _, f := range p.floats {
		rise := floatRise * float64(f.age) / float64(floatLifetime)
		ebitenutil.DebugPrintAt(screen, f.text, int(f.x-camX), int(f.y-camY-rise))
	}

	p.drawUI(screen, session)

	switch p.state {
	case state.StateWaiting:
		p.drawBanner(screen, fmt.Sprintf("LEVEL %d", session.Level()))
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen, session)
	}
}

// camera centers on the player and clamps to the level bounds
func (p *Playing) camera(session *world.Session) (float64, float64) {
	player := session.Player()
	grid := session.Grid()

	camX := player.CenterX() - float64(p.screenW)/2
	camY := player.CenterY() - float64(p.screenH)/2
	camX = clamp(camX, 0, float64(grid.PixelWidth()-p.screenW))
	camY = clamp(camY, 0, float64(grid.PixelHeight()-p.screenH))
	return camX, camY
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}

func drawRect(screen *ebiten.Image, r entity.Rect, camX, camY float64, c color.Color) {
	ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, r.H, c)
}

func (p *Playing) drawTiles(screen *ebiten.Image, grid *entity.TileGrid, camX, camY float64) {
	startCol := grid.Col(camX)
	startRow := grid.Row(camY)
	endCol := grid.Col(camX+float64(p.screenW)) + 1
	endRow := grid.Row(camY+float64(p.screenH)) + 1

	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			tile, ok := grid.TileAt(col, row)
			if !ok || !tile.Solid() {
				continue
			}

			c := colorGround
			if tile.Type == entity.TilePlatform {
				c = colorPlatform
			}
			x, y := grid.Origin(tile)
			ebitenutil.DrawRect(screen, x-camX, y-camY, float64(grid.TileWidth), float64(grid.TileHeight), c)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, player *entity.Player, camX, camY float64) {
	c := color.Color(colorPlayer)
	if player.IsDying() {
		c = colorDying
	}
	drawRect(screen, player.Bounds(), camX, camY, c)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, session *world.Session, camX, camY float64) {
	for _, e := range session.Enemies() {
		if p.debug && !e.IsDying() {
			drawRect(screen, session.DetectionZone(e), camX, camY, colorDetection)
			drawRect(screen, session.AttackZone(e), camX, camY, colorAttack)
		}

		c := color.Color(colorEnemy)
		if e.IsDying() {
			c = colorDying
		}
		drawRect(screen, e.Bounds(), camX, camY, c)

		if p.debug {
			ebitenutil.DebugPrintAt(screen, e.State.String(), int(e.X-camX), int(e.Y-camY)-14)
		}
	}
}

func (p *Playing) drawUI(screen *ebiten.Image, session *world.Session) {
	player := session.Player()

	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*player.HealthRatio(), barH, colorHealthFG)

	status := fmt.Sprintf("Stage %d | Lv %d | Exp %.0f/%.0f", session.Level(), player.Level, player.Exp, player.ExpRequired)
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-35)

	ebitenutil.DebugPrint(screen, "Arrows/WASD: Move | Up/W: Jump | Z/J: Attack | ESC: Pause")
}

func (p *Playing) drawBanner(screen *ebiten.Image, text string) {
	overlay := color.RGBA{0, 0, 0, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-30, p.screenH/2-8)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image, session *world.Session) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("GAME OVER\n\nReached stage %d at level %d\n\nPress Z to restart", session.Level(), session.Player().Level)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-80, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	if p.state == state.StateLoading {
		p.enterWaiting()
	}
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
