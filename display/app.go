package display

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"pongai/game"
)

// SnapshotSink receives the render state after every frame. Publish must not block.
type SnapshotSink interface {
	Publish(s game.Snapshot)
}

// App runs a game.Match inside Ebitengine
type App struct {
	ctx      context.Context
	match    *game.Match
	input    game.InputSource
	renderer *Renderer
	config   game.Config

	scorePop *ScorePop
	debug    DebugState
	sinks    []SnapshotSink
	profiler *Profiler

	// Last completed frame, drawn by Draw
	snapshot game.Snapshot
}

// NewApp wires a match to an input source and renderer. The app stops at the
// next frame boundary once ctx is done.
func NewApp(ctx context.Context, match *game.Match, input game.InputSource, renderer *Renderer) *App {
	return &App{
		ctx:      ctx,
		match:    match,
		input:    input,
		renderer: renderer,
		config:   match.Config(),
		scorePop: NewScorePop(),
		snapshot: match.Snapshot(),
	}
}

// AddSink registers a consumer of per-frame snapshots
func (a *App) AddSink(s SnapshotSink) {
	a.sinks = append(a.sinks, s)
}

// SetProfiler enables tick-rate drop profiling
func (a *App) SetProfiler(p *Profiler) {
	a.profiler = p
}

// Update advances the match by one frame
func (a *App) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}

	in := a.input.Poll()
	if in.Quit {
		return ebiten.Termination
	}
	if in.Debug {
		a.debug.Toggle()
	}

	res := a.match.Update(in)
	if res.Scored {
		a.scorePop.Trigger()
	}
	a.scorePop.Update(1 / float32(a.config.TPS))

	a.snapshot = a.match.Snapshot()
	for _, s := range a.sinks {
		s.Publish(a.snapshot)
	}

	if a.profiler != nil {
		a.profiler.Observe(ebiten.ActualTPS())
	}
	return nil
}

// Draw renders the last completed frame
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.snapshot, a.scorePop.Scale(), a.debug.ShowOverlay)
}

// Layout returns the fixed playfield size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.Width, a.config.Height
}

// Run opens the window and blocks until the player quits or ctx is done
func Run(app *App) error {
	ebiten.SetWindowSize(app.config.Width, app.config.Height)
	ebiten.SetWindowTitle(app.config.Title)
	ebiten.SetTPS(app.config.TPS)
	return ebiten.RunGame(app)
}
