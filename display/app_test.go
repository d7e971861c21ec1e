package display

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"pongai/game"
)

type scriptedInput struct {
	states []game.InputState
	next   int
}

func (s *scriptedInput) Poll() game.InputState {
	if s.next >= len(s.states) {
		return game.InputState{}
	}
	in := s.states[s.next]
	s.next++
	return in
}

type recordingSink struct {
	snapshots []game.Snapshot
}

func (r *recordingSink) Publish(s game.Snapshot) {
	r.snapshots = append(r.snapshots, s)
}

func newTestApp(t *testing.T, ctx context.Context, states ...game.InputState) (*App, *recordingSink) {
	t.Helper()
	m, err := game.NewMatch(game.DefaultConfig(), rand.New(rand.NewPCG(1, 1)), nil)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	sink := &recordingSink{}
	app := NewApp(ctx, m, &scriptedInput{states: states}, nil)
	app.AddSink(sink)
	return app, sink
}

func TestAppUpdatePublishesSnapshots(t *testing.T) {
	app, sink := newTestApp(t, context.Background())

	for i := 0; i < 3; i++ {
		if err := app.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	if len(sink.snapshots) != 3 {
		t.Fatalf("published %d snapshots, want 3", len(sink.snapshots))
	}
	for i, s := range sink.snapshots {
		if s.Frame != uint64(i+1) {
			t.Errorf("snapshot %d frame = %d, want %d", i, s.Frame, i+1)
		}
	}
}

func TestAppQuitsOnEscape(t *testing.T) {
	app, sink := newTestApp(t, context.Background(), game.InputState{}, game.InputState{Quit: true})

	if err := app.Update(); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	if err := app.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update after quit = %v, want ebiten.Termination", err)
	}
	if len(sink.snapshots) != 1 {
		t.Fatalf("published %d snapshots, want 1", len(sink.snapshots))
	}
}

func TestAppQuitsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	app, _ := newTestApp(t, ctx)
	cancel()

	if err := app.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update = %v, want ebiten.Termination", err)
	}
}

func TestAppTogglesDebugOverlay(t *testing.T) {
	app, _ := newTestApp(t, context.Background(), game.InputState{Debug: true}, game.InputState{}, game.InputState{Debug: true})

	app.Update()
	if !app.debug.ShowOverlay {
		t.Fatal("overlay should be on after F1")
	}
	app.Update()
	if !app.debug.ShowOverlay {
		t.Fatal("overlay should stay on without F1")
	}
	app.Update()
	if app.debug.ShowOverlay {
		t.Fatal("overlay should be off after second F1")
	}
}

func TestAppTriggersScorePopOnPoint(t *testing.T) {
	app, _ := newTestApp(t, context.Background())
	app.match.Ball.X = -14
	app.match.Ball.Vel = game.Vec2{X: -6}

	app.Update()

	if !app.scorePop.Active() || app.scorePop.Scale() <= 1 {
		t.Fatalf("score pop active=%v scale=%g, want running above 1", app.scorePop.Active(), app.scorePop.Scale())
	}
	if app.snapshot.Score.Right != 1 {
		t.Fatalf("snapshot score = %v, want 0 : 1", app.snapshot.Score)
	}
}

func TestAppLayoutIsFixed(t *testing.T) {
	app, _ := newTestApp(t, context.Background())
	w, h := app.Layout(1920, 1080)
	if w != 900 || h != 540 {
		t.Fatalf("Layout = %dx%d, want 900x540", w, h)
	}
}
