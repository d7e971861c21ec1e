package game

import (
	"bytes"
	"errors"
	"log"
	"math/rand/v2"
	"strings"
	"testing"
)

func newTestMatch(t *testing.T, seed uint64) *Match {
	t.Helper()
	m, err := NewMatch(DefaultConfig(), rand.New(rand.NewPCG(seed, seed)), nil)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

func TestNewMatchInitialState(t *testing.T) {
	m := newTestMatch(t, 1)

	if m.Left.X != 24 || m.Left.Y != 220 {
		t.Errorf("left paddle at (%d, %d), want (24, 220)", m.Left.X, m.Left.Y)
	}
	if m.Right.X != 862 || m.Right.Y != 220 {
		t.Errorf("right paddle at (%d, %d), want (862, 220)", m.Right.X, m.Right.Y)
	}
	if m.Ball.X != 443 || m.Ball.Y != 263 {
		t.Errorf("ball at (%d, %d), want (443, 263)", m.Ball.X, m.Ball.Y)
	}
	if m.Score != (Score{}) {
		t.Errorf("score = %v, want 0 : 0", m.Score)
	}
	if m.Ball.Vel.X != 6 && m.Ball.Vel.X != -6 {
		t.Errorf("opening vx = %g, want ±6", m.Ball.Vel.X)
	}
}

func TestNewMatchRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AISpeed = cfg.PaddleSpeed

	_, err := NewMatch(cfg, rand.New(rand.NewPCG(1, 1)), nil)

	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestBallLeavingLeftScoresForOpponent(t *testing.T) {
	m := newTestMatch(t, 2)
	m.Ball.X, m.Ball.Y = -14, 263
	m.Ball.Vel = Vec2{X: -6, Y: 0.5}

	res := m.Update(InputState{})

	if !res.Scored || res.Scorer != SideRight {
		t.Fatalf("result = %+v, want right side scoring", res)
	}
	if m.Score != (Score{Left: 0, Right: 1}) {
		t.Fatalf("score = %v, want 0 : 1", m.Score)
	}
	if m.Ball.X != 443 || m.Ball.Y != 263 {
		t.Fatalf("ball at (%d, %d), want centre (443, 263)", m.Ball.X, m.Ball.Y)
	}
	if m.Ball.Vel.X <= 0 {
		t.Fatalf("serve vx = %g, want towards the right", m.Ball.Vel.X)
	}
}

func TestBallLeavingRightScoresForPlayer(t *testing.T) {
	m := newTestMatch(t, 3)
	m.Ball.X, m.Ball.Y = 895, 263
	m.Ball.Vel = Vec2{X: 6, Y: 0.5}

	res := m.Update(InputState{})

	if !res.Scored || res.Scorer != SideLeft {
		t.Fatalf("result = %+v, want left side scoring", res)
	}
	if m.Score != (Score{Left: 1, Right: 0}) {
		t.Fatalf("score = %v, want 1 : 0", m.Score)
	}
	if m.Ball.Vel.X >= 0 {
		t.Fatalf("serve vx = %g, want towards the left", m.Ball.Vel.X)
	}
}

func TestScoreOnlyEverIncreasesByOne(t *testing.T) {
	m := newTestMatch(t, 42)
	m.Left.Y = 0 // parked at the top so the opponent wins points
	cfg := m.Config()

	prev := m.Score
	points := 0
	for frame := 0; frame < 20000; frame++ {
		res := m.Update(InputState{})

		gained := (m.Score.Left - prev.Left) + (m.Score.Right - prev.Right)
		if m.Score.Left < prev.Left || m.Score.Right < prev.Right {
			t.Fatalf("frame %d: score went from %v to %v", frame, prev, m.Score)
		}
		if res.Scored && gained != 1 || !res.Scored && gained != 0 {
			t.Fatalf("frame %d: scored=%v but gained %d points", frame, res.Scored, gained)
		}
		for _, p := range []Paddle{m.Left, m.Right} {
			if p.Top() < 0 || p.Bottom() > cfg.Height {
				t.Fatalf("frame %d: %s paddle spans [%d, %d]", frame, p.Side, p.Top(), p.Bottom())
			}
		}
		if res.Scored {
			points++
		}
		prev = m.Score
	}
	if points == 0 {
		t.Fatal("no points scored in 20000 frames")
	}
}

func TestRallyCountsPaddleHits(t *testing.T) {
	m := newTestMatch(t, 5)
	m.Ball.X, m.Ball.Y = 42, 280
	m.Ball.Vel = Vec2{X: -6, Y: 3}

	res := m.Update(InputState{})

	if !res.Contact.Has(ContactLeftPaddle) {
		t.Fatalf("contact = %v, want left paddle", res.Contact)
	}
	if got := m.Snapshot().Rally; got != 1 {
		t.Fatalf("rally = %d, want 1", got)
	}

	m.Ball.X, m.Ball.Y = -14, 263
	m.Ball.Vel = Vec2{X: -6}
	m.Update(InputState{})
	if got := m.Snapshot().Rally; got != 0 {
		t.Fatalf("rally after point = %d, want 0", got)
	}
}

func TestMatchLogsPoints(t *testing.T) {
	var buf bytes.Buffer
	m, err := NewMatch(DefaultConfig(), rand.New(rand.NewPCG(9, 9)), log.New(&buf, "", 0))
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	m.Ball.X = -14
	m.Ball.Vel = Vec2{X: -6}

	m.Update(InputState{})

	if !strings.Contains(buf.String(), "point right") || !strings.Contains(buf.String(), "0 : 1") {
		t.Fatalf("log output %q missing point line", buf.String())
	}
}

func TestDemoModeUsesAIOnBothSides(t *testing.T) {
	m := newTestMatch(t, 6)
	m.SetLeftController(NewAIController(m.Config()))
	m.Ball.Y = 400
	m.Ball.Vel = Vec2{X: 6, Y: 0}
	y0 := m.Left.Y

	m.Update(InputState{Up: true})

	if m.Left.Y != y0+6 {
		t.Fatalf("left paddle y = %d, want %d", m.Left.Y, y0+6)
	}
}

func TestSnapshotCopiesState(t *testing.T) {
	m := newTestMatch(t, 8)
	m.Update(InputState{Down: true})

	s := m.Snapshot()
	m.Left.Y = 0

	if s.Frame != 1 {
		t.Errorf("frame = %d, want 1", s.Frame)
	}
	if s.Left.Y != 227 {
		t.Errorf("snapshot left y = %d, want 227", s.Left.Y)
	}
	if s.Width != 900 || s.Height != 540 {
		t.Errorf("playfield = %dx%d, want 900x540", s.Width, s.Height)
	}
}
