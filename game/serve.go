package game

import (
	"math"
	"math/rand/v2"
)

// Direction is the horizontal sign of a serve
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Launcher serves the ball after a point and at kick-off
type Launcher struct {
	cfg Config
	rng *rand.Rand
}

// NewLauncher creates a launcher drawing serve angles from rng
func NewLauncher(cfg Config, rng *rand.Rand) *Launcher {
	return &Launcher{cfg: cfg, rng: rng}
}

// Serve returns a fresh velocity heading in dir. The ball position is left alone.
func (l *Launcher) Serve(dir Direction) Vec2 {
	angle := l.cfg.ServeAngles[l.rng.IntN(len(l.cfg.ServeAngles))]
	return serveVelocity(l.cfg, dir, angle)
}

// Reset puts the ball back in the middle and serves it towards dir
func (l *Launcher) Reset(ball *Ball, dir Direction) {
	ball.SetCenter(l.cfg.Center())
	ball.Vel = l.Serve(dir)
}

// RandomDirection picks the opening serve direction
func (l *Launcher) RandomDirection() Direction {
	if l.rng.IntN(2) == 0 {
		return DirLeft
	}
	return DirRight
}

func serveVelocity(cfg Config, dir Direction, angle float64) Vec2 {
	vy := Vec2{X: 1}.Rotate(angle).Y * cfg.BallSpeed
	vy = math.Max(-cfg.BallMaxVY, math.Min(cfg.BallMaxVY, vy))
	return Vec2{
		X: cfg.BallSpeed * float64(dir),
		Y: enforceMinVY(vy, cfg.BallMinVY),
	}
}

// enforceMinVY pushes a nearly flat vertical speed out to ±floor, keeping its sign.
// Zero counts as downward.
func enforceMinVY(vy, floor float64) float64 {
	if math.Abs(vy) >= floor {
		return vy
	}
	if vy >= 0 {
		return floor
	}
	return -floor
}
