package game

import (
	"io"
	"log"
	"math/rand/v2"
)

// Result reports what happened during one frame
type Result struct {
	Contact Contact
	Scored  bool
	Scorer  Side
}

// Match is the running game: two paddles, one ball and the score.
// It only ever plays; there is no pause or game-over state.
type Match struct {
	config   Config
	physics  *Physics
	launcher *Launcher
	logger   *log.Logger

	// Controllers for each side (player on the left, AI on the right by default)
	leftController  Controller
	rightController Controller

	Left  Paddle
	Right Paddle
	Ball  Ball
	Score Score

	// Paddle contacts since the last point
	rally int

	frame uint64
}

// NewMatch creates a match with centred paddles and the ball served in a random
// direction. A nil logger discards output.
func NewMatch(config Config, rng *rand.Rand, logger *log.Logger) (*Match, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	m := &Match{
		config:          config,
		physics:         NewPhysics(config),
		launcher:        NewLauncher(config, rng),
		logger:          logger,
		leftController:  NewPlayerController(config),
		rightController: NewAIController(config),
		Left:            NewPaddle(config, SideLeft),
		Right:           NewPaddle(config, SideRight),
		Ball:            NewBall(config),
	}

	dir := m.launcher.RandomDirection()
	m.launcher.Reset(&m.Ball, dir)
	m.logger.Printf("kick-off towards %s, velocity (%.2f, %.2f)", dirSide(dir), m.Ball.Vel.X, m.Ball.Vel.Y)
	return m, nil
}

// SetLeftController replaces the controller driving the left paddle
func (m *Match) SetLeftController(c Controller) {
	m.leftController = c
}

// SetRightController replaces the controller driving the right paddle
func (m *Match) SetRightController(c Controller) {
	m.rightController = c
}

// Config returns the configuration the match was built with
func (m *Match) Config() Config {
	return m.config
}

// Update runs one frame: paddles, ball, then scoring
func (m *Match) Update(in InputState) Result {
	m.frame++

	// The paddles are disjoint and the ball is read-only here, so order is free.
	m.leftController.Update(&m.Left, m.Ball, in)
	m.rightController.Update(&m.Right, m.Ball, in)

	res := Result{Contact: m.physics.Step(&m.Ball, &m.Left, &m.Right)}
	if res.Contact.Has(ContactPaddle) {
		m.rally++
	}

	// The next serve goes towards the side that just conceded.
	switch {
	case m.Ball.Right() < 0:
		m.Score.Right++
		res.Scored, res.Scorer = true, SideRight
		m.launcher.Reset(&m.Ball, DirRight)
	case m.Ball.Left() > m.config.Width:
		m.Score.Left++
		res.Scored, res.Scorer = true, SideLeft
		m.launcher.Reset(&m.Ball, DirLeft)
	}

	if res.Scored {
		m.logger.Printf("point %s after %d-hit rally, score %s", res.Scorer, m.rally, m.Score)
		m.rally = 0
	}
	return res
}

// Snapshot copies the state the renderer needs
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Frame:   m.frame,
		Width:   m.config.Width,
		Height:  m.config.Height,
		Left:    m.Left.Rect,
		Right:   m.Right.Rect,
		Ball:    m.Ball.Rect,
		BallVel: m.Ball.Vel,
		Score:   m.Score,
		Rally:   m.rally,
	}
}

func dirSide(d Direction) Side {
	if d == DirLeft {
		return SideLeft
	}
	return SideRight
}
