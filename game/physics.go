package game

// Physics advances the ball one frame at a time
type Physics struct {
	cfg Config
}

// NewPhysics creates a physics stepper for cfg's playfield
func NewPhysics(cfg Config) *Physics {
	return &Physics{cfg: cfg}
}

// Step moves the ball, bounces it off the walls and then off a paddle.
// The order matters: a wall bounce near a corner is resolved before the paddle
// test so the paddle sees the clamped position.
//
// Position advances by the velocity truncated toward zero: a velocity of -6.9
// moves 6 pixels and the dropped fraction is never carried to the next frame.
func (p *Physics) Step(ball *Ball, left, right *Paddle) Contact {
	ball.X += int(ball.Vel.X)
	ball.Y += int(ball.Vel.Y)

	contact := p.reflectWalls(ball)

	// The direction guard stops a ball still inside the paddle from bouncing
	// again on the following frames.
	switch {
	case ball.Overlaps(left.Rect) && ball.Vel.X < 0:
		p.reflectPaddle(ball, left)
		contact |= ContactLeftPaddle
	case ball.Overlaps(right.Rect) && ball.Vel.X > 0:
		p.reflectPaddle(ball, right)
		contact |= ContactRightPaddle
	}
	return contact
}
