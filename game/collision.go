package game

import "math"

// Contact records what the ball touched during one physics step
type Contact uint8

const (
	ContactTopWall Contact = 1 << iota
	ContactBottomWall
	ContactLeftPaddle
	ContactRightPaddle

	ContactNone  Contact = 0
	ContactWall          = ContactTopWall | ContactBottomWall
	ContactPaddle        = ContactLeftPaddle | ContactRightPaddle
)

// Has reports whether any flag in o is set in c
func (c Contact) Has(o Contact) bool {
	return c&o != 0
}

// reflectWalls bounces the ball off the top or bottom wall. At most one wall can
// be hit per step since the vertical speed is far smaller than the court.
func (p *Physics) reflectWalls(ball *Ball) Contact {
	if ball.Top() <= 0 {
		ball.SetTop(0)
		ball.Vel.Y = -ball.Vel.Y
		return ContactTopWall
	}
	if ball.Bottom() >= p.cfg.Height {
		ball.SetBottom(p.cfg.Height)
		ball.Vel.Y = -ball.Vel.Y
		return ContactBottomWall
	}
	return ContactNone
}

// reflectPaddle sends the ball back off paddle. The horizontal speed keeps its
// magnitude; the vertical speed is rebuilt from where the ball struck the face,
// so edge hits leave steeper than centre hits.
func (p *Physics) reflectPaddle(ball *Ball, paddle *Paddle) {
	speedX := math.Abs(ball.Vel.X)
	if paddle.Side == SideLeft {
		ball.Vel.X = speedX
	} else {
		ball.Vel.X = -speedX
	}

	// Not clamped: a ball clipping the paddle's tip can exceed ±1 slightly.
	offset := float64(ball.CenterY()-paddle.CenterY()) / (float64(p.cfg.PaddleHeight) / 2)
	ball.Vel.Y = enforceMinVY(offset*p.cfg.BallMaxVY, p.cfg.BallMinVY)

	// Flush against the face so the next frame does not collide again.
	if paddle.Side == SideLeft {
		ball.SetLeft(paddle.Right())
	} else {
		ball.SetRight(paddle.Left())
	}
}
