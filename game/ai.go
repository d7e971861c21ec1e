package game

// AIController tracks the ball's vertical centre. It keeps no state between
// frames and never predicts where the ball is heading.
type AIController struct {
	speed    int
	deadzone int
	height   int
}

// NewAIController creates a controller moving at cfg.AISpeed
func NewAIController(cfg Config) *AIController {
	return &AIController{
		speed:    cfg.AISpeed,
		deadzone: cfg.AIDeadzone,
		height:   cfg.Height,
	}
}

// Update ignores input. Inside the deadzone the paddle holds still to avoid jitter.
func (c *AIController) Update(p *Paddle, ball Ball, _ InputState) {
	target := ball.CenterY()
	switch {
	case p.CenterY() < target-c.deadzone:
		p.Y += c.speed
	case p.CenterY() > target+c.deadzone:
		p.Y -= c.speed
	}
	p.clamp(c.height)
}
