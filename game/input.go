package game

// InputState is the logical input sampled once per frame. Several physical keys
// may map to the same logical input.
type InputState struct {
	Up    bool // W / Up arrow
	Down  bool // S / Down arrow
	Quit  bool // Escape or window close
	Debug bool // F1, edge-triggered
}

// InputSource supplies one InputState per frame
type InputSource interface {
	Poll() InputState
}

// Controller moves a paddle for one frame. The ball is read-only to controllers.
type Controller interface {
	Update(p *Paddle, ball Ball, in InputState)
}

// PlayerController moves a paddle from keyboard input
type PlayerController struct {
	speed  int
	height int
}

// NewPlayerController creates a controller moving at cfg.PaddleSpeed
func NewPlayerController(cfg Config) *PlayerController {
	return &PlayerController{speed: cfg.PaddleSpeed, height: cfg.Height}
}

// Update applies Up/Down as independent deltas, so pressing both cancels out
func (c *PlayerController) Update(p *Paddle, _ Ball, in InputState) {
	dy := 0
	if in.Up {
		dy -= c.speed
	}
	if in.Down {
		dy += c.speed
	}
	p.Y += dy
	p.clamp(c.height)
}
