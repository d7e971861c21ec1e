package game

// Rect is an integer axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX uses integer division, so an even-sized rect rounds toward its left edge.
func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

func (r *Rect) SetLeft(x int)   { r.X = x }
func (r *Rect) SetRight(x int)  { r.X = x - r.W }
func (r *Rect) SetTop(y int)    { r.Y = y }
func (r *Rect) SetBottom(y int) { r.Y = y - r.H }

// SetCenter moves the rect so that CenterX, CenterY equal x, y.
func (r *Rect) SetCenter(x, y int) {
	r.X = x - r.W/2
	r.Y = y - r.H/2
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Side identifies one half of the court
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Paddle is a vertical bat owned by one side. Only its controller moves it.
type Paddle struct {
	Rect
	Side Side
}

// NewPaddle creates a paddle vertically centred on its side of the court
func NewPaddle(cfg Config, side Side) Paddle {
	x := cfg.Margin
	if side == SideRight {
		x = cfg.Width - cfg.Margin - cfg.PaddleWidth
	}
	return Paddle{
		Rect: Rect{
			X: x,
			Y: cfg.Height/2 - cfg.PaddleHeight/2,
			W: cfg.PaddleWidth,
			H: cfg.PaddleHeight,
		},
		Side: side,
	}
}

// clamp keeps the paddle inside the playfield vertically
func (p *Paddle) clamp(height int) {
	if p.Top() < 0 {
		p.SetTop(0)
	}
	if p.Bottom() > height {
		p.SetBottom(height)
	}
}

// Ball is the square ball and its velocity in pixels per frame
type Ball struct {
	Rect
	Vel Vec2
}

// NewBall creates a ball at rest in the middle of the playfield
func NewBall(cfg Config) Ball {
	b := Ball{Rect: Rect{W: cfg.BallSize, H: cfg.BallSize}}
	b.SetCenter(cfg.Center())
	return b
}
