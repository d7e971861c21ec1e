package game

import "fmt"

// Score counts points per side. Left is the player, Right the opponent.
type Score struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

func (s Score) String() string {
	return fmt.Sprintf("%d : %d", s.Left, s.Right)
}

// Snapshot is the render state at the end of a frame. It is a value copy, safe to
// hand to other goroutines.
type Snapshot struct {
	Frame   uint64 `json:"frame"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Left    Rect   `json:"left"`
	Right   Rect   `json:"right"`
	Ball    Rect   `json:"ball"`
	BallVel Vec2   `json:"ballVel"`
	Score   Score  `json:"score"`
	Rally   int    `json:"rally"`
}

// CenterLine lays out the dashes of the vertical centre line, top to bottom
func CenterLine(cfg Config) []Rect {
	step := cfg.DashHeight + cfg.DashGap
	dashes := make([]Rect, 0, cfg.Height/step+1)
	x := cfg.Width/2 - cfg.DashWidth/2
	for y := 0; y < cfg.Height; y += step {
		dashes = append(dashes, Rect{X: x, Y: y, W: cfg.DashWidth, H: cfg.DashHeight})
	}
	return dashes
}
