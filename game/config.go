package game

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration constants
type Config struct {
	// Width is the playfield width in pixels
	Width int `toml:"width"`

	// Height is the playfield height in pixels
	Height int `toml:"height"`

	// TPS is the fixed simulation rate in ticks per second
	TPS int `toml:"tps"`

	// PaddleWidth and PaddleHeight are the paddle dimensions in pixels
	PaddleWidth  int `toml:"paddle_width"`
	PaddleHeight int `toml:"paddle_height"`

	// BallSize is the side of the ball's bounding square in pixels
	BallSize int `toml:"ball_size"`

	// Margin is the gap between a paddle and its side wall
	Margin int `toml:"margin"`

	// PaddleSpeed is the player's paddle speed in pixels per frame
	PaddleSpeed int `toml:"paddle_speed"`

	// AISpeed is the opponent's paddle speed in pixels per frame.
	// Must stay below PaddleSpeed.
	AISpeed int `toml:"ai_speed"`

	// AIDeadzone is the vertical tolerance within which the opponent holds still
	AIDeadzone int `toml:"ai_deadzone"`

	// BallSpeed is the horizontal serve speed in pixels per frame
	BallSpeed float64 `toml:"ball_speed"`

	// BallMaxVY caps the vertical speed of a serve and scales paddle deflection
	BallMaxVY float64 `toml:"ball_max_vy"`

	// BallMinVY is the smallest vertical speed allowed after a serve or paddle hit
	BallMinVY float64 `toml:"ball_min_vy"`

	// ServeAngles are the candidate serve angles in degrees
	ServeAngles []float64 `toml:"serve_angles"`

	// Centre line dash geometry
	DashWidth  int `toml:"dash_width"`
	DashHeight int `toml:"dash_height"`
	DashGap    int `toml:"dash_gap"`

	// ScoreY is the vertical centre of the score text
	ScoreY int `toml:"score_y"`

	// HelpMargin is the distance from the bottom edge to the help text
	HelpMargin int `toml:"help_margin"`

	// Title is the window title
	Title string `toml:"title"`

	// HelpText is the static controls hint drawn near the bottom
	HelpText string `toml:"help_text"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:        900,
		Height:       540,
		TPS:          60,
		PaddleWidth:  14,
		PaddleHeight: 100,
		BallSize:     14,
		Margin:       24,
		PaddleSpeed:  7,
		AISpeed:      6, // a little slower than the player so the match stays winnable
		AIDeadzone:   4,
		BallSpeed:    6,
		BallMaxVY:    7,
		BallMinVY:    2,
		ServeAngles:  []float64{-25, -15, -10, 10, 15, 25},
		DashWidth:    4,
		DashHeight:   16,
		DashGap:      12,
		ScoreY:       40,
		HelpMargin:   36,
		Title:        "Pong AI",
		HelpText:     "Controls: W/S or Up/Down | ESC to quit",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the relationships the simulation relies on.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.PaddleHeight > c.Height:
		return fmt.Errorf("%w: paddle %dx%d in playfield height %d", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight, c.Height)
	case c.BallSize <= 0 || c.BallSize > c.Height:
		return fmt.Errorf("%w: ball size %d", ErrInvalidConfig, c.BallSize)
	case c.Margin < 0 || 2*(c.Margin+c.PaddleWidth) >= c.Width:
		return fmt.Errorf("%w: margin %d leaves no court", ErrInvalidConfig, c.Margin)
	case c.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed %d", ErrInvalidConfig, c.PaddleSpeed)
	case c.AISpeed <= 0 || c.AISpeed >= c.PaddleSpeed:
		return fmt.Errorf("%w: ai speed %d must be in (0, %d)", ErrInvalidConfig, c.AISpeed, c.PaddleSpeed)
	case c.AIDeadzone < 0:
		return fmt.Errorf("%w: ai deadzone %d", ErrInvalidConfig, c.AIDeadzone)
	case c.BallSpeed < 1:
		return fmt.Errorf("%w: ball speed %g", ErrInvalidConfig, c.BallSpeed)
	case c.BallSpeed >= float64(c.PaddleWidth+c.BallSize):
		// A faster ball could step over a paddle between two frames.
		return fmt.Errorf("%w: ball speed %g must be below %d", ErrInvalidConfig, c.BallSpeed, c.PaddleWidth+c.BallSize)
	case c.BallMinVY < 0 || c.BallMaxVY < c.BallMinVY:
		return fmt.Errorf("%w: vertical speed range [%g, %g]", ErrInvalidConfig, c.BallMinVY, c.BallMaxVY)
	case len(c.ServeAngles) == 0:
		return fmt.Errorf("%w: no serve angles", ErrInvalidConfig)
	case c.DashHeight <= 0 || c.DashGap < 0 || c.DashWidth <= 0:
		return fmt.Errorf("%w: centre line dash %dx%d gap %d", ErrInvalidConfig, c.DashWidth, c.DashHeight, c.DashGap)
	}
	return nil
}

// Center returns the playfield midpoint
func (c Config) Center() (int, int) {
	return c.Width / 2, c.Height / 2
}
